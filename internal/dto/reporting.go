package dto

import (
	"github.com/caissebox/caissebox/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategoryTotalResponse is one by-category roll-up row.
type CategoryTotalResponse struct {
	CategoryTitle string          `json:"categoryTitle"`
	Total         decimal.Decimal `json:"total"`
}

// MonthTotalResponse is one by-month roll-up row (month 1-12).
type MonthTotalResponse struct {
	Month int             `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// DashboardResponse bundles the dashboard aggregates for the current period.
type DashboardResponse struct {
	PeriodID          *string                 `json:"periodID,omitempty"`
	TotalIncome       decimal.Decimal         `json:"totalIncome"`
	TotalExpense      decimal.Decimal         `json:"totalExpense"`
	Balance           decimal.Decimal         `json:"balance"`
	IncomeByCategory  []CategoryTotalResponse `json:"incomeByCategory"`
	ExpenseByCategory []CategoryTotalResponse `json:"expenseByCategory"`
	IncomeByMonth     []MonthTotalResponse    `json:"incomeByMonth"`
	ExpenseByMonth    []MonthTotalResponse    `json:"expenseByMonth"`
}

// ToCategoryTotalResponses converts domain roll-up rows to DTOs.
func ToCategoryTotalResponses(rows []domain.CategoryTotal) []CategoryTotalResponse {
	res := make([]CategoryTotalResponse, len(rows))
	for i, row := range rows {
		res[i] = CategoryTotalResponse{CategoryTitle: row.CategoryTitle, Total: row.Total}
	}
	return res
}

// ToMonthTotalResponses converts domain roll-up rows to DTOs.
func ToMonthTotalResponses(rows []domain.MonthTotal) []MonthTotalResponse {
	res := make([]MonthTotalResponse, len(rows))
	for i, row := range rows {
		res[i] = MonthTotalResponse{Month: row.Month, Total: row.Total}
	}
	return res
}
