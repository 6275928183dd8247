package domain

import "github.com/shopspring/decimal"

// CategoryTotal is an aggregated amount for one category title.
type CategoryTotal struct {
	CategoryTitle string          `json:"categoryTitle"`
	Total         decimal.Decimal `json:"total"`
}

// MonthTotal is an aggregated amount for one calendar month (1-12).
type MonthTotal struct {
	Month int             `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// DashboardSummary is the data behind the dashboard cards and charts.
type DashboardSummary struct {
	TotalIncome       decimal.Decimal `json:"totalIncome"`
	TotalExpense      decimal.Decimal `json:"totalExpense"`
	Balance           decimal.Decimal `json:"balance"`
	IncomeByCategory  []CategoryTotal `json:"incomeByCategory"`
	ExpenseByCategory []CategoryTotal `json:"expenseByCategory"`
	IncomeByMonth     []MonthTotal    `json:"incomeByMonth"`
	ExpenseByMonth    []MonthTotal    `json:"expenseByMonth"`
}
