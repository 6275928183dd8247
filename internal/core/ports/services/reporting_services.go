package services

import (
	"context"

	"github.com/caissebox/caissebox/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingSvc exposes the dashboard aggregations. All results are scoped to
// the current period when one is selected, and recomputed on every call.
type ReportingSvc interface {
	TotalIncome(ctx context.Context) (decimal.Decimal, error)
	TotalExpense(ctx context.Context) (decimal.Decimal, error)
	IncomeByCategory(ctx context.Context) ([]domain.CategoryTotal, error)
	ExpenseByCategory(ctx context.Context) ([]domain.CategoryTotal, error)
	IncomeByMonth(ctx context.Context) ([]domain.MonthTotal, error)
	ExpenseByMonth(ctx context.Context) ([]domain.MonthTotal, error)
	Dashboard(ctx context.Context) (*domain.DashboardSummary, error)
}
