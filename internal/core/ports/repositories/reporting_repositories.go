package repositories

import (
	"context"

	"github.com/caissebox/caissebox/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository computes period-scoped roll-ups over the transaction
// tables. A nil scope means unscoped. Results are recomputed on every call;
// nothing is cached.
type ReportingRepository interface {
	Total(ctx context.Context, kind domain.TransactionKind, scope *domain.Period) (decimal.Decimal, error)
	TotalsByCategory(ctx context.Context, kind domain.TransactionKind, scope *domain.Period) ([]domain.CategoryTotal, error)
	TotalsByMonth(ctx context.Context, kind domain.TransactionKind, scope *domain.Period) ([]domain.MonthTotal, error)
}
