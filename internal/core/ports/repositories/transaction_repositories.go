package repositories

import (
	"context"
	"time"

	"github.com/caissebox/caissebox/internal/core/domain"
)

// TransactionRepository persists income or expense transactions, depending
// on the kind it was built with. List, Search and FindByCategory apply the
// current period scope transparently; FindByPeriod takes an explicit range.
type TransactionRepository interface {
	Repository[domain.Transaction]
	FindByCategory(ctx context.Context, categoryID string) ([]domain.Transaction, error)
	FindByPeriod(ctx context.Context, start, end time.Time) ([]domain.Transaction, error)

	// RelatedAll resolves the foreign-key field to its target entity and
	// lists it; RelatedByID fetches a single related record. Used by the
	// form builder to populate choice fields.
	RelatedAll(ctx context.Context, fkField string) ([]domain.Category, error)
	RelatedByID(ctx context.Context, fkField string, id string) (*domain.Category, error)
}
