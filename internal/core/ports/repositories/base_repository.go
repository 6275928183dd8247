package repositories

import (
	"context"

	"github.com/caissebox/caissebox/internal/core/domain"
)

// Repository is the operation set shared by every entity repository. Search
// filters are column-name keyed equality matches; unknown columns are
// ignored.
type Repository[T any] interface {
	Create(ctx context.Context, entity T) error
	FindByID(ctx context.Context, id string) (*T, error)
	Update(ctx context.Context, entity T) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]T, error)
	Search(ctx context.Context, filters map[string]any) ([]T, error)
}

// PeriodScope resolves the currently active period. Implementations return
// nil when no period is selected, the pointer is unreadable, or it points at
// a deleted period; date-bearing queries then run unscoped.
type PeriodScope interface {
	Current(ctx context.Context) *domain.Period
}
