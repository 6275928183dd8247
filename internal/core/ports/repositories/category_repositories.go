package repositories

import (
	"context"

	"github.com/caissebox/caissebox/internal/core/domain"
)

// CategoryRepository persists income or expense categories, depending on the
// kind it was built with. Deleting a category cascades to its transactions.
type CategoryRepository interface {
	Repository[domain.Category]
	FindByTitle(ctx context.Context, title string) (*domain.Category, error)
}
