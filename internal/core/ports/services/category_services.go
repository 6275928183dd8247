package services

import (
	"context"

	"github.com/caissebox/caissebox/internal/core/domain"
	"github.com/caissebox/caissebox/internal/dto"
)

// CategorySvc manages the categories of one transaction kind. Two instances
// are wired, one per kind.
type CategorySvc interface {
	Kind() domain.TransactionKind
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, userID string) (*domain.Category, error)
	// DeleteCategory removes the category; its transactions go with it.
	DeleteCategory(ctx context.Context, categoryID string, userID string) error
}
