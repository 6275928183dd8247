package services

import (
	"context"
	"fmt"
	"time"

	"github.com/caissebox/caissebox/internal/core/domain"
	portsrepo "github.com/caissebox/caissebox/internal/core/ports/repositories"
	portssvc "github.com/caissebox/caissebox/internal/core/ports/services"
	"github.com/caissebox/caissebox/internal/dto"
	"github.com/caissebox/caissebox/internal/schema"
	"github.com/google/uuid"
)

// CategoryService manages the categories of one transaction kind. Two
// instances are wired, one against each category table.
type CategoryService struct {
	BaseService
	kind         domain.TransactionKind
	categoryRepo portsrepo.CategoryRepository
	audit        portssvc.AuditSvc
}

// NewCategoryService creates a category service for the given kind.
func NewCategoryService(kind domain.TransactionKind, categoryRepo portsrepo.CategoryRepository, audit portssvc.AuditSvc) *CategoryService {
	return &CategoryService{
		kind:         kind,
		categoryRepo: categoryRepo,
		audit:        audit,
	}
}

var _ portssvc.CategorySvc = (*CategoryService)(nil)

// Kind reports which side of the cash box this service manages.
func (s *CategoryService) Kind() domain.TransactionKind {
	return s.kind
}

func (s *CategoryService) entityName() string {
	if s.kind == domain.KindExpense {
		return schema.EntityExpenseCategory
	}
	return schema.EntityIncomeCategory
}

// CreateCategory creates a new category and records the action. When only
// the audit append fails the category is still returned alongside the error.
func (s *CategoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error) {
	now := time.Now()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		Title:      req.Title,
		Kind:       s.kind,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		s.LogError(ctx, err, "failed to create category", "title", req.Title)
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.LogInfo(ctx, "category created", "category_id", category.CategoryID, "title", category.Title)

	if err := s.audit.Record(ctx, domain.ActionCreate, s.entityName(), category.CategoryID, category.Title, creatorUserID); err != nil {
		return &category, err
	}
	return &category, nil
}

// GetCategoryByID retrieves a single category.
func (s *CategoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get category %s: %w", categoryID, err)
	}
	return category, nil
}

// ListCategories retrieves every category of this kind, ordered by title.
func (s *CategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// UpdateCategory renames a category and records the action.
func (s *CategoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, userID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category %s for update: %w", categoryID, err)
	}

	if req.Title != nil {
		category.Title = *req.Title
	}
	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = userID

	if err := s.categoryRepo.Update(ctx, *category); err != nil {
		s.LogError(ctx, err, "failed to update category", "category_id", categoryID)
		return nil, fmt.Errorf("failed to update category %s: %w", categoryID, err)
	}

	s.LogInfo(ctx, "category updated", "category_id", categoryID)

	if err := s.audit.Record(ctx, domain.ActionUpdate, s.entityName(), categoryID, category.Title, userID); err != nil {
		return category, err
	}
	return category, nil
}

// DeleteCategory removes a category and records the action. The category's
// transactions are removed with it.
func (s *CategoryService) DeleteCategory(ctx context.Context, categoryID string, userID string) error {
	if err := s.categoryRepo.Delete(ctx, categoryID); err != nil {
		s.LogError(ctx, err, "failed to delete category", "category_id", categoryID)
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}

	s.LogInfo(ctx, "category deleted", "category_id", categoryID)

	return s.audit.Record(ctx, domain.ActionDelete, s.entityName(), categoryID, "", userID)
}
