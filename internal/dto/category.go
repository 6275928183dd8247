package dto

import (
	"time"

	"github.com/caissebox/caissebox/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a new category.
type CreateCategoryRequest struct {
	Title string `json:"title" binding:"required,max=50"`
}

// UpdateCategoryRequest defines the data accepted when renaming a category.
type UpdateCategoryRequest struct {
	Title *string `json:"title" binding:"omitempty,max=50"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID    string    `json:"categoryID"`
	Title         string    `json:"title"`
	Kind          string    `json:"kind"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO.
func ToCategoryResponse(cat *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:    cat.CategoryID,
		Title:         cat.Title,
		Kind:          string(cat.Kind),
		CreatedAt:     cat.CreatedAt,
		CreatedBy:     cat.CreatedBy,
		LastUpdatedAt: cat.LastUpdatedAt,
		LastUpdatedBy: cat.LastUpdatedBy,
	}
}

// ToListCategoryResponse converts a slice of domain.Category to DTOs.
func ToListCategoryResponse(cats []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(cats))
	for i, cat := range cats {
		res[i] = ToCategoryResponse(&cat)
	}
	return res
}
