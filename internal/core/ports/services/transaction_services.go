package services

import (
	"context"
	"time"

	"github.com/caissebox/caissebox/internal/core/domain"
	"github.com/caissebox/caissebox/internal/dto"
)

// TransactionSvc manages the transactions of one kind. List and Search are
// period-scoped through the repository when a current period is selected.
type TransactionSvc interface {
	Kind() domain.TransactionKind
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	SearchTransactions(ctx context.Context, filters map[string]any) ([]domain.Transaction, error)
	ListByCategory(ctx context.Context, categoryID string) ([]domain.Transaction, error)
	ListByPeriod(ctx context.Context, start, end time.Time) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string, userID string) error

	// RelatedCategories lists the categories behind the given foreign-key
	// field, for choice-field population.
	RelatedCategories(ctx context.Context, fkField string) ([]domain.Category, error)
}
