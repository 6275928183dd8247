package services

import (
	"context"
	"fmt"
	"time"

	"github.com/caissebox/caissebox/internal/apperrors"
	"github.com/caissebox/caissebox/internal/core/domain"
	portsrepo "github.com/caissebox/caissebox/internal/core/ports/repositories"
	portssvc "github.com/caissebox/caissebox/internal/core/ports/services"
	"github.com/caissebox/caissebox/internal/dto"
	"github.com/caissebox/caissebox/internal/schema"
	"github.com/google/uuid"
)

// TransactionService manages the transactions of one kind. The repository
// applies the current period scope to list and search operations.
type TransactionService struct {
	BaseService
	kind            domain.TransactionKind
	transactionRepo portsrepo.TransactionRepository
	categoryRepo    portsrepo.CategoryRepository
	audit           portssvc.AuditSvc
}

// NewTransactionService creates a transaction service for the given kind.
func NewTransactionService(kind domain.TransactionKind, transactionRepo portsrepo.TransactionRepository, categoryRepo portsrepo.CategoryRepository, audit portssvc.AuditSvc) *TransactionService {
	return &TransactionService{
		kind:            kind,
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		audit:           audit,
	}
}

var _ portssvc.TransactionSvc = (*TransactionService)(nil)

// Kind reports which side of the cash box this service manages.
func (s *TransactionService) Kind() domain.TransactionKind {
	return s.kind
}

func (s *TransactionService) entityName() string {
	if s.kind == domain.KindExpense {
		return schema.EntityExpense
	}
	return schema.EntityIncome
}

// CreateTransaction records a new transaction after verifying its category
// exists, and appends an action-log entry.
func (s *TransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}

	category, err := s.categoryRepo.FindByID(ctx, req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve category %s: %w", req.CategoryID, err)
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Amount:        req.Amount,
		Date:          date,
		Description:   req.Description,
		CategoryID:    category.CategoryID,
		CategoryTitle: category.Title,
		Kind:          s.kind,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.transactionRepo.Create(ctx, txn); err != nil {
		s.LogError(ctx, err, "failed to create transaction", "category_id", req.CategoryID)
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "transaction created", "transaction_id", txn.TransactionID, "amount", txn.Amount.String())

	if err := s.audit.Record(ctx, domain.ActionCreate, s.entityName(), txn.TransactionID, txn.Description, creatorUserID); err != nil {
		return &txn, err
	}
	return &txn, nil
}

// GetTransactionByID retrieves a single transaction, regardless of period
// scope.
func (s *TransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

// ListTransactions retrieves the current period's transactions in date order.
func (s *TransactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

// SearchTransactions retrieves the current period's transactions matching
// the column filters.
func (s *TransactionService) SearchTransactions(ctx context.Context, filters map[string]any) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.Search(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to search transactions: %w", err)
	}
	return txns, nil
}

// ListByCategory retrieves the current period's transactions for one category.
func (s *TransactionService) ListByCategory(ctx context.Context, categoryID string) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions by category %s: %w", categoryID, err)
	}
	return txns, nil
}

// ListByPeriod retrieves transactions within an explicit date range.
func (s *TransactionService) ListByPeriod(ctx context.Context, start, end time.Time) ([]domain.Transaction, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("end date before start date: %w", apperrors.ErrValidation)
	}
	txns, err := s.transactionRepo.FindByPeriod(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions by period: %w", err)
	}
	return txns, nil
}

// UpdateTransaction edits a transaction and records the action. Nil request
// fields are left untouched.
func (s *TransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s for update: %w", transactionID, err)
	}

	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
		}
		txn.Amount = *req.Amount
	}
	if req.Date != nil {
		date, err := time.Parse(dto.DateLayout, *req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", *req.Date, apperrors.ErrValidation)
		}
		txn.Date = date
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.CategoryID != nil {
		category, err := s.categoryRepo.FindByID(ctx, *req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve category %s: %w", *req.CategoryID, err)
		}
		txn.CategoryID = category.CategoryID
		txn.CategoryTitle = category.Title
	}
	txn.LastUpdatedAt = time.Now()
	txn.LastUpdatedBy = userID

	if err := s.transactionRepo.Update(ctx, *txn); err != nil {
		s.LogError(ctx, err, "failed to update transaction", "transaction_id", transactionID)
		return nil, fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}

	s.LogInfo(ctx, "transaction updated", "transaction_id", transactionID)

	if err := s.audit.Record(ctx, domain.ActionUpdate, s.entityName(), transactionID, txn.Description, userID); err != nil {
		return txn, err
	}
	return txn, nil
}

// DeleteTransaction removes a transaction and records the action.
func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	if err := s.transactionRepo.Delete(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "failed to delete transaction", "transaction_id", transactionID)
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}

	s.LogInfo(ctx, "transaction deleted", "transaction_id", transactionID)

	return s.audit.Record(ctx, domain.ActionDelete, s.entityName(), transactionID, "", userID)
}

// RelatedCategories lists the categories behind the given foreign-key field.
func (s *TransactionService) RelatedCategories(ctx context.Context, fkField string) ([]domain.Category, error) {
	categories, err := s.transactionRepo.RelatedAll(ctx, fkField)
	if err != nil {
		return nil, fmt.Errorf("failed to list related categories: %w", err)
	}
	return categories, nil
}
