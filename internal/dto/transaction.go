package dto

import (
	"time"

	"github.com/caissebox/caissebox/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for date-only values.
const DateLayout = "2006-01-02"

// CreateTransactionRequest defines the data needed to record an income or
// expense transaction.
type CreateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required,positivedecimal"`
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	Description string          `json:"description" binding:"omitempty,max=150"`
	CategoryID  string          `json:"categoryID" binding:"required"`
}

// UpdateTransactionRequest defines the data accepted when editing a
// transaction. Nil fields are left untouched.
type UpdateTransactionRequest struct {
	Amount      *decimal.Decimal `json:"amount" binding:"omitempty"`
	Date        *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Description *string          `json:"description" binding:"omitempty,max=150"`
	CategoryID  *string          `json:"categoryID" binding:"omitempty"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"`
	Description   string          `json:"description,omitempty"`
	CategoryID    string          `json:"categoryID"`
	CategoryTitle string          `json:"categoryTitle,omitempty"`
	Kind          string          `json:"kind"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Amount:        txn.Amount,
		Date:          txn.Date.Format(DateLayout),
		Description:   txn.Description,
		CategoryID:    txn.CategoryID,
		CategoryTitle: txn.CategoryTitle,
		Kind:          string(txn.Kind),
		CreatedAt:     txn.CreatedAt,
		CreatedBy:     txn.CreatedBy,
		LastUpdatedAt: txn.LastUpdatedAt,
		LastUpdatedBy: txn.LastUpdatedBy,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}
