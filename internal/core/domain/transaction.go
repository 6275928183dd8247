package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single dated income or expense record with an amount and
// a required category. CategoryTitle is denormalized on read for display.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description,omitempty"`
	CategoryID    string          `json:"categoryID"`
	CategoryTitle string          `json:"categoryTitle,omitempty"`
	Kind          TransactionKind `json:"kind"`
	AuditFields
}
