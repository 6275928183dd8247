package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction maps to the incomes / expenses tables; the kind decides which
// table a repository reads and writes. CategoryTitle is populated by joined
// reads only.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	CategoryID    string          `json:"categoryID"` // FK, ON DELETE CASCADE
	CategoryTitle string          `json:"categoryTitle"`
	AuditFields
}
