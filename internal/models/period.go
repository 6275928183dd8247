package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period maps to the periods table. EndDate and EndingBalance stay NULL
// while the period is open.
type Period struct {
	PeriodID      string           `json:"periodID"`
	StartDate     time.Time        `json:"startDate"`
	EndDate       *time.Time       `json:"endDate"`
	InitialAmount decimal.Decimal  `json:"initialAmount"`
	EndingBalance *decimal.Decimal `json:"endingBalance"`
	Status        string           `json:"status"` // OPEN or CLOSED
	AuditFields
}
