package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodStatus is the lifecycle state of a cash-box period (exercice).
// A period starts Open and can only ever transition to Closed.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "OPEN"
	PeriodClosed PeriodStatus = "CLOSED"
)

// Period is a bounded accounting interval with an opening balance and, once
// closed, a computed ending balance. EndDate is nil while the period is open.
type Period struct {
	PeriodID      string           `json:"periodID"`
	StartDate     time.Time        `json:"startDate"`
	EndDate       *time.Time       `json:"endDate,omitempty"`
	InitialAmount decimal.Decimal  `json:"initialAmount"`
	EndingBalance *decimal.Decimal `json:"endingBalance,omitempty"`
	Status        PeriodStatus     `json:"status"`
	AuditFields
}

// IsOpen reports whether the period can still receive a close operation.
func (p Period) IsOpen() bool {
	return p.Status == PeriodOpen
}

// ScopeEnd returns the exclusive-ish upper bound used for period scoping:
// end_date + 1 day, padding for inclusive end-of-day semantics on a
// date-only boundary. Returns nil while the period is open.
func (p Period) ScopeEnd() *time.Time {
	if p.EndDate == nil {
		return nil
	}
	end := p.EndDate.AddDate(0, 0, 1)
	return &end
}
