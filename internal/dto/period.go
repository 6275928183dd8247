package dto

import (
	"time"

	"github.com/caissebox/caissebox/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePeriodRequest defines the data needed to open a new period.
type CreatePeriodRequest struct {
	StartDate     string          `json:"startDate" binding:"required,datetime=2006-01-02"`
	InitialAmount decimal.Decimal `json:"initialAmount" binding:"required"`
}

// ClosePeriodRequest defines the optional explicit end date for a close.
// When absent the close uses today.
type ClosePeriodRequest struct {
	EndDate *string `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// PeriodResponse defines the data returned for a period.
type PeriodResponse struct {
	PeriodID      string           `json:"periodID"`
	StartDate     string           `json:"startDate"`
	EndDate       *string          `json:"endDate,omitempty"`
	InitialAmount decimal.Decimal  `json:"initialAmount"`
	EndingBalance *decimal.Decimal `json:"endingBalance,omitempty"`
	Status        string           `json:"status"`
	CreatedAt     time.Time        `json:"createdAt"`
	CreatedBy     string           `json:"createdBy"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
	LastUpdatedBy string           `json:"lastUpdatedBy"`
}

// ToPeriodResponse converts a domain.Period to its DTO.
func ToPeriodResponse(p *domain.Period) PeriodResponse {
	resp := PeriodResponse{
		PeriodID:      p.PeriodID,
		StartDate:     p.StartDate.Format(DateLayout),
		InitialAmount: p.InitialAmount,
		EndingBalance: p.EndingBalance,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
		LastUpdatedAt: p.LastUpdatedAt,
		LastUpdatedBy: p.LastUpdatedBy,
	}
	if p.EndDate != nil {
		end := p.EndDate.Format(DateLayout)
		resp.EndDate = &end
	}
	return resp
}

// ToListPeriodResponse converts a slice of domain.Period to DTOs.
func ToListPeriodResponse(periods []domain.Period) []PeriodResponse {
	res := make([]PeriodResponse, len(periods))
	for i, p := range periods {
		res[i] = ToPeriodResponse(&p)
	}
	return res
}
