package services

import (
	"context"
	"time"

	"github.com/caissebox/caissebox/internal/core/domain"
	"github.com/caissebox/caissebox/internal/dto"
)

// PeriodSvc manages the period lifecycle: open, list, select, close.
type PeriodSvc interface {
	CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest, creatorUserID string) (*domain.Period, error)
	GetPeriodByID(ctx context.Context, periodID string) (*domain.Period, error)
	ListPeriods(ctx context.Context) ([]domain.Period, error)
	DeletePeriod(ctx context.Context, periodID string, userID string) error

	// ClosePeriod computes ending_balance = initial_amount + total income -
	// total expense over the period's own range, stamps the end date (now
	// when endDate is nil) and flips the status to CLOSED. Closing an
	// already closed period fails with ErrValidation.
	ClosePeriod(ctx context.Context, periodID string, endDate *time.Time, userID string) (*domain.Period, error)

	// CurrentPeriod resolves the period-pointer side file. A nil period
	// with nil error means no period is selected.
	CurrentPeriod(ctx context.Context) (*domain.Period, error)

	// SelectPeriod writes the period-pointer side file after verifying the
	// period exists.
	SelectPeriod(ctx context.Context, periodID string) (*domain.Period, error)
}
