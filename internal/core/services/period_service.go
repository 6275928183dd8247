package services

import (
	"context"
	"errors"
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

// PeriodPointerStore reads and writes the side file recording which period
// is currently selected. An empty id means none.
type PeriodPointerStore interface {
	CurrentPeriodID() (string, error)
	SetCurrentPeriodID(periodID string) error
}

// PeriodService manages the period lifecycle. Closing a period is the one
// place an ending balance is ever computed and stored.
type PeriodService struct {
	BaseService
	periodRepo    portsrepo.PeriodRepository
	reportingRepo portsrepo.ReportingRepository
	pointer       PeriodPointerStore
	audit         portssvc.AuditSvc
}

// NewPeriodService creates a new PeriodService.
func NewPeriodService(periodRepo portsrepo.PeriodRepository, reportingRepo portsrepo.ReportingRepository, pointer PeriodPointerStore, audit portssvc.AuditSvc) *PeriodService {
	return &PeriodService{
		periodRepo:    periodRepo,
		reportingRepo: reportingRepo,
		pointer:       pointer,
		audit:         audit,
	}
}

var _ portssvc.PeriodSvc = (*PeriodService)(nil)

// CreatePeriod opens a new period. It starts OPEN with no end date and no
// ending balance.
func (s *PeriodService) CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest, creatorUserID string) (*domain.Period, error) {
	startDate, err := time.Parse(dto.DateLayout, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", req.StartDate, apperrors.ErrValidation)
	}

	now := time.Now()
	period := domain.Period{
		PeriodID:      uuid.NewString(),
		StartDate:     startDate,
		InitialAmount: req.InitialAmount,
		Status:        domain.PeriodOpen,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.periodRepo.Create(ctx, period); err != nil {
		s.LogError(ctx, err, "failed to create period")
		return nil, fmt.Errorf("failed to create period: %w", err)
	}

	s.LogInfo(ctx, "period created", "period_id", period.PeriodID, "start_date", req.StartDate)

	if err := s.audit.Record(ctx, domain.ActionCreate, schema.EntityPeriod, period.PeriodID, req.StartDate, creatorUserID); err != nil {
		return &period, err
	}
	return &period, nil
}

// GetPeriodByID retrieves a single period.
func (s *PeriodService) GetPeriodByID(ctx context.Context, periodID string) (*domain.Period, error) {
	period, err := s.periodRepo.FindByID(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to get period %s: %w", periodID, err)
	}
	return period, nil
}

// ListPeriods retrieves every period, ordered by start date.
func (s *PeriodService) ListPeriods(ctx context.Context) ([]domain.Period, error) {
	periods, err := s.periodRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	return periods, nil
}

// DeletePeriod removes a period and records the action. A deleted period
// that was the current selection leaves the selection cleared.
func (s *PeriodService) DeletePeriod(ctx context.Context, periodID string, userID string) error {
	if err := s.periodRepo.Delete(ctx, periodID); err != nil {
		s.LogError(ctx, err, "failed to delete period", "period_id", periodID)
		return fmt.Errorf("failed to delete period %s: %w", periodID, err)
	}

	if current, err := s.pointer.CurrentPeriodID(); err == nil && current == periodID {
		if err := s.pointer.SetCurrentPeriodID(""); err != nil {
			s.LogError(ctx, err, "failed to clear period selection", "period_id", periodID)
		}
	}

	s.LogInfo(ctx, "period deleted", "period_id", periodID)

	return s.audit.Record(ctx, domain.ActionDelete, schema.EntityPeriod, periodID, "", userID)
}

// ClosePeriod stamps the end date, computes the ending balance as initial
// amount plus income minus expense over the period's range, and flips the
// status to CLOSED. Closing an already closed period fails with
// ErrValidation.
func (s *PeriodService) ClosePeriod(ctx context.Context, periodID string, endDate *time.Time, userID string) (*domain.Period, error) {
	period, err := s.periodRepo.FindByID(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to find period %s for close: %w", periodID, err)
	}
	if !period.IsOpen() {
		return nil, fmt.Errorf("period %s is already closed: %w", periodID, apperrors.ErrValidation)
	}

	end := time.Now().Truncate(24 * time.Hour)
	if endDate != nil {
		end = *endDate
	}
	if end.Before(period.StartDate) {
		return nil, fmt.Errorf("end date before start date: %w", apperrors.ErrValidation)
	}

	// Aggregate over the period's own bounds, not the current selection.
	scoped := *period
	scoped.EndDate = &end

	totalIncome, err := s.reportingRepo.Total(ctx, domain.KindIncome, &scoped)
	if err != nil {
		return nil, fmt.Errorf("failed to total incomes for close: %w", err)
	}
	totalExpense, err := s.reportingRepo.Total(ctx, domain.KindExpense, &scoped)
	if err != nil {
		return nil, fmt.Errorf("failed to total expenses for close: %w", err)
	}

	ending := period.InitialAmount.Add(totalIncome).Sub(totalExpense)

	period.EndDate = &end
	period.EndingBalance = &ending
	period.Status = domain.PeriodClosed
	period.LastUpdatedAt = time.Now()
	period.LastUpdatedBy = userID

	if err := s.periodRepo.Update(ctx, *period); err != nil {
		s.LogError(ctx, err, "failed to close period", "period_id", periodID)
		return nil, fmt.Errorf("failed to close period %s: %w", periodID, err)
	}

	s.LogInfo(ctx, "period closed",
		"period_id", periodID, "ending_balance", ending.String())

	if err := s.audit.Record(ctx, domain.ActionUpdate, schema.EntityPeriod, periodID, "closed with balance "+ending.String(), userID); err != nil {
		return period, err
	}
	return period, nil
}

// CurrentPeriod resolves the period-pointer side file. A nil period with nil
// error means no period is selected.
func (s *PeriodService) CurrentPeriod(ctx context.Context) (*domain.Period, error) {
	periodID, err := s.pointer.CurrentPeriodID()
	if err != nil {
		return nil, fmt.Errorf("failed to read period selection: %w", err)
	}
	if periodID == "" {
		return nil, nil
	}

	period, err := s.periodRepo.FindByID(ctx, periodID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Stale pointer; behave as if nothing is selected.
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve current period %s: %w", periodID, err)
	}
	return period, nil
}

// SelectPeriod writes the period-pointer side file after verifying the
// period exists.
func (s *PeriodService) SelectPeriod(ctx context.Context, periodID string) (*domain.Period, error) {
	period, err := s.periodRepo.FindByID(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to select period %s: %w", periodID, err)
	}

	if err := s.pointer.SetCurrentPeriodID(periodID); err != nil {
		return nil, fmt.Errorf("failed to record period selection: %w", err)
	}

	s.LogInfo(ctx, "period selected", "period_id", periodID)
	return period, nil
}
