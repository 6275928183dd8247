package pgsql

import (
	"context"

	"github.com/caissebox/caissebox/internal/core/domain"
	portsrepo "github.com/caissebox/caissebox/internal/core/ports/repositories"
	"github.com/caissebox/caissebox/internal/schema"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PeriodPointer exposes the side-file holding the current period id. An
// empty id means no period is selected.
type PeriodPointer interface {
	CurrentPeriodID() (string, error)
}

// periodScope resolves the current period from the pointer side file plus
// the periods table. Every failure mode collapses to nil, so scoped
// queries fall back to running unscoped.
type periodScope struct {
	pointer PeriodPointer
	periods *PgxPeriodRepository
}

// NewPeriodScope builds the PeriodScope used by date-bearing repositories.
func NewPeriodScope(pool *pgxpool.Pool, reg *schema.Registry, pointer PeriodPointer) portsrepo.PeriodScope {
	return &periodScope{
		pointer: pointer,
		periods: NewPeriodRepository(pool, reg),
	}
}

var _ portsrepo.PeriodScope = (*periodScope)(nil)

func (s *periodScope) Current(ctx context.Context) *domain.Period {
	periodID, err := s.pointer.CurrentPeriodID()
	if err != nil || periodID == "" {
		return nil
	}
	period, err := s.periods.FindByID(ctx, periodID)
	if err != nil {
		return nil
	}
	return period
}
