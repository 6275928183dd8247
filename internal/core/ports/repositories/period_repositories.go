package repositories

import (
	"context"

	"github.com/caissebox/caissebox/internal/core/domain"
)

// PeriodRepository persists cash-box periods. Update is also how a close is
// persisted; the close transition itself is decided in the service layer.
type PeriodRepository interface {
	Repository[domain.Period]
	ListByStatus(ctx context.Context, status domain.PeriodStatus) ([]domain.Period, error)
}
