package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/caissebox/caissebox/internal/apperrors"
	"github.com/caissebox/caissebox/internal/core/domain"
	portsrepo "github.com/caissebox/caissebox/internal/core/ports/repositories"
	"github.com/caissebox/caissebox/internal/models"
	"github.com/caissebox/caissebox/internal/schema"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPeriodRepository persists cash-box periods.
type PgxPeriodRepository struct {
	BaseRepository
	desc schema.Descriptor
}

// NewPeriodRepository creates a new repository for period data.
func NewPeriodRepository(pool *pgxpool.Pool, reg *schema.Registry) *PgxPeriodRepository {
	return &PgxPeriodRepository{
		BaseRepository: BaseRepository{Pool: pool},
		desc:           reg.MustGet(schema.EntityPeriod),
	}
}

var _ portsrepo.PeriodRepository = (*PgxPeriodRepository)(nil)

func toModelPeriod(d domain.Period) models.Period {
	return models.Period{
		PeriodID:      d.PeriodID,
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
		InitialAmount: d.InitialAmount,
		EndingBalance: d.EndingBalance,
		Status:        string(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainPeriod(m models.Period) domain.Period {
	return domain.Period{
		PeriodID:      m.PeriodID,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		InitialAmount: m.InitialAmount,
		EndingBalance: m.EndingBalance,
		Status:        domain.PeriodStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const periodColumns = `period_id, start_date, end_date, initial_amount, ending_balance, status, created_at, created_by, last_updated_at, last_updated_by`

func scanPeriod(row pgx.Row) (models.Period, error) {
	var m models.Period
	err := row.Scan(
		&m.PeriodID,
		&m.StartDate,
		&m.EndDate,
		&m.InitialAmount,
		&m.EndingBalance,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// Create inserts a new period.
func (r *PgxPeriodRepository) Create(ctx context.Context, period domain.Period) error {
	m := toModelPeriod(period)
	query := `
		INSERT INTO periods (` + periodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PeriodID,
		m.StartDate,
		m.EndDate,
		m.InitialAmount,
		m.EndingBalance,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return wrapStorage("save period "+m.PeriodID, err)
	}
	return nil
}

// FindByID retrieves a period by its id.
func (r *PgxPeriodRepository) FindByID(ctx context.Context, periodID string) (*domain.Period, error) {
	query := `SELECT ` + periodColumns + ` FROM periods WHERE period_id = $1;`
	m, err := scanPeriod(r.Pool.QueryRow(ctx, query, periodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapStorage("find period by id "+periodID, err)
	}
	p := toDomainPeriod(m)
	return &p, nil
}

// Update rewrites all mutable columns of a period.
func (r *PgxPeriodRepository) Update(ctx context.Context, period domain.Period) error {
	m := toModelPeriod(period)
	query := `
		UPDATE periods
		SET start_date = $1, end_date = $2, initial_amount = $3, ending_balance = $4,
		    status = $5, last_updated_at = $6, last_updated_by = $7
		WHERE period_id = $8;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.StartDate,
		m.EndDate,
		m.InitialAmount,
		m.EndingBalance,
		m.Status,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.PeriodID,
	)
	if err != nil {
		return wrapStorage("update period "+m.PeriodID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("period %s: %w", m.PeriodID, apperrors.ErrNotFound)
	}
	return nil
}

// Delete removes a period.
func (r *PgxPeriodRepository) Delete(ctx context.Context, periodID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM periods WHERE period_id = $1;`, periodID)
	if err != nil {
		return wrapStorage("delete period "+periodID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("period %s: %w", periodID, apperrors.ErrNotFound)
	}
	return nil
}

// List retrieves all periods in the declared default order.
func (r *PgxPeriodRepository) List(ctx context.Context) ([]domain.Period, error) {
	query := `SELECT ` + periodColumns + ` FROM periods` + orderByClause(r.desc, "") + `;`
	return r.queryPeriods(ctx, query)
}

// Search retrieves periods matching the given column filters.
func (r *PgxPeriodRepository) Search(ctx context.Context, filters map[string]any) ([]domain.Period, error) {
	query := `SELECT ` + periodColumns + ` FROM periods`
	conds, args := searchConditions(r.desc, "", filters, nil)
	if len(conds) > 0 {
		query += " WHERE " + joinConditions(conds)
	}
	query += orderByClause(r.desc, "") + `;`
	return r.queryPeriods(ctx, query, args...)
}

// ListByStatus retrieves periods in the given lifecycle state.
func (r *PgxPeriodRepository) ListByStatus(ctx context.Context, status domain.PeriodStatus) ([]domain.Period, error) {
	query := `SELECT ` + periodColumns + ` FROM periods WHERE status = $1` + orderByClause(r.desc, "") + `;`
	return r.queryPeriods(ctx, query, string(status))
}

func (r *PgxPeriodRepository) queryPeriods(ctx context.Context, query string, args ...any) ([]domain.Period, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapStorage("query periods", err)
	}
	defer rows.Close()

	periods := []domain.Period{}
	for rows.Next() {
		m, err := scanPeriod(rows)
		if err != nil {
			return nil, wrapStorage("scan period row", err)
		}
		periods = append(periods, toDomainPeriod(m))
	}
	if rows.Err() != nil {
		return nil, wrapStorage("iterate period rows", rows.Err())
	}
	return periods, nil
}
