package pgsql

import (
	"context"

	"github.com/caissebox/caissebox/internal/core/domain"
	portsrepo "github.com/caissebox/caissebox/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxAuditRepository appends rows to the audit_logs table. The application
// only ever inserts here.
type PgxAuditRepository struct {
	BaseRepository
}

// NewAuditRepository creates a new repository for audit entries.
func NewAuditRepository(pool *pgxpool.Pool) *PgxAuditRepository {
	return &PgxAuditRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AuditRepository = (*PgxAuditRepository)(nil)

// SaveEntry appends one action-log row.
func (r *PgxAuditRepository) SaveEntry(ctx context.Context, entry domain.AuditEntry) error {
	query := `
		INSERT INTO audit_logs (audit_id, action, actor_id, entity_name, entity_id, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		entry.AuditID,
		string(entry.Action),
		entry.ActorID,
		entry.EntityName,
		entry.EntityID,
		entry.Description,
		entry.CreatedAt,
	)
	if err != nil {
		return wrapStorage("save audit entry for "+entry.EntityName, err)
	}
	return nil
}
