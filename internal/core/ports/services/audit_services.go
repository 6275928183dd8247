package services

import (
	"context"

	"github.com/caissebox/caissebox/internal/core/domain"
)

// AuditSvc appends one action-log entry per successful mutation. Append
// failures are reported to the caller, never retried, and never reverse the
// primary mutation.
type AuditSvc interface {
	Record(ctx context.Context, action domain.AuditAction, entityName, entityID, description, actorID string) error
}
