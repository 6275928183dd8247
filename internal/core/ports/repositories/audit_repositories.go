package repositories

import (
	"context"

	"github.com/caissebox/caissebox/internal/core/domain"
)

// AuditRepository appends action-log rows. The core never reads the log
// back; reporting over it is an external concern.
type AuditRepository interface {
	SaveEntry(ctx context.Context, entry domain.AuditEntry) error
}
