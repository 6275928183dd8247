package services

import (
	"context"
	"fmt"
	"time"

	"github.com/caissebox/caissebox/internal/apperrors"
	"github.com/caissebox/caissebox/internal/core/domain"
	portsrepo "github.com/caissebox/caissebox/internal/core/ports/repositories"
	portssvc "github.com/caissebox/caissebox/internal/core/ports/services"
	"github.com/google/uuid"
)

// AuditService appends action-log entries. Other services call Record once
// per successful mutation, after the mutation has committed.
type AuditService struct {
	BaseService
	auditRepo portsrepo.AuditRepository
}

// NewAuditService creates a new AuditService.
func NewAuditService(auditRepo portsrepo.AuditRepository) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

var _ portssvc.AuditSvc = (*AuditService)(nil)

// Record appends one entry. The returned error wraps ErrAuditLog so callers
// can tell a failed append apart from a failed mutation; the mutation itself
// is never reversed.
func (s *AuditService) Record(ctx context.Context, action domain.AuditAction, entityName, entityID, description, actorID string) error {
	entry := domain.AuditEntry{
		AuditID:     uuid.NewString(),
		Action:      action,
		ActorID:     actorID,
		EntityName:  entityName,
		EntityID:    entityID,
		Description: description,
		CreatedAt:   time.Now(),
	}

	if err := s.auditRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "failed to append audit entry",
			"action", string(action), "entity_name", entityName, "entity_id", entityID)
		return fmt.Errorf("%w: %s %s %s", apperrors.ErrAuditLog, action, entityName, entityID)
	}

	s.LogDebug(ctx, "audit entry recorded",
		"action", string(action), "entity_name", entityName, "entity_id", entityID)
	return nil
}
