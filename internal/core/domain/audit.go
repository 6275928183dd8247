package domain

import "time"

// AuditAction is the kind of mutation recorded in the action log.
type AuditAction string

const (
	ActionCreate AuditAction = "create"
	ActionUpdate AuditAction = "update"
	ActionDelete AuditAction = "delete"
)

// AuditEntry is one append-only action-log row, recorded once per mutating
// repository call for non-repudiation. Entries are never updated or deleted
// by the application.
type AuditEntry struct {
	AuditID     string      `json:"auditID"`
	Action      AuditAction `json:"action"`
	ActorID     string      `json:"actorID"`
	EntityName  string      `json:"entityName"`
	EntityID    string      `json:"entityID"`
	Description string      `json:"description,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}
