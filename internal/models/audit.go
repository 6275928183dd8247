package models

import "time"

// AuditEntry maps to the audit_logs table. Rows are inserted once and never
// touched again.
type AuditEntry struct {
	AuditID     string    `json:"auditID"`
	Action      string    `json:"action"` // create, update or delete
	ActorID     string    `json:"actorID"`
	EntityName  string    `json:"entityName"`
	EntityID    string    `json:"entityID"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
