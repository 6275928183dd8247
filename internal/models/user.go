package models

// User maps to the users table.
type User struct {
	UserID       string `json:"userID"`
	Name         string `json:"name"`
	Username     string `json:"username"` // unique
	PasswordHash string `json:"-"`
	AuditFields
}
