package domain

// User is the single operator of the cash box. Stored so the sign-in flow
// can stamp audit entries with an actor id.
type User struct {
	UserID       string `json:"userID"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	AuditFields
}
