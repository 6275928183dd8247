package models

// Category maps to the income_categories / expense_categories tables; the
// kind decides which table a repository reads and writes.
type Category struct {
	CategoryID string `json:"categoryID"`
	Title      string `json:"title"` // unique within the table
	AuditFields
}
