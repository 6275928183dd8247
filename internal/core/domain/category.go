package domain

// Category is a user-defined grouping label for income or expense
// transactions. Titles are unique within a kind. Deleting a category
// cascades to its transactions.
type Category struct {
	CategoryID string          `json:"categoryID"`
	Title      string          `json:"title"`
	Kind       TransactionKind `json:"kind"`
	AuditFields
}
