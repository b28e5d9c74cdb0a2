package model

// Category is a user-defined label used to classify expenses.
type Category struct {
	Name      string
	ID        int64
	IsDeleted bool
}
