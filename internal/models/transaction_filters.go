package models

// TransactionFilters contains filtering options for transaction queries.
// Zero values mean "no filter" for that field.
type TransactionFilters struct {
	Type     TransactionType
	Category TransactionCategory
	Search   string
}

// IsEmpty returns true when no filter is set
func (f TransactionFilters) IsEmpty() bool {
	return f.Type == "" && f.Category == "" && f.Search == ""
}
