package models

// CategorySuggestion is a proposed category for a transaction title.
// Confidence is between 0 and 1; zero means nothing matched.
type CategorySuggestion struct {
	Category   TransactionCategory `json:"category"`
	Confidence float64             `json:"confidence"`
	MatchedOn  string              `json:"matched_on,omitempty"`
}
