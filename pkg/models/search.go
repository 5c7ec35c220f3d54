package models

// MatchType classifies where a search keyword hit a card.
type MatchType string

const (
	MatchName        MatchType = "name"
	MatchDescription MatchType = "description"
)

// SearchResult pairs a card with its match classification. Cards that
// match nowhere are simply absent from the result set.
type SearchResult struct {
	Card  Card      `json:"card"`
	Match MatchType `json:"match"`
}
