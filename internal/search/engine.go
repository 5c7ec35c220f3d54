package search

import (
	"strings"

	"obrahub/pkg/models"
)

// Filter classifies every card in the collection against a free-text
// query and drops the ones that match nowhere.
//
// Matching is substring-based per keyword with OR semantics across
// keywords: a two-word query matches a card containing either word.
// A keyword found in the folded name classifies the card as a name
// match; otherwise a hit in the folded description classifies it as a
// description match. The collection's incoming order (the
// aggregator's stable alphabetical order) is preserved.
//
// Two special cases drive the suggestion list:
//   - empty query with the suggestions open returns the whole
//     collection classified as description matches (browsing mode);
//   - a query that case-insensitively equals some card's exact display
//     name means that card is selected, and the result set collapses
//     to empty so the suggestion list closes.
func Filter(query string, cards []models.Card, open bool) []models.SearchResult {
	if query == "" {
		return browse(cards, open)
	}

	for _, card := range cards {
		if strings.EqualFold(query, card.Name) {
			return nil
		}
	}

	keywords := Keywords(query)
	if len(keywords) == 0 {
		return browse(cards, open)
	}
	return match(keywords, cards)
}

// Match classifies cards against the query with the same keyword
// semantics as Filter but without the exact-name collapse. Report
// scoping uses it: a query naming one card exactly should yield that
// card, not an empty view.
func Match(query string, cards []models.Card) []models.SearchResult {
	keywords := Keywords(query)
	if len(keywords) == 0 {
		return nil
	}
	return match(keywords, cards)
}

func match(keywords []string, cards []models.Card) []models.SearchResult {
	var results []models.SearchResult
	for _, card := range cards {
		name := Fold(card.Name)
		desc := Fold(card.Desc)

		matched := false
		kind := models.MatchDescription
		for _, kw := range keywords {
			if strings.Contains(name, kw) {
				matched = true
				kind = models.MatchName
				break
			}
			if strings.Contains(desc, kw) {
				matched = true
			}
		}
		if matched {
			results = append(results, models.SearchResult{Card: card, Match: kind})
		}
	}
	return results
}

func browse(cards []models.Card, open bool) []models.SearchResult {
	if !open {
		return nil
	}
	results := make([]models.SearchResult, len(cards))
	for i, card := range cards {
		results[i] = models.SearchResult{Card: card, Match: models.MatchDescription}
	}
	return results
}
