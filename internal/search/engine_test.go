package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"obrahub/pkg/models"
)

func fixtureCards() []models.Card {
	return []models.Card{
		{ID: "c1", Name: "Puente X (RSA001)", Desc: "cruce sobre el río", BoardName: "Salado"},
		{ID: "c2", Name: "Sin código", Desc: "nota", BoardName: "Salado"},
	}
}

func TestFoldIdempotentAndCaseInsensitive(t *testing.T) {
	assert.Equal(t, Fold("rio"), Fold("Río"))
	assert.Equal(t, Fold("rio"), Fold("RÍO"))
	assert.Equal(t, Fold("Río"), Fold(Fold("Río")))
	assert.Equal(t, "cuenca lujan", Fold("Cuenca Luján"))
}

func TestFilterClassifiesNameAndDescription(t *testing.T) {
	cards := fixtureCards()

	results := Filter("puente", cards, true)
	require.Len(t, results, 1)
	assert.Equal(t, "c1", results[0].Card.ID)
	assert.Equal(t, models.MatchName, results[0].Match)

	results = Filter("cruce", cards, true)
	require.Len(t, results, 1)
	assert.Equal(t, models.MatchDescription, results[0].Match)
}

func TestFilterKeywordsAreORSemantics(t *testing.T) {
	cards := []models.Card{
		{ID: "c1", Name: "Defensa costera", Desc: "obras sobre el río"},
	}

	// "puente" matches nothing, "rio" matches the description; OR
	// semantics still include the card.
	results := Filter("puente rio", cards, true)
	require.Len(t, results, 1)
	assert.Equal(t, "c1", results[0].Card.ID)
	assert.Equal(t, models.MatchDescription, results[0].Match)
}

func TestFilterAccentFoldedMatching(t *testing.T) {
	cards := fixtureCards()

	results := Filter("RIO", cards, true)
	require.Len(t, results, 1)
	assert.Equal(t, "c1", results[0].Card.ID)
}

func TestFilterCodeMatchesAgainstFullName(t *testing.T) {
	cards := fixtureCards()

	results := Filter("RSA001", cards, true)
	require.Len(t, results, 1)
	assert.Equal(t, "c1", results[0].Card.ID)
	assert.Equal(t, models.MatchName, results[0].Match)
}

func TestFilterEmptyQueryBrowsesWhenOpen(t *testing.T) {
	cards := fixtureCards()

	results := Filter("", cards, true)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, models.MatchDescription, r.Match)
	}

	assert.Nil(t, Filter("", cards, false))
}

func TestFilterWhitespaceQueryFallsBackToBrowse(t *testing.T) {
	cards := fixtureCards()

	assert.Len(t, Filter("   ", cards, true), 2)
	assert.Nil(t, Filter("   ", cards, false))
}

func TestFilterExactNameCollapsesResults(t *testing.T) {
	cards := fixtureCards()

	assert.Nil(t, Filter("Puente X (RSA001)", cards, true))
	assert.Nil(t, Filter("puente x (rsa001)", cards, true))
}

func TestMatchSkipsExactNameCollapse(t *testing.T) {
	cards := fixtureCards()

	// The most specific query a report can be scoped by is a card's
	// exact name; Match keeps that card where Filter collapses.
	results := Match("Puente X (RSA001)", cards)
	require.Len(t, results, 1)
	assert.Equal(t, "c1", results[0].Card.ID)
	assert.Equal(t, models.MatchName, results[0].Match)

	assert.Nil(t, Match("   ", cards))
}

func TestFilterPreservesIncomingOrder(t *testing.T) {
	cards := []models.Card{
		{ID: "a", Name: "Alcantarilla (ARR001)", Desc: "obra"},
		{ID: "b", Name: "Bajo meandro (ARR002)", Desc: "obra"},
		{ID: "c", Name: "Canal aliviador (ARR003)", Desc: "obra"},
	}

	results := Filter("obra", cards, true)
	require.Len(t, results, 3)
	assert.Equal(t, "a", results[0].Card.ID)
	assert.Equal(t, "b", results[1].Card.ID)
	assert.Equal(t, "c", results[2].Card.ID)
}
