package board

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"obrahub/internal/trello"
	"obrahub/pkg/models"
)

type fakeGateway struct {
	boards     []models.Board
	cards      map[string][]models.Card
	boardErr   error
	cardErr    map[string]error
	updateErr  error
	labelErr   error
	lastUpdate *trello.CardPatch
}

func (f *fakeGateway) Boards(ctx context.Context) ([]models.Board, error) {
	return f.boards, f.boardErr
}

func (f *fakeGateway) CardsOnBoard(ctx context.Context, boardID string) ([]models.Card, error) {
	if err := f.cardErr[boardID]; err != nil {
		return nil, err
	}
	out := make([]models.Card, len(f.cards[boardID]))
	copy(out, f.cards[boardID])
	return out, nil
}

func (f *fakeGateway) UpdateCard(ctx context.Context, id string, patch trello.CardPatch) (models.Card, error) {
	f.lastUpdate = &patch
	return models.Card{ID: id}, f.updateErr
}

func (f *fakeGateway) AddLabel(ctx context.Context, cardID, labelID string) error {
	return f.labelErr
}

func (f *fakeGateway) RemoveLabel(ctx context.Context, cardID, labelID string) error {
	return f.labelErr
}

func TestListAllCardsTagsAndSorts(t *testing.T) {
	gw := &fakeGateway{
		boards: []models.Board{
			{ID: "b2", Name: "Reconquista"},
			{ID: "b1", Name: "Salado"},
		},
		cards: map[string][]models.Card{
			"b1": {
				{ID: "c2", Name: "Zanja (RSA002)"},
				{ID: "c1", Name: "Puente X (RSA001)"},
			},
			"b2": {
				{ID: "c3", Name: "Alcantarilla (RRQ001)"},
			},
		},
	}
	agg := NewAggregator(gw)

	cards, err := agg.ListAllCards(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 3)

	// Sorted by name regardless of originating board.
	assert.Equal(t, []string{"c3", "c1", "c2"}, []string{cards[0].ID, cards[1].ID, cards[2].ID})

	for _, card := range cards {
		switch card.ID {
		case "c1", "c2":
			assert.Equal(t, "b1", card.BoardID)
			assert.Equal(t, "Salado", card.BoardName)
		case "c3":
			assert.Equal(t, "b2", card.BoardID)
			assert.Equal(t, "Reconquista", card.BoardName)
		}
	}
}

func TestListAllCardsAllOrNothing(t *testing.T) {
	boom := errors.New("board b2 unreachable")
	gw := &fakeGateway{
		boards: []models.Board{
			{ID: "b1", Name: "Salado"},
			{ID: "b2", Name: "Reconquista"},
		},
		cards: map[string][]models.Card{
			"b1": {{ID: "c1", Name: "Puente X (RSA001)"}},
		},
		cardErr: map[string]error{"b2": boom},
	}
	agg := NewAggregator(gw)

	_, err := agg.ListAllCards(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestSortCardsLocaleAware(t *testing.T) {
	cards := []models.Card{
		{ID: "c1", Name: "Ñandú (RSA002)"},
		{ID: "c2", Name: "Nido (RSA001)"},
		{ID: "c3", Name: "árbol (RSA003)"},
		{ID: "c4", Name: "Brazo largo (RSA004)"},
	}
	SortCards(cards)

	// Loose Spanish collation folds case and accents: árbol before
	// Brazo, Nido before Ñandú.
	assert.Equal(t, "c3", cards[0].ID)
	assert.Equal(t, "c4", cards[1].ID)
	assert.Equal(t, "c2", cards[2].ID)
	assert.Equal(t, "c1", cards[3].ID)
}
