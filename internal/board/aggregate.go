package board

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"obrahub/pkg/models"
)

// Gateway is the slice of the remote client the aggregator needs.
type Gateway interface {
	Boards(ctx context.Context) ([]models.Board, error)
	CardsOnBoard(ctx context.Context, boardID string) ([]models.Card, error)
}

// Aggregator assembles one flat card collection out of every
// accessible board.
type Aggregator struct {
	gw Gateway
}

func NewAggregator(gw Gateway) *Aggregator {
	return &Aggregator{gw: gw}
}

// ListAllCards fetches the board list, then every board's cards
// concurrently, tags each card with its origin board's id and name,
// flattens and sorts. Any single board failing aborts the whole
// aggregation; completions may arrive in any order but the final sort
// makes the result deterministic.
func (a *Aggregator) ListAllCards(ctx context.Context) ([]models.Card, error) {
	boards, err := a.gw.Boards(ctx)
	if err != nil {
		return nil, err
	}

	perBoard := make([][]models.Card, len(boards))
	g, gctx := errgroup.WithContext(ctx)
	for i, b := range boards {
		g.Go(func() error {
			cards, err := a.gw.CardsOnBoard(gctx, b.ID)
			if err != nil {
				return err
			}
			for j := range cards {
				cards[j].BoardID = b.ID
				cards[j].BoardName = b.Name
			}
			perBoard[i] = cards
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []models.Card
	for _, cards := range perBoard {
		all = append(all, cards...)
	}
	SortCards(all)
	return all, nil
}

// SortCards orders the collection by display name with locale-aware
// comparison. Stable, so equal names keep their relative order.
func SortCards(cards []models.Card) {
	// A collate.Collator is not safe for concurrent use; build one
	// per call since callers may sort from parallel requests.
	col := collate.New(language.Spanish, collate.Loose)
	sort.SliceStable(cards, func(i, j int) bool {
		return col.CompareString(cards[i].Name, cards[j].Name) < 0
	})
}
