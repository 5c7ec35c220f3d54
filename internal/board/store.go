package board

import (
	"context"
	"errors"
	"sync"

	"obrahub/internal/trello"
	"obrahub/pkg/models"
)

// ErrCardNotFound means the card id is absent from the local
// collection; the caller should refresh or treat it as 404.
var ErrCardNotFound = errors.New("board: card not found")

// CardGateway is the mutating slice of the remote client the store
// needs for optimistic updates.
type CardGateway interface {
	UpdateCard(ctx context.Context, id string, patch trello.CardPatch) (models.Card, error)
	AddLabel(ctx context.Context, cardID, labelID string) error
	RemoveLabel(ctx context.Context, cardID, labelID string) error
}

// Store holds the in-memory card collection between refreshes.
//
// Mutations are optimistic: the local card is changed first, the
// remote call is issued after, and on failure the prior snapshot is
// restored. There is no general rollback log; one card snapshot per
// operation is all the compensation needed.
type Store struct {
	mu    sync.RWMutex
	agg   *Aggregator
	gw    CardGateway
	cards []models.Card
}

func NewStore(agg *Aggregator, gw CardGateway) *Store {
	return &Store{agg: agg, gw: gw}
}

// Refresh replaces the collection wholesale.
func (s *Store) Refresh(ctx context.Context) error {
	cards, err := s.agg.ListAllCards(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.cards = cards
	s.mu.Unlock()
	return nil
}

// Cards returns a copy of the current collection snapshot.
func (s *Store) Cards() []models.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Card, len(s.cards))
	copy(out, s.cards)
	return out
}

func (s *Store) CardByID(id string) (models.Card, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.index(id); i >= 0 {
		return s.cards[i], true
	}
	return models.Card{}, false
}

// index returns the card's position, -1 when absent. Callers hold the
// lock.
func (s *Store) index(id string) int {
	for i := range s.cards {
		if s.cards[i].ID == id {
			return i
		}
	}
	return -1
}

// UpdateCard patches name, description or cover optimistically.
func (s *Store) UpdateCard(ctx context.Context, id string, patch trello.CardPatch) (models.Card, error) {
	s.mu.Lock()
	i := s.index(id)
	if i < 0 {
		s.mu.Unlock()
		return models.Card{}, ErrCardNotFound
	}
	prior := s.cards[i]

	if patch.Name != nil {
		s.cards[i].Name = *patch.Name
	}
	if patch.Desc != nil {
		s.cards[i].Desc = *patch.Desc
	}
	if patch.Cover != nil {
		s.cards[i].Cover = *patch.Cover
	}
	if patch.Name != nil {
		SortCards(s.cards)
	}
	s.mu.Unlock()

	if _, err := s.gw.UpdateCard(ctx, id, patch); err != nil {
		s.restore(prior)
		return models.Card{}, err
	}

	updated, _ := s.CardByID(id)
	return updated, nil
}

// AddLabel attaches the label locally, then remotely.
func (s *Store) AddLabel(ctx context.Context, cardID string, label models.Label) (models.Card, error) {
	s.mu.Lock()
	i := s.index(cardID)
	if i < 0 {
		s.mu.Unlock()
		return models.Card{}, ErrCardNotFound
	}
	prior := snapshotCard(s.cards[i])

	already := false
	for _, l := range s.cards[i].Labels {
		if l.ID == label.ID {
			already = true
			break
		}
	}
	if !already {
		s.cards[i].Labels = append(s.cards[i].Labels, label)
	}
	s.mu.Unlock()

	if err := s.gw.AddLabel(ctx, cardID, label.ID); err != nil {
		s.restore(prior)
		return models.Card{}, err
	}

	updated, _ := s.CardByID(cardID)
	return updated, nil
}

// RemoveLabel detaches the label locally, then remotely.
func (s *Store) RemoveLabel(ctx context.Context, cardID, labelID string) (models.Card, error) {
	s.mu.Lock()
	i := s.index(cardID)
	if i < 0 {
		s.mu.Unlock()
		return models.Card{}, ErrCardNotFound
	}
	prior := snapshotCard(s.cards[i])

	labels := s.cards[i].Labels[:0]
	for _, l := range prior.Labels {
		if l.ID != labelID {
			labels = append(labels, l)
		}
	}
	s.cards[i].Labels = labels
	s.mu.Unlock()

	if err := s.gw.RemoveLabel(ctx, cardID, labelID); err != nil {
		s.restore(prior)
		return models.Card{}, err
	}

	updated, _ := s.CardByID(cardID)
	return updated, nil
}

// ApplyAttachment records a server-confirmed attachment locally.
func (s *Store) ApplyAttachment(cardID string, att models.Attachment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(cardID); i >= 0 {
		s.cards[i].Attachments = append(s.cards[i].Attachments, att)
	}
}

// DropAttachment removes a server-confirmed deletion locally.
func (s *Store) DropAttachment(cardID, attachmentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(cardID)
	if i < 0 {
		return
	}
	atts := s.cards[i].Attachments[:0]
	for _, a := range s.cards[i].Attachments {
		if a.ID != attachmentID {
			atts = append(atts, a)
		}
	}
	s.cards[i].Attachments = atts
}

// restore puts a prior card snapshot back after a failed remote call
// and re-sorts in case the optimistic change renamed the card.
func (s *Store) restore(prior models.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(prior.ID); i >= 0 {
		s.cards[i] = prior
		SortCards(s.cards)
	}
}

// snapshotCard deep-copies the slices so the rollback snapshot cannot
// alias the live card's label or attachment storage.
func snapshotCard(c models.Card) models.Card {
	out := c
	out.Labels = append([]models.Label(nil), c.Labels...)
	out.Attachments = append([]models.Attachment(nil), c.Attachments...)
	return out
}
