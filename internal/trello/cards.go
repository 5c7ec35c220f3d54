package trello

import (
	"context"
	"net/http"
	"net/url"

	"obrahub/pkg/models"
)

const cardFields = "name,url,desc,cover,labels,idBoard"

// cardResponse is the remote wire shape of a card. Board name is not
// part of it; the aggregator resolves and attaches it.
type cardResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	URL     string `json:"url"`
	Desc    string `json:"desc"`
	IDBoard string `json:"idBoard"`
	Cover   struct {
		Color string `json:"color"`
	} `json:"cover"`
	Labels      []models.Label      `json:"labels"`
	Attachments []models.Attachment `json:"attachments"`
}

func (r cardResponse) toCard() models.Card {
	return models.Card{
		ID:          r.ID,
		Name:        r.Name,
		URL:         r.URL,
		Desc:        r.Desc,
		BoardID:     r.IDBoard,
		Cover:       r.Cover.Color,
		Labels:      r.Labels,
		Attachments: r.Attachments,
	}
}

// CardsOnBoard fetches every card on one board.
func (c *Client) CardsOnBoard(ctx context.Context, boardID string) ([]models.Card, error) {
	q := url.Values{}
	q.Set("fields", cardFields)
	q.Set("attachments", "true")
	q.Set("attachment_fields", "id,name,url")

	var raw []cardResponse
	if err := c.get(ctx, "/boards/"+boardID+"/cards", q, &raw); err != nil {
		return nil, err
	}

	cards := make([]models.Card, len(raw))
	for i, r := range raw {
		cards[i] = r.toCard()
	}
	return cards, nil
}

func (c *Client) Card(ctx context.Context, id string) (models.Card, error) {
	q := url.Values{}
	q.Set("fields", cardFields)
	q.Set("attachments", "true")
	q.Set("attachment_fields", "id,name,url")

	var raw cardResponse
	if err := c.get(ctx, "/cards/"+id, q, &raw); err != nil {
		return models.Card{}, err
	}
	return raw.toCard(), nil
}

// CardPatch carries the mutable card fields. Nil means "leave as is".
type CardPatch struct {
	Name  *string
	Desc  *string
	Cover *string // color tag; empty string removes the cover
}

// UpdateCard applies the patch server-side immediately; the caller is
// responsible for optimistic local state and rollback on failure.
func (c *Client) UpdateCard(ctx context.Context, id string, patch CardPatch) (models.Card, error) {
	q := url.Values{}
	if patch.Name != nil {
		q.Set("name", *patch.Name)
	}
	if patch.Desc != nil {
		q.Set("desc", *patch.Desc)
	}
	if patch.Cover != nil {
		q.Set("cover/color", *patch.Cover)
	}

	var raw cardResponse
	if err := c.do(ctx, http.MethodPut, "/cards/"+id, q, &raw); err != nil {
		return models.Card{}, err
	}
	return raw.toCard(), nil
}

type CreateCardRequest struct {
	Name       string
	ListID     string
	Desc       string
	CoverColor string
}

func (c *Client) CreateCard(ctx context.Context, req CreateCardRequest) (models.Card, error) {
	q := url.Values{}
	q.Set("name", req.Name)
	q.Set("idList", req.ListID)
	if req.Desc != "" {
		q.Set("desc", req.Desc)
	}
	if req.CoverColor != "" {
		q.Set("cover/color", req.CoverColor)
	}

	var raw cardResponse
	if err := c.do(ctx, http.MethodPost, "/cards", q, &raw); err != nil {
		return models.Card{}, err
	}
	return raw.toCard(), nil
}
