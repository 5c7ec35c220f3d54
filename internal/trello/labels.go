package trello

import (
	"context"
	"net/http"
	"net/url"
)

// AddLabel attaches an existing board label to a card.
func (c *Client) AddLabel(ctx context.Context, cardID, labelID string) error {
	q := url.Values{}
	q.Set("value", labelID)
	return c.do(ctx, http.MethodPost, "/cards/"+cardID+"/idLabels", q, nil)
}

func (c *Client) RemoveLabel(ctx context.Context, cardID, labelID string) error {
	return c.do(ctx, http.MethodDelete, "/cards/"+cardID+"/idLabels/"+labelID, nil, nil)
}
