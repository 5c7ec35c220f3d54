package trello

import (
	"context"
	"net/http"
	"net/url"

	"obrahub/pkg/models"
)

// AddAttachment attaches a URL to a card.
func (c *Client) AddAttachment(ctx context.Context, cardID, name, attachmentURL string) (models.Attachment, error) {
	q := url.Values{}
	q.Set("name", name)
	q.Set("url", attachmentURL)

	var att models.Attachment
	if err := c.do(ctx, http.MethodPost, "/cards/"+cardID+"/attachments", q, &att); err != nil {
		return models.Attachment{}, err
	}
	return att, nil
}

func (c *Client) DeleteAttachment(ctx context.Context, cardID, attachmentID string) error {
	return c.do(ctx, http.MethodDelete, "/cards/"+cardID+"/attachments/"+attachmentID, nil, nil)
}
