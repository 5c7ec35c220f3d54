package trello

import (
	"context"
	"net/http"
	"net/url"

	"obrahub/pkg/models"
)

// Comments lists a card's comments. The remote API models them as
// "actions" filtered to the comment kind.
func (c *Client) Comments(ctx context.Context, cardID string) ([]models.Comment, error) {
	q := url.Values{}
	q.Set("filter", "commentCard")

	var actions []struct {
		ID   string `json:"id"`
		Date string `json:"date"`
		Data struct {
			Text string `json:"text"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/cards/"+cardID+"/actions", q, &actions); err != nil {
		return nil, err
	}

	comments := make([]models.Comment, len(actions))
	for i, a := range actions {
		comments[i] = models.Comment{ID: a.ID, Text: a.Data.Text, Date: a.Date}
	}
	return comments, nil
}

func (c *Client) AddComment(ctx context.Context, cardID, text string) (models.Comment, error) {
	q := url.Values{}
	q.Set("text", text)

	var action struct {
		ID   string `json:"id"`
		Date string `json:"date"`
		Data struct {
			Text string `json:"text"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/cards/"+cardID+"/actions/comments", q, &action); err != nil {
		return models.Comment{}, err
	}
	return models.Comment{ID: action.ID, Text: action.Data.Text, Date: action.Date}, nil
}
