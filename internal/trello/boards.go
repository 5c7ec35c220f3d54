package trello

import (
	"context"
	"net/url"
	"strings"

	"obrahub/pkg/models"
)

// Member returns the full name of the member owning the configured
// credentials. Used to verify the connection.
func (c *Client) Member(ctx context.Context) (string, error) {
	var member struct {
		FullName string `json:"fullName"`
	}
	if err := c.get(ctx, "/members/me", nil, &member); err != nil {
		return "", err
	}
	return member.FullName, nil
}

// Boards lists the member's boards, narrowed to the configured
// allow-list. Matching is by name (case-insensitive) or by id.
func (c *Client) Boards(ctx context.Context) ([]models.Board, error) {
	q := url.Values{}
	q.Set("fields", "name,id")

	var boards []models.Board
	if err := c.get(ctx, "/members/me/boards", q, &boards); err != nil {
		return nil, err
	}

	if len(c.allowedNames) == 0 && len(c.allowedIDs) == 0 {
		return boards, nil
	}

	filtered := boards[:0]
	for _, b := range boards {
		if _, ok := c.allowedNames[strings.ToLower(b.Name)]; ok {
			filtered = append(filtered, b)
			continue
		}
		if _, ok := c.allowedIDs[b.ID]; ok {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

func (c *Client) Board(ctx context.Context, id string) (models.Board, error) {
	q := url.Values{}
	q.Set("fields", "name,id")

	var b models.Board
	if err := c.get(ctx, "/boards/"+id, q, &b); err != nil {
		return models.Board{}, err
	}
	return b, nil
}

// Lists returns the columns of a board, needed when creating cards.
func (c *Client) Lists(ctx context.Context, boardID string) ([]models.List, error) {
	q := url.Values{}
	q.Set("fields", "name,id")

	var lists []models.List
	if err := c.get(ctx, "/boards/"+boardID+"/lists", q, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

func (c *Client) BoardLabels(ctx context.Context, boardID string) ([]models.Label, error) {
	var labels []models.Label
	if err := c.get(ctx, "/boards/"+boardID+"/labels", nil, &labels); err != nil {
		return nil, err
	}
	return labels, nil
}
