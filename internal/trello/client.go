package trello

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"obrahub/pkg/utils"
)

var (
	// ErrMissingCredentials means the API key or token was absent at
	// construction time. Gateway calls are impossible without them.
	ErrMissingCredentials = errors.New("trello: missing API key or token")

	// ErrInvalidCredentials means the remote system rejected the
	// configured key/token pair (a 401 response).
	ErrInvalidCredentials = errors.New("trello: invalid credentials")
)

// RemoteError is any non-success response other than a credential
// rejection. The raw body is logged, never surfaced to callers.
type RemoteError struct {
	Status int
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("trello: remote API error: %d", e.Status)
}

// Client is a thin request layer over the remote task-board API.
// One authenticated request per operation, no retries, no backoff.
type Client struct {
	http   *http.Client
	base   string
	key    string
	token  string
	logger *log.Logger

	allowedNames map[string]struct{} // lowercased board names
	allowedIDs   map[string]struct{}
}

func NewClient(cfg utils.TrelloConfig) (*Client, error) {
	if cfg.Key == "" || cfg.Token == "" {
		return nil, ErrMissingCredentials
	}
	base := cfg.BaseURL
	if base == "" {
		base = "https://api.trello.com/1"
	}

	c := &Client{
		http:         &http.Client{Timeout: 12 * time.Second},
		base:         strings.TrimRight(base, "/"),
		key:          cfg.Key,
		token:        cfg.Token,
		logger:       log.Default(),
		allowedNames: make(map[string]struct{}, len(cfg.AllowedBoardNames)),
		allowedIDs:   make(map[string]struct{}, len(cfg.AllowedBoardIDs)),
	}
	for _, n := range cfg.AllowedBoardNames {
		c.allowedNames[strings.ToLower(n)] = struct{}{}
	}
	for _, id := range cfg.AllowedBoardIDs {
		c.allowedIDs[id] = struct{}{}
	}
	return c, nil
}

// SetLogger replaces the destination for remote error bodies.
func (c *Client) SetLogger(l *log.Logger) {
	if l != nil {
		c.logger = l
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, out any) error {
	u, err := url.Parse(c.base + path)
	if err != nil {
		return fmt.Errorf("trello: build request: %w", err)
	}
	q := u.Query()
	for k, vs := range query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("key", c.key)
	q.Set("token", c.token)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return fmt.Errorf("trello: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("trello: request: %w", err)
	}

	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrInvalidCredentials
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Printf("trello API error: %d %s %s: %s", resp.StatusCode, method, path, string(body))
		return &RemoteError{Status: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("trello: decode: %w", err)
	}
	return nil
}
