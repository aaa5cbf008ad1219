// Package api is the HTTP client for the Eventory deadline service.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ryansoe/eventory/pkg/deadline"
)

// Client talks to the REST API the bot publishes harvested deadlines to.
// It reports errors instead of substituting placeholder data; callers decide
// what to show when the service is unreachable.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type listResponse struct {
	Deadlines []deadline.Record `json:"deadlines"`
	Total     int               `json:"total"`
	Skip      int               `json:"skip"`
	Limit     int               `json:"limit"`
}

// Deadlines fetches one page of the deadline collection.
func (c *Client) Deadlines(ctx context.Context, skip, limit int) ([]deadline.Record, error) {
	q := url.Values{}
	q.Set("skip", strconv.Itoa(skip))
	q.Set("limit", strconv.Itoa(limit))

	var resp listResponse
	if err := c.get(ctx, "/deadlines?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return resp.Deadlines, nil
}

// AllDeadlines pages through the collection until the server runs out.
func (c *Client) AllDeadlines(ctx context.Context) ([]deadline.Record, error) {
	const pageSize = 100
	var all []deadline.Record
	for skip := 0; ; skip += pageSize {
		page, err := c.Deadlines(ctx, skip, pageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < pageSize {
			return all, nil
		}
	}
}

// Deadline fetches a single record by id.
func (c *Client) Deadline(ctx context.Context, id string) (deadline.Record, error) {
	var r deadline.Record
	if err := c.get(ctx, "/deadlines/"+url.PathEscape(id), &r); err != nil {
		return deadline.Record{}, err
	}
	return r, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("api: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("api: %s returned %s: %s", path, resp.Status, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decode %s: %w", path, err)
	}
	return nil
}
