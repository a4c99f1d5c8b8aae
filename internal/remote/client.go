// Package remote pushes extracted sessions and project summaries to a
// remote store through idempotent upserts.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iksnae/sessionsync/internal"
)

const (
	defaultTimeout = 30 * time.Second
	maxRetries     = 3
	baseBackoff    = 500 * time.Millisecond
)

// Client talks to the remote store. Upserts are keyed by session id and
// project path; the server resolves conflicts last-write-wins.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a client for the given endpoint. The token is sent as
// a bearer Authorization header when non-empty.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// UpsertSession inserts or updates one session, keyed by its id.
func (c *Client) UpsertSession(ctx context.Context, session *internal.Session) error {
	if err := c.put(ctx, "/v1/sessions/"+session.ID, session); err != nil {
		return &internal.SyncError{Kind: "session", ID: session.ID, Err: err}
	}
	return nil
}

// UpsertProject inserts or updates one project summary, keyed by its
// canonical path.
func (c *Client) UpsertProject(ctx context.Context, project *internal.ProjectInfo) error {
	if err := c.put(ctx, "/v1/projects", project); err != nil {
		return &internal.SyncError{Kind: "project", ID: project.Path, Err: err}
	}
	return nil
}

// Push uploads a whole extraction result, continuing past individual
// failures and returning the first error encountered, if any.
func (c *Client) Push(ctx context.Context, result *internal.Result) error {
	var firstErr error
	for _, session := range result.Sessions {
		if err := c.UpsertSession(ctx, session); err != nil {
			internal.LogWarn("%v", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	for _, project := range result.Projects {
		if err := c.UpsertProject(ctx, project); err != nil {
			internal.LogWarn("%v", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// put sends a JSON body with bounded exponential-backoff retry on network
// errors and 5xx responses. 4xx responses are not retried.
func (c *Client) put(ctx context.Context, path string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := baseBackoff << (attempt - 1)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		switch {
		case resp.StatusCode < 300:
			return nil
		case resp.StatusCode >= 500:
			lastErr = fmt.Errorf("server returned %s", resp.Status)
		default:
			return fmt.Errorf("server returned %s", resp.Status)
		}
	}
	return fmt.Errorf("giving up after %d attempts: %w", maxRetries+1, lastErr)
}
