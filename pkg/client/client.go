// Package client implements the HTTP client for the prompts API. It is
// the persistence collaborator the TUI and CLI commands talk to.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/promptdeck/promptdeck-cli/pkg/models"
)

// APIError is a rejection from the prompts API. Message is human-readable
// and safe to show in the UI.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// Client talks to a prompts API server.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New creates a client for the API at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// List fetches all prompts, newest first.
func (c *Client) List(ctx context.Context) ([]models.Prompt, error) {
	var prompts []models.Prompt
	if err := c.do(ctx, http.MethodGet, "/api/v1/prompts", nil, &prompts); err != nil {
		return nil, err
	}
	return prompts, nil
}

// Create submits a draft and returns the stored prompt with its
// server-assigned id.
func (c *Client) Create(ctx context.Context, draft models.Draft) (*models.Prompt, error) {
	var prompt models.Prompt
	if err := c.do(ctx, http.MethodPost, "/api/v1/prompts", draft, &prompt); err != nil {
		return nil, err
	}
	return &prompt, nil
}

// Update replaces the editable fields of the prompt with the given id. The
// server must echo the same id back.
func (c *Client) Update(ctx context.Context, id int64, draft models.Draft) (*models.Prompt, error) {
	var prompt models.Prompt
	path := fmt.Sprintf("/api/v1/prompts/%d", id)
	if err := c.do(ctx, http.MethodPut, path, draft, &prompt); err != nil {
		return nil, err
	}
	if prompt.ID != id {
		return nil, fmt.Errorf("server returned prompt %d for update of %d", prompt.ID, id)
	}
	return &prompt, nil
}

// Delete removes the prompt with the given id.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/prompts/%d", id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		// A body that is not the structured error shape still yields a
		// usable APIError via the status fallback in Error().
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
