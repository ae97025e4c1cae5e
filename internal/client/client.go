// Package client is the typed HTTP client the terminal views talk through.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MbongeniMhlanga/ToDoWebApp/internal/models"
)

// ErrNotFound reports a 404 from the service for a specific record id.
var ErrNotFound = errors.New("to-do not found")

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// List fetches the read copy: every persisted record, store-native order.
func (c *Client) List(ctx context.Context) ([]models.Todo, error) {
	var todos []models.Todo
	if err := c.do(ctx, http.MethodGet, "/todo_list", nil, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

func (c *Client) Get(ctx context.Context, id int64) (models.Todo, error) {
	var todo models.Todo
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/todo_list/%d", id), nil, &todo)
	return todo, err
}

// Create saves a new weekly record and returns the assigned id.
func (c *Client) Create(ctx context.Context, week models.Week) (int64, error) {
	var resp struct {
		Message  string `json:"message"`
		InsertID int64  `json:"insertId"`
	}
	if err := c.do(ctx, http.MethodPost, "/todo_list", week, &resp); err != nil {
		return 0, err
	}
	return resp.InsertID, nil
}

// Replace overwrites the weekday fields of an existing record.
func (c *Client) Replace(ctx context.Context, id int64, week models.Week) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/todo_list/%d", id), week, nil)
}

// UpdateStatus patches only the status field.
func (c *Client) UpdateStatus(ctx context.Context, id int64, status models.Status) error {
	body := map[string]string{"status": string(status)}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/todo_list/%d", id), body, nil)
}

func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/todo_list/%d", id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		if resp.StatusCode == http.StatusNotFound {
			return ErrNotFound
		}
		// the service only ever ships an optional message string
		var apiErr struct {
			Message string `json:"message"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("server: %s", apiErr.Message)
		}
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
