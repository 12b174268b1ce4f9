// Package client is a small HTTP client for the habit API, used by habitctl.
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

	"github.com/Dias221467/HealthHabit/internal/models"
	"github.com/google/uuid"
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 90 * time.Second},
	}
}

func (c *Client) ListHabits(ctx context.Context) ([]models.Habit, error) {
	var habits []models.Habit
	if err := c.do(ctx, http.MethodGet, "/habits", nil, &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

func (c *Client) GetHabit(ctx context.Context, id uuid.UUID) (*models.Habit, error) {
	var habit models.Habit
	if err := c.do(ctx, http.MethodGet, "/habits/"+id.String(), nil, &habit); err != nil {
		return nil, err
	}
	return &habit, nil
}

func (c *Client) CreateHabit(ctx context.Context, input models.HabitCreate) (*models.Habit, error) {
	var habit models.Habit
	if err := c.do(ctx, http.MethodPost, "/habits", input, &habit); err != nil {
		return nil, err
	}
	return &habit, nil
}

func (c *Client) UpdateHabit(ctx context.Context, id uuid.UUID, input models.HabitUpdate) (*models.Habit, error) {
	var habit models.Habit
	if err := c.do(ctx, http.MethodPut, "/habits/"+id.String(), input, &habit); err != nil {
		return nil, err
	}
	return &habit, nil
}

func (c *Client) DeleteHabit(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/habits/"+id.String(), nil, nil)
}

func (c *Client) CompleteHabit(ctx context.Context, id uuid.UUID) (*models.Habit, error) {
	var habit models.Habit
	if err := c.do(ctx, http.MethodPost, "/habits/"+id.String()+"/complete", nil, &habit); err != nil {
		return nil, err
	}
	return &habit, nil
}

func (c *Client) HabitStats(ctx context.Context, id uuid.UUID) (*models.HabitStats, error) {
	var stats models.HabitStats
	if err := c.do(ctx, http.MethodGet, "/habits/"+id.String()+"/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// RunAgent posts req to an agent route such as "motivator/celebration" and
// returns the generated text.
func (c *Client) RunAgent(ctx context.Context, route string, req models.AgentRequest) (string, error) {
	var resp models.AgentResponse
	if err := c.do(ctx, http.MethodPost, "/agents/"+strings.TrimLeft(route, "/"), req, &resp); err != nil {
		return "", err
	}
	return resp.Result, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &StatusError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(msg))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
