// Package apiclient is an HTTP client for the rewards REST backend. It speaks
// plain JSON against four flat collections (/users, /activities, /rewards,
// /adminActions) and translates transport, server, and decode failures into
// typed errors the store layer can surface without retrying.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/marcus/rd/internal/models"
)

// DefaultBaseURL is where json-server style backends listen by default.
const DefaultBaseURL = "http://localhost:5000"

// Client is an HTTP client for the rewards backend.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New creates a new client for the given base URL. An empty baseURL falls
// back to DefaultBaseURL.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

// --- User methods ---

// ListUsers lists all users.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var resp []models.User
	if err := c.do(ctx, "GET", "/users", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateUser creates a user. The id field is assigned by the server.
func (c *Client) CreateUser(ctx context.Context, u models.User) (*models.User, error) {
	body := map[string]any{"name": u.Name, "role": u.Role, "points": u.Points}
	var resp models.User
	if err := c.do(ctx, "POST", "/users", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateUser sends a partial update for a user and returns the updated entity.
func (c *Client) UpdateUser(ctx context.Context, id int, fields map[string]any) (*models.User, error) {
	var resp models.User
	if err := c.do(ctx, "PUT", fmt.Sprintf("/users/%d", id), fields, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteUser deletes a user by id.
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/users/%d", id), nil, nil)
}

// --- Activity methods ---

// ListActivities lists all activities.
func (c *Client) ListActivities(ctx context.Context) ([]models.Activity, error) {
	var resp []models.Activity
	if err := c.do(ctx, "GET", "/activities", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateActivity creates an activity on the backend.
func (c *Client) CreateActivity(ctx context.Context, a models.Activity) (*models.Activity, error) {
	body := map[string]any{
		"userId":      a.UserID,
		"description": a.Description,
		"points":      a.Points,
		"timestamp":   a.Timestamp,
	}
	var resp models.Activity
	if err := c.do(ctx, "POST", "/activities", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateActivity sends a partial update for an activity.
func (c *Client) UpdateActivity(ctx context.Context, id int, fields map[string]any) (*models.Activity, error) {
	var resp models.Activity
	if err := c.do(ctx, "PUT", fmt.Sprintf("/activities/%d", id), fields, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteActivity deletes an activity by id.
func (c *Client) DeleteActivity(ctx context.Context, id int) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/activities/%d", id), nil, nil)
}

// --- Reward methods ---

// ListRewards lists the reward catalog.
func (c *Client) ListRewards(ctx context.Context) ([]models.Reward, error) {
	var resp []models.Reward
	if err := c.do(ctx, "GET", "/rewards", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateReward creates a reward catalog entry.
func (c *Client) CreateReward(ctx context.Context, r models.Reward) (*models.Reward, error) {
	body := map[string]any{
		"name":        r.Name,
		"description": r.Description,
		"category":    r.Category,
		"pointsCost":  r.PointsCost,
		"image":       r.Image,
	}
	var resp models.Reward
	if err := c.do(ctx, "POST", "/rewards", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateReward sends a partial update for a reward.
func (c *Client) UpdateReward(ctx context.Context, id int, fields map[string]any) (*models.Reward, error) {
	var resp models.Reward
	if err := c.do(ctx, "PUT", fmt.Sprintf("/rewards/%d", id), fields, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteReward deletes a reward by id.
func (c *Client) DeleteReward(ctx context.Context, id int) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/rewards/%d", id), nil, nil)
}

// --- Admin action methods ---

// ListAdminActions lists all recorded admin actions.
func (c *Client) ListAdminActions(ctx context.Context) ([]models.AdminAction, error) {
	var resp []models.AdminAction
	if err := c.do(ctx, "GET", "/adminActions", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// --- Generic collection methods (admin table editing) ---

// ListRaw lists a collection as raw JSON objects, preserving whatever fields
// the backend returns. Used by the admin table, which edits any collection.
func (c *Client) ListRaw(ctx context.Context, collection models.Collection) ([]map[string]any, error) {
	var resp []map[string]any
	if err := c.do(ctx, "GET", "/"+string(collection), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateRaw creates an entity in a collection from raw fields.
func (c *Client) CreateRaw(ctx context.Context, collection models.Collection, fields map[string]any) (map[string]any, error) {
	var resp map[string]any
	if err := c.do(ctx, "POST", "/"+string(collection), fields, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// UpdateRaw updates an entity in a collection from raw fields.
func (c *Client) UpdateRaw(ctx context.Context, collection models.Collection, id int, fields map[string]any) (map[string]any, error) {
	var resp map[string]any
	if err := c.do(ctx, "PUT", fmt.Sprintf("/%s/%d", collection, id), fields, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// DeleteRaw deletes an entity from a collection by id.
func (c *Client) DeleteRaw(ctx context.Context, collection models.Collection, id int) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/%s/%d", collection, id), nil, nil)
}

// do executes an HTTP request and decodes the JSON response into result.
// Failures are returned as *TransportError, *ServerError, or *DecodeError.
func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	if resp.StatusCode >= 400 {
		return &ServerError{Status: resp.StatusCode, Body: string(respBody)}
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return &DecodeError{Err: err}
		}
	}

	return nil
}
