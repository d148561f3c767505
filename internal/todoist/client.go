package todoist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const (
	// EnvAPIToken is the environment variable holding the Todoist API token.
	EnvAPIToken = "TODOIST_API_TOKEN"

	defaultBaseURL = "https://api.todoist.com/rest/v2"
)

// Client provides access to the Todoist REST v2 API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a new Todoist API client. The API token is read from the
// TODOIST_API_TOKEN environment variable at construction time and is not
// validated; requests with a missing or stale token fail with a 401 from the
// service.
func NewClient() *Client {
	return NewClientWithBaseURL(defaultBaseURL, os.Getenv(EnvAPIToken))
}

// NewClientWithBaseURL creates a client against a specific API endpoint,
// for deployments that proxy the Todoist API and for tests.
func NewClientWithBaseURL(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// do performs an HTTP request against the Todoist API and decodes the JSON
// response into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		msg := strings.TrimSpace(string(data))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("todoist API returned %d: %s", resp.StatusCode, msg)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// CreateTask creates a new task. When both DueString and DueDate are set,
// DueString wins and DueDate is not sent.
func (c *Client) CreateTask(ctx context.Context, input TaskInput) (*Task, error) {
	req := createTaskRequest{
		Content:     input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Labels:      input.Labels,
	}
	if input.DueString != "" {
		req.DueString = input.DueString
	} else {
		req.DueDate = input.DueDate
	}

	var wire apiTask
	if err := c.do(ctx, http.MethodPost, "/tasks", nil, &req, &wire); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	task := toTask(&wire)
	return &task, nil
}

// GetTasks lists active tasks, optionally restricted to a project and
// narrowed by a filter expression (see BuildFilter). Empty arguments omit
// the corresponding query parameter.
func (c *Client) GetTasks(ctx context.Context, projectID, filter string) ([]Task, error) {
	query := url.Values{}
	if projectID != "" {
		query.Set("project_id", projectID)
	}
	if filter != "" {
		query.Set("filter", filter)
	}

	var wire []apiTask
	if err := c.do(ctx, http.MethodGet, "/tasks", query, nil, &wire); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]Task, 0, len(wire))
	for i := range wire {
		tasks = append(tasks, toTask(&wire[i]))
	}
	return tasks, nil
}

// UpdateTask applies a partial update to a task. Only non-nil fields of
// update are serialized; when both DueString and DueDate are set, DueString
// wins and DueDate is not sent.
func (c *Client) UpdateTask(ctx context.Context, taskID string, update TaskUpdate) error {
	req := updateTaskRequest{
		Content:     update.Title,
		Description: update.Description,
		Labels:      update.Labels,
		Priority:    update.Priority,
	}
	if update.DueString != nil {
		req.DueString = update.DueString
	} else {
		req.DueDate = update.DueDate
	}

	if err := c.do(ctx, http.MethodPost, "/tasks/"+url.PathEscape(taskID), nil, &req, nil); err != nil {
		return fmt.Errorf("failed to update task %s: %w", taskID, err)
	}
	return nil
}

// CompleteTask closes a task.
func (c *Client) CompleteTask(ctx context.Context, taskID string) error {
	if err := c.do(ctx, http.MethodPost, "/tasks/"+url.PathEscape(taskID)+"/close", nil, nil, nil); err != nil {
		return fmt.Errorf("failed to complete task %s: %w", taskID, err)
	}
	return nil
}

// DeleteTask permanently deletes a task.
func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	if err := c.do(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(taskID), nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete task %s: %w", taskID, err)
	}
	return nil
}

// ListProjects lists the account's projects.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var wire []apiProject
	if err := c.do(ctx, http.MethodGet, "/projects", nil, nil, &wire); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := make([]Project, 0, len(wire))
	for i := range wire {
		projects = append(projects, toProject(&wire[i]))
	}
	return projects, nil
}
