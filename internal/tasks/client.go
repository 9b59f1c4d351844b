// Package tasks talks to the remote task service that owns the Task
// aggregate. Completing or deleting a project cascades here.
package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/DennisSalmazs/project-service/internal/projects/domain"
)

// response is the task service's JSON envelope.
type response struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]int `json:"data"`
}

// Client calls the task service over HTTP. Every failure, transport or
// reported, maps to one of the domain task errors; nothing is retried
// at this layer.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Options tunes the client. Zero values fall back to sane defaults.
type Options struct {
	Timeout   time.Duration
	RateLimit float64
	Burst     int
}

// NewClient creates a task service client for the given base URL.
func NewClient(baseURL string, opts Options) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.RateLimit == 0 {
		opts.RateLimit = 20
	}
	if opts.Burst == 0 {
		opts.Burst = 40
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: opts.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(opts.RateLimit), opts.Burst),
	}
}

// Counts fetches the completed / non-completed task counts for a project.
func (c *Client) Counts(ctx context.Context, projectCode string) (domain.TaskCounts, error) {
	env, err := c.call(ctx, http.MethodGet, "/api/v1/tasks/count/project/"+url.PathEscape(projectCode))
	if err != nil || !env.Success {
		return domain.TaskCounts{}, failure(domain.ErrDetailsNotRetrieved, projectCode, env, err)
	}

	return domain.TaskCounts{
		Completed:    env.Data["completedTaskCount"],
		NonCompleted: env.Data["nonCompletedTaskCount"],
	}, nil
}

// CompleteAll completes every non-completed task of the project.
func (c *Client) CompleteAll(ctx context.Context, projectCode string) error {
	env, err := c.call(ctx, http.MethodPut, "/api/v1/tasks/complete/project/"+url.PathEscape(projectCode))
	if err != nil || !env.Success {
		return failure(domain.ErrTasksNotCompleted, projectCode, env, err)
	}
	return nil
}

// DeleteAll deletes every task of the project.
func (c *Client) DeleteAll(ctx context.Context, projectCode string) error {
	env, err := c.call(ctx, http.MethodDelete, "/api/v1/tasks/project/"+url.PathEscape(projectCode))
	if err != nil || !env.Success {
		return failure(domain.ErrTasksNotDeleted, projectCode, env, err)
	}
	return nil
}

func (c *Client) call(ctx context.Context, method, path string) (*response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[tasks] %s %s failed after %s: %v", method, path, time.Since(start), err)
		return nil, fmt.Errorf("task service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		log.Printf("[tasks] %s %s returned status %d", method, path, resp.StatusCode)
		return nil, fmt.Errorf("task service returned status %d", resp.StatusCode)
	}

	var env response
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode task service response: %w", err)
	}
	return &env, nil
}

// failure wraps cause details under the caller-visible sentinel so the
// lifecycle layer can branch with errors.Is.
func failure(sentinel error, projectCode string, env *response, err error) error {
	if err != nil {
		return fmt.Errorf("%w: project %s: %v", sentinel, projectCode, err)
	}
	if env != nil && env.Message != "" {
		return fmt.Errorf("%w: project %s: %s", sentinel, projectCode, env.Message)
	}
	return fmt.Errorf("%w: project %s", sentinel, projectCode)
}
