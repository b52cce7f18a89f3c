// Package googletasks reads task lists from the Google Tasks API so a session
// can start from them. It never writes back.
package googletasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"tasktrack/internal/config"
	"tasktrack/internal/task"
)

const (
	// PageSize is the number of items requested per API page.
	PageSize = 100

	// APITimeout is the timeout for API calls.
	APITimeout = 5 * time.Second

	// Scope is the OAuth scope requested at login. Read-only is enough for imports.
	Scope = tasks.TasksReadonlyScope

	// StatusCompleted is the API status of a finished task.
	StatusCompleted = "completed"
)

var (
	// ErrListNotFound is returned when no list matches a name.
	ErrListNotFound = errors.New("list not found")

	// ErrAmbiguousList is returned when several lists match a name.
	ErrAmbiguousList = errors.New("ambiguous list name")
)

// List is a Google task list.
type List struct {
	ID    string
	Title string
}

// Item is a Google task as returned by the API.
type Item struct {
	ID     string
	Title  string
	Status string
}

// Client reads task lists from Google Tasks.
type Client struct {
	svc *tasks.Service
}

// New creates a client from the stored OAuth client config and token.
// Requires oauth_client.json and token.json to exist.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	// Load OAuth client config
	clientJSON, err := os.ReadFile(cfg.OAuthClientPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read oauth_client.json: %w", err)
	}

	oauthConfig, err := google.ConfigFromJSON(clientJSON, Scope)
	if err != nil {
		return nil, fmt.Errorf("invalid oauth_client.json: %w", err)
	}

	// Load token
	tokenData, err := os.ReadFile(cfg.TokenPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read token.json: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(tokenData, &token); err != nil {
		return nil, fmt.Errorf("invalid token.json: %w", err)
	}

	// Token source refreshes the access token as needed
	httpClient := oauth2.NewClient(ctx, oauthConfig.TokenSource(ctx, &token))

	return NewWithHTTPClient(ctx, httpClient)
}

// NewWithHTTPClient creates a client with a custom HTTP client.
// Extra options (such as option.WithEndpoint) are passed to the API service.
func NewWithHTTPClient(ctx context.Context, httpClient *http.Client, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := tasks.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// ListLists returns all task lists in API order.
func (c *Client) ListLists(ctx context.Context) ([]List, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var result []List
	err := c.svc.Tasklists.List().MaxResults(PageSize).Pages(ctx, func(resp *tasks.TaskLists) error {
		for _, list := range resp.Items {
			result = append(result, List{ID: list.Id, Title: list.Title})
		}
		return nil
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// ResolveList finds a list by name (case-insensitive, trimmed).
func (c *Client) ResolveList(ctx context.Context, name string) (List, error) {
	name = strings.TrimSpace(name)
	nameLower := strings.ToLower(name)

	lists, err := c.ListLists(ctx)
	if err != nil {
		return List{}, err
	}

	var matches []List
	for _, list := range lists {
		if strings.ToLower(strings.TrimSpace(list.Title)) == nameLower {
			matches = append(matches, list)
		}
	}

	switch len(matches) {
	case 0:
		return List{}, fmt.Errorf("%w: %s", ErrListNotFound, name)
	case 1:
		return matches[0], nil
	default:
		return List{}, fmt.Errorf("%w: %s", ErrAmbiguousList, name)
	}
}

// ListTasks returns every task of a list, open and completed, in API order.
func (c *Client) ListTasks(ctx context.Context, listID string) ([]Item, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	call := c.svc.Tasks.List(listID).
		MaxResults(PageSize).
		ShowCompleted(true).
		ShowHidden(true).
		ShowDeleted(false)

	var result []Item
	err := call.Pages(ctx, func(resp *tasks.Tasks) error {
		for _, t := range resp.Items {
			result = append(result, Item{ID: t.Id, Title: t.Title, Status: t.Status})
		}
		return nil
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// Import resolves a list by name and converts its tasks into a seed
// collection numbered 1..n. Untitled tasks are skipped.
func (c *Client) Import(ctx context.Context, listName string) ([]task.Task, error) {
	list, err := c.ResolveList(ctx, listName)
	if err != nil {
		return nil, err
	}

	items, err := c.ListTasks(ctx, list.ID)
	if err != nil {
		return nil, err
	}

	result := make([]task.Task, 0, len(items))
	for _, item := range items {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}
		result = append(result, task.Task{
			ID:        len(result) + 1,
			Title:     title,
			Completed: item.Status == StatusCompleted,
		})
	}
	return result, nil
}

// wrapError wraps API errors with user-friendly messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()

	// Check for timeout
	if errors.Is(err, context.DeadlineExceeded) || strings.Contains(errStr, "context deadline exceeded") {
		return fmt.Errorf("request timed out")
	}

	// Check for auth errors
	if strings.Contains(errStr, "401") || strings.Contains(errStr, "403") {
		return fmt.Errorf("token expired or revoked (run: tasktrack login)")
	}

	// Check for not found
	if strings.Contains(errStr, "404") {
		return ErrListNotFound
	}

	return err
}
