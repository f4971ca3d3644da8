package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// buildFilterQuery builds query parameters for task filtering.
func buildFilterQuery(filter TaskFilter) url.Values {
	query := url.Values{}

	if filter.ProjectID != "" {
		query.Set("project_id", filter.ProjectID)
	}
	if filter.Label != "" {
		query.Set("label", filter.Label)
	}
	if len(filter.IDs) > 0 {
		query.Set("ids", strings.Join(filter.IDs, ","))
	}

	return query
}

// GetTasks returns all active tasks, optionally filtered by project or label.
// Handles pagination automatically, fetching all pages.
func (c *Client) GetTasks(ctx context.Context, filter TaskFilter) ([]Task, error) {
	tasks, err := getAll[Task](ctx, c, "/tasks", buildFilterQuery(filter))
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}
	return tasks, nil
}

// GetTasksByFilter returns tasks matching a Todoist filter query such as
// "today | overdue" or "#Work".
// Handles pagination automatically, fetching all pages.
func (c *Client) GetTasksByFilter(ctx context.Context, filterQuery string) ([]Task, error) {
	if filterQuery == "" {
		return nil, fmt.Errorf("filter query cannot be empty")
	}

	query := url.Values{}
	query.Set("query", filterQuery)

	tasks, err := getAll[Task](ctx, c, "/tasks/filter", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get filtered tasks: %w", err)
	}
	return tasks, nil
}
