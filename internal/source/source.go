// Package source loads chart tasks from a task file or from Todoist.
package source

import (
	"context"
	"fmt"

	"github.com/hy4ri/gantt-tui/internal/api"
	"github.com/hy4ri/gantt-tui/internal/config"
	"github.com/hy4ri/gantt-tui/internal/gantt"
)

// Source provides the tasks to chart.
type Source interface {
	// Load returns the current task list.
	Load(ctx context.Context) ([]gantt.Task, error)
	// Name describes the source for status lines and logs.
	Name() string
}

// FromConfig builds the source selected by the configuration.
func FromConfig(cfg *config.Config) (Source, error) {
	switch cfg.Source.Type {
	case config.SourceFile:
		if cfg.Source.File == "" {
			return nil, fmt.Errorf("source.file is not set; pass --file or edit the config")
		}
		return &File{Path: cfg.Source.File}, nil

	case config.SourceTodoist:
		token, err := cfg.GetToken()
		if err != nil {
			return nil, fmt.Errorf("failed to get Todoist token: %w", err)
		}
		if token == "" {
			return nil, fmt.Errorf("no Todoist token: set TODOIST_TOKEN or source.api_token")
		}
		return &Todoist{
			Client:    api.NewClient(token),
			Filter:    cfg.Source.Filter,
			ProjectID: cfg.Source.ProjectID,
		}, nil
	}

	return nil, fmt.Errorf("unknown source type %q", cfg.Source.Type)
}
