package source

import (
	"context"
	"fmt"

	"github.com/hy4ri/gantt-tui/internal/api"
	"github.com/hy4ri/gantt-tui/internal/gantt"
)

// Todoist loads dated tasks from a Todoist account.
type Todoist struct {
	Client    *api.Client
	Filter    string // Todoist filter query; takes precedence over ProjectID
	ProjectID string
}

// Name implements Source.
func (s *Todoist) Name() string {
	if s.Filter != "" {
		return "todoist: " + s.Filter
	}
	return "todoist"
}

// Load implements Source. Tasks and projects are fetched concurrently.
func (s *Todoist) Load(ctx context.Context) ([]gantt.Task, error) {
	type taskResult struct {
		data []api.Task
		err  error
	}
	type projectResult struct {
		data []api.Project
		err  error
	}

	taskChan := make(chan taskResult, 1)
	projChan := make(chan projectResult, 1)

	go func() {
		var (
			t []api.Task
			e error
		)
		if s.Filter != "" {
			t, e = s.Client.GetTasksByFilter(ctx, s.Filter)
		} else {
			t, e = s.Client.GetTasks(ctx, api.TaskFilter{ProjectID: s.ProjectID})
		}
		taskChan <- taskResult{data: t, err: e}
	}()

	go func() {
		p, e := s.Client.GetProjects(ctx)
		projChan <- projectResult{data: p, err: e}
	}()

	tRes := <-taskChan
	pRes := <-projChan
	if tRes.err != nil {
		return nil, tRes.err
	}
	if pRes.err != nil {
		return nil, pRes.err
	}

	tasks := api.ToGanttTasks(tRes.data, pRes.data)
	if err := gantt.Validate(tasks); err != nil {
		return nil, fmt.Errorf("todoist returned unusable dates: %w", err)
	}
	return tasks, nil
}
