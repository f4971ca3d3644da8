package api

// Task represents a Todoist task. Only the fields the chart reads are decoded.
type Task struct {
	ID         string    `json:"id"`
	ProjectID  string    `json:"project_id"`
	ParentID   *string   `json:"parent_id"`
	Content    string    `json:"content"`
	ChildOrder int       `json:"child_order"`
	Checked    bool      `json:"checked"`
	IsDeleted  bool      `json:"is_deleted"`
	Due        *Due      `json:"due"`
	Deadline   *Deadline `json:"deadline"`
	Duration   *Duration `json:"duration"`
}

// Due represents a task's due date information.
type Due struct {
	String      string  `json:"string"`
	Date        string  `json:"date"`
	IsRecurring bool    `json:"is_recurring"`
	Datetime    *string `json:"datetime"`
	Timezone    *string `json:"timezone"`
}

// Deadline is the date a task must be finished by.
type Deadline struct {
	Date string `json:"date"`
}

// Duration represents a task's duration.
type Duration struct {
	Amount int    `json:"amount"`
	Unit   string `json:"unit"` // "minute" or "day"
}

// Project represents a Todoist project.
type Project struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Color    string  `json:"color"`
	ParentID *string `json:"parent_id"`
}

// PaginatedResponse is the envelope of v1 list endpoints.
type PaginatedResponse[T any] struct {
	Results    []T     `json:"results"`
	NextCursor *string `json:"next_cursor"`
}

// TaskFilter contains optional filters for listing tasks.
type TaskFilter struct {
	ProjectID string
	Label     string
	IDs       []string
}
