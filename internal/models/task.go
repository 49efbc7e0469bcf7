package models

// Task represents a single entry in the task list
type Task struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Notes    string `json:"notes"`
	Deadline string `json:"deadline"` // yyyy-MM-dd
	Status   Status `json:"status"`
	Category string `json:"category"`
}

// GetID satisfies the quiet-mode ID extraction used by the CLI formatter
func (t *Task) GetID() int {
	return t.ID
}

// CategoryLabel returns the category for display, substituting the
// placeholder label for tasks that were saved without one
func (t *Task) CategoryLabel() string {
	if t.Category == "" {
		return UncategorizedLabel
	}
	return t.Category
}

// TaskFilter narrows a task listing. A nil pointer means the field is not
// filtered on; a non-nil empty Category selects uncategorized tasks.
type TaskFilter struct {
	Category *string
	Status   *Status
	Search   string
}

// Stats holds aggregate counts over the whole task collection
type Stats struct {
	Total   int `json:"total"`
	Done    int `json:"done"`
	Overdue int `json:"overdue"`
	Pending int `json:"pending"`
}

// Progress returns the share of completed tasks as a whole percentage
func (s Stats) Progress() int {
	if s.Total == 0 {
		return 0
	}
	return s.Done * 100 / s.Total
}
