package database

import (
	"context"

	"github.com/thenoetrevino/tasklist/internal/models"
)

// TaskRepository defines persistence operations on the tasks table.
// It stores what it is given; status rules live in the task service.
type TaskRepository interface {
	// MarkOverdue moves every non-done task with a deadline before today
	// to Overdue and returns the number of rows changed.
	MarkOverdue(ctx context.Context, today string) (int64, error)

	GetTasks(ctx context.Context, filter models.TaskFilter) ([]*models.Task, error)
	GetTaskByID(ctx context.Context, id int) (*models.Task, error)
	CreateTask(ctx context.Context, task *models.Task) (*models.Task, error)
	UpdateTask(ctx context.Context, task *models.Task) error
	UpdateTaskStatus(ctx context.Context, id int, status models.Status) error

	// ApplyTaskStatus reads a task and writes the status returned by next,
	// in one transaction.
	ApplyTaskStatus(ctx context.Context, id int, next func(*models.Task) models.Status) (*models.Task, error)

	DeleteTask(ctx context.Context, id int) error
	GetCategories(ctx context.Context) ([]string, error)
	GetStatusCounts(ctx context.Context) (map[models.Status]int, error)
}
