package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/tasklist/internal/models"
)

// TaskRepo handles all task-related database operations
type TaskRepo struct {
	db *sqlx.DB
}

// taskRow mirrors a row of the tasks table
type taskRow struct {
	ID       int    `db:"id"`
	Title    string `db:"title"`
	Notes    string `db:"notes"`
	Deadline string `db:"deadline"`
	Status   string `db:"status"`
	Category string `db:"category"`
}

func (r taskRow) toModel() *models.Task {
	return &models.Task{
		ID:       r.ID,
		Title:    r.Title,
		Notes:    r.Notes,
		Deadline: r.Deadline,
		Status:   models.Status(r.Status),
		Category: r.Category,
	}
}

func rowFromModel(t *models.Task) taskRow {
	return taskRow{
		ID:       t.ID,
		Title:    t.Title,
		Notes:    t.Notes,
		Deadline: t.Deadline,
		Status:   string(t.Status),
		Category: t.Category,
	}
}

const selectTaskColumns = `SELECT id, title, notes, deadline, status, category FROM tasks`

// MarkOverdue flips stale tasks to Overdue. Deadlines are fixed-width
// yyyy-MM-dd strings, so text comparison orders them by date.
func (r *TaskRepo) MarkOverdue(ctx context.Context, today string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET status = ?
		 WHERE status NOT IN (?, ?) AND deadline < ?`,
		string(models.StatusOverdue), string(models.StatusDone), string(models.StatusOverdue), today,
	)
	if err != nil {
		return 0, storageErr("mark overdue", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, storageErr("mark overdue", err)
	}
	return n, nil
}

// GetTasks returns the tasks matching filter in insertion order.
// Ordering by status and deadline is left to the caller.
func (r *TaskRepo) GetTasks(ctx context.Context, filter models.TaskFilter) ([]*models.Task, error) {
	var (
		conditions []string
		args       []any
	)

	if filter.Category != nil {
		conditions = append(conditions, "category = ?")
		args = append(args, *filter.Category)
	}
	if filter.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, string(*filter.Status))
	}
	if filter.Search != "" {
		// instr is case-sensitive, unlike LIKE
		conditions = append(conditions, "instr(title, ?) > 0")
		args = append(args, filter.Search)
	}

	query := selectTaskColumns
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, storageErr("get tasks", err)
	}

	tasks := make([]*models.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, row.toModel())
	}
	return tasks, nil
}

// GetTaskByID retrieves a single task
func (r *TaskRepo) GetTaskByID(ctx context.Context, id int) (*models.Task, error) {
	return getTaskByID(ctx, r.db, id)
}

func getTaskByID(ctx context.Context, q sqlx.QueryerContext, id int) (*models.Task, error) {
	var row taskRow
	err := sqlx.GetContext(ctx, q, &row, selectTaskColumns+" WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get task %d: %w", id, models.ErrTaskNotFound)
	}
	if err != nil {
		return nil, storageErr("get task", err)
	}
	return row.toModel(), nil
}

// CreateTask inserts task and returns a copy carrying the assigned ID
func (r *TaskRepo) CreateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	result, err := r.db.NamedExecContext(ctx,
		`INSERT INTO tasks (title, notes, deadline, status, category)
		 VALUES (:title, :notes, :deadline, :status, :category)`,
		rowFromModel(task),
	)
	if err != nil {
		return nil, storageErr("create task", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, storageErr("create task", err)
	}

	created := *task
	created.ID = int(id)
	return &created, nil
}

// UpdateTask overwrites every editable column of the task with task.ID
func (r *TaskRepo) UpdateTask(ctx context.Context, task *models.Task) error {
	result, err := r.db.NamedExecContext(ctx,
		`UPDATE tasks
		 SET title = :title, notes = :notes, deadline = :deadline,
		     status = :status, category = :category
		 WHERE id = :id`,
		rowFromModel(task),
	)
	if err != nil {
		return storageErr("update task", err)
	}
	return requireAffected(result, "update task", task.ID)
}

// UpdateTaskStatus writes status without touching other columns
func (r *TaskRepo) UpdateTaskStatus(ctx context.Context, id int, status models.Status) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET status = ? WHERE id = ?", string(status), id)
	if err != nil {
		return storageErr("update task status", err)
	}
	return requireAffected(result, "update task status", id)
}

// ApplyTaskStatus reads the task, asks next for its new status and stores it
func (r *TaskRepo) ApplyTaskStatus(ctx context.Context, id int, next func(*models.Task) models.Status) (*models.Task, error) {
	var updated *models.Task
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		task, err := getTaskByID(ctx, tx, id)
		if err != nil {
			return err
		}

		task.Status = next(task)
		if _, err := tx.ExecContext(ctx,
			"UPDATE tasks SET status = ? WHERE id = ?", string(task.Status), id); err != nil {
			return storageErr("apply task status", err)
		}

		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTask removes a task from the database. Deleting a missing ID is not an error.
func (r *TaskRepo) DeleteTask(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id); err != nil {
		return storageErr("delete task", err)
	}
	return nil
}

// GetCategories returns the distinct non-empty categories in use
func (r *TaskRepo) GetCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.SelectContext(ctx, &categories,
		"SELECT DISTINCT category FROM tasks WHERE category <> '' ORDER BY category")
	if err != nil {
		return nil, storageErr("get categories", err)
	}
	return categories, nil
}

// GetStatusCounts returns the number of tasks per stored status
func (r *TaskRepo) GetStatusCounts(ctx context.Context) (map[models.Status]int, error) {
	var rows []struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}
	err := r.db.SelectContext(ctx, &rows,
		"SELECT status, COUNT(*) AS count FROM tasks GROUP BY status")
	if err != nil {
		return nil, storageErr("get status counts", err)
	}

	counts := make(map[models.Status]int, len(rows))
	for _, row := range rows {
		counts[models.Status(row.Status)] = row.Count
	}
	return counts, nil
}
