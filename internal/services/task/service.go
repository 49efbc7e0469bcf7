package task

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/thenoetrevino/tasklist/internal/database"
	"github.com/thenoetrevino/tasklist/internal/models"
)

// Service defines all task-related business operations
type Service interface {
	// Reconcile marks every non-done task whose deadline has passed as Overdue
	Reconcile(ctx context.Context) error

	// Read operations
	ListTasks(ctx context.Context, req ListTasksRequest) ([]*models.Task, error)
	GetTask(ctx context.Context, taskID int) (*models.Task, error)
	ListCategories(ctx context.Context) ([]string, error)
	GetStats(ctx context.Context) (models.Stats, error)
	ExportTasks(ctx context.Context) ([]*models.Task, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) error
	SetStatus(ctx context.Context, taskID int, status models.Status) error
	ToggleDone(ctx context.Context, taskID int) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID int) error
}

// ListTasksRequest holds the list filters. Empty fields and the
// AllCategories / AllStatuses sentinels disable the corresponding filter.
type ListTasksRequest struct {
	Category string
	Status   string
	Search   string
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	Title    string
	Notes    string
	Deadline string
	Category string
}

// UpdateTaskRequest carries the full edited state of a task.
// Status only matters when it is Done; any other value is recomputed
// from the deadline.
type UpdateTaskRequest struct {
	TaskID   int
	Title    string
	Notes    string
	Deadline string
	Status   models.Status
	Category string
}

// Option configures the service
type Option func(*service)

// WithClock overrides the source of "now", used to decide what is overdue
func WithClock(clock func() time.Time) Option {
	return func(s *service) {
		s.clock = clock
	}
}

// WithLogger sets the logger for the service
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		s.logger = logger
	}
}

// WithStrictValidation rejects empty titles and malformed deadlines.
// Without it the service stores whatever it is given.
func WithStrictValidation(strict bool) Option {
	return func(s *service) {
		s.strict = strict
	}
}

// WithDefaultCategories replaces the built-in categories that are always listed
func WithDefaultCategories(categories []string) Option {
	return func(s *service) {
		if len(categories) > 0 {
			s.defaultCategories = slices.Clone(categories)
		}
	}
}

// service implements Service interface
type service struct {
	repo              database.TaskRepository
	clock             func() time.Time
	logger            *slog.Logger
	strict            bool
	defaultCategories []string
}

// NewService creates a new task service
func NewService(repo database.TaskRepository, opts ...Option) Service {
	s := &service{
		repo:              repo,
		clock:             time.Now,
		logger:            slog.Default(),
		defaultCategories: models.DefaultCategories,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// today is read on every call so a long-running process picks up midnight
func (s *service) today() models.Date {
	return models.Today(s.clock())
}

// Reconcile upgrades stale tasks to Overdue. Safe to call any number of times.
func (s *service) Reconcile(ctx context.Context) error {
	today := s.today().String()
	n, err := s.repo.MarkOverdue(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to reconcile overdue tasks: %w", err)
	}
	if n > 0 {
		s.logger.Debug("marked tasks overdue", "count", n, "today", today)
	}
	return nil
}

// ListTasks returns filtered tasks, pending first, then overdue, then done,
// each group by ascending deadline.
func (s *service) ListTasks(ctx context.Context, req ListTasksRequest) ([]*models.Task, error) {
	filter, err := buildFilter(req)
	if err != nil {
		return nil, err
	}

	if err := s.Reconcile(ctx); err != nil {
		return nil, err
	}

	tasks, err := s.repo.GetTasks(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	models.SortTasks(tasks)
	return tasks, nil
}

// buildFilter drops sentinel and empty values from the request
func buildFilter(req ListTasksRequest) (models.TaskFilter, error) {
	var filter models.TaskFilter

	switch req.Category {
	case "", models.AllCategories:
	case models.UncategorizedLabel:
		filter.Category = new(string)
	default:
		category := req.Category
		filter.Category = &category
	}

	switch req.Status {
	case "", models.AllStatuses:
	default:
		status, err := models.ParseStatus(req.Status)
		if err != nil {
			return models.TaskFilter{}, err
		}
		filter.Status = &status
	}

	filter.Search = req.Search
	return filter, nil
}

// GetTask returns one task with an up-to-date status
func (s *service) GetTask(ctx context.Context, taskID int) (*models.Task, error) {
	if err := s.Reconcile(ctx); err != nil {
		return nil, err
	}

	task, err := s.repo.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// CreateTask stores a new task with its status derived from the deadline
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	if err := s.validate(req.Title, req.Deadline); err != nil {
		return nil, err
	}

	task, err := s.repo.CreateTask(ctx, &models.Task{
		Title:    req.Title,
		Notes:    req.Notes,
		Deadline: req.Deadline,
		Status:   models.DeriveStatus(req.Deadline, s.today()),
		Category: normalizeCategory(req.Category),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("task created", "id", task.ID, "status", task.Status)
	return task, nil
}

// UpdateTask saves an edited task. Done is kept as given; otherwise the
// status follows the (possibly new) deadline.
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) error {
	if err := s.validate(req.Title, req.Deadline); err != nil {
		return err
	}

	status := req.Status
	if status != models.StatusDone {
		status = models.DeriveStatus(req.Deadline, s.today())
	}

	err := s.repo.UpdateTask(ctx, &models.Task{
		ID:       req.TaskID,
		Title:    req.Title,
		Notes:    req.Notes,
		Deadline: req.Deadline,
		Status:   status,
		Category: normalizeCategory(req.Category),
	})
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	s.logger.Info("task updated", "id", req.TaskID, "status", status)
	return nil
}

// SetStatus writes status as given, without consulting the deadline
func (s *service) SetStatus(ctx context.Context, taskID int, status models.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if err := s.repo.UpdateTaskStatus(ctx, taskID, status); err != nil {
		return fmt.Errorf("failed to set status: %w", err)
	}

	s.logger.Info("task status set", "id", taskID, "status", status)
	return nil
}

// ToggleDone completes an open task, or reopens a done one with the status
// its deadline calls for.
func (s *service) ToggleDone(ctx context.Context, taskID int) (*models.Task, error) {
	today := s.today()
	task, err := s.repo.ApplyTaskStatus(ctx, taskID, func(t *models.Task) models.Status {
		if t.Status == models.StatusDone {
			return models.DeriveStatus(t.Deadline, today)
		}
		return models.StatusDone
	})
	if err != nil {
		return nil, fmt.Errorf("failed to toggle task: %w", err)
	}

	s.logger.Info("task toggled", "id", taskID, "status", task.Status)
	return task, nil
}

// DeleteTask removes a task. Missing IDs are ignored.
func (s *service) DeleteTask(ctx context.Context, taskID int) error {
	if err := s.repo.DeleteTask(ctx, taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Info("task deleted", "id", taskID)
	return nil
}

// ListCategories merges the categories in use with the defaults
func (s *service) ListCategories(ctx context.Context) ([]string, error) {
	used, err := s.repo.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := slices.Concat(used, s.defaultCategories)
	categories = slices.DeleteFunc(categories, func(c string) bool {
		return c == "" || c == models.AddNewCategoryMarker
	})
	slices.Sort(categories)
	return slices.Compact(categories), nil
}

// GetStats counts tasks by status. It reconciles first so the counts agree
// with what ListTasks would show.
func (s *service) GetStats(ctx context.Context) (models.Stats, error) {
	if err := s.Reconcile(ctx); err != nil {
		return models.Stats{}, err
	}

	counts, err := s.repo.GetStatusCounts(ctx)
	if err != nil {
		return models.Stats{}, fmt.Errorf("failed to get stats: %w", err)
	}

	stats := models.Stats{
		Done:    counts[models.StatusDone],
		Overdue: counts[models.StatusOverdue],
		Pending: counts[models.StatusPending],
	}
	for _, n := range counts {
		stats.Total += n
	}
	return stats, nil
}

// ExportTasks returns every task in list order
func (s *service) ExportTasks(ctx context.Context) ([]*models.Task, error) {
	return s.ListTasks(ctx, ListTasksRequest{})
}

// validate applies strict-mode checks; permissive mode accepts anything
func (s *service) validate(title, deadline string) error {
	if !s.strict {
		return nil
	}
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if _, err := models.ParseDate(deadline); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDeadline, deadline)
	}
	return nil
}

// normalizeCategory keeps the picker's "new category" entry out of storage
func normalizeCategory(category string) string {
	if category == models.AddNewCategoryMarker {
		return ""
	}
	return category
}
