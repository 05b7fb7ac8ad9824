package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/taskapi/internal/tasks/domain"
	"github.com/aussiebroadwan/taskapi/internal/tasks/store"
	"github.com/aussiebroadwan/taskapi/pkg/idx"
	"github.com/aussiebroadwan/taskapi/pkg/slogx"
	"github.com/aussiebroadwan/taskapi/pkg/validx"
)

type TaskService struct {
	Store     store.Store
	Validator *validx.Validator
	Now       func() time.Time
}

// NewTask is an already validated creation request.
type NewTask struct {
	Title        string
	Description  string
	DueDate      time.Time
	AssignedUser string
}

// TaskUpdate carries the raw mutable fields of an update request. Nil and
// empty values are ignored.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *string
	DueDate     *string
}

type taskFields struct {
	Title       *string `json:"title" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	DueDate     *string `json:"dueDate" validate:"omitempty,iso8601"`
}

func (taskFields) ValidationMessages() map[string]string {
	return map[string]string{
		"title.max":       "Title cannot exceed 100 characters",
		"description.max": "Description cannot exceed 500 characters",
		"dueDate.iso8601": "Please enter a valid date",
	}
}

// List returns id and title of every task.
func (s *TaskService) List(ctx context.Context) ([]domain.TaskSummary, error) {
	return s.Store.Tasks().ListTaskSummaries(ctx)
}

func (s *TaskService) Get(ctx context.Context, id string) (domain.TaskDetail, error) {
	t, err := s.getTask(ctx, id)
	if err != nil {
		return domain.TaskDetail{}, err
	}
	return s.withAssignee(ctx, t)
}

// Create stores a pending task for an existing user.
func (s *TaskService) Create(ctx context.Context, in NewTask) (domain.TaskDetail, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.AssignedUser = strings.TrimSpace(in.AssignedUser)
	if in.Title == "" || in.Description == "" || in.DueDate.IsZero() || in.AssignedUser == "" {
		return domain.TaskDetail{}, ErrMissingTaskFields
	}
	assigneeID, err := idx.Parse(in.AssignedUser)
	if err != nil {
		return domain.TaskDetail{}, ErrInvalidAssigneeID
	}

	assignee, err := s.Store.Users().GetUserByID(ctx, assigneeID.String())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TaskDetail{}, ErrAssigneeNotFound
		}
		return domain.TaskDetail{}, fmt.Errorf("get assignee: %w", err)
	}

	now := nowFrom(s.Now)
	t := domain.Task{
		ID:           idx.NewAt(now).String(),
		Title:        in.Title,
		Description:  in.Description,
		DueDate:      in.DueDate.UTC().Truncate(time.Millisecond),
		AssignedUser: assignee.ID,
		Status:       domain.TaskStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Tasks().CreateTask(ctx, t); err != nil {
		return domain.TaskDetail{}, fmt.Errorf("create task: %w", err)
	}

	slogx.FromContext(ctx).Info("task created", "task_id", t.ID, "assigned_user", t.AssignedUser)
	return domain.TaskDetail{Task: t, Assignee: toAssignee(assignee)}, nil
}

// Update applies the mutable fields of in. The assignee can not be changed.
func (s *TaskService) Update(ctx context.Context, id string, in TaskUpdate) (domain.TaskDetail, error) {
	current, err := s.getTask(ctx, id)
	if err != nil {
		return domain.TaskDetail{}, err
	}
	id = current.ID

	fields := taskFields{
		Title:       trimmed(in.Title),
		Description: trimmed(in.Description),
		DueDate:     trimmed(in.DueDate),
	}

	var patch domain.TaskPatch
	if st := trimmed(in.Status); st != nil {
		status := domain.TaskStatus(*st)
		if !status.Valid() {
			return domain.TaskDetail{}, ErrInvalidStatus
		}
		patch.Status = &status
	}
	patch.Title = fields.Title
	patch.Description = fields.Description
	if patch.IsEmpty() && fields.DueDate == nil {
		return domain.TaskDetail{}, ErrNoUpdateFields
	}

	if err := s.Validator.Struct(fields); err != nil {
		return domain.TaskDetail{}, fmt.Errorf("%w: %w", ErrInvalidPatch, err)
	}
	if fields.DueDate != nil {
		due, err := validx.ParseDate(*fields.DueDate)
		if err != nil {
			return domain.TaskDetail{}, fmt.Errorf("%w: %w", ErrInvalidPatch, err)
		}
		due = due.Truncate(time.Millisecond)
		patch.DueDate = &due
	}

	patch.UpdatedAt = nowFrom(s.Now)
	t, err := s.Store.Tasks().UpdateTask(ctx, id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TaskDetail{}, ErrTaskNotFound
		}
		return domain.TaskDetail{}, fmt.Errorf("update task: %w", err)
	}

	slogx.FromContext(ctx).Info("task updated", "task_id", id)
	return s.withAssignee(ctx, t)
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	taskID, err := idx.Parse(id)
	if err != nil {
		return ErrInvalidTaskID
	}
	id = taskID.String()
	if err := s.Store.Tasks().DeleteTask(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("delete task: %w", err)
	}

	slogx.FromContext(ctx).Info("task deleted", "task_id", id)
	return nil
}

// EnsureExists reports ErrInvalidTaskID or ErrTaskNotFound for id.
func (s *TaskService) EnsureExists(ctx context.Context, id string) error {
	_, err := s.getTask(ctx, id)
	return err
}

func (s *TaskService) getTask(ctx context.Context, id string) (domain.Task, error) {
	taskID, err := idx.Parse(id)
	if err != nil {
		return domain.Task{}, ErrInvalidTaskID
	}
	t, err := s.Store.Tasks().GetTaskByID(ctx, taskID.String())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Task{}, ErrTaskNotFound
		}
		return domain.Task{}, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// withAssignee resolves the assigned user. A dangling reference leaves
// Assignee nil rather than failing the read.
func (s *TaskService) withAssignee(ctx context.Context, t domain.Task) (domain.TaskDetail, error) {
	u, err := s.Store.Users().GetUserByID(ctx, t.AssignedUser)
	switch {
	case err == nil:
		return domain.TaskDetail{Task: t, Assignee: toAssignee(u)}, nil
	case errors.Is(err, store.ErrNotFound):
		slogx.FromContext(ctx).Warn("task references missing user", "task_id", t.ID, "assigned_user", t.AssignedUser)
		return domain.TaskDetail{Task: t}, nil
	default:
		return domain.TaskDetail{}, fmt.Errorf("get assignee: %w", err)
	}
}

func toAssignee(u domain.User) *domain.Assignee {
	return &domain.Assignee{ID: u.ID, Username: u.Username, Email: u.Email}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
