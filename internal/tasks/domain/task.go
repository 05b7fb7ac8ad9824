package domain

import (
	"slices"
	"time"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// TaskStatuses lists every accepted status in display order.
var TaskStatuses = []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted}

func (s TaskStatus) Valid() bool { return slices.Contains(TaskStatuses, s) }

type Task struct {
	ID           string
	Title        string
	Description  string
	DueDate      time.Time
	AssignedUser string // user id; fixed at creation
	Status       TaskStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TaskSummary is the list projection of a task.
type TaskSummary struct {
	ID    string
	Title string
}

// Assignee is the public view of the user a task is assigned to.
type Assignee struct {
	ID       string
	Username string
	Email    string
}

// TaskDetail is a task with its assignee resolved. Assignee is nil when the
// referenced user no longer exists.
type TaskDetail struct {
	Task
	Assignee *Assignee
}

// TaskPatch holds the mutable task fields. Nil means unchanged. UpdatedAt is
// stored as given.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *TaskStatus
	DueDate     *time.Time
	UpdatedAt   time.Time
}

func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil && p.DueDate == nil
}
