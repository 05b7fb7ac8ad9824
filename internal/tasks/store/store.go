package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/taskapi/internal/tasks/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, mongo)
// implement this and expose sub-repositories per aggregate. Every mutation
// is a single atomic statement, so there is no transaction API.
type Store interface {
	Users() Users
	Tasks() Tasks

	// ApplyMigrations brings the schema (tables, indexes) up to date.
	ApplyMigrations() error

	// Close releases the underlying connection pool.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email or username is taken.
	CreateUser(ctx context.Context, u domain.User) error

	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail looks up by the normalised email used at login.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// ListUsers returns every user, oldest first.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// ExistsWithEmailOrUsername reports whether a user other than excludeID
	// holds email or username. Pass an empty excludeID to check all users.
	ExistsWithEmailOrUsername(ctx context.Context, email, username, excludeID string) (bool, error)

	// UpdateProfile applies the non-nil fields of p, sets updated_at to
	// p.UpdatedAt and returns the stored user.
	UpdateProfile(ctx context.Context, id string, p domain.UserPatch) (domain.User, error)
}

type Tasks interface {
	CreateTask(ctx context.Context, t domain.Task) error

	GetTaskByID(ctx context.Context, id string) (domain.Task, error)

	// ListTaskSummaries returns id and title of every task, oldest first.
	ListTaskSummaries(ctx context.Context) ([]domain.TaskSummary, error)

	// UpdateTask applies the non-nil fields of p, sets updated_at to
	// p.UpdatedAt and returns the stored task.
	UpdateTask(ctx context.Context, id string, p domain.TaskPatch) (domain.Task, error)

	// DeleteTask removes the task. Returns ErrNotFound if it did not exist.
	DeleteTask(ctx context.Context, id string) error
}
