// Package storetest holds a behavioural suite every store driver must pass.
// Drivers call Run from their own tests with a factory returning a fresh,
// migrated, empty store.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/taskapi/internal/tasks/domain"
	"github.com/aussiebroadwan/taskapi/internal/tasks/store"
	"github.com/aussiebroadwan/taskapi/pkg/idx"
)

// Factory returns an empty store with migrations applied. It should register
// its own cleanup.
type Factory func(t *testing.T) store.Store

func Run(t *testing.T, newStore Factory) {
	t.Run("users", func(t *testing.T) { testUsers(t, newStore(t)) })
	t.Run("user uniqueness", func(t *testing.T) { testUserUniqueness(t, newStore(t)) })
	t.Run("user profile update", func(t *testing.T) { testUpdateProfile(t, newStore(t)) })
	t.Run("tasks", func(t *testing.T) { testTasks(t, newStore(t)) })
	t.Run("task update", func(t *testing.T) { testUpdateTask(t, newStore(t)) })
	t.Run("task delete", func(t *testing.T) { testDeleteTask(t, newStore(t)) })
	t.Run("ping", func(t *testing.T) { require.NoError(t, newStore(t).Ping(context.Background())) })
}

// Millisecond precision is the lowest common denominator across drivers.
func now() time.Time { return time.Now().UTC().Truncate(time.Millisecond) }

// NewUser builds a user with unique identity fields.
func NewUser(name string) domain.User {
	ts := now()
	return domain.User{
		ID:           idx.New().String(),
		Username:     name,
		Email:        name + "@example.com",
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
}

// NewTask builds a pending task assigned to userID and due tomorrow.
func NewTask(title, userID string) domain.Task {
	ts := now()
	return domain.Task{
		ID:           idx.New().String(),
		Title:        title,
		Description:  title + " description",
		DueDate:      ts.Add(24 * time.Hour),
		AssignedUser: userID,
		Status:       domain.TaskStatusPending,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
}

func testUsers(t *testing.T, s store.Store) {
	ctx := context.Background()
	users := s.Users()

	alice := NewUser("alice")
	bob := NewUser("bob")
	require.NoError(t, users.CreateUser(ctx, alice))
	require.NoError(t, users.CreateUser(ctx, bob))

	got, err := users.GetUserByID(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, alice.Username, got.Username)
	require.Equal(t, alice.Email, got.Email)
	require.Equal(t, alice.PasswordHash, got.PasswordHash)
	require.True(t, alice.CreatedAt.Equal(got.CreatedAt), "created_at round trip: %s vs %s", alice.CreatedAt, got.CreatedAt)

	got, err = users.GetUserByEmail(ctx, bob.Email)
	require.NoError(t, err)
	require.Equal(t, bob.ID, got.ID)

	_, err = users.GetUserByID(ctx, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = users.GetUserByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	all, err := users.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, alice.ID, all[0].ID)
	require.Equal(t, bob.ID, all[1].ID)
}

func testUserUniqueness(t *testing.T, s store.Store) {
	ctx := context.Background()
	users := s.Users()

	alice := NewUser("alice")
	require.NoError(t, users.CreateUser(ctx, alice))

	sameEmail := NewUser("alice2")
	sameEmail.Email = alice.Email
	require.ErrorIs(t, users.CreateUser(ctx, sameEmail), store.ErrAlreadyExists)

	sameName := NewUser("other")
	sameName.Username = alice.Username
	require.ErrorIs(t, users.CreateUser(ctx, sameName), store.ErrAlreadyExists)

	tests := []struct {
		name      string
		email     string
		username  string
		excludeID string
		want      bool
	}{
		{"email taken", alice.Email, "free", "", true},
		{"username taken", "free@example.com", alice.Username, "", true},
		{"both free", "free@example.com", "free", "", false},
		{"excluded self", alice.Email, alice.Username, alice.ID, false},
	}
	for _, tt := range tests {
		got, err := users.ExistsWithEmailOrUsername(ctx, tt.email, tt.username, tt.excludeID)
		require.NoError(t, err, tt.name)
		require.Equal(t, tt.want, got, tt.name)
	}
}

func testUpdateProfile(t *testing.T, s store.Store) {
	ctx := context.Background()
	users := s.Users()

	alice := NewUser("alice")
	bob := NewUser("bob")
	require.NoError(t, users.CreateUser(ctx, alice))
	require.NoError(t, users.CreateUser(ctx, bob))

	name := "alicia"
	stamp := alice.UpdatedAt.Add(time.Minute)
	updated, err := users.UpdateProfile(ctx, alice.ID, domain.UserPatch{Username: &name, UpdatedAt: stamp})
	require.NoError(t, err)
	require.Equal(t, "alicia", updated.Username)
	require.Equal(t, alice.Email, updated.Email)
	require.True(t, stamp.Equal(updated.UpdatedAt), "updated_at: %s vs %s", stamp, updated.UpdatedAt)
	require.True(t, alice.CreatedAt.Equal(updated.CreatedAt))

	email := "alicia@example.com"
	updated, err = users.UpdateProfile(ctx, alice.ID, domain.UserPatch{Email: &email, UpdatedAt: now()})
	require.NoError(t, err)
	require.Equal(t, "alicia", updated.Username)
	require.Equal(t, email, updated.Email)

	_, err = users.UpdateProfile(ctx, alice.ID, domain.UserPatch{Email: &bob.Email, UpdatedAt: now()})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	_, err = users.UpdateProfile(ctx, idx.New().String(), domain.UserPatch{Username: &name, UpdatedAt: now()})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func testTasks(t *testing.T, s store.Store) {
	ctx := context.Background()

	alice := NewUser("alice")
	require.NoError(t, s.Users().CreateUser(ctx, alice))

	first := NewTask("first", alice.ID)
	second := NewTask("second", alice.ID)
	second.Status = domain.TaskStatusInProgress
	require.NoError(t, s.Tasks().CreateTask(ctx, first))
	require.NoError(t, s.Tasks().CreateTask(ctx, second))

	got, err := s.Tasks().GetTaskByID(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, first.Title, got.Title)
	require.Equal(t, first.Description, got.Description)
	require.Equal(t, alice.ID, got.AssignedUser)
	require.Equal(t, domain.TaskStatusPending, got.Status)
	require.True(t, first.DueDate.Equal(got.DueDate), "due date round trip: %s vs %s", first.DueDate, got.DueDate)

	_, err = s.Tasks().GetTaskByID(ctx, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)

	summaries, err := s.Tasks().ListTaskSummaries(ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.TaskSummary{
		{ID: first.ID, Title: "first"},
		{ID: second.ID, Title: "second"},
	}, summaries)
}

func testUpdateTask(t *testing.T, s store.Store) {
	ctx := context.Background()

	alice := NewUser("alice")
	require.NoError(t, s.Users().CreateUser(ctx, alice))
	task := NewTask("original", alice.ID)
	require.NoError(t, s.Tasks().CreateTask(ctx, task))

	status := domain.TaskStatusCompleted
	stamp := task.UpdatedAt.Add(time.Minute)
	updated, err := s.Tasks().UpdateTask(ctx, task.ID, domain.TaskPatch{Status: &status, UpdatedAt: stamp})
	require.NoError(t, err)
	require.Equal(t, domain.TaskStatusCompleted, updated.Status)
	require.Equal(t, "original", updated.Title)
	require.Equal(t, task.Description, updated.Description)
	require.True(t, stamp.Equal(updated.UpdatedAt), "updated_at: %s vs %s", stamp, updated.UpdatedAt)

	title := "renamed"
	due := task.DueDate.Add(48 * time.Hour)
	updated, err = s.Tasks().UpdateTask(ctx, task.ID, domain.TaskPatch{Title: &title, DueDate: &due, UpdatedAt: now()})
	require.NoError(t, err)
	require.Equal(t, "renamed", updated.Title)
	require.Equal(t, domain.TaskStatusCompleted, updated.Status)
	require.True(t, due.Equal(updated.DueDate))
	require.Equal(t, alice.ID, updated.AssignedUser)

	reread, err := s.Tasks().GetTaskByID(ctx, task.ID)
	require.NoError(t, err)
	require.Equal(t, updated.Title, reread.Title)

	_, err = s.Tasks().UpdateTask(ctx, idx.New().String(), domain.TaskPatch{Title: &title})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func testDeleteTask(t *testing.T, s store.Store) {
	ctx := context.Background()

	alice := NewUser("alice")
	require.NoError(t, s.Users().CreateUser(ctx, alice))
	task := NewTask("doomed", alice.ID)
	require.NoError(t, s.Tasks().CreateTask(ctx, task))

	require.NoError(t, s.Tasks().DeleteTask(ctx, task.ID))
	_, err := s.Tasks().GetTaskByID(ctx, task.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, s.Tasks().DeleteTask(ctx, task.ID), store.ErrNotFound)

	summaries, err := s.Tasks().ListTaskSummaries(ctx)
	require.NoError(t, err)
	require.Empty(t, summaries)
}
