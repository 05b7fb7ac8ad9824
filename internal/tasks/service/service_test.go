package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/taskapi/internal/tasks/domain"
	"github.com/aussiebroadwan/taskapi/internal/tasks/store/drivers/sqlite"
	"github.com/aussiebroadwan/taskapi/pkg/cryptox"
	"github.com/aussiebroadwan/taskapi/pkg/idx"
	"github.com/aussiebroadwan/taskapi/pkg/validx"
)

type testEnv struct {
	auth   *AuthService
	tokens *TokenService
	users  *UserService
	tasks  *TaskService
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	hasher, err := cryptox.NewHasher("test-pepper")
	require.NoError(t, err)

	tokens, err := NewTokenService([]byte("test-secret"), time.Hour)
	require.NoError(t, err)

	v := validx.New()
	return testEnv{
		auth:   &AuthService{Store: st, Hasher: hasher, Tokens: tokens},
		tokens: tokens,
		users:  &UserService{Store: st, Validator: v},
		tasks:  &TaskService{Store: st, Validator: v},
	}
}

func (e testEnv) register(t *testing.T, name string) domain.User {
	t.Helper()
	u, _, err := e.auth.Register(context.Background(), RegisterInput{
		Username: name,
		Email:    name + "@example.com",
		Password: "secret-" + name,
	})
	require.NoError(t, err)
	return u
}

func (e testEnv) createTask(t *testing.T, title, userID string) domain.TaskDetail {
	t.Helper()
	task, err := e.tasks.Create(context.Background(), NewTask{
		Title:        title,
		Description:  "about " + title,
		DueDate:      time.Now().Add(24 * time.Hour),
		AssignedUser: userID,
	})
	require.NoError(t, err)
	return task
}

func ptr[T any](v T) *T { return &v }

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	u, token, err := env.auth.Register(ctx, RegisterInput{
		Username: "  alice ",
		Email:    "Alice@Example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)
	require.Equal(t, "alice@example.com", u.Email)
	require.True(t, strings.HasPrefix(u.PasswordHash, "$argon2id$"))
	require.NotContains(t, u.PasswordHash, "hunter22")
	require.True(t, idx.Valid(u.ID))

	subject, err := env.tokens.Validate(token)
	require.NoError(t, err)
	require.Equal(t, u.ID, subject)

	got, token, err := env.auth.Login(ctx, "ALICE@example.com", "hunter22")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.NotEmpty(t, token)

	_, _, err = env.auth.Login(ctx, "alice@example.com", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = env.auth.Login(ctx, "nobody@example.com", "hunter22")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_Duplicate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.register(t, "alice")

	tests := []struct {
		name string
		in   RegisterInput
	}{
		{"same email", RegisterInput{Username: "other", Email: "alice@example.com", Password: "secret1"}},
		{"same email different case", RegisterInput{Username: "other", Email: "ALICE@example.com", Password: "secret1"}},
		{"same username", RegisterInput{Username: "alice", Email: "other@example.com", Password: "secret1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := env.auth.Register(ctx, tt.in)
			require.ErrorIs(t, err, ErrDuplicateUser)
		})
	}

	all, err := env.users.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestTokenValidate(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.tokens.Validate("")
	require.ErrorIs(t, err, ErrTokenMissing)

	_, err = env.tokens.Validate("not-a-jwt")
	require.ErrorIs(t, err, ErrTokenMalformed)

	expired := &TokenService{
		Signer:   env.tokens.Signer,
		Verifier: env.tokens.Verifier,
		TTL:      time.Hour,
		Now:      func() time.Time { return time.Now().Add(-2 * time.Hour) },
	}
	stale, err := expired.Issue("user-1")
	require.NoError(t, err)
	_, err = env.tokens.Validate(stale)
	require.ErrorIs(t, err, ErrTokenExpired)

	other, err := NewTokenService([]byte("another-secret"), time.Hour)
	require.NoError(t, err)
	forged, err := other.Issue("user-1")
	require.NoError(t, err)
	_, err = env.tokens.Validate(forged)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestUserGet(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	alice := env.register(t, "alice")

	got, err := env.users.Get(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, alice.Email, got.Email)

	_, err = env.users.Get(ctx, "507f1f77bcf86cd799439011")
	require.ErrorIs(t, err, ErrInvalidUserID)
	require.ErrorIs(t, err, ErrInvalidID)

	_, err = env.users.Get(ctx, idx.New().String())
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserUpdate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")

	t.Run("username only", func(t *testing.T) {
		u, err := env.users.Update(ctx, alice.ID, UserUpdate{Username: ptr(" alicia ")})
		require.NoError(t, err)
		require.Equal(t, "alicia", u.Username)
		require.Equal(t, alice.Email, u.Email)
	})

	t.Run("email is normalised", func(t *testing.T) {
		u, err := env.users.Update(ctx, alice.ID, UserUpdate{Email: ptr("Alicia@Example.com")})
		require.NoError(t, err)
		require.Equal(t, "alicia@example.com", u.Email)
	})

	t.Run("keeping own values is not a conflict", func(t *testing.T) {
		_, err := env.users.Update(ctx, bob.ID, UserUpdate{Username: ptr("bob"), Email: ptr(bob.Email)})
		require.NoError(t, err)
	})

	t.Run("conflict with another user", func(t *testing.T) {
		_, err := env.users.Update(ctx, alice.ID, UserUpdate{Username: ptr("bob")})
		require.ErrorIs(t, err, ErrDuplicateUserProfile)
		_, err = env.users.Update(ctx, alice.ID, UserUpdate{Email: ptr(bob.Email)})
		require.ErrorIs(t, err, ErrDuplicateUser)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := env.users.Update(ctx, "bad-id", UserUpdate{Username: ptr("x")})
		require.ErrorIs(t, err, ErrInvalidUserID)

		_, err = env.users.Update(ctx, alice.ID, UserUpdate{Username: ptr("  "), Email: ptr("")})
		require.ErrorIs(t, err, ErrNoUpdateFields)

		_, err = env.users.Update(ctx, idx.New().String(), UserUpdate{Username: ptr("ghost")})
		require.ErrorIs(t, err, ErrUserNotFound)

		_, err = env.users.Update(ctx, alice.ID, UserUpdate{Username: ptr("ab"), Email: ptr("nope")})
		require.ErrorIs(t, err, ErrInvalidPatch)
		var fieldErrs validx.Errors
		require.True(t, errors.As(err, &fieldErrs))
		require.Len(t, fieldErrs, 2)
	})
}

func TestTaskCreate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	alice := env.register(t, "alice")

	task := env.createTask(t, "  write docs ", alice.ID)
	require.Equal(t, "write docs", task.Title)
	require.Equal(t, domain.TaskStatusPending, task.Status)
	require.NotNil(t, task.Assignee)
	require.Equal(t, "alice", task.Assignee.Username)
	require.Equal(t, alice.Email, task.Assignee.Email)

	due := time.Now().Add(time.Hour)
	tests := []struct {
		name string
		in   NewTask
		want error
	}{
		{"missing title", NewTask{Description: "d", DueDate: due, AssignedUser: alice.ID}, ErrMissingTaskFields},
		{"missing due date", NewTask{Title: "t", Description: "d", AssignedUser: alice.ID}, ErrMissingTaskFields},
		{"bad assignee id", NewTask{Title: "t", Description: "d", DueDate: due, AssignedUser: "123"}, ErrInvalidAssigneeID},
		{"unknown assignee", NewTask{Title: "t", Description: "d", DueDate: due, AssignedUser: idx.New().String()}, ErrAssigneeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.tasks.Create(ctx, tt.in)
			require.ErrorIs(t, err, tt.want)
		})
	}

	list, err := env.tasks.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.TaskSummary{{ID: task.ID, Title: "write docs"}}, list)
}

func TestTaskGet(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	alice := env.register(t, "alice")
	created := env.createTask(t, "read", alice.ID)

	got, err := env.tasks.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Title, got.Title)
	require.Equal(t, alice.ID, got.Assignee.ID)

	// Username changes are visible through the reference.
	_, err = env.users.Update(ctx, alice.ID, UserUpdate{Username: ptr("alicia")})
	require.NoError(t, err)
	got, err = env.tasks.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "alicia", got.Assignee.Username)

	_, err = env.tasks.Get(ctx, "nope")
	require.ErrorIs(t, err, ErrInvalidTaskID)
	_, err = env.tasks.Get(ctx, idx.New().String())
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskUpdate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	alice := env.register(t, "alice")
	task := env.createTask(t, "original", alice.ID)

	t.Run("status only", func(t *testing.T) {
		got, err := env.tasks.Update(ctx, task.ID, TaskUpdate{Status: ptr("in-progress")})
		require.NoError(t, err)
		require.Equal(t, domain.TaskStatusInProgress, got.Status)
		require.Equal(t, "original", got.Title)
		require.Equal(t, alice.ID, got.AssignedUser)
		require.NotNil(t, got.Assignee)
	})

	t.Run("empty strings are ignored", func(t *testing.T) {
		got, err := env.tasks.Update(ctx, task.ID, TaskUpdate{Title: ptr("renamed"), Description: ptr("")})
		require.NoError(t, err)
		require.Equal(t, "renamed", got.Title)
		require.Equal(t, task.Description, got.Description)
	})

	t.Run("due date", func(t *testing.T) {
		got, err := env.tasks.Update(ctx, task.ID, TaskUpdate{DueDate: ptr("2031-03-04")})
		require.NoError(t, err)
		require.True(t, time.Date(2031, 3, 4, 0, 0, 0, 0, time.UTC).Equal(got.DueDate))
	})

	t.Run("errors", func(t *testing.T) {
		_, err := env.tasks.Update(ctx, "bad", TaskUpdate{Title: ptr("x")})
		require.ErrorIs(t, err, ErrInvalidTaskID)

		// Unknown id wins over an empty update.
		_, err = env.tasks.Update(ctx, idx.New().String(), TaskUpdate{})
		require.ErrorIs(t, err, ErrTaskNotFound)

		_, err = env.tasks.Update(ctx, task.ID, TaskUpdate{Status: ptr("done")})
		require.ErrorIs(t, err, ErrInvalidStatus)

		_, err = env.tasks.Update(ctx, task.ID, TaskUpdate{Title: ptr(""), Status: ptr(" ")})
		require.ErrorIs(t, err, ErrNoUpdateFields)

		_, err = env.tasks.Update(ctx, task.ID, TaskUpdate{Title: ptr(strings.Repeat("x", 101))})
		require.ErrorIs(t, err, ErrInvalidPatch)

		_, err = env.tasks.Update(ctx, task.ID, TaskUpdate{DueDate: ptr("someday")})
		require.ErrorIs(t, err, ErrInvalidPatch)
	})

	got, err := env.tasks.Get(ctx, task.ID)
	require.NoError(t, err)
	require.Equal(t, "renamed", got.Title)
	require.Equal(t, domain.TaskStatusInProgress, got.Status)
}

func TestTaskDelete(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	alice := env.register(t, "alice")
	task := env.createTask(t, "doomed", alice.ID)

	require.ErrorIs(t, env.tasks.Delete(ctx, "bad"), ErrInvalidTaskID)
	require.NoError(t, env.tasks.Delete(ctx, task.ID))
	require.ErrorIs(t, env.tasks.Delete(ctx, task.ID), ErrTaskNotFound)

	_, err := env.tasks.Get(ctx, task.ID)
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestUpdatesStampServiceClock(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	alice := env.register(t, "alice")
	task := env.createTask(t, "clocked", alice.ID)

	fixed := time.Date(2030, 1, 2, 3, 4, 5, 678901234, time.UTC)
	want := fixed.Truncate(time.Millisecond)
	env.tasks.Now = func() time.Time { return fixed }
	env.users.Now = func() time.Time { return fixed }

	got, err := env.tasks.Update(ctx, task.ID, TaskUpdate{Status: ptr("completed")})
	require.NoError(t, err)
	require.True(t, want.Equal(got.UpdatedAt), "task updated_at: %s", got.UpdatedAt)
	require.True(t, task.CreatedAt.Equal(got.CreatedAt))

	u, err := env.users.Update(ctx, alice.ID, UserUpdate{Username: ptr("alicia")})
	require.NoError(t, err)
	require.True(t, want.Equal(u.UpdatedAt), "user updated_at: %s", u.UpdatedAt)
}

func TestIDsAreCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	alice := env.register(t, "alice")

	task, err := env.tasks.Create(ctx, NewTask{
		Title:        "lower",
		Description:  "assigned by a lower-case id",
		DueDate:      time.Now().Add(24 * time.Hour),
		AssignedUser: strings.ToLower(alice.ID),
	})
	require.NoError(t, err)
	require.Equal(t, alice.ID, task.AssignedUser)

	lower := strings.ToLower(task.ID)
	got, err := env.tasks.Get(ctx, lower)
	require.NoError(t, err)
	require.Equal(t, task.ID, got.ID)

	updated, err := env.tasks.Update(ctx, lower, TaskUpdate{Title: ptr("renamed")})
	require.NoError(t, err)
	require.Equal(t, task.ID, updated.ID)

	u, err := env.users.Get(ctx, strings.ToLower(alice.ID))
	require.NoError(t, err)
	require.Equal(t, alice.ID, u.ID)

	u, err = env.users.Update(ctx, strings.ToLower(alice.ID), UserUpdate{Username: ptr("alicia")})
	require.NoError(t, err)
	require.Equal(t, "alicia", u.Username)

	require.NoError(t, env.tasks.Delete(ctx, lower))
	require.ErrorIs(t, env.tasks.EnsureExists(ctx, task.ID), ErrTaskNotFound)
}
