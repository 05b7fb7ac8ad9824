package tasks_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/taskapi/pkg/tasksdk"
)

// TestTaskLifecycle creates, reads, updates and deletes a task.
func TestTaskLifecycle(t *testing.T) {
	client := setupTaskContainer(t)
	ctx := t.Context()
	session := registerUser(t, client, "dave")

	due := time.Now().Add(72 * time.Hour).UTC().Truncate(time.Second)
	created, err := session.CreateTask(ctx, tasksdk.CreateTaskRequest{
		Title:        "Ship release",
		Description:  "Tag and publish",
		DueDate:      due.Format(time.RFC3339),
		AssignedUser: session.UserID(),
	})
	require.NoError(t, err)
	require.Equal(t, tasksdk.StatusPending, created.Status)

	fetched, err := session.GetTask(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Ship release", fetched.Title)
	require.Equal(t, "Tag and publish", fetched.Description)
	require.True(t, due.Equal(fetched.DueDate))
	require.NotNil(t, fetched.AssignedUser)
	require.Equal(t, "dave", fetched.AssignedUser.Username)
	require.Equal(t, "dave@example.com", fetched.AssignedUser.Email)

	status := tasksdk.StatusInProgress
	updated, err := session.UpdateTask(ctx, created.ID, tasksdk.UpdateTaskRequest{Status: &status})
	require.NoError(t, err)
	require.Equal(t, tasksdk.StatusInProgress, updated.Status)

	archived := "archived"
	_, err = session.UpdateTask(ctx, created.ID, tasksdk.UpdateTaskRequest{Status: &archived})
	assertStatus(t, err, http.StatusBadRequest, "unknown status")

	_, err = session.UpdateTask(ctx, created.ID, tasksdk.UpdateTaskRequest{})
	assertStatus(t, err, http.StatusBadRequest, "empty update")

	require.NoError(t, session.DeleteTask(ctx, created.ID))

	_, err = session.GetTask(ctx, created.ID)
	assertStatus(t, err, http.StatusNotFound, "get deleted task")
}

// TestListTasksIsMinimal verifies the list view only carries id and title.
func TestListTasksIsMinimal(t *testing.T) {
	client := setupTaskContainer(t)
	ctx := t.Context()
	session := registerUser(t, client, "erin")

	first := createTask(t, session, "first")
	second := createTask(t, session, "second")

	tasks, err := session.ListTasks(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []tasksdk.TaskSummary{
		{ID: first.ID, Title: "first"},
		{ID: second.ID, Title: "second"},
	}, tasks)
}

// TestCreateTaskValidation verifies past due dates and unknown assignees
// are rejected.
func TestCreateTaskValidation(t *testing.T) {
	client := setupTaskContainer(t)
	ctx := t.Context()
	session := registerUser(t, client, "frank")

	_, err := session.CreateTask(ctx, tasksdk.CreateTaskRequest{
		Title:        "late",
		Description:  "already overdue",
		DueDate:      time.Now().Add(-time.Hour).UTC().Format(time.RFC3339),
		AssignedUser: session.UserID(),
	})
	assertStatus(t, err, http.StatusBadRequest, "past due date")
	var apiErr *tasksdk.APIError
	require.ErrorAs(t, err, &apiErr)
	msg, ok := apiErr.FieldMessage("dueDate")
	require.True(t, ok)
	require.Equal(t, "Due date must be in the future", msg)

	_, err = session.CreateTask(ctx, tasksdk.CreateTaskRequest{
		Title:        "orphan",
		Description:  "nobody owns this",
		DueDate:      time.Now().Add(time.Hour).UTC().Format(time.RFC3339),
		AssignedUser: "01J8Z3Q4V7K2M9N5P6R8S0T1W3",
	})
	assertStatus(t, err, http.StatusNotFound, "unknown assignee")
}

// TestUpdateUserUniqueness verifies a user can not take another user's
// email.
func TestUpdateUserUniqueness(t *testing.T) {
	client := setupTaskContainer(t)
	ctx := t.Context()
	gina := registerUser(t, client, "gina")
	registerUser(t, client, "hank")

	taken := "hank@example.com"
	_, err := gina.UpdateUser(ctx, gina.UserID(), tasksdk.UpdateUserRequest{Email: &taken})
	assertStatus(t, err, http.StatusBadRequest, "email collision")

	name := "georgina"
	updated, err := gina.UpdateUser(ctx, gina.UserID(), tasksdk.UpdateUserRequest{Username: &name})
	require.NoError(t, err)
	require.Equal(t, "georgina", updated.Username)
}
