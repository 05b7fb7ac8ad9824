/*
Package tasksdk provides a client SDK for the task API.

# Overview

The package is organized around two types:

  - SDKClient: public endpoints (registration, login, health) and Session creation
  - Session: authenticated user and task operations using a bearer token

	client := tasksdk.NewSDKClient("http://localhost:8080")

	session, err := client.RegisterAndAuthenticate(ctx, tasksdk.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct horse",
	})

	task, err := session.CreateTask(ctx, tasksdk.CreateTaskRequest{
		Title:        "Write report",
		Description:  "Quarterly numbers",
		DueDate:      time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		AssignedUser: session.UserID(),
	})

# Errors

Every non-2xx response is returned as an *APIError carrying the status code,
the envelope message and, for validation failures, the rejected fields:

	_, err := session.GetTask(ctx, id)
	if tasksdk.IsNotFound(err) {
		// ...
	}

# Request Types

The request types carry the struct tags, normalisation and messages the
server validates them with, so the server decodes straight into them.
*/
package tasksdk
