package tasksdk

import (
	"context"
	"net/http"
)

// ListTasks returns the id and title of every task.
func (s *Session) ListTasks(ctx context.Context) ([]TaskSummary, error) {
	resp, err := s.do(ctx, http.MethodGet, "/tasks", nil)
	if err != nil {
		return nil, err
	}
	return decodeData[[]TaskSummary](resp, http.StatusOK)
}

// GetTask returns a task with its assignee resolved.
func (s *Session) GetTask(ctx context.Context, id string) (*Task, error) {
	resp, err := s.do(ctx, http.MethodGet, taskPath(id), nil)
	if err != nil {
		return nil, err
	}
	t, err := decodeData[Task](resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTask creates a pending task.
func (s *Session) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	resp, err := s.do(ctx, http.MethodPost, "/tasks", req)
	if err != nil {
		return nil, err
	}
	t, err := decodeData[Task](resp, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTask changes any of title, description, status and due date.
func (s *Session) UpdateTask(ctx context.Context, id string, req UpdateTaskRequest) (*Task, error) {
	resp, err := s.do(ctx, http.MethodPut, taskPath(id), req)
	if err != nil {
		return nil, err
	}
	t, err := decodeData[Task](resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTask removes a task permanently.
func (s *Session) DeleteTask(ctx context.Context, id string) error {
	resp, err := s.do(ctx, http.MethodDelete, taskPath(id), nil)
	if err != nil {
		return err
	}
	var out MessageResponse
	return decodeJSON(resp, &out, http.StatusOK)
}
