package http

import (
	"github.com/aussiebroadwan/taskapi/internal/tasks/domain"
	"github.com/aussiebroadwan/taskapi/pkg/tasksdk"
)

func toUser(u domain.User) tasksdk.User {
	return tasksdk.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUsers(us []domain.User) []tasksdk.User {
	out := make([]tasksdk.User, len(us))
	for i, u := range us {
		out[i] = toUser(u)
	}
	return out
}

func toTask(t domain.TaskDetail) tasksdk.Task {
	out := tasksdk.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.Assignee != nil {
		out.AssignedUser = &tasksdk.Assignee{
			ID:       t.Assignee.ID,
			Username: t.Assignee.Username,
			Email:    t.Assignee.Email,
		}
	}
	return out
}

func toTaskSummaries(ts []domain.TaskSummary) []tasksdk.TaskSummary {
	out := make([]tasksdk.TaskSummary, len(ts))
	for i, t := range ts {
		out[i] = tasksdk.TaskSummary{ID: t.ID, Title: t.Title}
	}
	return out
}

func toAuthResponse(u domain.User, token string) tasksdk.AuthResponse {
	return tasksdk.AuthResponse{ID: u.ID, Username: u.Username, Email: u.Email, Token: token}
}
