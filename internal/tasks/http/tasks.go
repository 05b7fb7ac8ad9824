package http

import (
	"net/http"

	"github.com/aussiebroadwan/taskapi/internal/tasks/service"
	"github.com/aussiebroadwan/taskapi/pkg/httpx"
	"github.com/aussiebroadwan/taskapi/pkg/tasksdk"
	"github.com/aussiebroadwan/taskapi/pkg/validx"
)

type TasksHandler struct {
	TaskService *service.TaskService
	errs        errorWriter
}

// List returns the id and title of every task.
//
//	@Summary		List tasks
//	@Description	The list view only carries id and title.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	tasksdk.Response[[]tasksdk.TaskSummary]	"Tasks and count"
//	@Failure		401	{object}	tasksdk.Response[any]					"Not authorized"
//	@Failure		500	{object}	tasksdk.Response[any]					"Server error"
//	@Router			/tasks [get].
func (h *TasksHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.TaskService.List(r.Context())
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	httpx.WriteList(w, toTaskSummaries(tasks))
}

// Get returns a task with its assignee resolved.
//
//	@Summary		Get a task
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string							true	"Task ID"
//	@Success		200	{object}	tasksdk.Response[tasksdk.Task]	"Task"
//	@Failure		400	{object}	tasksdk.Response[any]			"Invalid task ID format"
//	@Failure		401	{object}	tasksdk.Response[any]			"Not authorized"
//	@Failure		404	{object}	tasksdk.Response[any]			"Task not found"
//	@Failure		500	{object}	tasksdk.Response[any]			"Server error"
//	@Router			/tasks/{id} [get].
func (h *TasksHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.TaskService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, toTask(t))
}

// Create stores a new pending task.
//
//	@Summary		Create a task
//	@Description	All fields are required. dueDate must be an ISO-8601 date in the future and assignedUser an existing user.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.CreateTaskRequest		true	"New task"
//	@Success		201		{object}	tasksdk.Response[tasksdk.Task]	"Created task"
//	@Failure		400		{object}	tasksdk.Response[any]			"Validation errors"
//	@Failure		401		{object}	tasksdk.Response[any]			"Not authorized"
//	@Failure		404		{object}	tasksdk.Response[any]			"Assigned user not found"
//	@Failure		500		{object}	tasksdk.Response[any]			"Server error"
//	@Router			/tasks [post].
func (h *TasksHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := httpx.ValidatedBody[tasksdk.CreateTaskRequest](r.Context())
	if !ok {
		httpx.WriteFailure(w, http.StatusBadRequest, "Invalid JSON in request body", "")
		return
	}

	due, err := validx.ParseDate(req.DueDate)
	if err != nil {
		httpx.WriteValidation(w, validx.Errors{{Field: "dueDate", Message: "Please enter a valid date"}})
		return
	}

	t, err := h.TaskService.Create(r.Context(), service.NewTask{
		Title:        req.Title,
		Description:  req.Description,
		DueDate:      due,
		AssignedUser: req.AssignedUser,
	})
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusCreated, toTask(t))
}

// Update changes any of title, description, status and dueDate.
//
//	@Summary		Update a task
//	@Description	Only title, description, status and dueDate are mutable. Empty values and unknown fields are ignored.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Task ID"
//	@Param			request	body		tasksdk.UpdateTaskRequest		true	"Fields to change"
//	@Success		200		{object}	tasksdk.Response[tasksdk.Task]	"Updated task"
//	@Failure		400		{object}	tasksdk.Response[any]			"Invalid input"
//	@Failure		401		{object}	tasksdk.Response[any]			"Not authorized"
//	@Failure		404		{object}	tasksdk.Response[any]			"Task not found"
//	@Failure		500		{object}	tasksdk.Response[any]			"Server error"
//	@Router			/tasks/{id} [put].
func (h *TasksHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.UpdateTaskRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		// A bad id or missing task outranks a bad body.
		if err := h.TaskService.EnsureExists(r.Context(), r.PathValue("id")); err != nil {
			h.errs.write(w, r, err)
			return
		}
		httpx.WriteFailure(w, http.StatusBadRequest, "Invalid JSON in request body", "")
		return
	}

	t, err := h.TaskService.Update(r.Context(), r.PathValue("id"), service.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     req.DueDate,
	})
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, toTask(t))
}

// Delete removes a task permanently.
//
//	@Summary		Delete a task
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Task ID"
//	@Success		200	{object}	tasksdk.MessageResponse	"Task deleted successfully"
//	@Failure		400	{object}	tasksdk.Response[any]	"Invalid task ID format"
//	@Failure		401	{object}	tasksdk.Response[any]	"Not authorized"
//	@Failure		404	{object}	tasksdk.Response[any]	"Task not found"
//	@Failure		500	{object}	tasksdk.Response[any]	"Server error"
//	@Router			/tasks/{id} [delete].
func (h *TasksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.TaskService.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.errs.write(w, r, err)
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "Task deleted successfully")
}
