package tasksdk

import (
	"strings"
	"time"

	"github.com/aussiebroadwan/taskapi/pkg/validx"
)

// ============================================================================
// Envelope
// ============================================================================

// FieldError describes a single rejected request field.
type FieldError = validx.FieldError

// Response is the envelope every endpoint answers with. Data is only set on
// success; Errors is only set for field-level validation failures.
type Response[T any] struct {
	Success bool         `json:"success"`
	Count   *int         `json:"count,omitempty"`
	Data    T            `json:"data,omitempty"`
	Message string       `json:"message,omitempty"`
	Error   string       `json:"error,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// MessageResponse is the envelope for endpoints that only answer with a
// message, e.g. DELETE /tasks/{id}.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ============================================================================
// Auth Types
// ============================================================================

// RegisterRequest is the body of POST /users.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"useremail" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (r *RegisterRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = validx.NormalizeEmail(r.Email)
}

func (RegisterRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"username.required":  "Username must be at least 3 characters",
		"username.min":       "Username must be at least 3 characters",
		"useremail.required": "Please enter a valid email",
		"useremail.email":    "Please enter a valid email",
		"password.required":  "Password must be at least 6 characters",
		"password.min":       "Password must be at least 6 characters",
	}
}

// LoginRequest is the body of POST /auth.
type LoginRequest struct {
	Email    string `json:"useremail" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = validx.NormalizeEmail(r.Email)
}

func (LoginRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"useremail.required": "Email is required",
		"useremail.email":    "Please enter a valid email",
		"password.required":  "Password is required",
	}
}

// AuthResponse is returned by registration and login. Token is a bearer
// token valid for five days.
type AuthResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"useremail"`
	Token    string `json:"token"`
}

// ============================================================================
// User Types
// ============================================================================

// User is the public view of an account. Password hashes never leave the
// server.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"useremail"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UpdateUserRequest is the body of PUT /users/{id}. Absent or empty fields
// are left unchanged.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"useremail,omitempty"`
}

// ============================================================================
// Task Types
// ============================================================================

// Task statuses.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// TaskSummary is the list view of a task.
type TaskSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Assignee is the user a task is assigned to.
type Assignee struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"useremail"`
}

// Task is the full view of a task. AssignedUser is nil when the referenced
// user no longer exists.
type Task struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	DueDate      time.Time `json:"dueDate"`
	Status       string    `json:"status"`
	AssignedUser *Assignee `json:"assignedUser"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CreateTaskRequest is the body of POST /tasks. DueDate is an ISO-8601 date
// or date-time and must lie in the future.
type CreateTaskRequest struct {
	Title        string `json:"title" validate:"required,max=100"`
	Description  string `json:"description" validate:"required,max=500"`
	DueDate      string `json:"dueDate" validate:"required,iso8601,future"`
	AssignedUser string `json:"assignedUser" validate:"required,ulid"`
}

func (r *CreateTaskRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.DueDate = strings.TrimSpace(r.DueDate)
	r.AssignedUser = strings.TrimSpace(r.AssignedUser)
}

func (CreateTaskRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"title.required":        "Title is required",
		"title.max":             "Title cannot exceed 100 characters",
		"description.required":  "Description is required",
		"description.max":       "Description cannot exceed 500 characters",
		"dueDate.required":      "Please enter a valid date",
		"dueDate.iso8601":       "Please enter a valid date",
		"dueDate.future":        "Due date must be in the future",
		"assignedUser.required": "Please enter a valid user ID",
		"assignedUser.ulid":     "Please enter a valid user ID",
	}
}

// UpdateTaskRequest is the body of PUT /tasks/{id}. Only these four fields
// are mutable; absent or empty fields are left unchanged.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the store connection status
	Database string `json:"database"`
}

// WelcomeResponse is returned by GET /.
type WelcomeResponse struct {
	Message string `json:"message"`
}
