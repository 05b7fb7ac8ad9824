package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/taskapi/internal/tasks/service"
	"github.com/aussiebroadwan/taskapi/internal/tasks/store"
	"github.com/aussiebroadwan/taskapi/pkg/httpx"
	"github.com/aussiebroadwan/taskapi/pkg/slogx"
	"github.com/aussiebroadwan/taskapi/pkg/tasksdk"
	"github.com/aussiebroadwan/taskapi/pkg/validx"

	_ "github.com/aussiebroadwan/taskapi/api/tasks" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	validator    *validx.Validator
	errs         errorWriter

	store        store.Store
	TokenService *service.TokenService
	AuthService  *service.AuthService
	UserService  *service.UserService
	TaskService  *service.TaskService
}

// NewRouter creates a Router. When exposeErrorDetail is set, 500 responses
// carry the underlying error text.
func NewRouter(
	buildVersion string,
	st store.Store,
	validator *validx.Validator,
	logger *slog.Logger,
	exposeErrorDetail bool,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		validator:    validator,
		errs:         errorWriter{exposeDetail: exposeErrorDetail},
	}

	// Logging sits outside recovery so panics are logged as 500s.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recoverer(exposeErrorDetail),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerTasks()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Task Management API
//	@version		1.0.0
//	@description	Multi-user task tracking. Users register and log in to receive a bearer token;
//	@description	every user and task route except registration requires it.
//	@description
//	@description				Tokens are HS256-signed JWTs valid for five days.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/taskapi
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT bearer token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// protected wraps h with authentication and the per-user rate limit.
// Further middlewares run after both.
func (r *Router) protected(h http.Handler, mws ...httpx.Middleware) http.Handler {
	chain := append([]httpx.Middleware{
		httpx.AuthnMiddleware(r.TokenService),
		httpx.RateLimitByUser(httpx.LenientLimit),
	}, mws...)
	return httpx.Chain(h, chain...)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService, errs: r.errs}

	// POST /auth - strict rate limit by IP + email to slow credential stuffing
	r.Mux.Handle("POST /auth",
		httpx.Chain(http.HandlerFunc(h.Login),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "useremail"),
			httpx.ValidateJSON[tasksdk.LoginRequest](r.validator),
		),
	)

	// POST /users - public signup, moderate rate limit by IP
	r.Mux.Handle("POST /users",
		httpx.Chain(http.HandlerFunc(h.Register),
			httpx.RateLimitByIP(httpx.ModerateLimit),
			httpx.ValidateJSON[tasksdk.RegisterRequest](r.validator),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService, errs: r.errs}

	r.Mux.Handle("GET /users", r.protected(http.HandlerFunc(h.List)))
	r.Mux.Handle("GET /users/{id}", r.protected(http.HandlerFunc(h.Get)))
	r.Mux.Handle("PUT /users/{id}", r.protected(http.HandlerFunc(h.Update)))
}

func (r *Router) registerTasks() {
	h := &TasksHandler{TaskService: r.TaskService, errs: r.errs}

	r.Mux.Handle("GET /tasks", r.protected(http.HandlerFunc(h.List)))
	r.Mux.Handle("POST /tasks", r.protected(http.HandlerFunc(h.Create),
		httpx.ValidateJSON[tasksdk.CreateTaskRequest](r.validator),
	))
	r.Mux.Handle("GET /tasks/{id}", r.protected(http.HandlerFunc(h.Get)))
	r.Mux.Handle("PUT /tasks/{id}", r.protected(http.HandlerFunc(h.Update)))
	r.Mux.Handle("DELETE /tasks/{id}", r.protected(http.HandlerFunc(h.Delete)))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /{$}", WelcomeHandler())

	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
