package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/tasklight/tasklight/internal/auth"
	"github.com/tasklight/tasklight/internal/observability"
	"github.com/tasklight/tasklight/internal/platform/httpx"
	"github.com/tasklight/tasklight/internal/todo"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger       *slog.Logger
	Config       *Config
	TokenService *auth.TokenService
	AuthHandler  *auth.Handler
	TodoHandler  *todo.Handler
	Metrics      *observability.Metrics
}

// NewRouter constructs the chi.Router with Tasklight defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.Error(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.Error(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	requireAuth := auth.RequireAuth(params.TokenService, params.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			httpx.Success(w, http.StatusOK, map[string]any{"message": "ok"})
		})

		r.Route("/auth", func(r chi.Router) {
			params.AuthHandler.MountRoutes(r)
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Get("/me", params.AuthHandler.HandleMe)
			})
		})

		r.Route("/todos", func(r chi.Router) {
			r.Use(requireAuth)
			params.TodoHandler.MountRoutes(r)
		})
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
