package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/flowgate/flowgate/internal/api/handler"
	"github.com/flowgate/flowgate/internal/api/middleware"
	"github.com/flowgate/flowgate/internal/api/response"
	"github.com/flowgate/flowgate/internal/user"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	DBPinger    handler.DBPinger
	UserService *user.Service
	APIKey      string
}

// NewRouter creates and configures a Chi router with all middleware and
// routes. Everything under /api sits behind the shared-secret gate; the
// health probe does not.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)

	// Registered before the route group so the sub-router inherits it.
	notFound := func(w http.ResponseWriter, _ *http.Request) {
		response.Fail(w, response.KindNotFound, "Endpoint not found")
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	healthHandler := handler.NewHealthHandler(deps.DBPinger)
	r.Get("/health", healthHandler.ServeHTTP)

	userHandler := handler.NewUserHandler(deps.UserService)
	r.Route("/api/users", func(r chi.Router) {
		r.Use(middleware.APIKey(deps.APIKey))
		r.Get("/", userHandler.List)
		r.Post("/change-password", userHandler.ChangePassword)
		r.Get("/{email}", userHandler.GetByEmail)
	})

	return r
}
