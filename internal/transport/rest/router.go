package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/moreminutes-backend/internal/transport/middleware"
)

// Handlers groups every REST handler the router mounts.
type Handlers struct {
	Health  *HealthHandler
	Auth    *AuthHandler
	Actions *ActionsHandler
	Time    *TimeHandler
	Admin   *AdminHandler
}

// RouterOptions carries the middleware that depends on runtime wiring.
type RouterOptions struct {
	// Global wraps every route, outermost first.
	Global []middleware.Middleware
	// Authenticate resolves the bearer token into the request context.
	Authenticate middleware.Middleware
	// AuthLimit throttles the unauthenticated auth endpoints.
	AuthLimit middleware.Middleware
	// Metrics serves the Prometheus scrape endpoint when non-nil.
	Metrics     http.Handler
	MetricsPath string
}

// NewRouter builds the HTTP routing tree.
func NewRouter(h Handlers, opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	for _, mw := range opts.Global {
		r.Use(mw)
	}

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)
	if opts.Metrics != nil {
		r.Method(http.MethodGet, opts.MetricsPath, opts.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(opts.Authenticate)

		r.Group(func(r chi.Router) {
			if opts.AuthLimit != nil {
				r.Use(opts.AuthLimit)
			}
			r.Post("/auth/register", h.Auth.Register)
			r.Post("/auth/login", h.Auth.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser)

			r.Get("/auth/me", h.Auth.Me)
			r.Put("/auth/profile", h.Auth.UpdateProfile)

			r.Route("/actions", func(r chi.Router) {
				r.Get("/", h.Actions.List)
				r.Get("/today", h.Actions.Today)
				r.Get("/hidden", h.Actions.Hidden)
				r.Post("/custom", h.Actions.AddCustom)
				r.Post("/edit", h.Actions.Edit)
				r.Post("/delete", h.Actions.Delete)
				r.Post("/restore", h.Actions.Restore)
			})

			r.Route("/time", func(r chi.Router) {
				r.Get("/", h.Time.Totals)
				r.Post("/add", h.Time.Add)
				r.Post("/reset", h.Time.Reset)
				r.Post("/reset-today", h.Time.ResetToday)
				r.Get("/history", h.Time.History)
			})

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", h.Admin.Users)
				r.Get("/{userID}/actions", h.Admin.UserHistory)
				r.Post("/{userID}/reset", h.Admin.ResetUser)
			})
		})
	})

	return r
}
