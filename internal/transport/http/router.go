package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gymtrack/internal/auth"
	"gymtrack/internal/config"
	obsmw "gymtrack/internal/observability/middleware"
	"gymtrack/internal/session"
	"gymtrack/internal/store"
)

type Handler struct {
	auth      *auth.Authenticator
	sessions  *session.Manager
	users     store.UserStore
	exercises store.ExerciseStore
}

func NewRouter(cfg config.Config, authn *auth.Authenticator, sessions *session.Manager, users store.UserStore, exercises store.ExerciseStore) http.Handler {
	h := &Handler{
		auth:      authn,
		sessions:  sessions,
		users:     users,
		exercises: exercises,
	}

	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(cfg.RequestTimeout))
	r.Use(httprate.LimitByIP(cfg.RateLimit, requestRateWindow))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(obsmw.Instrument)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/login", h.login)
	r.Post("/logout", h.logout)

	// Everything under /api requires a live session.
	r.Route("/api", func(r chi.Router) {
		r.Use(h.requireSession)

		r.Get("/users", h.listUsers)
		r.Post("/users", h.createUser)
		r.Get("/users/{name}/sessions", h.getUserSessions)
		r.Post("/users/{name}/sessions", h.addUserSession)
		r.Post("/users/{name}/password", h.changePassword)

		r.Get("/last3/{name}/{exercise}", h.lastThreeSets)

		r.Get("/exercise", h.listExercises)
		r.Post("/exercise", h.addExercise)
	})

	return r
}
