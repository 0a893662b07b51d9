// internal/server/server.go
package server

import (
	"context"
	"net/http"
	"time"

	"brand-intake/internal/assessment"
	"brand-intake/internal/common/config"
	"brand-intake/internal/common/logger"
	"brand-intake/internal/intake"
	"brand-intake/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Check is a named readiness probe.
type Check struct {
	Name string
	Fn   func(ctx context.Context) error
}

type Server struct {
	router      *chi.Mux
	store       session.Store
	service     *assessment.Service
	contactLink string
	sessionTTL  time.Duration
	secure      bool
	checks      []Check
	logger      logger.Logger
}

func New(cfg *config.Config, store session.Store, service *assessment.Service, log logger.Logger, checks ...Check) *Server {
	s := &Server{
		router:      chi.NewRouter(),
		store:       store,
		service:     service,
		contactLink: intake.ContactLink(cfg.Contact.Email, cfg.Contact.Subject),
		sessionTTL:  time.Duration(cfg.Session.TTL) * time.Second,
		secure:      cfg.Server.SecureCookies,
		checks:      append([]Check{{Name: "sessions", Fn: store.Ping}}, checks...),
		logger:      log.WithFields(map[string]interface{}{"component": "http"}),
	}

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", HeaderSessionID},
		ExposedHeaders:   []string{HeaderSessionID},
		AllowCredentials: !allowsAnyOrigin(cfg.Server.AllowedOrigins),
		MaxAge:           300,
	}))
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger(s.logger))
	s.router.Use(middleware.Recoverer)

	s.routes()
	return s
}

// allowsAnyOrigin reports a wildcard entry. Cookie sessions are then not
// offered cross-origin.
func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

func (s *Server) routes() {
	s.router.Get("/health", s.handleHealth)
	s.router.Get("/ready", s.handleReady)
	s.router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/contact", s.handleContact)

		r.Route("/wizard", func(r chi.Router) {
			r.Post("/", s.handleCreate)
			r.Get("/", s.handleGet)
			r.Post("/start", s.handleStart)
			r.Put("/answer", s.handleAnswer)
			r.Post("/next", s.handleNext)
			r.Post("/back", s.handleBack)
			r.Post("/kit", s.handleKit)
			r.Post("/restart", s.handleRestart)
		})
	})
}

// Router returns the HTTP handler for the service.
func (s *Server) Router() http.Handler { return s.router }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	status := http.StatusOK
	results := make(map[string]string, len(s.checks))
	for _, c := range s.checks {
		if err := c.Fn(ctx); err != nil {
			status = http.StatusServiceUnavailable
			results[c.Name] = err.Error()
			continue
		}
		results[c.Name] = "ok"
	}
	writeJSON(w, status, map[string]interface{}{"checks": results})
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"link": s.contactLink})
}
