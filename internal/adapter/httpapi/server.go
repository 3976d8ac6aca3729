package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/simaogato/advisordesk/internal/domain"
	"github.com/simaogato/advisordesk/internal/usecase/notes"
	"github.com/simaogato/advisordesk/internal/usecase/order"
	"github.com/simaogato/advisordesk/internal/usecase/portfolio"
	"github.com/simaogato/advisordesk/internal/usecase/valuation"
)

// Deps are the collaborators the HTTP façade exposes
type Deps struct {
	Clients      domain.ClientDirectory
	Plans        domain.PlanRepository
	Accounts     domain.FundAccountRepository
	Transactions domain.TransactionRepository
	Catalog      domain.FundCatalog
	Portfolio    *portfolio.Service
	Valuation    *valuation.Engine
	Notes        *notes.Service
	Orders       *order.Service
}

// Server is the JSON façade over the console's library boundary. It adds no
// behaviour of its own: every route maps onto one view model or workflow
// command.
type Server struct {
	log  zerolog.Logger
	deps Deps
}

// NewServer creates a new HTTP server instance
func NewServer(log zerolog.Logger, deps Deps) *Server {
	return &Server{
		log:  log.With().Str("component", "httpapi").Logger(),
		deps: deps,
	}
}

// Router builds the chi route tree
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(s.requestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/clients/{clientID}", s.handleClient)
		r.Get("/clients/{clientID}/valuations/{fundID}", s.handleValuation)
		r.Get("/clients/{clientID}/funds/{fundID}/transactions", s.handleTransactions)
		r.Get("/clients/{clientID}/notes", s.handleNotesQuery)
		r.Post("/clients/{clientID}/notes", s.handleNoteAdd)

		r.Get("/companies", s.handleCompanies)
		r.Get("/funds", s.handleFunds)

		r.Post("/workflows", s.handleWorkflowStart)
		r.Get("/workflows/{handle}", s.handleWorkflowGet)
		r.Post("/workflows/{handle}/advance", s.handleWorkflowAdvance)
		r.Get("/workflows/{handle}/candidates", s.handleWorkflowCandidates)
		r.Post("/workflows/{handle}/submit", s.handleWorkflowSubmit)
		r.Delete("/workflows/{handle}", s.handleWorkflowCancel)
	})

	return r
}

// requestLogger logs one line per request
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// respondJSON writes a JSON response body
func (s *Server) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error().Err(err).Msg("failed to encode response")
	}
}

// respondError maps a usecase error onto an HTTP status. Refused workflow
// transitions come back as 422; a stale workflow handle is the only 404 this
// API can produce, since entity lookups fall back to default records.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	}
	s.respondJSON(w, status, map[string]string{"error": err.Error()})
}
