// Package rest exposes the HTTP API: the public chat endpoint, the
// authenticated record admin API, and the health endpoint.
package rest

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/helpbase/faqdex/internal/domain"
	chatuc "github.com/helpbase/faqdex/internal/usecase/chat"
	healthuc "github.com/helpbase/faqdex/internal/usecase/health"
	recorduc "github.com/helpbase/faqdex/internal/usecase/record"
)

// DefaultMaxQuestionSize caps incoming question length in bytes.
const DefaultMaxQuestionSize = 2048

// Server holds the HTTP handlers.
type Server struct {
	chat            *chatuc.Service
	records         *recorduc.Service
	health          *healthuc.Service
	logger          *zap.Logger
	maxQuestionSize int
}

// NewServer creates an HTTP API server.
func NewServer(
	chat *chatuc.Service,
	records *recorduc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	return &Server{
		chat:            chat,
		records:         records,
		health:          health,
		logger:          logger,
		maxQuestionSize: DefaultMaxQuestionSize,
	}
}

// WithMaxQuestionSize overrides the question length cap.
func (s *Server) WithMaxQuestionSize(n int) *Server {
	if n > 0 {
		s.maxQuestionSize = n
	}
	return s
}

// Routes mounts all handlers. adminAuth guards the record management API;
// chat and health stay public.
func (s *Server) Routes(r chi.Router, adminAuth func(http.Handler) http.Handler) {
	r.Post("/chat", s.handleChat)
	r.Get("/health", s.handleHealth)

	r.Route("/records", func(r chi.Router) {
		r.Use(adminAuth)
		r.Post("/", s.handleCreateRecord)
		r.Post("/import", s.handleImportRecords)
		r.Get("/", s.handleListRecords)
		r.Get("/{id}", s.handleGetRecord)
		r.Delete("/{id}", s.handleDeleteRecord)
	})
}

// handleDomainError maps domain sentinels to HTTP statuses.
func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		writeError(w, http.StatusNotFound, codeRecordNotFound, "record not found")
	case errors.Is(err, domain.ErrInvalidRecord):
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
	case errors.Is(err, domain.ErrTurnInFlight):
		writeError(w, http.StatusTooManyRequests, codeTurnInFlight,
			"a question for this session is already being answered")
	default:
		s.logger.Error("request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}
