// Package chi exposes the string store over HTTP.
package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/strdex/internal/domain"
	"github.com/kailas-cloud/strdex/internal/domain/query/filter"
	healthuc "github.com/kailas-cloud/strdex/internal/usecase/health"
	stringsuc "github.com/kailas-cloud/strdex/internal/usecase/strings"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server holds the HTTP handlers for the string API.
type Server struct {
	strings       *stringsuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(strings *stringsuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		strings: strings,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, codeAlreadyExists),
		sentinelHandler(domain.ErrInvalidInput, http.StatusBadRequest, codeInvalidInput),
		sentinelHandler(domain.ErrInvalidFilter, http.StatusBadRequest, codeInvalidFilter),
		sentinelHandler(domain.ErrEmptyQuery, http.StatusBadRequest, codeEmptyQuery),
	}
	return s
}

// Mount registers all routes on the router.
func (s *Server) Mount(r chi.Router) {
	r.Route("/api/v1/strings", func(r chi.Router) {
		r.Post("/", s.CreateString)
		r.Get("/", s.ListStrings)
		r.Post("/query", s.QueryStrings)
		r.Get("/{value}", s.GetString)
		r.Delete("/{value}", s.DeleteString)
	})
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// CreateString handles POST /api/v1/strings.
func (s *Server) CreateString(w http.ResponseWriter, r *http.Request) {
	var req createStringRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Value == nil {
		s.handleDomainError(w, fmt.Errorf("value is required: %w", domain.ErrInvalidInput))
		return
	}

	rec, err := s.strings.Create(r.Context(), *req.Value)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/strings/"+url.PathEscape(rec.Value()))
	writeJSON(w, http.StatusCreated, recordToResponse(rec))
}

// GetString handles GET /api/v1/strings/{value}.
func (s *Server) GetString(w http.ResponseWriter, r *http.Request) {
	value := pathValue(r)

	rec, err := s.strings.Get(r.Context(), value)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, recordToResponse(rec))
}

// DeleteString handles DELETE /api/v1/strings/{value}.
func (s *Server) DeleteString(w http.ResponseWriter, r *http.Request) {
	value := pathValue(r)

	if err := s.strings.Delete(r.Context(), value); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListStrings handles GET /api/v1/strings with filter query parameters.
func (s *Server) ListStrings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	spec, err := filter.ParseValues(query)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	offset, err := intParam(query, "offset", 0)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	limit, err := intParam(query, "limit", filter.DefaultLimit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	page, total := s.strings.List(r.Context(), spec, offset, limit)

	writeJSON(w, http.StatusOK, listResponse{
		Items:  recordsToResponses(page),
		Total:  total,
		Offset: offset,
		Limit:  limit,
	})
}

// QueryStrings handles POST /api/v1/strings/query: translates a
// natural-language query and evaluates the resulting filter.
func (s *Server) QueryStrings(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	spec, err := s.strings.Translate(req.Query)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	page, total := s.strings.List(r.Context(), spec, 0, filter.DefaultLimit)

	writeJSON(w, http.StatusOK, queryResponse{
		Filters: spec,
		Items:   recordsToResponses(page),
		Total:   total,
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// pathValue extracts the {value} path parameter, unescaping it when the
// router hands back the raw form.
func pathValue(r *http.Request) string {
	value := chi.URLParam(r, "value")
	if unescaped, err := url.PathUnescape(value); err == nil {
		return unescaped
	}
	return value
}

// intParam parses an optional non-negative integer query parameter.
func intParam(values url.Values, key string, def int) (int, error) {
	v := values.Get(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q: %w", key, v, domain.ErrInvalidFilter)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must be non-negative, got %d: %w", key, n, domain.ErrInvalidFilter)
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without
// exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrAlreadyExists,
		domain.ErrInvalidInput,
		domain.ErrInvalidFilter,
		domain.ErrEmptyQuery,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
