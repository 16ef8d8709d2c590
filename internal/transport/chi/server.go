package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	gochi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/skillmatch/internal/domain"
	healthuc "github.com/kailas-cloud/skillmatch/internal/usecase/health"
	historyuc "github.com/kailas-cloud/skillmatch/internal/usecase/history"
	skilluc "github.com/kailas-cloud/skillmatch/internal/usecase/skill"
)

// defaultSummaryDays is the summary window when ?days= is absent.
const defaultSummaryDays = 30

// bodyOverheadBytes is the JSON envelope allowance on top of the text payload.
const bodyOverheadBytes = 16 << 10

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server serves the skill extraction, matching and history API.
type Server struct {
	skills        *skilluc.Service
	history       *historyuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	validate      *validator.Validate
	maxBodyBytes  int64
	summaryScan   int
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	skills *skilluc.Service,
	history *historyuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		skills:   skills,
		history:  history,
		health:   health,
		logger:   logger,
		validate: validator.New(),
	}
	s.maxBodyBytes = requestBodyLimit(skills.MaxTextBytes())
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidInput, http.StatusBadRequest, ErrorCodeValidationFailed),
		sentinelHandler(domain.ErrTextTooLarge, http.StatusRequestEntityTooLarge, ErrorCodeTextTooLarge),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, ErrorCodeNotFound),
		sentinelHandler(domain.ErrHistoryDisabled, http.StatusServiceUnavailable, ErrorCodeHistoryDisabled),
	}
	return s
}

// WithSummaryScan sets how many recent analyses the summary endpoint reads.
func (s *Server) WithSummaryScan(n int) *Server {
	s.summaryScan = n
	return s
}

// Mount registers the API routes on r.
func (s *Server) Mount(r gochi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.Get("/vocabulary", s.GetVocabulary)
	r.Post("/skills/extract", s.ExtractSkills)
	r.Post("/skills/match", s.MatchSkills)
	r.Post("/analyze", s.Analyze)
	r.Route("/analyses", func(r gochi.Router) {
		r.Get("/", s.ListAnalyses)
		r.Get("/summary", s.GetAnalysisSummary)
		r.Get("/{id}", s.GetAnalysis)
	})
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, ErrorCodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, ErrorCodeBadRequest, "method not allowed")
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// GetVocabulary handles GET /vocabulary.
func (s *Server) GetVocabulary(w http.ResponseWriter, _ *http.Request) {
	vocab := s.skills.Vocabulary()
	writeJSON(w, http.StatusOK, VocabularyResponse{
		Version: vocab.Version(),
		Skills:  vocab.Phrases(),
	})
}

// ExtractSkills handles POST /skills/extract.
func (s *Server) ExtractSkills(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if !s.decode(w, r, &req) {
		return
	}

	found, err := s.skills.ExtractSkills(req.Text)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ExtractResponse{Skills: found})
}

// MatchSkills handles POST /skills/match.
func (s *Server) MatchSkills(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if !s.decode(w, r, &req) {
		return
	}

	result := s.skills.CalculateMatch(req.CandidateSkills, req.ReferenceSkills)
	writeJSON(w, http.StatusOK, matchToResponse(result))
}

// Analyze handles POST /analyze.
func (s *Server) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if !s.decode(w, r, &req) {
		return
	}

	a, err := s.skills.Analyze(r.Context(), skilluc.AnalyzeRequest{
		Label:         req.Label,
		CandidateText: req.ResumeText,
		ReferenceText: req.JobDescription,
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, analysisToResponse(a))
}

// ListAnalyses handles GET /analyses.
func (s *Server) ListAnalyses(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit", 0)
	if !ok {
		return
	}

	items, err := s.history.List(r.Context(), limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	resp := AnalysisListResponse{Items: make([]AnalysisResponse, len(items))}
	for i, a := range items {
		resp.Items[i] = analysisToResponse(a)
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetAnalysisSummary handles GET /analyses/summary.
func (s *Server) GetAnalysisSummary(w http.ResponseWriter, r *http.Request) {
	days, ok := queryInt(w, r, "days", defaultSummaryDays)
	if !ok {
		return
	}

	summary, err := s.history.Summary(r.Context(), days, s.summaryScan)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summaryToResponse(days, summary))
}

// GetAnalysis handles GET /analyses/{id}.
func (s *Server) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	a, err := s.history.Get(r.Context(), gochi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, analysisToResponse(a))
}

// decode reads a JSON body into req and validates it. On failure it writes
// the error response and returns false.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, req any) bool {
	body := r.Body
	if s.maxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	}
	if err := json.NewDecoder(body).Decode(req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, ErrorCodeTextTooLarge,
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return false
		}
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed, validationMessage(err))
		return false
	}
	return true
}

// requestBodyLimit bounds a body carrying up to two texts of maxText bytes.
// maxText <= 0 leaves bodies unbounded.
func requestBodyLimit(maxText int) int64 {
	if maxText <= 0 {
		return 0
	}
	return 2*int64(maxText) + bodyOverheadBytes
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}

	s.logger.Error("Unhandled error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}

func queryInt(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed,
			fmt.Sprintf("%s must be a non-negative integer", name))
		return 0, false
	}
	return v, true
}

func validationMessage(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return fmt.Sprintf("validation error: %s - %s", ve[0].Field(), ve[0].Tag())
	}
	return "validation error: invalid request"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns the sentinel's message for the client without
// exposing wrapped internals. Input errors keep their full text.
func safeDomainMessage(err error) string {
	if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrTextTooLarge) {
		return err.Error()
	}
	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrHistoryDisabled,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}
