// Package server hosts the scoring endpoint the CLI talks to. It exposes a
// single analyze route backed by the matcher.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/ayanchyaziz123/career-AI/internal/matcher"
)

// AnalyzePath is the scoring endpoint route.
const AnalyzePath = "/api/analyze"

// Server wraps the HTTP listener around the matcher.
type Server struct {
	httpServer *http.Server
	matcher    *matcher.Matcher
	logger     *zap.Logger
}

// analyzeRequest mirrors the profile payload the engine posts. Interests and
// work style travel along but do not influence the score.
type analyzeRequest struct {
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	Education  string   `json:"education"`
}

// New creates a server listening on the given port.
func New(port int, m *matcher.Matcher, logger *zap.Logger) *Server {
	s := &Server{matcher: m, logger: logger}

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Handler returns the route mux, separate from Start so tests can drive it
// through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+AnalyzePath, s.handleAnalyze)
	mux.HandleFunc("GET "+AnalyzePath, s.handleStatus)
	return mux
}

// Start blocks serving requests until the listener fails or is shut down.
func (s *Server) Start() error {
	s.logger.Info("scoring server listening", zap.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if req.Experience == "" {
		req.Experience = "2-5"
	}
	if req.Education == "" {
		req.Education = "bachelors"
	}

	careers := s.matcher.Match(req.Skills, req.Experience, req.Education)

	s.logger.Debug("scored analyze request",
		zap.Int("skills", len(req.Skills)),
		zap.String("experience", req.Experience),
		zap.Int("careers", len(careers)),
	)

	s.writeJSON(w, http.StatusOK, map[string]any{"careers": careers})
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "career-ai scoring backend running"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Warn("writing response", zap.Error(err))
	}
}
