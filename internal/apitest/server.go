// Package apitest provides an in-process fake of the shortening API for tests.
package apitest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ytget/url-shortener/internal/model"
)

// Fixed timestamps for generated results
const (
	CreatedAt = "2024-01-01T00:00:00Z"
	ExpiresAt = "2024-02-01T00:00:00Z"
)

// Request is a recorded incoming request
type Request struct {
	Method      string
	Path        string
	ContentType string
	Body        string
}

// Server is a fake backend. Zero failure statuses mean normal behavior.
type Server struct {
	*httptest.Server

	mu             sync.Mutex
	stats          map[string]model.StatsResult
	shortenResult  *model.ShortenResult
	shortenStatus  int
	shortenMessage string
	statsStatus    int
	healthStatus   int
	requests       []Request
	next           int
}

// NewServer starts a fake backend that is closed when the test ends
func NewServer(t testing.TB) *Server {
	s := &Server{
		stats:        make(map[string]model.StatsResult),
		healthStatus: http.StatusOK,
	}

	r := chi.NewRouter()
	r.Use(s.record)
	r.Post("/api/shorten", s.handleShorten)
	r.Get("/api/shorten/{shortCode}/stats", s.handleStats)
	r.Get("/api/health", s.handleHealth)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// AddStats registers statistics served for stats.ShortCode
func (s *Server) AddStats(stats model.StatsResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats[stats.ShortCode] = stats
}

// SetShortenResult fixes the body returned by successful shorten calls
func (s *Server) SetShortenResult(result model.ShortenResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shortenResult = &result
}

// FailShorten makes shorten answer with status; message is sent as {"message": ...} when non-empty
func (s *Server) FailShorten(status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shortenStatus = status
	s.shortenMessage = message
}

// FailStats makes every stats lookup answer with status
func (s *Server) FailStats(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statsStatus = status
}

// SetHealthStatus sets the status of the health endpoint
func (s *Server) SetHealthStatus(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.healthStatus = status
}

// Requests returns the requests received so far
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:      r.Method,
			Path:        r.URL.EscapedPath(),
			ContentType: r.Header.Get("Content-Type"),
			Body:        string(body),
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleShorten(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	status, message, fixed := s.shortenStatus, s.shortenMessage, s.shortenResult
	s.next++
	n := s.next
	s.mu.Unlock()

	if status != 0 {
		if message != "" {
			writeJSON(w, status, model.ErrorBody{Message: message})
			return
		}
		http.Error(w, http.StatusText(status), status)
		return
	}

	var longURL string
	if err := json.NewDecoder(r.Body).Decode(&longURL); err != nil || longURL == "" {
		writeJSON(w, http.StatusBadRequest, model.ErrorBody{Message: "request body must be a JSON string"})
		return
	}

	if fixed != nil {
		writeJSON(w, http.StatusCreated, fixed)
		return
	}

	writeJSON(w, http.StatusCreated, model.ShortenResult{
		ShortCode: fmt.Sprintf("code%d", n),
		URL:       longURL,
		CreatedAt: CreatedAt,
		ExpiresAt: ExpiresAt,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "shortCode")

	s.mu.Lock()
	status := s.statsStatus
	stats, ok := s.stats[code]
	s.mu.Unlock()

	if status != 0 {
		http.Error(w, http.StatusText(status), status)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	status := s.healthStatus
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, "URL Shortener API is running")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
