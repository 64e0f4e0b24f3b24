// Package web is the JSON surface over the view-state controller. It does
// no rendering of its own; presentational clients consume its responses.
package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"propluxe/internal/app"
)

type Server struct {
	ctrl   *app.Controller
	form   *app.FormSession
	mux    *http.ServeMux
	logger *slog.Logger
}

func NewServer(ctrl *app.Controller, form *app.FormSession, logger *slog.Logger) *Server {
	s := &Server{
		ctrl:   ctrl,
		form:   form,
		mux:    http.NewServeMux(),
		logger: logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /listings", s.handleBrowse)
	s.mux.HandleFunc("GET /listings/{id}", s.handleGetListing)
	s.mux.HandleFunc("POST /listings", s.handleCreateListing)
	s.mux.HandleFunc("PUT /listings/{id}", s.handleUpdateListing)
	s.mux.HandleFunc("DELETE /listings/{id}", s.handleDeleteListing)
	s.mux.HandleFunc("GET /admin/listings", s.handleAdminListings)
	s.mux.HandleFunc("GET /map/points", s.handleMapPoints)
	s.mux.HandleFunc("POST /geocode", s.handleGeocode)
	s.mux.HandleFunc("POST /describe", s.handleDescribe)
	s.mux.HandleFunc("POST /images", s.handleUploadImage)
}

// securityHeaders adds defensive HTTP response headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.logger, securityHeaders(s.mux)).ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
