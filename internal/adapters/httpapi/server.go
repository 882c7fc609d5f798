// internal/adapters/httpapi/server.go

// Package httpapi exposes the classification engine over HTTP. It is a
// thin adapter: all classification semantics live in the engine, the
// handlers only translate between JSON and ClassificationResult.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"safelink/internal/core/domain"
	"safelink/internal/core/usecases"
	"safelink/internal/platform/logx"
)

// Server wraps an Engine behind the REST surface.
type Server struct {
	engine *usecases.Engine
	logger logx.Logger
	addr   string
}

// ServerOptions configures the HTTP server.
type ServerOptions struct {
	Engine *usecases.Engine
	Logger logx.Logger
	Addr   string
}

// NewServer creates an HTTP API server around the engine.
func NewServer(opts ServerOptions) *Server {
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	if opts.Addr == "" {
		opts.Addr = ":5000"
	}
	return &Server{
		engine: opts.Engine,
		logger: opts.Logger.With("component", "httpapi"),
		addr:   opts.Addr,
	}
}

// Router builds the chi router with all API routes.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/api/health", s.handleHealth)
	r.Post("/api/scan/url", s.handleScanURL)
	r.Get("/api/model/info", s.handleModelInfo)

	return r
}

// Serve runs the HTTP server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http api listening", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

type scanRequest struct {
	URL string `json:"url"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := s.engine.Status()

	modelStatus := "not_found"
	if status.ModelLoaded {
		modelStatus = "loaded"
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":       "ok",
		"message":      "SafeLink API is running",
		"model_status": modelStatus,
	})
}

func (s *Server) handleScanURL(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "URL is required"})
		return
	}

	rawURL := strings.TrimSpace(req.URL)
	if rawURL == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "URL cannot be empty"})
		return
	}

	result := s.engine.Classify(rawURL)

	if result.Failed() {
		s.logger.Warn("scan failed",
			"input", rawURL,
			"kind", result.FailureKind,
			"error", result.Error,
		)

		// Rejected input is user-correctable; the validator reasons are
		// written to be shown verbatim.
		if result.FailureKind == domain.FailureInvalidURL {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error": result.Error,
				"kind":  result.FailureKind,
				"url":   rawURL,
			})
			return
		}

		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":    result.Error,
			"kind":     result.FailureKind,
			"url":      rawURL,
			"fallback": true,
		})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleModelInfo(w http.ResponseWriter, r *http.Request) {
	status := s.engine.Status()

	writeJSON(w, http.StatusOK, map[string]any{
		"model_loaded":         status.ModelLoaded,
		"scaler_loaded":        status.ScalerLoaded,
		"label_encoder_loaded": status.EncoderLoaded,
		"model_files":          status.ModelFiles,
		"model_used":           s.engine.ModelLabel(),
		"feature_names":        s.engine.FeatureNames(),
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
