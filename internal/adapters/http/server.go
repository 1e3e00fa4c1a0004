package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/bloch"
	"github.com/aretw0/bloch/internal/presentation/circuit"
	"github.com/aretw0/bloch/internal/presentation/page"
	"github.com/aretw0/bloch/pkg/gate"
	"github.com/aretw0/bloch/pkg/qubit"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mitchellh/mapstructure"
)

//go:embed openapi.yaml
var rawSpec []byte

// Engine defines the interface of the render pipeline used by the server.
type Engine interface {
	Render(ctx context.Context, req bloch.Request) (*bloch.Scene, error)
	Catalog() []gate.Entry
}

// Server holds the HTTP handlers.
type Server struct {
	Engine  Engine
	Logger  *slog.Logger
	Metrics http.Handler

	metricsPath string
}

// Option configures the handler returned by NewHandler.
type Option func(*Server)

// WithLogger sets the logger used for request and error logs.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.Logger = l }
}

// WithMetrics mounts h at path, or /metrics when path is empty.
func WithMetrics(path string, h http.Handler) Option {
	return func(s *Server) {
		if path == "" {
			path = "/metrics"
		}
		s.Metrics = h
		s.metricsPath = path
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	server := &Server{Engine: engine, Logger: slog.Default()}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(server.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/", server.GetPage)
	r.Get("/api/gates", server.GetGates)
	r.Get("/api/render/{gate}", server.GetRender)
	r.Get("/circuit/{gate}.png", server.GetCircuit)
	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	if server.Metrics != nil {
		r.Method(http.MethodGet, server.metricsPath, server.Metrics)
	}
	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.Logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// renderQuery holds the optional query parameters shared by the page and
// the JSON API.
type renderQuery struct {
	Gate       string `mapstructure:"gate"`
	Projection string `mapstructure:"projection"`
}

func decodeQuery(values url.Values) (renderQuery, error) {
	flat := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			flat[k] = v[0]
		}
	}
	var q renderQuery
	err := mapstructure.Decode(flat, &q)
	return q, err
}

// parseRequest builds an engine request from user input. Errors are
// client errors.
func parseRequest(gateInput, projectionInput string) (bloch.Request, error) {
	sym, err := gate.Parse(gateInput)
	if err != nil {
		return bloch.Request{}, err
	}
	req := bloch.Request{Gate: sym}
	if projectionInput != "" {
		p, err := qubit.ParseProjection(projectionInput)
		if err != nil {
			return bloch.Request{}, err
		}
		req.Projection = p
	}
	return req, nil
}

// GetPage handles GET /.
func (s *Server) GetPage(w http.ResponseWriter, r *http.Request) {
	q, err := decodeQuery(r.URL.Query())
	if err != nil {
		http.Error(w, "Invalid query", http.StatusBadRequest)
		return
	}
	if q.Gate == "" {
		q.Gate = gate.I.String()
	}

	req, err := parseRequest(q.Gate, q.Projection)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		s.Logger.Warn("GetPage: bad request", "err", err)
		return
	}
	req.SkipImage = true

	scene, err := s.Engine.Render(r.Context(), req)
	if err != nil {
		s.renderFailed(w, "GetPage", err)
		return
	}

	var sb strings.Builder
	if err := page.Render(&sb, scene); err != nil {
		s.renderFailed(w, "GetPage", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(sb.String()))
}

// GetGates handles GET /api/gates.
func (s *Server) GetGates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Logger, s.Engine.Catalog())
}

// GetRender handles GET /api/render/{gate}.
func (s *Server) GetRender(w http.ResponseWriter, r *http.Request) {
	q, err := decodeQuery(r.URL.Query())
	if err != nil {
		http.Error(w, "Invalid query", http.StatusBadRequest)
		return
	}

	req, err := parseRequest(chi.URLParam(r, "gate"), q.Projection)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		s.Logger.Warn("GetRender: bad request", "err", err)
		return
	}

	scene, err := s.Engine.Render(r.Context(), req)
	if err != nil {
		s.renderFailed(w, "GetRender", err)
		return
	}
	writeJSON(w, s.Logger, scene)
}

// GetCircuit handles GET /circuit/{gate}.png.
func (s *Server) GetCircuit(w http.ResponseWriter, r *http.Request) {
	sym, err := gate.Parse(chi.URLParam(r, "gate"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	img, err := circuit.PNG(sym)
	if err != nil {
		s.renderFailed(w, "GetCircuit", err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(img)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Logger, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if doc, err := loadSpec(); err == nil && doc.Info != nil {
		apiVersion = doc.Info.Version
	}

	writeJSON(w, s.Logger, map[string]string{
		"app":         "bloch-http",
		"version":     strings.TrimSpace(bloch.Version),
		"api_version": apiVersion,
	})
}

// renderFailed reports a backend failure without leaking detail.
func (s *Server) renderFailed(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	s.Logger.Error(op+": render failed", "err", err)
	http.Error(w, "Unable to render the Bloch sphere right now", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "err", err)
	}
}

var (
	specOnce sync.Once
	specDoc  *openapi3.T
	specErr  error
)

// loadSpec parses the embedded OpenAPI document once.
func loadSpec() (*openapi3.T, error) {
	specOnce.Do(func() {
		specDoc, specErr = openapi3.NewLoader().LoadFromData(rawSpec)
	})
	return specDoc, specErr
}
