package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/menusys"
	"github.com/aretw0/menusys/internal/validator"
	"github.com/aretw0/menusys/pkg/codec"
	"github.com/aretw0/menusys/pkg/domain"
	"github.com/aretw0/menusys/pkg/observability"
	"github.com/aretw0/menusys/pkg/ports"
	"github.com/aretw0/menusys/pkg/registry"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// MaxDocumentSize bounds PUT bodies.
const MaxDocumentSize = 1 << 20

// Server serves menu documents from a DocumentStore.
// Documents are stored as canonical XML; GET can convert them on the fly.
type Server struct {
	Store   ports.DocumentStore
	Streams *StreamManager

	resolver domain.Resolver
	strict   bool
	gatherer prometheus.Gatherer
	logger   *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithResolver sets the resolver used to check handler names on upload.
// The default accepts any name.
func WithResolver(resolver domain.Resolver) Option {
	return func(s *Server) {
		s.resolver = resolver
	}
}

// WithStrict rejects uploads containing unknown elements.
func WithStrict(strict bool) Option {
	return func(s *Server) {
		s.strict = strict
	}
}

// WithMetrics exposes g on GET /metrics.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewHandler creates a new HTTP handler for the document store.
func NewHandler(store ports.DocumentStore, opts ...Option) http.Handler {
	s := &Server{
		Store:    store,
		Streams:  NewStreamManager(),
		resolver: registry.Placeholder{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Streams.logger = s.logger

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/events", s.SubscribeEvents)

	r.Route("/menus", func(r chi.Router) {
		r.Get("/", s.ListMenus)
		r.Get("/{name}", s.GetMenu)
		r.Put("/{name}", s.PutMenu)
		r.Delete("/{name}", s.DeleteMenu)
	})

	if s.gatherer != nil {
		r.Handle("/metrics", observability.Handler(s.gatherer))
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":     "menusys-http",
		"version": strings.TrimSpace(menusys.Version),
	})
}

// ListMenus handles the GET /menus request.
func (s *Server) ListMenus(w http.ResponseWriter, r *http.Request) {
	names, err := s.Store.List(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"menus": names})
}

// GetMenu handles the GET /menus/{name} request.
// The optional format query parameter converts the stored document.
func (s *Server) GetMenu(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	format, err := codec.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	data, err := s.Store.Get(r.Context(), name)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}

	if format == codec.FormatAuto || format == codec.FormatXML {
		w.Header().Set("Content-Type", "application/xml")
		w.Write(data)
		return
	}

	menu, err := codec.New("", s.resolver, codec.WithReader(bytes.NewReader(data)), codec.WithFormat(codec.FormatXML)).Load(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	var buf bytes.Buffer
	if err := codec.New("", nil, codec.WithWriter(&buf), codec.WithFormat(format)).Save(r.Context(), menu); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	w.Write(buf.Bytes())
}

// PutMenu handles the PUT /menus/{name} request.
// The body is decoded, validated and stored as canonical XML.
func (s *Server) PutMenu(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	format, err := codec.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if format == codec.FormatAuto && strings.Contains(r.Header.Get("Content-Type"), "yaml") {
		format = codec.FormatYAML
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxDocumentSize))
	if err != nil {
		s.writeError(w, http.StatusRequestEntityTooLarge, err)
		return
	}

	menu, err := codec.New("", s.resolver,
		codec.WithReader(bytes.NewReader(body)),
		codec.WithFormat(format),
		codec.WithStrict(s.strict),
	).Load(r.Context())
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	if err := validator.ValidateMenu(menu); err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	var canonical bytes.Buffer
	if err := codec.New("", nil, codec.WithWriter(&canonical), codec.WithFormat(codec.FormatXML)).Save(r.Context(), menu); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if err := s.Store.Put(r.Context(), name, canonical.Bytes()); err != nil {
		s.writeStoreError(w, err)
		return
	}

	s.logger.Info("menu stored", "name", name, "title", menu.Title)
	s.Streams.Broadcast(name, Event{Type: EventPut, Name: name})
	w.WriteHeader(http.StatusNoContent)
}

// DeleteMenu handles the DELETE /menus/{name} request.
func (s *Server) DeleteMenu(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := s.Store.Delete(r.Context(), name); err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.logger.Info("menu deleted", "name", name)
	s.Streams.Broadcast(name, Event{Type: EventDelete, Name: name})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrDocumentNotFound):
		s.writeError(w, http.StatusNotFound, err)
	case errors.Is(err, domain.ErrInvalidName):
		s.writeError(w, http.StatusBadRequest, err)
	default:
		s.writeError(w, http.StatusInternalServerError, err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "status", status, "err", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "err", err)
	}
}
