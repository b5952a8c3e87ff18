// Package http serves SWML documents over HTTP.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aretw0/swml"
	"github.com/aretw0/swml/internal/logging"
	"github.com/aretw0/swml/pkg/adapters/file"
	"github.com/aretw0/swml/pkg/codec"
	"github.com/aretw0/swml/pkg/ports"
	"github.com/aretw0/swml/pkg/registry"
	"github.com/aretw0/swml/pkg/schema"
)

// maxBodySize bounds POSTed documents.
const maxBodySize = 1 << 20

// Server holds the handler dependencies.
type Server struct {
	Registry *registry.Registry
	Store    ports.DocumentStore
	Strict   bool
	Logger   *slog.Logger
	Metrics  *Metrics
}

// Option configures a Server.
type Option func(*Server)

// WithDir serves documents stored as <dir>/<name>.{json,yaml,yml}.
// An empty dir leaves the /documents routes disabled.
func WithDir(dir string) Option {
	return func(s *Server) {
		if dir != "" {
			s.Store = file.NewStore(dir)
		}
	}
}

// WithStore serves the documents of store under /documents.
func WithStore(store ports.DocumentStore) Option {
	return func(s *Server) { s.Store = store }
}

// WithStrict validates every document before it is served.
func WithStrict(strict bool) Option {
	return func(s *Server) { s.Strict = strict }
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.Logger = l }
}

// NewServer returns a server for the documents in reg.
func NewServer(reg *registry.Registry, opts ...Option) *Server {
	s := &Server{
		Registry: reg,
		Logger:   logging.NewNop(),
		Metrics:  NewMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.Registry == nil {
		s.Registry = registry.NewRegistry()
	}
	return s
}

// NewHandler creates the HTTP handler for reg.
func NewHandler(reg *registry.Registry, opts ...Option) http.Handler {
	return NewServer(reg, opts...).Routes()
}

// Routes mounts every endpoint on a chi router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/healthz", s.Health)
	r.Get("/swml/{name}", s.RenderRegistered)
	r.Get("/documents", s.ListDocuments)
	r.Get("/documents/{name}", s.RenderStored)
	r.Put("/documents/{name}", s.PutDocument)
	r.Post("/validate", s.Validate)
	r.Post("/convert", s.Convert)
	r.Method(http.MethodGet, "/metrics", s.Metrics.Handler())
	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "ok")
}

// RenderRegistered handles GET /swml/{name}. Query parameters other than
// format are passed to the document builder.
func (s *Server) RenderRegistered(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	format, err := negotiate(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := make(map[string]string)
	for k, v := range r.URL.Query() {
		if k == "format" || len(v) == 0 {
			continue
		}
		params[k] = v[0]
	}

	start := time.Now()
	doc, err := s.Registry.Build(r.Context(), name, params)
	switch {
	case errors.Is(err, registry.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case schema.ValidationErrors(err) != nil,
		errors.Is(err, registry.ErrParamTooLarge),
		errors.Is(err, registry.ErrInvalidUTF8):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		s.Logger.Error("build document failed", "name", name, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if s.Strict {
		if err := doc.Validate(); err != nil {
			s.Metrics.ValidationFailures.WithLabelValues("registry").Inc()
			s.Logger.Warn("registered document is invalid", "name", name, "error", err)
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
	}

	s.writeDocument(w, doc, format, "registry", start)
}

func (s *Server) writeDocument(w http.ResponseWriter, doc *swml.Document, f codec.Format, source string, start time.Time) {
	var buf strings.Builder
	if err := doc.Render(&buf, f); err != nil {
		s.Logger.Error("render failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.observe(source, f, start)
	w.Header().Set("Content-Type", f.ContentType())
	io.WriteString(w, buf.String())
}

func (s *Server) observe(source string, f codec.Format, start time.Time) {
	s.Metrics.Rendered.WithLabelValues(source, string(f)).Inc()
	s.Metrics.RenderDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())
}

// ListDocuments handles GET /documents.
func (s *Server) ListDocuments(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		http.NotFound(w, r)
		return
	}
	names, err := s.Store.List(r.Context())
	if err != nil {
		s.Logger.Error("list documents failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"documents": names})
}

// RenderStored handles GET /documents/{name}, converting the stored
// document to the requested format.
func (s *Server) RenderStored(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		http.NotFound(w, r)
		return
	}
	name := chi.URLParam(r, "name")
	format, err := negotiate(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	start := time.Now()
	doc, err := s.Store.Load(r.Context(), name)
	switch {
	case errors.Is(err, ports.ErrInvalidName):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, ports.ErrDocumentNotFound):
		http.NotFound(w, r)
		return
	case err != nil:
		s.Logger.Error("load document failed", "name", name, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	tree, err := codec.Decode(doc.Data, doc.Format)
	if err != nil {
		s.Logger.Warn("stored document is not parseable", "name", name, "error", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if s.Strict {
		if err := schema.ValidateDocument(tree); err != nil {
			s.Metrics.ValidationFailures.WithLabelValues("store").Inc()
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
	}

	out, err := codec.Encode(tree, format)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.observe("store", format, start)
	w.Header().Set("Content-Type", format.ContentType())
	w.Write(out)
}

// PutDocument handles PUT /documents/{name}. The body is validated before it
// is stored in the format given by Content-Type.
func (s *Server) PutDocument(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		http.NotFound(w, r)
		return
	}
	name := chi.URLParam(r, "name")
	if !ports.ValidName(name) {
		http.Error(w, fmt.Sprintf("%v: %q", ports.ErrInvalidName, name), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	f := bodyFormat(r.Header.Get("Content-Type"))
	tree, err := codec.Decode(data, f)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := schema.ValidateDocument(tree); err != nil {
		s.Metrics.ValidationFailures.WithLabelValues("store").Inc()
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	if err := s.Store.Save(r.Context(), name, data, f); err != nil {
		s.Logger.Error("save document failed", "name", name, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.Logger.Info("document stored", "name", name, "format", f)
	w.WriteHeader(http.StatusNoContent)
}

// ValidateResponse is the body returned by POST /validate.
type ValidateResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Validate handles POST /validate.
func (s *Server) Validate(w http.ResponseWriter, r *http.Request) {
	tree, err := s.decodeBody(w, r)
	if err != nil {
		s.Metrics.ValidationFailures.WithLabelValues("request").Inc()
		writeJSON(w, http.StatusBadRequest, ValidateResponse{Errors: []string{err.Error()}})
		return
	}

	resp := ValidateResponse{Valid: true, Errors: []string{}}
	if err := schema.ValidateDocument(tree); err != nil {
		s.Metrics.ValidationFailures.WithLabelValues("request").Inc()
		resp.Valid = false
		if errs := schema.ValidationErrors(err); errs != nil {
			for _, e := range errs {
				resp.Errors = append(resp.Errors, e.Error())
			}
		} else {
			resp.Errors = append(resp.Errors, err.Error())
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Convert handles POST /convert?to=json|yaml. The source format is taken
// from the Content-Type header.
func (s *Server) Convert(w http.ResponseWriter, r *http.Request) {
	to := codec.YAML
	if q := r.URL.Query().Get("to"); q != "" {
		f, err := codec.ParseFormat(q)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		to = f
	}

	start := time.Now()
	tree, err := s.decodeBody(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	out, err := codec.Encode(tree, to)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.observe("convert", to, start)
	w.Header().Set("Content-Type", to.ContentType())
	w.Write(out)
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request) (any, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return codec.Decode(data, bodyFormat(r.Header.Get("Content-Type")))
}

// bodyFormat maps a Content-Type to a codec format. Anything that does not
// mention yaml is read as JSON.
func bodyFormat(contentType string) codec.Format {
	if strings.Contains(strings.ToLower(contentType), "yaml") {
		return codec.YAML
	}
	return codec.JSON
}

// negotiate picks the response format from ?format= or the Accept header.
func negotiate(r *http.Request) (codec.Format, error) {
	if q := r.URL.Query().Get("format"); q != "" {
		return codec.ParseFormat(q)
	}
	if strings.Contains(strings.ToLower(r.Header.Get("Accept")), "yaml") {
		return codec.YAML, nil
	}
	return codec.JSON, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
