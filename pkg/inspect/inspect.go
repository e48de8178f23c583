package inspect

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/nsgo-dev/nsgo/pkg/element"
)

const tracerName = "github.com/nsgo-dev/nsgo/pkg/inspect"

// Description reports how a tag name resolves.
type Description struct {
	Name         string `json:"name"`
	Known        bool   `json:"known"`
	Class        string `json:"class,omitempty"`
	Kind         string `json:"kind,omitempty"`
	SkipAddToDom bool   `json:"skipAddToDom"`
	InsertChild  bool   `json:"insertChild"`
	RemoveChild  bool   `json:"removeChild"`
	Error        string `json:"error,omitempty"`
}

// Describe resolves name against reg.
func Describe(reg *element.Registry, name string) Description {
	d := Description{Name: name, Known: reg.IsKnown(name)}
	meta := reg.ViewMeta(name)
	d.SkipAddToDom = meta.SkipAddToDom
	d.InsertChild = meta.InsertChild != nil
	d.RemoveChild = meta.RemoveChild != nil
	if !d.Known {
		return d
	}
	cls, err := reg.ViewClass(name)
	if err != nil {
		d.Error = err.Error()
		return d
	}
	d.Class = cls.Name
	d.Kind = cls.Kind.String()
	return d
}

// Server is the inspector HTTP handler.
type Server struct {
	registry *element.Registry
	router   chi.Router
	logger   *slog.Logger
	gatherer prometheus.Gatherer
	tracer   trace.Tracer
	upgrader websocket.Upgrader
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithGatherer sets the metrics source. Default: prometheus.DefaultGatherer.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithTracer sets the tracer. Default: the global otel tracer provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Server) {
		s.tracer = tracer
	}
}

// WithCheckOrigin sets the WebSocket origin check for /probe.
func WithCheckOrigin(fn func(*http.Request) bool) Option {
	return func(s *Server) {
		s.upgrader.CheckOrigin = fn
	}
}

// New creates an inspector for reg.
func New(reg *element.Registry, opts ...Option) *Server {
	s := &Server{
		registry: reg,
		logger:   slog.Default(),
		gatherer: prometheus.DefaultGatherer,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}

	r := chi.NewRouter()
	r.Use(s.trace)
	r.Get("/elements", s.handleList)
	r.Get("/elements/{name}", s.handleDescribe)
	r.Get("/probe", s.handleProbe)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// trace wraps each request in a span.
func (s *Server) trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := s.tracer.Start(r.Context(), r.Method+" "+r.URL.Path,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
			))
		defer span.End()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"elements": s.registry.Names()})
}

func (s *Server) handleDescribe(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	d := Describe(s.registry, name)

	status := http.StatusOK
	switch {
	case !d.Known:
		status = http.StatusNotFound
	case d.Error != "":
		status = http.StatusInternalServerError
		span := trace.SpanFromContext(r.Context())
		span.SetStatus(codes.Error, "view resolution failed")
		span.SetAttributes(attribute.String("element.name", name))
		s.logger.Warn("element resolution failed", "name", name, "error", d.Error)
	}
	writeJSON(w, status, d)
}

func (s *Server) handleProbe(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("probe upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	for {
		msgType, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure) {
				s.logger.Error("probe read error", "error", err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}
		if err := conn.WriteJSON(Describe(s.registry, string(msg))); err != nil {
			if !errors.Is(err, websocket.ErrCloseSent) {
				s.logger.Error("probe write error", "error", err)
			}
			return
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
