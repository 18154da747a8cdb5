package api

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/katalvlaran/questpath/service"
)

// RequestIDHeader carries the request id on every response.
const RequestIDHeader = "X-Request-ID"

// Server routes HTTP requests to a service.Service.
type Server struct {
	service service.Service
	router  *mux.Router
	logger  *log.Logger
	timeout time.Duration
	version string
	origins []string

	upgrader *websocket.Upgrader
}

// Option configures NewServer.
type Option func(*Server)

// WithLogger replaces the default logger (log.Default()).
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTimeout bounds every search and plan; 0 disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(s *Server) { s.timeout = d }
}

// WithVersion sets the version reported by /api/health.
func WithVersion(v string) Option {
	return func(s *Server) { s.version = v }
}

// WithAllowedOrigins lists the cross-origin pages allowed to open /ws/plan;
// "*" allows any. Without it only same-origin handshakes are accepted.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) { s.origins = append(s.origins, origins...) }
}

// NewServer creates the router.
func NewServer(svc service.Service, opts ...Option) *Server {
	s := &Server{
		service: svc,
		router:  mux.NewRouter(),
		logger:  log.Default(),
		timeout: 30 * time.Second,
		version: "dev",
	}
	for _, opt := range opts {
		opt(s)
	}
	s.upgrader = newUpgrader(s.origins)

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(s.requestID)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
	api.HandleFunc("/species", s.handleSpecies).Methods("GET")
	api.HandleFunc("/inspect", s.handleInspect).Methods("POST")
	api.HandleFunc("/search", s.handleSearch).Methods("POST")
	api.HandleFunc("/plan", s.handlePlan).Methods("POST")

	s.router.HandleFunc("/ws/plan", s.handlePlanWS)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type requestIDKey struct{}

// RequestID returns the id assigned to the request carried by ctx.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// requestID tags the request with a UUID and logs it once served.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
		s.logger.Printf("[HTTP] id=%s %s %s status=%d dur=%s", id, r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Microsecond))
	})
}

// statusRecorder remembers the status code and keeps hijacking available
// for WebSocket upgrades.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("api: response writer cannot be hijacked")
	}
	r.status = http.StatusSwitchingProtocols
	return h.Hijack()
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error":      message,
		"request_id": RequestID(r.Context()),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func (s *Server) context(r *http.Request) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), s.timeout)
}

func decode(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return io.EOF
	}
	return json.NewDecoder(r.Body).Decode(v)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": s.version,
	})
}

func (s *Server) handleSpecies(w http.ResponseWriter, r *http.Request) {
	species := s.service.Species()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":   len(species),
		"species": species,
	})
}

func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Grid string `json:"grid"`
	}
	if err := decode(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	info, err := s.service.Inspect(req.Grid)
	if err != nil {
		respondError(w, r, statusFor(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, info)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req service.SearchRequest
	if err := decode(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := s.context(r)
	defer cancel()
	res, err := s.service.Search(ctx, req)
	if err != nil {
		respondError(w, r, statusFor(err), err.Error())
		return
	}

	s.logger.Printf("[SEARCH] id=%s alg=%s %s→%s status=%s cost=%d expanded=%d",
		RequestID(r.Context()), res.Algorithm, req.Start, req.Goal, res.Status, res.Cost, res.Expanded)
	respondJSON(w, http.StatusOK, res)
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req service.PlanRequest
	if err := decode(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := s.context(r)
	defer cancel()
	plan, err := s.service.Plan(ctx, req, nil)
	if err != nil {
		respondError(w, r, statusFor(err), err.Error())
		return
	}

	s.logger.Printf("[PLAN] id=%s strategy=%s agents=%d cost=%d feasible=%t",
		RequestID(r.Context()), plan.Strategy, len(plan.Routes), plan.Cost, plan.Feasible)
	respondJSON(w, http.StatusOK, plan)
}
