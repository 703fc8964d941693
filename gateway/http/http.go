// Package http provides the HTTP gateway for the gate validation service.
package http

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jamesaoverton/hipc-gates/errors"
	"github.com/jamesaoverton/hipc-gates/metric"
	"github.com/jamesaoverton/hipc-gates/validate"
)

// Config defines the gateway listener settings.
type Config struct {
	Addr            string
	CORSOrigins     []string
	MaxRequestBytes int64
}

// Gateway serves the interactive validation API over HTTP.
type Gateway struct {
	config  Config
	service *validate.Service
	metrics *metric.Registry
	logger  *slog.Logger

	running atomic.Bool

	mu        sync.RWMutex
	server    *http.Server
	startTime time.Time

	requestsTotal   atomic.Uint64
	requestsSuccess atomic.Uint64
	requestsFailed  atomic.Uint64
	bytesSent       atomic.Uint64

	requestsByCode   *prometheus.CounterVec
	requestsInFlight prometheus.Gauge
}

// NewGateway creates an HTTP gateway over the validation service. A nil
// metrics registry disables the /metrics route.
func NewGateway(config Config, service *validate.Service, metrics *metric.Registry, logger *slog.Logger) *Gateway {
	if config.MaxRequestBytes <= 0 {
		config.MaxRequestBytes = 1 << 20
	}
	if logger == nil {
		logger = slog.Default()
	}
	g := &Gateway{
		config:  config,
		service: service,
		metrics: metrics,
		logger:  logger,
	}
	if metrics != nil {
		g.registerMetrics(metrics)
	}
	return g
}

// registerMetrics attaches the gateway's own collectors to the shared
// registry alongside the core set.
func (g *Gateway) registerMetrics(reg metric.Registrar) {
	g.requestsByCode = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hipcgates",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP responses served, by status code.",
	}, []string{"code"})
	g.requestsInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "hipcgates",
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "HTTP requests currently being handled.",
	})

	if err := reg.RegisterCounterVec("Gateway", "http_requests_total", g.requestsByCode); err != nil {
		g.logger.Warn("failed to register gateway counter", "error", err)
		g.requestsByCode = nil
	}
	if err := reg.RegisterGauge("Gateway", "http_requests_in_flight", g.requestsInFlight); err != nil {
		g.logger.Warn("failed to register gateway gauge", "error", err)
		g.requestsInFlight = nil
	}
}

func (g *Gateway) recordResponse(statusCode int) {
	if g.requestsByCode != nil {
		g.requestsByCode.WithLabelValues(fmt.Sprintf("%d", statusCode)).Inc()
	}
}

// getOrGenerateRequestID extracts the request ID from headers or generates a
// new one for request tracing.
func getOrGenerateRequestID(r *http.Request) string {
	if reqID := r.Header.Get("X-Request-ID"); reqID != "" {
		return reqID
	}
	return uuid.New().String()
}

// handlerFunc is a route handler that reports failures as classified
// errors; wrap maps them to status codes and the JSON error envelope.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handler builds the gateway mux with all routes registered.
func (g *Gateway) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", g.wrap(g.handleValidate))
	mux.HandleFunc("/gate", g.wrap(g.handleSpecialGate))
	mux.HandleFunc("/healthz", g.wrap(g.handleHealth))
	if g.metrics != nil {
		mux.Handle("/metrics", g.metrics.Handler())
	}
	return mux
}

// wrap applies the per-request plumbing: request ID, CORS, method filter,
// body size limit, request accounting, and error mapping.
func (g *Gateway) wrap(handler handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := getOrGenerateRequestID(r)
		w.Header().Set("X-Request-ID", requestID)

		g.requestsTotal.Add(1)
		if g.requestsInFlight != nil {
			g.requestsInFlight.Inc()
			defer g.requestsInFlight.Dec()
		}

		if len(g.config.CORSOrigins) > 0 {
			g.applyCORS(w, r)
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}

		if r.Method != http.MethodGet {
			g.writeError(w, http.StatusMethodNotAllowed,
				fmt.Sprintf("method %s not allowed", r.Method))
			g.requestsFailed.Add(1)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, g.config.MaxRequestBytes)
		defer r.Body.Close()

		if err := handler(w, r); err != nil {
			g.writeError(w, mapErrorToHTTPStatus(err), err.Error())
			g.requestsFailed.Add(1)
		}
	}
}

// handleValidate serves GET / with cells and gates query parameters. A gate
// query parameter short-circuits to the special-gate detail, so the
// "?gate=<id>" links in validation output resolve on the same route.
func (g *Gateway) handleValidate(w http.ResponseWriter, r *http.Request) error {
	if r.URL.Path != "/" {
		return errNotFound
	}

	if gate := r.URL.Query().Get("gate"); gate != "" {
		g.writeJSON(w, http.StatusOK, g.service.SpecialGate(gate))
		return nil
	}

	start := time.Now()
	response := g.service.Validate(r.URL.Query().Get("cells"), r.URL.Query().Get("gates"))

	if g.metrics != nil {
		status := "ok"
		if response.GateErrors {
			status = "error"
		}
		g.metrics.CoreMetrics().RecordValidation(status, len(response.Conflicts), time.Since(start))
	}

	g.writeJSON(w, http.StatusOK, response)
	return nil
}

// handleSpecialGate serves GET /gate with a label query parameter.
func (g *Gateway) handleSpecialGate(w http.ResponseWriter, r *http.Request) error {
	label := r.URL.Query().Get("label")
	if label == "" {
		return errors.WrapInvalid(errors.ErrEmptyInput, "Gateway", "handleSpecialGate",
			"label parameter is required")
	}
	g.writeJSON(w, http.StatusOK, g.service.SpecialGate(label))
	return nil
}

// HealthStatus is the /healthz response.
type HealthStatus struct {
	Status          string `json:"status"`
	UptimeSeconds   int64  `json:"uptime_seconds"`
	RequestsTotal   uint64 `json:"requests_total"`
	RequestsSuccess uint64 `json:"requests_success"`
	RequestsFailed  uint64 `json:"requests_failed"`
	BytesSent       uint64 `json:"bytes_sent"`
}

// Health returns a snapshot of gateway health.
func (g *Gateway) Health() HealthStatus {
	g.mu.RLock()
	startTime := g.startTime
	g.mu.RUnlock()

	status := "stopped"
	var uptime int64
	if g.running.Load() {
		status = "ok"
		uptime = int64(time.Since(startTime).Seconds())
	}
	return HealthStatus{
		Status:          status,
		UptimeSeconds:   uptime,
		RequestsTotal:   g.requestsTotal.Load(),
		RequestsSuccess: g.requestsSuccess.Load(),
		RequestsFailed:  g.requestsFailed.Load(),
		BytesSent:       g.bytesSent.Load(),
	}
}

func (g *Gateway) handleHealth(w http.ResponseWriter, _ *http.Request) error {
	g.writeJSON(w, http.StatusOK, g.Health())
	return nil
}

// Start begins serving. It blocks until the listener fails or Stop is
// called.
func (g *Gateway) Start(_ context.Context) error {
	if g.running.Load() {
		return errors.WrapFatal(errors.ErrAlreadyStarted, "Gateway", "Start",
			"gateway already running")
	}

	g.mu.Lock()
	g.running.Store(true)
	g.startTime = time.Now()
	g.server = &http.Server{
		Addr:              g.config.Addr,
		Handler:           g.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	server := g.server
	g.mu.Unlock()

	g.logger.Info("http gateway listening", "addr", g.config.Addr)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		g.running.Store(false)
		return errors.WrapFatal(err, "Gateway", "Start",
			fmt.Sprintf("failed to serve on %s", g.config.Addr))
	}
	return nil
}

// Stop shuts the listener down, waiting up to timeout for in-flight
// requests.
func (g *Gateway) Stop(timeout time.Duration) error {
	if !g.running.Load() {
		return nil
	}

	g.mu.Lock()
	server := g.server
	g.server = nil
	g.running.Store(false)
	g.mu.Unlock()

	if server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return errors.WrapTransient(err, "Gateway", "Stop", "failed to shut down HTTP server")
	}
	return nil
}

// applyCORS applies CORS headers when the request origin is allowed.
func (g *Gateway) applyCORS(w http.ResponseWriter, r *http.Request) {
	origin := r.Header.Get("Origin")

	allowed := false
	for _, allowedOrigin := range g.config.CORSOrigins {
		if allowedOrigin == "*" || allowedOrigin == origin {
			allowed = true
			break
		}
	}
	if !allowed {
		return
	}

	if origin != "" {
		w.Header().Set("Access-Control-Allow-Origin", origin)
	} else {
		w.Header().Set("Access-Control-Allow-Origin", "*")
	}
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Max-Age", "3600")
}

// errNotFound reports a request for an unknown path.
var errNotFound = stderrors.New("resource not found")

// mapErrorToHTTPStatus maps classified errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusInternalServerError
	}
	if stderrors.Is(err, errNotFound) {
		return http.StatusNotFound
	}
	if errors.IsInvalid(err) {
		return http.StatusBadRequest
	}
	if errors.IsTransient(err) {
		if strings.Contains(err.Error(), "timeout") {
			return http.StatusGatewayTimeout
		}
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (g *Gateway) writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	g.recordResponse(statusCode)

	data, err := json.Marshal(payload)
	if err != nil {
		g.logger.Error("failed to encode response", "error", err)
		g.requestsFailed.Add(1)
		return
	}
	if _, err := w.Write(data); err != nil {
		g.requestsFailed.Add(1)
		return
	}
	g.bytesSent.Add(uint64(len(data)))
	g.requestsSuccess.Add(1)
}

// writeError writes the JSON error envelope.
func (g *Gateway) writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	g.recordResponse(statusCode)

	response := map[string]any{
		"error":  message,
		"status": statusCode,
	}
	data, _ := json.Marshal(response)
	_, _ = w.Write(data)
}
