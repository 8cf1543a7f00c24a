package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-draft-service/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// draftCounter reports how many drafts are open.
type draftCounter interface {
	Len() int
}

// breakerReporter reports a downstream client's circuit breaker state.
type breakerReporter interface {
	CircuitBreakerState() string
}

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
	drafts   draftCounter
	breaker  breakerReporter
}

// HealthOption configures a HealthHandler.
type HealthOption func(*HealthHandler)

// WithOpenDrafts adds the open draft count to readiness responses.
func WithOpenDrafts(c draftCounter) HealthOption {
	return func(h *HealthHandler) {
		h.drafts = c
	}
}

// WithCircuitBreaker adds the downstream circuit breaker state
// ("closed", "half-open" or "open") to readiness responses.
func WithCircuitBreaker(b breakerReporter) HealthOption {
	return func(h *HealthHandler) {
		h.breaker = b
	}
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry, opts ...HealthOption) *HealthHandler {
	h := &HealthHandler{registry: registry}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. Returns 200 if all checks pass,
// 503 if any check fails, including a draft store at capacity.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	healthy := true
	for name, err := range results {
		if err != nil {
			checks[name] = err.Error()
			healthy = false
		} else {
			checks[name] = statusOK
		}
	}

	status := statusReady
	code := http.StatusOK
	if !healthy {
		status = statusNotReady
		code = http.StatusServiceUnavailable
	}

	body := map[string]any{
		"status": status,
		"checks": checks,
	}
	if h.drafts != nil {
		body["open_drafts"] = h.drafts.Len()
	}
	if h.breaker != nil {
		body["circuit_breaker"] = h.breaker.CircuitBreakerState()
	}
	writeJSON(w, code, body)
}
