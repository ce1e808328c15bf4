package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

const livenessMessage = "Booking API is running"

// HealthHandler handles GET / — liveness probe. Returns a plain-text string
// confirming the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.String(http.StatusOK, livenessMessage)
}

// DependencyPinger reports whether a backing dependency is reachable.
type DependencyPinger interface {
	Ping(ctx context.Context) error
}

type mongoPinger struct {
	db *mongo.Database
}

func (p mongoPinger) Ping(ctx context.Context) error {
	return p.db.Client().Ping(ctx, nil)
}

type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// ReadinessHandler handles GET /health/ready — readiness probe. Checks
// MongoDB and Redis connectivity before declaring the service ready.
type ReadinessHandler struct {
	mongo DependencyPinger
	redis DependencyPinger
}

func NewReadinessHandler(db *mongo.Database, rdb *redis.Client) *ReadinessHandler {
	return &ReadinessHandler{
		mongo: mongoPinger{db: db},
		redis: redisPinger{client: rdb},
	}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	deps := map[string]dependencyStatus{
		"mongo": {Status: "ok"},
		"redis": {Status: "ok"},
	}
	healthy := true

	if err := h.mongo.Ping(ctx); err != nil {
		deps["mongo"] = dependencyStatus{Status: "unavailable", Error: err.Error()}
		healthy = false
	}
	if err := h.redis.Ping(ctx); err != nil {
		deps["redis"] = dependencyStatus{Status: "unavailable", Error: err.Error()}
		healthy = false
	}

	resp := readinessResponse{Status: "ready", Dependencies: deps}
	code := http.StatusOK
	if !healthy {
		resp.Status = "degraded"
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, resp)
}
