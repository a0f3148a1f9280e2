package health

import (
	"context"
	"net/http"
	"time"

	"investments-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	StatusHealthy   = "Healthy"
	StatusUnhealthy = "Unhealthy"

	SwaggerIndex = "/swagger/index.html"
)

// Pinger is satisfied by *database.Database.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthReport struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Version     string    `json:"version"`
	Environment string    `json:"environment"`
}

type DatabaseReport struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type PingReport struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}

// Problem is the RFC 7807 body served by /error.
type Problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

type Handler struct {
	db          Pinger
	version     string
	environment string
	redact      func(string) string
	logger      *logger.Logger
	now         func() time.Time
}

func NewHandler(db Pinger, version, environment string, redact func(string) string, log *logger.Logger) *Handler {
	if redact == nil {
		redact = func(s string) string { return s }
	}
	return &Handler{
		db:          db,
		version:     version,
		environment: environment,
		redact:      redact,
		logger:      log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Health godoc
// @Summary      Liveness check
// @Description  Answers without touching the database
// @Tags         System
// @Produce      json
// @Success      200  {object}  health.HealthReport
// @Router       /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthReport{
		Status:      StatusHealthy,
		Timestamp:   h.now(),
		Version:     h.version,
		Environment: h.environment,
	})
}

// DatabaseHealth godoc
// @Summary      Database reachability check
// @Tags         System
// @Produce      json
// @Success      200  {object}  health.DatabaseReport
// @Failure      503  {object}  health.DatabaseReport
// @Router       /health/database [get]
func (h *Handler) DatabaseHealth(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		message := h.redact(err.Error())
		h.logger.Warnf("Database health check failed: %s", message)
		c.JSON(http.StatusServiceUnavailable, DatabaseReport{
			Status:    StatusUnhealthy,
			Database:  "Disconnected",
			Error:     message,
			Timestamp: h.now(),
		})
		return
	}

	c.JSON(http.StatusOK, DatabaseReport{
		Status:    StatusHealthy,
		Database:  "Connected",
		Timestamp: h.now(),
	})
}

// Ping godoc
// @Summary      Ping
// @Tags         System
// @Produce      json
// @Success      200  {object}  health.PingReport
// @Router       /ping [get]
func (h *Handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, PingReport{
		Message:   "pong",
		Timestamp: h.now(),
		Status:    "API is running",
	})
}

// Root sends browsers to the API documentation.
func (h *Handler) Root(c *gin.Context) {
	c.Redirect(http.StatusFound, SwaggerIndex)
}

// Error godoc
// @Summary      Generic server error
// @Tags         System
// @Produce      json
// @Failure      500  {object}  health.Problem
// @Router       /error [get]
func (h *Handler) Error(c *gin.Context) {
	c.Header("Content-Type", "application/problem+json")
	c.JSON(http.StatusInternalServerError, Problem{
		Type:   "https://tools.ietf.org/html/rfc9110#section-15.6.1",
		Title:  "Internal server error",
		Status: http.StatusInternalServerError,
		Detail: "An unexpected error occurred. Check the logs for details.",
	})
}
