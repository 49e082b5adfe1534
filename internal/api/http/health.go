package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/procoat-sa/site-backend/internal/db"
)

type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Service     string    `json:"service"`
	Version     string    `json:"version"`
	Environment string    `json:"environment"`
	DB          string    `json:"db"`
	Offline     bool      `json:"offline"`
	Projects    int64     `json:"projects"`
}

// ProjectCounter reports how many portfolio entries exist; backed by the
// projects repository.
type ProjectCounter interface {
	Count(ctx context.Context) (int64, error)
}

type HealthHandler struct {
	serviceName string
	version     string
	environment string
	db          *db.DB
	projects    ProjectCounter
}

func NewHealthHandler(serviceName, version, environment string, database *db.DB, projects ProjectCounter) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		environment: environment,
		db:          database,
		projects:    projects,
	}
}

// HealthCheck reports database reachability and the project count. A missing
// or placeholder DATABASE_URL is a degraded state, not a hard failure; only a
// configured-but-unreachable database returns 503.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	resp := HealthResponse{
		Status:      "ok",
		Timestamp:   time.Now().UTC(),
		Service:     h.serviceName,
		Version:     h.version,
		Environment: h.environment,
		DB:          "up",
	}

	code := http.StatusOK

	switch {
	case h.db.Offline():
		resp.Status = "degraded"
		resp.DB = "offline"
		resp.Offline = true
	default:
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		if err := h.db.Ping(pingCtx); err != nil {
			resp.Status = "down"
			resp.DB = "down"
			code = http.StatusServiceUnavailable
		}
	}

	if h.projects != nil {
		if n, err := h.projects.Count(c.Request.Context()); err == nil {
			resp.Projects = n
		}
	}

	c.JSON(code, resp)
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/api/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
