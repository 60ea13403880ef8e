package server

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/projects"
)

const serviceName = "portfolio"

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	DB        string    `json:"db,omitempty"`
	Catalog   string    `json:"catalog"`
	Projects  int       `json:"projects"`
}

type HealthHandler struct {
	version  string
	db       *sql.DB
	provider *projects.Provider
}

func NewHealthHandler(version string, db *sql.DB, provider *projects.Provider) *HealthHandler {
	return &HealthHandler{
		version:  version,
		db:       db,
		provider: provider,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	dbStatus := "disabled"
	if h.db != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		if err := h.db.PingContext(pingCtx); err != nil {
			dbStatus = "down"
		} else {
			dbStatus = "up"
		}
	}

	snap := h.provider.Snapshot()
	catalog := "ready"
	if snap.IsLoading {
		catalog = "loading"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   serviceName,
		Version:   h.version,
		DB:        dbStatus,
		Catalog:   catalog,
		Projects:  len(snap.Projects),
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
