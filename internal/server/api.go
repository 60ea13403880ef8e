package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/pages"
	"github.com/Zachkp/portfolio/internal/projects"
)

type projectResponse struct {
	Project  projects.Project `json:"project"`
	Previous string           `json:"previous"`
	Next     string           `json:"next"`
	Position int              `json:"position"`
	Total    int              `json:"total"`
}

func (s *Server) registerAPI(r gin.IRouter) {
	api := r.Group("/api")
	api.Use(cors.New(corsConfig(s.cfg.Server.CORSOrigins)))

	api.GET("/projects", s.apiProjects)
	api.GET("/projects/:slug", s.apiProject)
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	}
	return cfg
}

func (s *Server) apiProjects(c *gin.Context) {
	c.JSON(http.StatusOK, s.provider.Snapshot())
}

func (s *Server) apiProject(c *gin.Context) {
	snap := s.provider.Snapshot()
	if snap.IsLoading {
		c.Header("Retry-After", "1")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog is loading"})
		return
	}

	res := pages.ResolveDetail(snap, c.Param("slug"), pages.NavigatorFunc(func(string) {}))
	if res.State != pages.DetailFound {
		c.JSON(http.StatusNotFound, gin.H{"error": projects.ErrNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, projectResponse{
		Project:  res.Project,
		Previous: res.Previous.Slug,
		Next:     res.Next.Slug,
		Position: res.Position,
		Total:    res.Total,
	})
}
