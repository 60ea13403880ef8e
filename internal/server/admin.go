package server

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/analytics"
	"github.com/Zachkp/portfolio/internal/ui"
)

const (
	adminCookie       = "admin_token"
	adminCookieMaxAge = 3600 * 24
	actionTarget      = "#action-result"
)

// ActionPath is the URL a registered admin action posts to.
func ActionPath(name string) string {
	return "/admin/actions/" + name
}

// AdminAction builds a dashboard button whose handler runs on the server when
// clicked. Failures are reported to sink and never reach the visitor.
func AdminAction(name, label string, variant ui.ButtonVariant, sink ui.DiagnosticSink, fn ui.ClickHandler) *ui.Button {
	return &ui.Button{
		Label:   label,
		Variant: variant,
		Size:    ui.SizeSm,
		Action:  ActionPath(name),
		Target:  actionTarget,
		OnClick: fn,
		Sink:    sink,
	}
}

func (s *Server) registerAdmin(r gin.IRouter) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})
	r.POST("/admin/login", s.adminLogin)
	r.GET("/admin/logout", s.adminLogout)

	// Protected admin routes group
	admin := r.Group("/admin")
	admin.Use(s.adminAuth)

	admin.GET("", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})
	admin.GET("/dashboard", s.adminDashboard)
	admin.GET("/visitors", s.adminVisitors)
	admin.GET("/api/stats", s.adminStatsJSON)
	admin.GET("/export/stats", s.adminExport)
	admin.POST("/actions/:name", s.adminAction)
}

func (s *Server) adminAuth(c *gin.Context) {
	token, err := c.Cookie(adminCookie)
	if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
		c.Redirect(http.StatusFound, "/admin/login")
		c.Abort()
		return
	}
	c.Next()
}

func (s *Server) validCredentials(username, password string) bool {
	want := s.cfg.Admin
	if want.Username == "" || want.Password == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(want.Username))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(want.Password))
	return userOK&passOK == 1
}

func (s *Server) adminLogin(c *gin.Context) {
	log := s.log.WithFields(map[string]any{"client": s.clientHash(c)})

	if !s.validCredentials(c.PostForm("username"), c.PostForm("password")) {
		log.Warn("failed admin login attempt")
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid credentials",
		})
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(adminCookie, s.adminToken, adminCookieMaxAge, "/admin", "", !s.cfg.IsDevelopment(), true)
	log.Info("admin login successful")
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (s *Server) adminLogout(c *gin.Context) {
	c.SetCookie(adminCookie, "", -1, "/admin", "", !s.cfg.IsDevelopment(), true)
	s.log.WithFields(map[string]any{"client": s.clientHash(c)}).Info("admin logout")
	c.Redirect(http.StatusFound, "/admin/login")
}

func (s *Server) clientHash(c *gin.Context) string {
	if s.tracker == nil {
		return ""
	}
	return s.tracker.HashIP(c.ClientIP())
}

func (s *Server) stats(c *gin.Context) (*analytics.Stats, bool) {
	if s.tracker == nil {
		return &analytics.Stats{}, true
	}
	stats, err := s.tracker.Stats(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return nil, false
	}
	return stats, true
}

func (s *Server) adminDashboard(c *gin.Context) {
	stats, ok := s.stats(c)
	if !ok {
		c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
			"title": "Admin",
			"error": "Failed to load statistics",
		})
		return
	}

	snap := s.provider.Snapshot()
	c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
		"title":    "Dashboard",
		"stats":    stats,
		"tracking": s.tracker != nil,
		"actions":  s.actions.Buttons(),
		"projects": len(snap.Projects),
		"loading":  snap.IsLoading,
		"loadedAt": s.provider.LoadedAt(),
	})
}

func (s *Server) adminVisitors(c *gin.Context) {
	var visitors []analytics.Visit
	if s.tracker != nil {
		var err error
		visitors, err = s.tracker.Recent(c.Request.Context(), 200)
		if err != nil {
			_ = c.Error(err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"title": "Admin",
				"error": "Failed to load visitors",
			})
			return
		}
	}

	c.HTML(http.StatusOK, "admin-visitors.html", gin.H{
		"title":    "Visitors",
		"visitors": visitors,
	})
}

func (s *Server) adminStatsJSON(c *gin.Context) {
	stats, ok := s.stats(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) adminExport(c *gin.Context) {
	stats, ok := s.stats(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
		return
	}

	// Set headers for file download
	c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
	s.log.WithFields(map[string]any{"client": s.clientHash(c)}).Info("admin stats exported")
	c.JSON(http.StatusOK, stats)
}

func (s *Server) adminAction(c *gin.Context) {
	name := c.Param("name")
	found, invoked := s.actions.Dispatch(c.Request.Context(), name)

	switch {
	case !found:
		c.HTML(http.StatusNotFound, "action-result.html", gin.H{
			"ok":      false,
			"message": "Unknown action",
		})
	case !invoked:
		c.HTML(http.StatusOK, "action-result.html", gin.H{
			"ok":      false,
			"message": "This action is currently unavailable",
		})
	default:
		s.log.WithRequestID(RequestID(c.Request.Context())).
			WithFields(map[string]any{"action": name}).
			Info("admin action dispatched")
		c.HTML(http.StatusOK, "action-result.html", gin.H{
			"ok":      true,
			"message": "Action triggered",
		})
	}
}
