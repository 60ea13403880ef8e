package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/gallery"
	"github.com/Zachkp/portfolio/internal/pages"
	"github.com/Zachkp/portfolio/internal/projects"
)

func (s *Server) registerPages(r gin.IRouter) {
	r.GET("/", s.home)
	r.GET("/projects", s.listing)
	r.GET("/projects/:slug", s.projectDetail)
	r.GET("/projects/:slug/gallery", s.galleryFragment)

	// HTMX timeline fragments
	r.GET("/work-content", s.timeline("Work Experience", content.Experience))
	r.GET("/education-content", s.timeline("Education", content.Education))

	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title": "Privacy Policy",
		})
	})
}

// redirectNavigator turns a page navigation into an HTTP redirect.
type redirectNavigator struct {
	c *gin.Context
}

func (n redirectNavigator) Navigate(path string) {
	n.c.Redirect(http.StatusFound, path)
	n.c.Abort()
}

// htmxNavigator asks HTMX to perform a full page navigation, since a fragment
// request cannot follow a redirect into a different layout.
type htmxNavigator struct {
	c *gin.Context
}

func (n htmxNavigator) Navigate(path string) {
	n.c.Header("HX-Redirect", path)
	n.c.Status(http.StatusOK)
	n.c.Abort()
}

func (s *Server) home(c *gin.Context) {
	snap := s.provider.Snapshot()
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":    "Home",
		"aboutMe":  content.AboutMe,
		"tagline":  content.Tagline,
		"loading":  snap.IsLoading,
		"featured": pages.Cards(projects.Featured(snap.Projects), s.placeholder()),
	})
}

func (s *Server) listing(c *gin.Context) {
	snap := s.provider.Snapshot()
	category := c.Query("category")

	list := snap.Projects
	if category != "" {
		list = projects.InCategory(list, category)
	}

	c.HTML(http.StatusOK, "projects.html", gin.H{
		"title":      "Projects",
		"loading":    snap.IsLoading,
		"cards":      pages.Cards(list, s.placeholder()),
		"categories": projects.Categories(snap.Projects),
		"category":   category,
	})
}

func (s *Server) projectDetail(c *gin.Context) {
	nav := &pages.OnceNavigator{Next: redirectNavigator{c}}
	res := pages.ResolveDetail(s.provider.Snapshot(), c.Param("slug"), nav)

	switch res.State {
	case pages.DetailLoading:
		c.HTML(http.StatusOK, "loading.html", gin.H{
			"title": "Loading",
		})
	case pages.DetailRedirected:
		// the navigator has already written the redirect
	case pages.DetailFound:
		state := gallery.Parse(len(res.Project.Gallery), c.Query(gallery.QueryParam))
		c.HTML(http.StatusOK, "detail.html", gin.H{
			"title": res.Project.Title,
			"view":  pages.NewDetailView(res, state, s.placeholder()),
		})
	}
}

func (s *Server) galleryFragment(c *gin.Context) {
	nav := &pages.OnceNavigator{Next: htmxNavigator{c}}
	res := pages.ResolveDetail(s.provider.Snapshot(), c.Param("slug"), nav)

	switch res.State {
	case pages.DetailLoading:
		c.Status(http.StatusNoContent)
	case pages.DetailRedirected:
	case pages.DetailFound:
		state := gallery.Parse(len(res.Project.Gallery), c.Query(gallery.QueryParam))
		c.HTML(http.StatusOK, "gallery.html", pages.NewModal(res.Project, state, s.placeholder()))
	}
}

func (s *Server) timeline(heading string, entries []content.Entry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "timeline.html", gin.H{
			"heading": heading,
			"entries": entries,
		})
	}
}

func (s *Server) notFound(c *gin.Context) {
	view := pages.NewNotFoundView(c.Request.URL.Path, c.Request.Referer(), c.Request.Host)
	c.HTML(http.StatusNotFound, "404.html", gin.H{
		"title": "Page not found",
		"view":  view,
	})
}
