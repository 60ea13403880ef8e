package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/contact"
)

func (s *Server) registerContact(r gin.IRouter) {
	// HTMX Contact form endpoint - returns just the form HTML
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"title": "Contact Me",
		})
	})

	r.POST("/contact", s.rateLimited, s.submitContact)
}

func (s *Server) rateLimited(c *gin.Context) {
	if s.limiter.Allow(c.ClientIP()) {
		c.Next()
		return
	}
	c.Header("Retry-After", "60")
	c.HTML(http.StatusTooManyRequests, "contact-error.html", gin.H{
		"error": "You're sending messages too quickly. Please wait a minute and try again.",
	})
	c.Abort()
}

func (s *Server) submitContact(c *gin.Context) {
	msg := contact.Message{
		Name:  c.PostForm("fullName"),
		Email: c.PostForm("email"),
		Body:  c.PostForm("message"),
	}

	if err := msg.Validate(); err != nil {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Please check your details and try again.",
		})
		return
	}

	if err := s.mailer.Send(c.Request.Context(), msg); err != nil {
		if !errors.Is(err, contact.ErrNotConfigured) {
			_ = c.Error(err)
		} else {
			s.log.Warn("contact form submitted but SMTP is not configured")
		}
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}
