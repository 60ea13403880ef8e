package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Zachkp/portfolio/internal/analytics"
	"github.com/Zachkp/portfolio/internal/logger"
)

const requestIDHeader = "X-Request-Id"

// requestIDKey is the key used to store request ID in context
type requestIDKey struct{}

// RequestLogger ensures every request has a stable request ID and logs the
// outcome (method, path, status, latency) once the handler chain returns.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if strings.TrimSpace(rid) == "" {
			rid = uuid.NewString()
		}

		c.Set(logger.RequestIDField, rid)
		ctx := context.WithValue(c.Request.Context(), requestIDKey{}, rid)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set(requestIDHeader, rid)

		start := time.Now()
		c.Next()

		entry := log.WithRequestID(rid).WithFields(map[string]any{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
		})
		if err := c.Errors.Last(); err != nil {
			entry.Error(err.Err, "request failed")
			return
		}
		entry.Debug("request handled")
	}
}

// RequestID extracts the request ID from a standard context.
func RequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// visitorTracking records successful page views in the background. Client IPs
// are hashed by the tracker before they reach the database.
func (s *Server) visitorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if s.tracker == nil || c.Request.Method != http.MethodGet {
			return
		}
		if status := c.Writer.Status(); status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}
		path := c.Request.URL.Path
		if !analytics.ShouldTrack(path, c.GetHeader("DNT")) {
			return
		}

		ip, ua := c.ClientIP(), c.Request.UserAgent()
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.tracker.Record(ctx, ip, ua, path); err != nil {
				s.log.Error(err, "recording visitor failed")
			}
		}()
	}
}
