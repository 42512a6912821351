// Package server exposes the three dispatch entry points over HTTP,
// mirroring the hosted function routes the frontend and scheduler call,
// plus health and metrics endpoints.
package server

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"salt-notifier/internal/common/logger"
	"salt-notifier/internal/dispatch"
)

// Runner is the dispatch surface the HTTP handlers invoke.
type Runner interface {
	RunSignups(ctx context.Context) (*dispatch.Summary, error)
	RunCancellations(ctx context.Context) (*dispatch.Summary, error)
	RunReminders(ctx context.Context) (*dispatch.ReminderSummary, error)
}

// Pinger reports backend liveness for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	router     *gin.Engine
	dispatcher Runner
	logger     logger.Logger

	postgres Pinger
	redis    Pinger // nil when the scheduler (and its lock) is disabled
}

func New(dispatcher Runner, postgres, redis Pinger, log logger.Logger) *Server {
	s := &Server{
		dispatcher: dispatcher,
		logger:     log.WithFields(map[string]interface{}{"component": "server"}),
		postgres:   postgres,
		redis:      redis,
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"authorization", "x-client-info", "apikey", "content-type"}
	corsConfig.OptionsResponseStatusCode = http.StatusOK
	r.Use(cors.New(corsConfig))

	// Any verb but OPTIONS triggers the dispatch; the hosted platform the
	// routes are modeled on does not discriminate by method.
	r.Any("/functions/send-signup-notification", s.handleSignups)
	r.Any("/functions/send-cancellation-notification", s.handleCancellations)
	r.Any("/functions/send-event-reminders", s.handleReminders)

	r.GET("/healthz", s.handleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

// Handler returns the underlying http.Handler, used by main and by tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run(addr string) error {
	s.logger.Info("HTTP server listening", map[string]interface{}{"address": addr})
	return s.router.Run(addr)
}

func (s *Server) handleSignups(c *gin.Context) {
	if preflight(c) {
		return
	}

	summary, err := s.dispatcher.RunSignups(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	if summary.Total == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No signup/approval notifications to send", "count": 0})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) handleCancellations(c *gin.Context) {
	if preflight(c) {
		return
	}

	summary, err := s.dispatcher.RunCancellations(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	if summary.Total == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No cancellation notifications to send", "count": 0})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) handleReminders(c *gin.Context) {
	if preflight(c) {
		return
	}

	summary, err := s.dispatcher.RunReminders(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	if summary.StudentReminders.Total == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No reminders to send", "count": 0})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) handleHealth(c *gin.Context) {
	ctx := c.Request.Context()

	if err := s.postgres.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "postgres": err.Error()})
		return
	}
	if s.redis != nil {
		if err := s.redis.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "redis": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) fail(c *gin.Context, err error) {
	s.logger.WithError(err).Error("Dispatch run failed", map[string]interface{}{
		"path": c.Request.URL.Path,
	})
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// preflight answers CORS preflight requests on the function routes with a
// bare 200, matching the behavior callers already depend on.
func preflight(c *gin.Context) bool {
	if c.Request.Method != http.MethodOptions {
		return false
	}
	c.String(http.StatusOK, "ok")
	return true
}
