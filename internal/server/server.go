package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"MacdRadar/internal/scheduler"
	"MacdRadar/internal/session"
)

var log = logrus.WithField("component", "server")

// Server exposes scanner state and controls over HTTP.
type Server struct {
	sched *scheduler.Scheduler
	http  *http.Server
}

// New builds the router and binds it to addr. Nothing listens until Start.
func New(addr string, sched *scheduler.Scheduler) *Server {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	s := &Server{sched: sched}

	r.GET("/healthz", s.handleHealth)

	api := r.Group("/api")
	api.GET("/status", s.handleStatus)
	api.GET("/alerts", s.handleAlerts)
	api.POST("/scan", s.handleScan)
	api.POST("/settings", s.handleSettings)

	s.http = &http.Server{Addr: addr, Handler: r}
	return s
}

// Start serves HTTP until Shutdown. A clean stop returns
// http.ErrServerClosed.
func (s *Server) Start() error {
	log.Infof("http server listening on %s", s.http.Addr)
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type statusResponse struct {
	session.Snapshot
	NextRun           *time.Time `json:"next_run,omitempty"`
	CooldownRemaining string     `json:"cooldown_remaining,omitempty"`
}

func (s *Server) handleStatus(c *gin.Context) {
	resp := statusResponse{Snapshot: s.sched.Session.Snapshot()}
	if next := s.sched.NextRun(); !next.IsZero() {
		resp.NextRun = &next
	}
	if ready, remaining := s.sched.Alerts.Throttle().Ready(time.Now()); !ready {
		resp.CooldownRemaining = remaining.Round(time.Second).String()
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleAlerts(c *gin.Context) {
	snap := s.sched.Session.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"intraday": snap.Intraday,
		"daily":    snap.Daily,
	})
}

func (s *Server) handleScan(c *gin.Context) {
	if err := s.sched.TriggerScan(); err != nil {
		if errors.Is(err, scheduler.ErrScanInFlight) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "scan started"})
}

type settingsRequest struct {
	AutoRefresh   *bool `json:"auto_refresh"`
	Notifications *bool `json:"notifications_enabled"`
}

func (s *Server) handleSettings(c *gin.Context) {
	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.AutoRefresh == nil && req.Notifications == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no settings provided"})
		return
	}

	if req.AutoRefresh != nil {
		s.sched.SetAutoRefresh(*req.AutoRefresh)
	}
	if req.Notifications != nil {
		s.sched.SetNotifications(*req.Notifications)
	}
	c.JSON(http.StatusOK, s.sched.Session.Snapshot())
}
