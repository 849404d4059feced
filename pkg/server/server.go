// Package server exposes pipeline results over HTTP: an HTML page context
// and a compact JSON summary, both built from the same ResultSet.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/oxygene76/exoscope/internal/types"
	"github.com/oxygene76/exoscope/pkg/analysis"
	"github.com/oxygene76/exoscope/pkg/catalog"
)

const (
	// ConsentCookie holds the visitor's cookie consent choice.
	ConsentCookie = "cookie_consent"
	// RequestIDHeader carries the per-request id.
	RequestIDHeader = "X-Request-ID"
)

// PageContext is what the home page template renders.
type PageContext struct {
	Query           types.Query
	Result          *types.ResultSet
	ChatbotDisabled bool
	Error           string
}

// PlanetsResponse is the compact JSON payload of /get_planets/.
type PlanetsResponse struct {
	Planets []types.DerivedRow `json:"planets"`
	Closest []types.DerivedRow `json:"closest"`
	Summary *types.Summary     `json:"summary"`
	Total   int                `json:"total"`
	Start   int                `json:"start"`
	Count   int                `json:"count"`
}

// Server wires the pipeline to gin routes.
type Server struct {
	manager  *analysis.Manager
	store    *catalog.Store
	defaults types.Query
	logger   *zap.Logger
	engine   *gin.Engine
}

// New builds a server. mode is a gin mode ("debug", "release", "test").
func New(manager *analysis.Manager, store *catalog.Store, defaults types.Query, logger *zap.Logger, mode string) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if mode != "" {
		gin.SetMode(mode)
	}

	s := &Server{
		manager:  manager,
		store:    store,
		defaults: defaults,
		logger:   logger,
	}

	r := gin.New()
	r.Use(gin.Recovery(), s.requestID(), s.accessLog())
	r.SetHTMLTemplate(loadTemplates())

	r.GET("/", s.homePage)
	r.GET("/get_planets/", s.getPlanets)
	r.GET("/healthz", s.health)

	s.engine = r
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("HTTP server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) homePage(c *gin.Context) {
	page := PageContext{
		Query:           s.defaults,
		ChatbotDisabled: chatbotDisabled(c),
	}

	q, err := analysis.ParseQuery(c.Request.URL.Query(), s.defaults)
	if err != nil {
		page.Error = err.Error()
		c.HTML(http.StatusBadRequest, "home.html", page)
		return
	}
	page.Query = q

	result, err := s.manager.Run(q)
	if err != nil {
		s.logger.Error("pipeline failed", zap.Error(err))
		page.Error = "catalog unavailable"
		c.HTML(http.StatusInternalServerError, "home.html", page)
		return
	}
	page.Result = result
	c.HTML(http.StatusOK, "home.html", page)
}

func (s *Server) getPlanets(c *gin.Context) {
	q, err := analysis.ParseQuery(c.Request.URL.Query(), s.defaults)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.manager.Run(q)
	if err != nil {
		s.logger.Error("pipeline failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
		return
	}

	c.JSON(http.StatusOK, PlanetsResponse{
		Planets: result.Page,
		Closest: result.Closest,
		Summary: result.Summary,
		Total:   result.Total,
		Start:   q.Start,
		Count:   q.Count,
	})
}

func (s *Server) health(c *gin.Context) {
	cat := s.store.Current()
	if cat == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "catalog not loaded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"rows":      cat.Len(),
		"excluded":  cat.Excluded,
		"loaded_at": cat.LoadedAt,
	})
}

func chatbotDisabled(c *gin.Context) bool {
	consent, err := c.Cookie(ConsentCookie)
	return err != nil || consent != "accepted"
}

func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			zap.String("request_id", c.GetString("request_id")),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
