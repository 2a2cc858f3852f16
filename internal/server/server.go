package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Config holds the HTTP server settings.
type Config struct {
	Addr string

	// ShutdownTimeout bounds graceful shutdown on Stop.
	ShutdownTimeout time.Duration
}

// DefaultConfig returns the default listen settings.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8475",
		ShutdownTimeout: 10 * time.Second,
	}
}

// Server wraps the gin engine and http.Server lifecycle.
type Server struct {
	cfg    Config
	engine *gin.Engine
	http   *http.Server
}

// New builds the router and returns a Server ready to run.
func New(cfg Config, h *Handlers) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	registerRoutes(engine, h)

	return &Server{
		cfg:    cfg,
		engine: engine,
		http: &http.Server{
			Addr:    cfg.Addr,
			Handler: engine,
		},
	}
}

// Engine exposes the router, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run serves until the listener fails or Stop is called.
func (s *Server) Run() error {
	slog.Info("http server listening", "addr", s.cfg.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop drains in-flight requests and shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()
	return s.http.Shutdown(ctx)
}

func registerRoutes(engine *gin.Engine, h *Handlers) {
	engine.GET("/healthz", h.HandleHealth)

	v1 := engine.Group("/v1")
	{
		v1.POST("/turn", h.HandleTurn)
		v1.POST("/judge", h.HandleJudge)
		v1.GET("/items", h.HandleListItems)

		admin := v1.Group("/admin")
		{
			admin.GET("/sessions", h.HandleListSessions)
			admin.GET("/sessions/:id/turns", h.HandleSessionTurns)
			admin.GET("/llm-requests", h.HandleListLLMRequests)
		}
	}
}
