package server

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/promptdeck/promptdeck-cli/internal/store"
)

// Server exposes the prompts API over HTTP.
type Server struct {
	router *gin.Engine
	store  *store.Store
	logger *zap.Logger
}

// New builds a server around the given store.
func New(st *store.Store, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	s := &Server{
		router: r,
		store:  st,
		logger: logger,
	}
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(requestLogger(logger))
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/prompts", s.listPrompts)
		v1.POST("/prompts", s.createPrompt)
		v1.PUT("/prompts/:id", s.updatePrompt)
		v1.DELETE("/prompts/:id", s.deletePrompt)
	}
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}

// Router returns the underlying gin engine, used by tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP listener on addr.
func (s *Server) Run(addr string) error {
	if s == nil || s.router == nil {
		return errors.New("server: not initialized")
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		addr = ":8750"
	}
	return s.router.Run(addr)
}
