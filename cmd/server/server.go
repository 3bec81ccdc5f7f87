package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/regbot/server/internal/config"
	"github.com/regbot/server/internal/logger"
	"github.com/regbot/server/internal/store"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	var (
		pg   *store.Postgres
		docs store.DocumentStore
		gls  store.GuidelineStore
	)

	switch cfg.VectorBackend {
	case config.BackendPostgres:
		var err error

		pg, err = store.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		docs = pg.Documents()
		gls = pg.Guidelines()

	case config.BackendMemory:
		logger.Warn("using in-memory vector backend, data will not survive restarts")

		docs = store.NewMemoryDocuments()
		gls = store.NewMemoryGuidelines()

	default:
		return nil, fmt.Errorf("unknown vector backend %q", cfg.VectorBackend)
	}

	services := InitializeServices(cfg, docs, gls)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	server := &Server{
		pg:       pg,
		config:   cfg,
		docs:     docs,
		gls:      gls,
		services: services,
		router:   router,
	}

	RegisterRoutes(router, server)

	return server, nil
}

// releases backend resources, safe on the memory backend
func (s *Server) Close() {
	if s.pg != nil {
		s.pg.Close()
	}
}
