package main

import (
	"github.com/gin-gonic/gin"

	"github.com/regbot/server/internal/assistant"
	"github.com/regbot/server/internal/config"
	"github.com/regbot/server/internal/dashboard"
	"github.com/regbot/server/internal/ingest"
	"github.com/regbot/server/internal/llm"
	"github.com/regbot/server/internal/retriever"
	"github.com/regbot/server/internal/store"
)

// holds all dependencies and state for the API server
type Server struct {
	pg       *store.Postgres // nil when running on the in-memory backend
	config   *config.Config
	docs     store.DocumentStore
	gls      store.GuidelineStore
	services *Services
	router   *gin.Engine
}

// holds all service clients built on top of the stores
type Services struct {
	Embedder  *llm.EmbeddingsClient
	Chat      *llm.GroqClient
	Pipeline  *ingest.Pipeline
	Retriever *retriever.Client
	Assistant *assistant.Assistant
	Dashboard *dashboard.Aggregator
}
