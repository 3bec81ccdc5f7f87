package main

import (
	"github.com/regbot/server/internal/assistant"
	"github.com/regbot/server/internal/config"
	"github.com/regbot/server/internal/dashboard"
	"github.com/regbot/server/internal/extractor"
	"github.com/regbot/server/internal/guidelines"
	"github.com/regbot/server/internal/ingest"
	"github.com/regbot/server/internal/llm"
	"github.com/regbot/server/internal/retriever"
	"github.com/regbot/server/internal/store"
)

// creates and configures all service clients
func InitializeServices(cfg *config.Config, docs store.DocumentStore, gls store.GuidelineStore) *Services {
	embedder := llm.NewEmbeddingsClient(llm.EmbeddingsConfig{
		APIKey:  cfg.EmbeddingsKey,
		BaseURL: cfg.EmbeddingsURL,
		Model:   cfg.EmbeddingsModel,
	})

	chat := llm.NewGroqClient(llm.GroqConfig{
		APIKey: cfg.GroqKey,
		Model:  cfg.GroqModel,
	})

	pipeline := ingest.New(
		extractor.NewPDF(),
		embedder,
		guidelines.NewKeywordExtractor(),
		docs,
		gls,
	)

	retrieverClient := retriever.New(embedder, docs)

	return &Services{
		Embedder:  embedder,
		Chat:      chat,
		Pipeline:  pipeline,
		Retriever: retrieverClient,
		Assistant: assistant.New(docs, retrieverClient, chat),
		Dashboard: dashboard.New(docs, dashboard.DefaultRiskWeights),
	}
}
