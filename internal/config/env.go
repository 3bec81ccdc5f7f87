package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	// vector store backends
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have a .env file
	}

	groqKey := os.Getenv("GROQ_API_KEY")
	embeddingsKey := os.Getenv("EMBEDDINGS_API_KEY")
	databaseURL := os.Getenv("DATABASE_URL")
	backend := os.Getenv("VECTOR_BACKEND")
	environment := os.Getenv("ENVIRONMENT")

	if backend == "" {
		backend = BackendPostgres
	}

	if backend != BackendPostgres && backend != BackendMemory {
		return nil, fmt.Errorf("unsupported VECTOR_BACKEND: %s", backend)
	}

	if groqKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY environment variable is required")
	}

	if embeddingsKey == "" {
		return nil, fmt.Errorf("EMBEDDINGS_API_KEY environment variable is required")
	}

	if backend == BackendPostgres && databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if environment == "" {
		environment = "development"
	}

	groqModel := os.Getenv("GROQ_MODEL")
	if groqModel == "" {
		groqModel = "llama-3.1-8b-instant"
	}

	embeddingsModel := os.Getenv("EMBEDDINGS_MODEL")
	if embeddingsModel == "" {
		embeddingsModel = "text-embedding-3-small"
	}

	return &Config{
		DatabaseURL:     databaseURL,
		GroqKey:         groqKey,
		GroqModel:       groqModel,
		EmbeddingsKey:   embeddingsKey,
		EmbeddingsURL:   os.Getenv("EMBEDDINGS_API_URL"),
		EmbeddingsModel: embeddingsModel,
		VectorBackend:   backend,
		Environment:     environment,
	}, nil
}
