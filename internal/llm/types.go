package llm

import (
	"context"
	"errors"
)

// a single chat message in provider wire format
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// generates embeddings from text; output order matches input order 1:1
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// generates a text completion from an ordered message list
type ChatCompleter interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// reported when the embedding provider fails or returns no vectors;
// ingestion must abort without writing a document record
var ErrEmbeddingUnavailable = errors.New("embedding provider unavailable")

// holds configuration for the OpenAI-compatible embeddings client
type EmbeddingsConfig struct {
	APIKey  string
	BaseURL string // defaults to the OpenAI API; any OpenAI-compatible server works
	Model   string // e.g., "text-embedding-3-small"
}

// holds configuration for the Groq chat client
type GroqConfig struct {
	APIKey      string
	Model       string  // e.g., "llama-3.1-8b-instant"
	MaxTokens   int     // max tokens for response
	Temperature float32 // 0.0 to 1.0
}
