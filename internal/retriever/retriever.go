package retriever

import (
	"context"
	"fmt"

	"github.com/regbot/server/internal/llm"
	"github.com/regbot/server/internal/store"
)

// fixed retrieval width: questions are answered from the single best document
const topK = 1

// Match is the nearest document for a question.
type Match struct {
	Document   store.Document
	Similarity float32
}

// Client answers free-text questions with the nearest document by vector
// similarity.
type Client struct {
	embedder llm.Embedder
	docs     store.DocumentStore
}

func New(embedder llm.Embedder, docs store.DocumentStore) *Client {
	return &Client{
		embedder: embedder,
		docs:     docs,
	}
}

// Retrieve embeds the question and asks the store for its nearest neighbor.
// An empty store yields (nil, nil): no match is not an error.
func (c *Client) Retrieve(ctx context.Context, question string) (*Match, error) {
	vectors, err := c.embedder.Embed(ctx, []string{question})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", llm.ErrEmbeddingUnavailable, err)
	}

	if len(vectors) == 0 {
		return nil, fmt.Errorf("%w: provider returned no vectors", llm.ErrEmbeddingUnavailable)
	}

	results, err := c.docs.Query(ctx, vectors[0], topK)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search query: %w", err)
	}

	if len(results) == 0 {
		return nil, nil
	}

	return &Match{
		Document:   results[0].Document,
		Similarity: results[0].Similarity,
	}, nil
}
