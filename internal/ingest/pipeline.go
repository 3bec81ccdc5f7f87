package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/regbot/server/internal/guidelines"
	"github.com/regbot/server/internal/llm"
	"github.com/regbot/server/internal/logger"
	"github.com/regbot/server/internal/store"
)

// category assigned when the upload does not specify one
const DefaultCategory = "DOC"

// number of leading characters returned as the upload preview
const previewLength = 300

// TextExtractor converts an uploaded byte stream to plain text.
type TextExtractor interface {
	Extract(data []byte) (string, error)
}

// Pipeline orchestrates one upload: extraction, embedding, and the writes to
// both collections.
type Pipeline struct {
	extractor TextExtractor
	embedder  llm.Embedder
	rules     guidelines.Extractor
	docs      store.DocumentStore
	gls       store.GuidelineStore
}

// Result is the outcome of one ingestion.
type Result struct {
	ID         string `json:"id"`
	Preview    string `json:"preview"`
	Guidelines int    `json:"guidelines"`
}

func New(extractor TextExtractor, embedder llm.Embedder, rules guidelines.Extractor, docs store.DocumentStore, gls store.GuidelineStore) *Pipeline {
	return &Pipeline{
		extractor: extractor,
		embedder:  embedder,
		rules:     rules,
		docs:      docs,
		gls:       gls,
	}
}

// Ingest processes one upload. The document write is atomic with its
// embedding: an embedding failure aborts before anything is stored.
// Guideline storage is best-effort; its failure never undoes the document.
func (p *Pipeline) Ingest(ctx context.Context, data []byte, fileName, category string) (*Result, error) {
	if category == "" {
		category = DefaultCategory
	}

	text, err := p.extractor.Extract(data)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text: %w", err)
	}

	docID := newDocumentID(fileName)

	vectors, err := p.embedder.Embed(ctx, []string{text})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", llm.ErrEmbeddingUnavailable, err)
	}

	if len(vectors) == 0 {
		return nil, fmt.Errorf("%w: provider returned no vectors", llm.ErrEmbeddingUnavailable)
	}

	doc := store.Document{
		ID:         docID,
		Text:       text,
		Embedding:  vectors[0],
		Category:   category,
		FileName:   fileName,
		IngestedAt: time.Now(),
	}

	if err := p.docs.Add(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	stored := p.storeGuidelines(ctx, docID, text)

	return &Result{
		ID:         docID,
		Preview:    preview(text),
		Guidelines: stored,
	}, nil
}

// extracts and stores guidelines for a committed document, returning how
// many were stored. Failures here are logged only: the document record
// already stands and is not rolled back over a secondary feature.
func (p *Pipeline) storeGuidelines(ctx context.Context, docID, text string) int {
	found := p.rules.Extract(text)
	if len(found) == 0 {
		return 0
	}

	vectors, err := p.embedder.Embed(ctx, found)
	if err != nil {
		logger.ErrorErr(err, "guideline embedding failed, document kept", "document_id", docID)
		return 0
	}

	if len(vectors) != len(found) {
		logger.Error("guideline embedding count mismatch, document kept",
			"document_id", docID,
			"expected", len(found),
			"got", len(vectors),
		)

		return 0
	}

	batch := make([]store.Guideline, len(found))

	for i, g := range found {
		batch[i] = store.Guideline{
			ID:        fmt.Sprintf("%s-%d", docID, i),
			Text:      g,
			Embedding: vectors[i],
			SourceID:  docID,
			Position:  i,
		}
	}

	if err := p.gls.Add(ctx, batch); err != nil {
		logger.ErrorErr(err, "guideline storage failed, document kept", "document_id", docID)
		return 0
	}

	return len(batch)
}

// builds a document id unique across concurrent uploads: the uuid fragment
// disambiguates uploads landing in the same nanosecond
func newDocumentID(fileName string) string {
	return fmt.Sprintf("%d-%s-%s", time.Now().UnixNano(), uuid.NewString()[:8], fileName)
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLength {
		return text
	}

	return string(runes[:previewLength])
}
