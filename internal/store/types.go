package store

import (
	"context"
	"time"
)

// Document is one ingested PDF. Records are append-only: created by the
// ingestion pipeline, never updated or deleted.
type Document struct {
	ID         string
	Text       string
	Embedding  []float32
	Category   string
	FileName   string
	IngestedAt time.Time
}

// Guideline is one rule-like sentence extracted from a document. SourceID
// references the owning document's id; only the Postgres backend enforces
// the reference.
type Guideline struct {
	ID        string
	Text      string
	Embedding []float32
	SourceID  string
	Position  int
}

// SearchResult is a document matched by vector similarity.
type SearchResult struct {
	Document   Document
	Similarity float32
}

// DocumentStore is a key-value plus vector-index collection of documents.
// Conflicting writes to the same id never occur under the pipeline's unique
// id scheme; concurrent appends of distinct ids need no coordination.
type DocumentStore interface {
	Add(ctx context.Context, doc Document) error
	Get(ctx context.Context, ids []string) ([]Document, error)
	List(ctx context.Context) ([]Document, error)
	Query(ctx context.Context, embedding []float32, k int) ([]SearchResult, error)
	Count(ctx context.Context) (int, error)
}

// GuidelineStore holds extracted guidelines, append-only.
type GuidelineStore interface {
	Add(ctx context.Context, guidelines []Guideline) error
	List(ctx context.Context) ([]Guideline, error)
}
