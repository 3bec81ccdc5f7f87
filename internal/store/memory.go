package store

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
)

// MemoryDocuments is an in-memory document store using brute-force cosine
// similarity. Used for tests and VECTOR_BACKEND=memory deployments.
type MemoryDocuments struct {
	mu   sync.RWMutex
	docs []Document
}

func NewMemoryDocuments() *MemoryDocuments {
	return &MemoryDocuments{}
}

func (s *MemoryDocuments) Add(_ context.Context, doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.docs {
		if existing.ID == doc.ID {
			return fmt.Errorf("document id already exists: %s", doc.ID)
		}
	}

	s.docs = append(s.docs, doc)

	return nil
}

func (s *MemoryDocuments) Get(_ context.Context, ids []string) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	var out []Document

	for _, doc := range s.docs {
		if wanted[doc.ID] {
			out = append(out, doc)
		}
	}

	return out, nil
}

func (s *MemoryDocuments) List(_ context.Context) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Document, len(s.docs))
	copy(out, s.docs)

	return out, nil
}

func (s *MemoryDocuments) Query(_ context.Context, embedding []float32, k int) ([]SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if k <= 0 {
		k = 1
	}

	results := make([]SearchResult, 0, len(s.docs))

	for _, doc := range s.docs {
		results = append(results, SearchResult{
			Document:   doc,
			Similarity: cosine(doc.Embedding, embedding),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	if k < len(results) {
		results = results[:k]
	}

	return results, nil
}

func (s *MemoryDocuments) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.docs), nil
}

// MemoryGuidelines is the in-memory guideline collection, append-only in
// insertion order.
type MemoryGuidelines struct {
	mu         sync.RWMutex
	guidelines []Guideline
}

func NewMemoryGuidelines() *MemoryGuidelines {
	return &MemoryGuidelines{}
}

func (s *MemoryGuidelines) Add(_ context.Context, guidelines []Guideline) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.guidelines = append(s.guidelines, guidelines...)

	return nil
}

func (s *MemoryGuidelines) List(_ context.Context) ([]Guideline, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Guideline, len(s.guidelines))
	copy(out, s.guidelines)

	return out, nil
}

func cosine(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64

	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
