package store

import (
	"context"
	"testing"
	"time"
)

func doc(id, category string, embedding []float32) Document {
	return Document{
		ID:         id,
		Text:       "text for " + id,
		Embedding:  embedding,
		Category:   category,
		FileName:   id + ".pdf",
		IngestedAt: time.Now(),
	}
}

func TestMemoryDocumentsAddAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryDocuments()

	if err := s.Add(ctx, doc("a", "DOC", []float32{1, 0})); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := s.Add(ctx, doc("b", "AML", []float32{0, 1})); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	got, err := s.Get(ctx, []string{"b"})
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("expected document b, got %v", got)
	}

	// category is preserved as written
	if got[0].Category != "AML" {
		t.Errorf("expected category AML, got %q", got[0].Category)
	}
}

func TestMemoryDocumentsRejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryDocuments()

	if err := s.Add(ctx, doc("a", "DOC", []float32{1, 0})); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := s.Add(ctx, doc("a", "DOC", []float32{0, 1})); err == nil {
		t.Error("expected duplicate id to be rejected")
	}
}

func TestMemoryDocumentsQueryRanksByCosine(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryDocuments()

	mustAdd := func(d Document) {
		t.Helper()

		if err := s.Add(ctx, d); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	mustAdd(doc("x", "DOC", []float32{1, 0}))
	mustAdd(doc("y", "DOC", []float32{0, 1}))
	mustAdd(doc("z", "DOC", []float32{0.7, 0.7}))

	results, err := s.Query(ctx, []float32{1, 0}, 2)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	if results[0].Document.ID != "x" {
		t.Errorf("expected nearest neighbor x, got %s", results[0].Document.ID)
	}

	if results[0].Similarity < results[1].Similarity {
		t.Error("results not ordered by similarity")
	}
}

func TestMemoryDocumentsQueryEmptyStore(t *testing.T) {
	results, err := NewMemoryDocuments().Query(context.Background(), []float32{1, 0}, 1)
	if err != nil {
		t.Fatalf("query on empty store must not fail: %v", err)
	}

	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestMemoryGuidelinesPreservesOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryGuidelines()

	batch := []Guideline{
		{ID: "d1-0", Text: "first", SourceID: "d1", Position: 0},
		{ID: "d1-1", Text: "second", SourceID: "d1", Position: 1},
	}

	if err := s.Add(ctx, batch); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := s.Add(ctx, []Guideline{{ID: "d2-0", Text: "third", SourceID: "d2", Position: 0}}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	got, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	ids := []string{"d1-0", "d1-1", "d2-0"}
	if len(got) != len(ids) {
		t.Fatalf("expected %d guidelines, got %d", len(ids), len(got))
	}

	for i, id := range ids {
		if got[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestCosine(t *testing.T) {
	cases := []struct {
		name string
		a, b []float32
		want float32
	}{
		{"identical", []float32{1, 0}, []float32{1, 0}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"zero vector", []float32{0, 0}, []float32{1, 0}, 0},
		{"length mismatch", []float32{1}, []float32{1, 0}, 0},
	}

	for _, tc := range cases {
		if got := cosine(tc.a, tc.b); got != tc.want {
			t.Errorf("%s: expected %f, got %f", tc.name, tc.want, got)
		}
	}
}
