package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/regbot/server/internal/guidelines"
	"github.com/regbot/server/internal/llm"
	"github.com/regbot/server/internal/store"
)

// treats the upload bytes as plain text; ingestion tests don't need a real PDF
type plainTextExtractor struct{}

func (plainTextExtractor) Extract(data []byte) (string, error) {
	return string(data), nil
}

type failingExtractor struct{ err error }

func (f failingExtractor) Extract(_ []byte) (string, error) {
	return "", f.err
}

// implements llm.Embedder for testing
type mockEmbedder struct {
	failAfter int // fail on call number > failAfter; 0 means never fail
	calls     int
}

func (m *mockEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	m.calls++

	if m.failAfter > 0 && m.calls > m.failAfter {
		return nil, errors.New("provider timeout")
	}

	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{float32(len(texts[i])), 1}
	}

	return vectors, nil
}

type failingEmbedder struct{}

func (failingEmbedder) Embed(_ context.Context, _ []string) ([][]float32, error) {
	return nil, errors.New("provider unreachable")
}

func newTestPipeline(embedder llm.Embedder, docs store.DocumentStore, gls store.GuidelineStore) *Pipeline {
	return New(plainTextExtractor{}, embedder, guidelines.NewKeywordExtractor(), docs, gls)
}

func TestIngestStoresDocumentAndGuidelines(t *testing.T) {
	ctx := context.Background()
	docs := store.NewMemoryDocuments()
	gls := store.NewMemoryGuidelines()
	p := newTestPipeline(&mockEmbedder{}, docs, gls)

	text := "Users must complete training.\nThis is a neutral sentence."

	result, err := p.Ingest(ctx, []byte(text), "policy.pdf", "AML")
	if err != nil {
		t.Fatalf("ingest failed: %v", err)
	}

	if result.Guidelines != 1 {
		t.Errorf("expected 1 guideline stored, got %d", result.Guidelines)
	}

	if result.Preview != text {
		t.Errorf("short text should be its own preview, got %q", result.Preview)
	}

	stored, err := docs.Get(ctx, []string{result.ID})
	if err != nil || len(stored) != 1 {
		t.Fatalf("document not retrievable: %v (%d records)", err, len(stored))
	}

	if stored[0].Category != "AML" {
		t.Errorf("category round-trip failed: got %q", stored[0].Category)
	}

	if stored[0].FileName != "policy.pdf" {
		t.Errorf("expected file name to be stored, got %q", stored[0].FileName)
	}

	allGuidelines, err := gls.List(ctx)
	if err != nil {
		t.Fatalf("list guidelines failed: %v", err)
	}

	if len(allGuidelines) != 1 {
		t.Fatalf("expected 1 guideline record, got %d", len(allGuidelines))
	}

	g := allGuidelines[0]

	if g.ID != result.ID+"-0" {
		t.Errorf("guideline id must be sourceID-index, got %q", g.ID)
	}

	if g.SourceID != result.ID {
		t.Errorf("guideline source must reference the document, got %q", g.SourceID)
	}

	if g.Text != "Users must complete training." {
		t.Errorf("unexpected guideline text: %q", g.Text)
	}
}

func TestIngestDefaultsCategory(t *testing.T) {
	ctx := context.Background()
	docs := store.NewMemoryDocuments()
	p := newTestPipeline(&mockEmbedder{}, docs, store.NewMemoryGuidelines())

	result, err := p.Ingest(ctx, []byte("neutral content only"), "plain.pdf", "")
	if err != nil {
		t.Fatalf("ingest failed: %v", err)
	}

	stored, _ := docs.Get(ctx, []string{result.ID})
	if len(stored) != 1 || stored[0].Category != DefaultCategory {
		t.Errorf("expected default category %q, got %v", DefaultCategory, stored)
	}
}

func TestIngestTwiceProducesDistinctIDs(t *testing.T) {
	ctx := context.Background()
	docs := store.NewMemoryDocuments()
	p := newTestPipeline(&mockEmbedder{}, docs, store.NewMemoryGuidelines())

	first, err := p.Ingest(ctx, []byte("same content"), "same.pdf", "DOC")
	if err != nil {
		t.Fatalf("first ingest failed: %v", err)
	}

	second, err := p.Ingest(ctx, []byte("same content"), "same.pdf", "DOC")
	if err != nil {
		t.Fatalf("second ingest failed: %v", err)
	}

	if first.ID == second.ID {
		t.Fatalf("ids must not collide: %s", first.ID)
	}

	for _, id := range []string{first.ID, second.ID} {
		stored, err := docs.Get(ctx, []string{id})
		if err != nil || len(stored) != 1 {
			t.Errorf("document %s not independently retrievable", id)
		}
	}
}

func TestIngestEmbeddingFailureWritesNothing(t *testing.T) {
	ctx := context.Background()
	docs := store.NewMemoryDocuments()
	p := newTestPipeline(failingEmbedder{}, docs, store.NewMemoryGuidelines())

	_, err := p.Ingest(ctx, []byte("Staff must badge in."), "rules.pdf", "DOC")
	if err == nil {
		t.Fatal("expected embedding failure")
	}

	if !errors.Is(err, llm.ErrEmbeddingUnavailable) {
		t.Errorf("expected ErrEmbeddingUnavailable, got %v", err)
	}

	count, _ := docs.Count(ctx)
	if count != 0 {
		t.Errorf("no document record may exist after embedding failure, found %d", count)
	}
}

func TestIngestGuidelineEmbeddingFailureKeepsDocument(t *testing.T) {
	ctx := context.Background()
	docs := store.NewMemoryDocuments()
	gls := store.NewMemoryGuidelines()

	// first call (document embedding) succeeds, second (guideline batch) fails
	p := newTestPipeline(&mockEmbedder{failAfter: 1}, docs, gls)

	result, err := p.Ingest(ctx, []byte("Visitors must sign the register."), "visitors.pdf", "DOC")
	if err != nil {
		t.Fatalf("ingest must succeed despite guideline embedding failure: %v", err)
	}

	if result.Guidelines != 0 {
		t.Errorf("expected 0 guidelines stored, got %d", result.Guidelines)
	}

	count, _ := docs.Count(ctx)
	if count != 1 {
		t.Errorf("document write must stand, count = %d", count)
	}

	stored, _ := gls.List(ctx)
	if len(stored) != 0 {
		t.Errorf("expected no guideline records, got %d", len(stored))
	}
}

func TestIngestExtractionFailureWritesNothing(t *testing.T) {
	ctx := context.Background()
	docs := store.NewMemoryDocuments()
	extractErr := errors.New("invalid document format")
	p := New(failingExtractor{err: extractErr}, &mockEmbedder{}, guidelines.NewKeywordExtractor(), docs, store.NewMemoryGuidelines())

	_, err := p.Ingest(ctx, []byte("junk"), "junk.bin", "DOC")
	if !errors.Is(err, extractErr) {
		t.Fatalf("expected extraction error to propagate, got %v", err)
	}

	count, _ := docs.Count(ctx)
	if count != 0 {
		t.Errorf("no record may be created for unparseable input, found %d", count)
	}
}

func TestIngestPreviewTruncatesAt300(t *testing.T) {
	ctx := context.Background()
	p := newTestPipeline(&mockEmbedder{}, store.NewMemoryDocuments(), store.NewMemoryGuidelines())

	long := strings.Repeat("a", 1000)

	result, err := p.Ingest(ctx, []byte(long), "long.pdf", "DOC")
	if err != nil {
		t.Fatalf("ingest failed: %v", err)
	}

	if len(result.Preview) != 300 {
		t.Errorf("expected 300-char preview, got %d", len(result.Preview))
	}
}

func TestIngestGuidelineIDsFollowPosition(t *testing.T) {
	ctx := context.Background()
	gls := store.NewMemoryGuidelines()
	p := newTestPipeline(&mockEmbedder{}, store.NewMemoryDocuments(), gls)

	var lines []string
	for i := 0; i < 5; i++ {
		lines = append(lines, fmt.Sprintf("Rule %d: the ledger must balance.", i))
	}

	result, err := p.Ingest(ctx, []byte(strings.Join(lines, "\n")), "ledger.pdf", "DOC")
	if err != nil {
		t.Fatalf("ingest failed: %v", err)
	}

	stored, _ := gls.List(ctx)
	if len(stored) != 5 {
		t.Fatalf("expected 5 guidelines, got %d", len(stored))
	}

	for i, g := range stored {
		want := fmt.Sprintf("%s-%d", result.ID, i)
		if g.ID != want {
			t.Errorf("guideline %d: expected id %q, got %q", i, want, g.ID)
		}

		if g.Position != i {
			t.Errorf("guideline %d: expected position %d, got %d", i, i, g.Position)
		}
	}
}
