package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/regbot/server/internal/llm"
	"github.com/regbot/server/internal/logger"
	"github.com/regbot/server/internal/retriever"
	"github.com/regbot/server/internal/store"
)

// reported when an operation references a document id absent from the store
var ErrDocumentNotFound = errors.New("document not found")

// Retriever finds the nearest document for a question.
type Retriever interface {
	Retrieve(ctx context.Context, question string) (*retriever.Match, error)
}

// one entry of a generated compliance checklist
type ChecklistItem struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// Assistant runs the LLM-backed document operations. Completion failures
// degrade to an inline error string in the response, never a failed request.
type Assistant struct {
	docs      store.DocumentStore
	retriever Retriever
	chat      llm.ChatCompleter
}

func New(docs store.DocumentStore, ret Retriever, chat llm.ChatCompleter) *Assistant {
	return &Assistant{
		docs:      docs,
		retriever: ret,
		chat:      chat,
	}
}

// Summarize produces a short summary of one document.
func (a *Assistant) Summarize(ctx context.Context, docID string) (string, error) {
	text, err := a.documentText(ctx, docID)
	if err != nil {
		return "", err
	}

	return a.complete(ctx, summarizePrompt, text), nil
}

// ExtractRules asks the model for the document's rules as one line each.
func (a *Assistant) ExtractRules(ctx context.Context, docID string) ([]string, error) {
	text, err := a.documentText(ctx, docID)
	if err != nil {
		return nil, err
	}

	raw := a.complete(ctx, rulesPrompt, text)

	var rules []string

	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			rules = append(rules, trimmed)
		}
	}

	return rules, nil
}

// Checklist builds a compliance checklist from one document. Lines shaped
// "Title - Detail" split on the first dash; the rest become title-only items.
func (a *Assistant) Checklist(ctx context.Context, docID string) ([]ChecklistItem, error) {
	text, err := a.documentText(ctx, docID)
	if err != nil {
		return nil, err
	}

	raw := a.complete(ctx, checklistPrompt, text)

	var items []ChecklistItem

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if title, detail, found := strings.Cut(line, "-"); found {
			items = append(items, ChecklistItem{
				Title:  strings.TrimSpace(title),
				Detail: strings.TrimSpace(detail),
			})
		} else {
			items = append(items, ChecklistItem{Title: line})
		}
	}

	return items, nil
}

// Ask answers a free-text question with the nearest document as context.
func (a *Assistant) Ask(ctx context.Context, question string) (string, error) {
	match, err := a.retriever.Retrieve(ctx, question)
	if err != nil {
		return "", fmt.Errorf("failed to retrieve context: %w", err)
	}

	docContext := noMatchContext
	if match != nil {
		docContext = match.Document.Text
	}

	user := fmt.Sprintf("Context:\n%s\n\nQuestion: %s", docContext, question)

	return a.complete(ctx, askPrompt, user), nil
}

func (a *Assistant) documentText(ctx context.Context, docID string) (string, error) {
	docs, err := a.docs.Get(ctx, []string{docID})
	if err != nil {
		return "", fmt.Errorf("failed to fetch document: %w", err)
	}

	if len(docs) == 0 {
		return "", ErrDocumentNotFound
	}

	return docs[0].Text, nil
}

// sends exactly two messages: the fixed system instruction and the user
// content. A provider failure becomes visible error text in the payload.
func (a *Assistant) complete(ctx context.Context, system, user string) string {
	answer, err := a.chat.Complete(ctx, []llm.Message{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	})
	if err != nil {
		logger.ErrorErr(err, "completion provider failed")
		return "Chat error: " + err.Error()
	}

	return answer
}
