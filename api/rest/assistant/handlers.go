package assistant

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/regbot/server/internal/assistant"
	"github.com/regbot/server/internal/httperr"
	"github.com/regbot/server/internal/llm"
)

// Service exposes the LLM-backed document operations
type Service interface {
	Summarize(ctx context.Context, docID string) (string, error)
	ExtractRules(ctx context.Context, docID string) ([]string, error)
	Checklist(ctx context.Context, docID string) ([]assistant.ChecklistItem, error)
	Ask(ctx context.Context, question string) (string, error)
}

// summarizes a stored document in bullet points
func SummarizeHandler(svc Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DocumentRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.ValidationError(c, err)
			return
		}

		summary, err := svc.Summarize(c.Request.Context(), req.ID)
		if err != nil {
			respondDocumentError(c, err)
			return
		}

		c.JSON(http.StatusOK, SummaryResponse{Summary: summary})
	}
}

// extracts compliance rules from a stored document
func RulesHandler(svc Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DocumentRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.ValidationError(c, err)
			return
		}

		rules, err := svc.ExtractRules(c.Request.Context(), req.ID)
		if err != nil {
			respondDocumentError(c, err)
			return
		}

		c.JSON(http.StatusOK, RulesResponse{Rules: rules})
	}
}

// builds an actionable checklist from a stored document
func ChecklistHandler(svc Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DocumentRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.ValidationError(c, err)
			return
		}

		items, err := svc.Checklist(c.Request.Context(), req.ID)
		if err != nil {
			respondDocumentError(c, err)
			return
		}

		c.JSON(http.StatusOK, ChecklistResponse{Checklist: items})
	}
}

// answers a question using the closest stored document as context
func AskHandler(svc Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AskRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.ValidationError(c, err)
			return
		}

		answer, err := svc.Ask(c.Request.Context(), req.Question)
		if err != nil {
			respondRetrievalError(c, err)
			return
		}

		c.JSON(http.StatusOK, AskResponse{Answer: answer})
	}
}

func respondDocumentError(c *gin.Context, err error) {
	if errors.Is(err, assistant.ErrDocumentNotFound) {
		httperr.NotFound(c, "document")
		return
	}

	httperr.InternalError(c, "assistant request failed", err)
}

func respondRetrievalError(c *gin.Context, err error) {
	if errors.Is(err, llm.ErrEmbeddingUnavailable) {
		httperr.EmbeddingUnavailable(c, err)
		return
	}

	httperr.InternalError(c, "assistant request failed", err)
}
