package documents

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/regbot/server/internal/extractor"
	"github.com/regbot/server/internal/httperr"
	"github.com/regbot/server/internal/ingest"
	"github.com/regbot/server/internal/llm"
	"github.com/regbot/server/internal/logger"
	"github.com/regbot/server/internal/store"
)

const (
	pageSize      = 50
	previewLength = 250
	dateLayout    = "2006-01-02 15:04"
)

// Ingester runs the document ingestion pipeline
type Ingester interface {
	Ingest(ctx context.Context, data []byte, fileName, category string) (*ingest.Result, error)
}

// Lister reads stored document metadata
type Lister interface {
	List(ctx context.Context) ([]store.Document, error)
}

// accepts a multipart PDF upload and runs it through the pipeline
func UploadHandler(pipeline Ingester) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, header, err := c.Request.FormFile("pdf")
		if err != nil {
			httperr.BadRequest(c, "no PDF received", err)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			httperr.BadRequest(c, "failed to read uploaded file", err)
			return
		}

		category := c.PostForm("category")

		result, err := pipeline.Ingest(c.Request.Context(), data, header.Filename, category)
		if err != nil {
			switch {
			case errors.Is(err, extractor.ErrInvalidFormat):
				httperr.BadRequest(c, "invalid PDF", err)
			case errors.Is(err, llm.ErrEmbeddingUnavailable):
				httperr.EmbeddingUnavailable(c, err)
			default:
				httperr.InternalError(c, "failed to ingest document", err)
			}

			return
		}

		logger.Info("document ingested",
			"id", result.ID,
			"file", header.Filename,
			"guidelines", result.Guidelines,
		)

		c.JSON(http.StatusOK, UploadResponse{
			ID:         result.ID,
			Preview:    result.Preview,
			Guidelines: result.Guidelines,
		})
	}
}

// lists stored documents with search and pagination
func ListHandler(docs Lister) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := docs.List(c.Request.Context())
		if err != nil {
			httperr.InternalError(c, "failed to list documents", err)
			return
		}

		search := strings.ToLower(strings.TrimSpace(c.Query("search")))

		items := make([]ListItem, 0, len(all))

		for _, doc := range all {
			item := toListItem(doc)

			if search != "" &&
				!strings.Contains(strings.ToLower(item.Preview), search) &&
				!strings.Contains(strings.ToLower(item.Category), search) {
				continue
			}

			items = append(items, item)
		}

		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}

		start := (page - 1) * pageSize
		if start > len(items) {
			start = len(items)
		}

		end := start + pageSize
		if end > len(items) {
			end = len(items)
		}

		c.JSON(http.StatusOK, ListResponse{
			Total: len(items),
			Data:  items[start:end],
		})
	}
}

// streams all document metadata as a CSV attachment
func ExportHandler(docs Lister) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := docs.List(c.Request.Context())
		if err != nil {
			httperr.InternalError(c, "failed to export documents", err)
			return
		}

		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", `attachment; filename="records.csv"`)

		writer := csv.NewWriter(c.Writer)

		records := [][]string{{"id", "category", "date", "file"}}

		for _, doc := range all {
			records = append(records, []string{
				doc.ID,
				doc.Category,
				doc.IngestedAt.Format(dateLayout),
				doc.FileName,
			})
		}

		if err := writer.WriteAll(records); err != nil {
			logger.ErrorErr(err, "failed to write CSV export")
		}
	}
}

func toListItem(doc store.Document) ListItem {
	text := []rune(doc.Text)
	if len(text) > previewLength {
		text = text[:previewLength]
	}

	return ListItem{
		ID:       doc.ID,
		Category: doc.Category,
		Date:     doc.IngestedAt.Format(dateLayout),
		File:     doc.FileName,
		Preview:  string(text),
	}
}
