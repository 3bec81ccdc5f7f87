package guidelines

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/regbot/server/internal/httperr"
	"github.com/regbot/server/internal/store"
)

// Lister reads stored guidelines
type Lister interface {
	List(ctx context.Context) ([]store.Guideline, error)
}

// lists every extracted guideline with its source document id; with
// ?scope=latest only the most recent document's guidelines are returned
func ListHandler(gls Lister) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := gls.List(c.Request.Context())
		if err != nil {
			httperr.InternalError(c, "failed to list guidelines", err)
			return
		}

		if c.Query("scope") == "latest" {
			groups := store.GroupBySource(all)

			all = nil
			if len(groups) > 0 {
				all = groups[len(groups)-1]
			}
		}

		items := make([]Item, 0, len(all))

		for _, g := range all {
			items = append(items, Item{
				Guideline: g.Text,
				Source:    g.SourceID,
			})
		}

		c.JSON(http.StatusOK, Response{Guidelines: items})
	}
}
