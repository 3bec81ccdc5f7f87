package dashboard

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/regbot/server/internal/dashboard"
	"github.com/regbot/server/internal/httperr"
)

// Aggregator computes dashboard counters from stored documents
type Aggregator interface {
	Stats(ctx context.Context) (dashboard.Stats, error)
	Alerts(ctx context.Context) (dashboard.AlertLevels, error)
}

// returns headline compliance counters and the weighted risk score
func StatsHandler(agg Aggregator) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := agg.Stats(c.Request.Context())
		if err != nil {
			httperr.InternalError(c, "failed to compute dashboard stats", err)
			return
		}

		c.JSON(http.StatusOK, stats)
	}
}

// returns document counts bucketed by alert severity
func AlertsHandler(agg Aggregator) gin.HandlerFunc {
	return func(c *gin.Context) {
		levels, err := agg.Alerts(c.Request.Context())
		if err != nil {
			httperr.InternalError(c, "failed to compute alert levels", err)
			return
		}

		c.JSON(http.StatusOK, levels)
	}
}
