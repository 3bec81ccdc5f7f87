package dashboard

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, agg Aggregator) {
	router.GET("/dashboard/stats", StatsHandler(agg))
	router.GET("/dashboard/alerts", AlertsHandler(agg))
}
