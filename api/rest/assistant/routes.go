package assistant

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, svc Service, limiter gin.HandlerFunc) {
	assistantGroup := router.Group("/assistant")
	assistantGroup.Use(limiter)
	{
		assistantGroup.POST("/summarize", SummarizeHandler(svc))
		assistantGroup.POST("/rules", RulesHandler(svc))
		assistantGroup.POST("/checklist", ChecklistHandler(svc))
		assistantGroup.POST("/ask", AskHandler(svc))
	}
}
