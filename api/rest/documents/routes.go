package documents

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, pipeline Ingester, docs Lister, uploadLimiter gin.HandlerFunc) {
	router.POST("/documents", uploadLimiter, UploadHandler(pipeline))
	router.GET("/documents", ListHandler(docs))
	router.GET("/documents/export", ExportHandler(docs))
}
