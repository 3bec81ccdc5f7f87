package guidelines

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, gls Lister) {
	router.GET("/guidelines", ListHandler(gls))
}
