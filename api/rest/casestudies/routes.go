package casestudies

import (
	"codeberg.org/devfolio/server/devfolio/catalog"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, repo *catalog.Repository) {
	router.GET("/case-studies/:id", GetHandler(repo))
}
