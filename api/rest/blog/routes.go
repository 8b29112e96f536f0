package blog

import (
	"codeberg.org/devfolio/server/devfolio/catalog"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, repo *catalog.Repository) {
	router.GET("/blog", ListHandler(repo))
	router.GET("/blog/:slug", GetHandler(repo))
}
