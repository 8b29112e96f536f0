package projects

import (
	"codeberg.org/devfolio/server/devfolio/catalog"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, repo *catalog.Repository) {
	router.GET("/projects", ListHandler(repo))
	router.GET("/projects/:id", GetHandler(repo))
}
