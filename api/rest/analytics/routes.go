package analytics

import (
	counters "codeberg.org/devfolio/server/devfolio/analytics"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, service *counters.Service) {
	router.POST("/analytics", UpdateHandler(service))
	router.GET("/analytics", GetHandler(service))
}
