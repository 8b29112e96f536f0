package auth

import (
	"codeberg.org/devfolio/server/internal/auth"
	"codeberg.org/devfolio/server/internal/config"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config, validate auth.SessionValidator) {
	group := router.Group("/auth")

	group.GET("/:provider", BeginHandler())
	group.GET("/:provider/callback", CallbackHandler(cfg))
	group.POST("/logout", LogoutHandler())
	group.GET("/me", MeHandler(validate))
}
