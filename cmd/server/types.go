package main

import (
	"codeberg.org/devfolio/server/devfolio/analytics"
	"codeberg.org/devfolio/server/devfolio/catalog"
	"codeberg.org/devfolio/server/devfolio/content"
	"codeberg.org/devfolio/server/internal/beacon"
	"codeberg.org/devfolio/server/internal/config"
	"github.com/gin-gonic/gin"
)

// holds the wired application: CMS clients split by privilege, domain
// services on top of them, and the background beacon dispatcher
type Server struct {
	config *config.Config
	router *gin.Engine

	analytics     *analytics.Service
	contentAdmin  *content.Repository
	contentPublic *content.Repository
	catalog       *catalog.Repository
	dispatcher    *beacon.Dispatcher
}
