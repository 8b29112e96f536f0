package track

import (
	"time"

	"codeberg.org/devfolio/server/internal/beacon"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// per-client budget for the tracking beacon; generous enough for a human
// clicking around, tight enough to blunt counter inflation
var trackRate = limiter.Rate{
	Period: 1 * time.Minute,
	Limit:  120,
}

func RegisterRoutes(router *gin.RouterGroup, dispatcher *beacon.Dispatcher) {
	rateLimiter := mgin.NewMiddleware(limiter.New(memory.NewStore(), trackRate))

	router.POST("/track", rateLimiter, Handler(dispatcher))
}
