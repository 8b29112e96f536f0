package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// tracked events accepted by the beacon and analytics endpoints
	TrackEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "devfolio",
		Name:      "track_events_total",
		Help:      "Tracked view/click events by content type and event kind.",
	}, []string{"type", "event"})

	// outbound CMS requests by outcome
	HygraphRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "devfolio",
		Name:      "hygraph_requests_total",
		Help:      "Outbound CMS requests by outcome (success, graphql_error, transport_error).",
	}, []string{"outcome"})

	// transport-level retries against the CMS
	HygraphRetries = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "devfolio",
		Name:      "hygraph_retries_total",
		Help:      "Retried CMS requests after transport failures.",
	})

	// events dropped because the beacon queue was shut down mid-flight
	BeaconDropped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "devfolio",
		Name:      "beacon_dropped_total",
		Help:      "Beacon events whose recording failed and was discarded.",
	})
)

// exposes the prometheus registry on a gin route
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()

	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
