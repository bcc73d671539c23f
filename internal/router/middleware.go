package router

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pennyflow",
			Name:      "http_requests_total",
			Help:      "Number of HTTP requests served, partitioned by status code, method and path.",
		},
		[]string{"status", "method", "path"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pennyflow",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)
)

var collectors = []prometheus.Collector{requestCount, requestDuration}

func registerPrometheusMetrics() error {
	for _, c := range collectors {
		if err := prometheus.Register(c); err != nil {
			return fmt.Errorf("could not register collector with Prometheus: %w", err)
		}
	}

	return nil
}

// unregisterPrometheusMetrics removes all collectors from the default
// registry so that a new engine can be constructed in the same process.
func unregisterPrometheusMetrics() bool {
	ok := true
	for _, c := range collectors {
		ok = prometheus.Unregister(c) && ok
	}

	return ok
}

// MetricsMiddleware records count and duration for every request.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())

		// Substitute parameter values with their names so that paths
		// with IDs do not explode the label cardinality
		path := c.Request.URL.Path
		for _, p := range c.Params {
			path = strings.Replace(path, p.Value, ":"+p.Key, 1)
		}

		requestCount.WithLabelValues(status, c.Request.Method, path).Inc()
		requestDuration.WithLabelValues(status, c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
