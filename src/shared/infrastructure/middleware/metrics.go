package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sales_http_requests_total",
			Help: "Total de peticiones HTTP procesadas",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sales_http_request_duration_seconds",
			Help:    "Duración de las peticiones HTTP en segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// Metrics registra contadores y latencias por ruta
// Usa la ruta registrada en gin (con placeholders) para no explotar la cardinalidad
func Metrics() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}

		httpRequestsTotal.WithLabelValues(
			ctx.Request.Method,
			path,
			strconv.Itoa(ctx.Writer.Status()),
		).Inc()

		httpRequestDuration.WithLabelValues(
			ctx.Request.Method,
			path,
		).Observe(time.Since(start).Seconds())
	}
}
