package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal tracks total HTTP requests
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// RequestDuration tracks HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// OrdersTotal tracks committed orders by order type
	OrdersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_orders_total",
			Help: "Total number of committed orders",
		},
		[]string{"order_type"},
	)

	// OrderValue tracks order totals
	OrderValue = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pos_order_value",
			Help:    "Committed order totals",
			Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)

	// DiscountedOrdersTotal tracks orders that carried a discount code
	DiscountedOrdersTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pos_discounted_orders_total",
			Help: "Total number of committed orders with a discount applied",
		},
	)

	// InventoryLevel tracks current stock per item
	InventoryLevel = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pos_inventory_level",
			Help: "Current on-hand stock per item",
		},
		[]string{"item_id"},
	)

	// WebhookFailures tracks failed order webhook deliveries
	WebhookFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pos_order_webhook_failures_total",
			Help: "Total number of failed order webhook deliveries",
		},
	)
)

// PrometheusMiddleware creates a Gin middleware for automatic metrics collection
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		RequestsTotal.WithLabelValues(c.Request.Method, c.FullPath(), status).Inc()
		RequestDuration.WithLabelValues(c.Request.Method, c.FullPath()).Observe(duration)
	}
}
