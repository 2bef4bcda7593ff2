package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "geoprice"

// Исходы обращения к геокодеру
const (
	OutcomeOK        = "ok"
	OutcomeNoResults = "no_results"
	OutcomeError     = "error"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests processed",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
	}, []string{"method", "path"})

	// GeocodeRequests считает обращения к внешнему геокодеру по исходу
	GeocodeRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "geocoding",
		Name:      "requests_total",
		Help:      "Total geocoding provider lookups by outcome",
	}, []string{"outcome"})

	// CatalogGenerations считает полные генерации каталога участков
	CatalogGenerations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "generator",
		Name:      "catalog_runs_total",
		Help:      "Total catalog generation runs",
	})

	CatalogGenerationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "generator",
		Name:      "catalog_duration_seconds",
		Help:      "Duration of a full catalog generation",
		Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
	})

	// SkippedPlaces считает места каталога, для которых не удалось получить геометрию
	SkippedPlaces = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "generator",
		Name:      "skipped_places_total",
		Help:      "Catalog places skipped because no geometry could be resolved",
	})

	CachedAreas = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "service",
		Name:      "cached_areas",
		Help:      "Number of generated land areas currently cached",
	})
)

// Middleware записывает метрики запросов
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// Шаблон маршрута вместо фактического пути, чтобы не плодить метки
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(method, path, status).Inc()
		httpRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}

// Handler возвращает обработчик /metrics
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
