// Package metrics 提供 Prometheus 指标收集
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics 指标收集器，所有方法对 nil 接收者安全
type Metrics struct {
	registry             *prometheus.Registry
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight prometheus.Gauge
	resourceFetchTotal   *prometheus.CounterVec
	resourceMutations    *prometheus.CounterVec
	fetchSuperseded      *prometheus.CounterVec
	queryCacheHits       *prometheus.CounterVec
	queryCacheMisses     *prometheus.CounterVec
	collectionRows       *prometheus.GaugeVec
	loginsTotal          *prometheus.CounterVec
	activeSessions       *prometheus.GaugeVec
}

var defaultMetrics *Metrics

// Init 初始化指标收集器，每次调用使用独立的 registry
func Init(namespace string) *Metrics {
	if namespace == "" {
		namespace = "taskmall"
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	m := &Metrics{
		registry: reg,
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		httpRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "Current number of HTTP requests being processed",
			},
		),
		resourceFetchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resource_fetch_total",
				Help:      "Total number of collection fetches",
			},
			[]string{"collection", "result"},
		),
		resourceMutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resource_mutations_total",
				Help:      "Total number of create, update and delete calls",
			},
			[]string{"collection", "action", "result"},
		),
		fetchSuperseded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resource_fetch_superseded_total",
				Help:      "Fetches discarded because a newer fetch for the same query key started",
			},
			[]string{"collection"},
		),
		queryCacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "query_cache_hits_total",
				Help:      "Total number of query cache hits",
			},
			[]string{"collection"},
		),
		queryCacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "query_cache_misses_total",
				Help:      "Total number of query cache misses",
			},
			[]string{"collection"},
		),
		collectionRows: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "collection_rows",
				Help:      "Row count per collection, refreshed by the scheduler",
			},
			[]string{"collection"},
		),
		loginsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "logins_total",
				Help:      "Login attempts by session kind and result",
			},
			[]string{"kind", "result"},
		),
		activeSessions: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "sessions_active",
				Help:      "Live server-side sessions by kind",
			},
			[]string{"kind"},
		),
	}

	defaultMetrics = m
	return m
}

// GetMetrics 获取默认指标收集器
func GetMetrics() *Metrics {
	if defaultMetrics == nil {
		return Init("")
	}
	return defaultMetrics
}

// Registry 返回底层 registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Middleware 返回 Gin 中间件
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		m.httpRequestsInFlight.Inc()

		c.Next()

		m.httpRequestsInFlight.Dec()
		status := strconv.Itoa(c.Writer.Status())
		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}

		m.httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		m.httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// Handler 返回 Prometheus HTTP 处理器
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordFetch 记录集合查询
func (m *Metrics) RecordFetch(collection string, err error) {
	if m == nil {
		return
	}
	m.resourceFetchTotal.WithLabelValues(collection, result(err)).Inc()
}

// RecordMutation 记录增删改
func (m *Metrics) RecordMutation(collection, action string, err error) {
	if m == nil {
		return
	}
	m.resourceMutations.WithLabelValues(collection, action, result(err)).Inc()
}

// RecordSuperseded 记录被取代的查询
func (m *Metrics) RecordSuperseded(collection string) {
	if m == nil {
		return
	}
	m.fetchSuperseded.WithLabelValues(collection).Inc()
}

// RecordCacheHit 记录查询缓存命中
func (m *Metrics) RecordCacheHit(collection string) {
	if m == nil {
		return
	}
	m.queryCacheHits.WithLabelValues(collection).Inc()
}

// RecordCacheMiss 记录查询缓存未命中
func (m *Metrics) RecordCacheMiss(collection string) {
	if m == nil {
		return
	}
	m.queryCacheMisses.WithLabelValues(collection).Inc()
}

// SetCollectionRows 设置集合行数
func (m *Metrics) SetCollectionRows(collection string, rows int64) {
	if m == nil {
		return
	}
	m.collectionRows.WithLabelValues(collection).Set(float64(rows))
}

// RecordLogin 记录登录结果
func (m *Metrics) RecordLogin(kind string, err error) {
	if m == nil {
		return
	}
	m.loginsTotal.WithLabelValues(kind, result(err)).Inc()
}

// SetActiveSessions 设置活跃会话数
func (m *Metrics) SetActiveSessions(kind string, n int64) {
	if m == nil {
		return
	}
	m.activeSessions.WithLabelValues(kind).Set(float64(n))
}
