package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	GRPCRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grpc_server_requests_total",
			Help: "Total number of gRPC requests processed",
		},
		[]string{"method", "status"},
	)

	GRPCRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "grpc_server_request_duration_seconds",
			Help:    "Duration of gRPC requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "status"},
	)

	DatabaseQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "database_queries_total",
			Help: "Total number of database queries executed",
		},
		[]string{"query_type", "success"},
	)

	DatabaseQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "database_query_duration_seconds",
			Help:    "Duration of database queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"query_type"},
	)

	SessionCacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "session_cache_hits_total",
			Help: "Total number of session lookups answered by the store",
		},
	)

	SessionCacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "session_cache_misses_total",
			Help: "Total number of session lookups that found nothing",
		},
	)

	SessionCacheOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "session_cache_operation_duration_seconds",
			Help:    "Duration of session store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	PostOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "post_operations_total",
			Help: "Total number of post operations processed",
		},
		[]string{"operation", "success"},
	)

	VoteOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vote_operations_total",
			Help: "Total number of poll vote operations processed",
		},
		[]string{"operation", "success"},
	)

	UserOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "user_operations_total",
			Help: "Total number of user operations processed",
		},
		[]string{"operation", "success"},
	)

	StudentOfficeOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "student_office_operations_total",
			Help: "Total number of student office operations processed",
		},
		[]string{"operation", "success"},
	)

	MenuItemOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menu_item_operations_total",
			Help: "Total number of menu item operations processed",
		},
		[]string{"operation", "success"},
	)

	FeedPageSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "feed_page_posts",
			Help:    "Number of posts returned per feed page",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
	)

	ServiceHealth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "service_health",
			Help: "Service health status (1 = healthy, 0 = unhealthy)",
		},
	)
)
