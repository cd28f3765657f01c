package ports

import "time"

type MetricsProvider interface {
	IncrementHTTPRequests(method, route, status string)
	RecordHTTPRequestDuration(method, route string, duration time.Duration)

	IncrementGRPCRequests(method, status string)
	RecordGRPCRequestDuration(method, status string, duration time.Duration)

	IncrementDatabaseQueries(queryType string, success bool)
	RecordDatabaseQueryDuration(queryType string, duration time.Duration)

	IncrementCacheHits()
	IncrementCacheMisses()
	RecordCacheOperationDuration(operation string, duration time.Duration)

	IncrementPostOperations(operation string, success bool)
	IncrementVoteOperations(operation string, success bool)
	IncrementUserOperations(operation string, success bool)
	IncrementStudentOfficeOperations(operation string, success bool)
	IncrementMenuItemOperations(operation string, success bool)
	ObserveFeedPageSize(posts int)

	SetServiceHealth(healthy bool)
}
