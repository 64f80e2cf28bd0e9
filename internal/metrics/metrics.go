package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "essentia"

// HTTP Metrics
var (
	// HTTPRequestsTotal tracks requests by method, mux route name and status code
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status_code"},
	)

	// HTTPRequestDuration tracks request latency in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// gRPC Metrics
var (
	// GRPCRequestsTotal tracks unary calls on the health port by method and code
	GRPCRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "grpc",
			Name:      "requests_total",
			Help:      "Total number of unary gRPC calls.",
		},
		[]string{"method", "code"},
	)
)

// Applicant pipeline Metrics
var (
	// ApplicantTransitionsTotal counts status writes by target status
	ApplicantTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "applicants",
			Name:      "transitions_total",
			Help:      "Applicant status transitions by target status.",
		},
		[]string{"status"},
	)

	// ApplicationsSubmittedTotal counts new applications
	ApplicationsSubmittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "applicants",
			Name:      "submitted_total",
			Help:      "New applications accepted.",
		},
	)

	// MemberCodesAllocatedTotal counts member codes handed out by partition (officer/member)
	MemberCodesAllocatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "members",
			Name:      "codes_allocated_total",
			Help:      "Member codes allocated by partition.",
		},
		[]string{"partition"},
	)
)

// Notification Metrics
var (
	// NotificationsTotal tracks outgoing emails by kind and result (sent/failed)
	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifications",
			Name:      "total",
			Help:      "Outgoing notification emails by kind and result.",
		},
		[]string{"kind", "result"},
	)
)

// Storage and job Metrics
var (
	// UploadsTotal tracks image uploads by bucket and result
	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "uploads_total",
			Help:      "Image uploads by bucket and result.",
		},
		[]string{"bucket", "result"},
	)

	// JobRunsTotal tracks scheduled job executions by job and result
	JobRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "jobs",
			Name:      "runs_total",
			Help:      "Scheduled job runs by job and result.",
		},
		[]string{"job", "result"},
	)
)

// Result returns the "ok"/"error" label for err.
func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
