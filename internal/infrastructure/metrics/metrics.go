package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder publishes mutation and propagation counters. A nil *Recorder is
// valid and records nothing, which keeps tests free of registry setup.
type Recorder struct {
	mutations     *prometheus.CounterVec
	propagations  *prometheus.CounterVec
	unresolved    *prometheus.CounterVec
	storeDuration *prometheus.HistogramVec
	httpRequests  *prometheus.HistogramVec
}

// NewRecorder registers the collectors on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "atendimentos",
			Name:      "mutations_total",
			Help:      "Dataset mutations by entity, operation and result.",
		}, []string{"entity", "operation", "result"}),
		propagations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "atendimentos",
			Name:      "snapshot_propagations_total",
			Help:      "Engagement snapshots rewritten after a proposal or consultant write.",
		}, []string{"entity"}),
		unresolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "atendimentos",
			Name:      "unresolved_references_total",
			Help:      "Engagement writes that carried a reference with no matching record.",
		}, []string{"operation"}),
		storeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "atendimentos",
			Name:      "store_operation_seconds",
			Help:      "Latency of dataset store load and save calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"driver", "operation"}),
		httpRequests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "atendimentos",
			Name:      "http_request_seconds",
			Help:      "HTTP request latency by method, route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(r.mutations, r.propagations, r.unresolved, r.storeDuration, r.httpRequests)
	return r
}

func (r *Recorder) Mutation(entity, operation string, err error) {
	if r == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	r.mutations.WithLabelValues(entity, operation, result).Inc()
}

func (r *Recorder) Propagated(entity string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.propagations.WithLabelValues(entity).Add(float64(n))
}

func (r *Recorder) Unresolved(operation string) {
	if r == nil {
		return
	}
	r.unresolved.WithLabelValues(operation).Inc()
}

func (r *Recorder) ObserveStore(driver, operation string, started time.Time) {
	if r == nil {
		return
	}
	r.storeDuration.WithLabelValues(driver, operation).Observe(time.Since(started).Seconds())
}

func (r *Recorder) HTTPRequest(method, route string, status int, d time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}
