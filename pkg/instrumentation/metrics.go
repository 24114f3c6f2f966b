package instrumentation

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameSpace                = "storage_transfer"
	HttpStatusHistogram      = "http_status_histogram"
	JobsSubmittedTotal       = "jobs_submitted_total"
	DeferredCompletionsTotal = "deferred_completions_total"
	JobWaitDurationSeconds   = "job_wait_duration_seconds"
	OperationActionsTotal    = "operation_actions_total"
)

type Metrics struct {
	HttpStatusHistogram prometheus.HistogramVec

	// Custom metrics
	JobsSubmittedTotal       prometheus.CounterVec
	DeferredCompletionsTotal prometheus.CounterVec
	JobWaitDuration          prometheus.Histogram
	OperationActionsTotal    prometheus.CounterVec

	reg *prometheus.Registry
}

func NewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		panic("reg cannot be nil")
	}
	metrics := &Metrics{
		reg: reg,
		HttpStatusHistogram: *promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: NameSpace,
			Name:      HttpStatusHistogram,
			Help:      "Duration of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status", "method", "path"}),

		JobsSubmittedTotal: *promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: NameSpace,
			Name:      JobsSubmittedTotal,
			Help:      "Number of transfer jobs submitted, by data source type",
		}, []string{"source"}),
		DeferredCompletionsTotal: *promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: NameSpace,
			Name:      DeferredCompletionsTotal,
			Help:      "Number of deferred executions resumed, by completion status",
		}, []string{"status"}),
		JobWaitDuration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Namespace: NameSpace,
			Name:      JobWaitDurationSeconds,
			Help:      "Time spent waiting on transfer jobs to complete",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		OperationActionsTotal: *promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: NameSpace,
			Name:      OperationActionsTotal,
			Help:      "Number of pause/resume/cancel actions on transfer operations",
		}, []string{"action"}),
	}

	reg.MustRegister(collectors.NewBuildInfoCollector())

	return metrics
}

func (m *Metrics) RecordJobSubmitted(source string) {
	if m != nil {
		m.JobsSubmittedTotal.With(prometheus.Labels{"source": source}).Inc()
	}
}

func (m *Metrics) RecordDeferredCompletion(status string) {
	if m != nil {
		m.DeferredCompletionsTotal.With(prometheus.Labels{"status": status}).Inc()
	}
}

func (m *Metrics) RecordJobWait(start time.Time) {
	if m != nil {
		m.JobWaitDuration.Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) RecordOperationAction(action string) {
	if m != nil {
		m.OperationActionsTotal.With(prometheus.Labels{"action": action}).Inc()
	}
}

func (m Metrics) Registry() *prometheus.Registry {
	return m.reg
}
