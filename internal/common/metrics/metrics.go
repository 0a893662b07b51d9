// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_submissions_total",
			Help: "Completed intake submissions by where the scores came from",
		},
		[]string{"source"},
	)

	WebhookFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_webhook_failures_total",
			Help: "Webhook calls that fell back to synthetic scores",
		},
		[]string{"error_code"},
	)

	WebhookDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "intake_webhook_duration_seconds",
			Help:    "Duration of the scoring webhook call in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 30, 60},
		},
		[]string{"outcome"},
	)

	KitsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_brand_kits_total",
			Help: "Brand kits shown to users by kit source",
		},
		[]string{"source"},
	)

	WizardTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_wizard_transitions_total",
			Help: "Wizard events applied, by event and resulting screen",
		},
		[]string{"event", "screen"},
	)

	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)
)
