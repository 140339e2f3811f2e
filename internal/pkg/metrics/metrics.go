// Package metrics defines and registers all custom Prometheus metrics for
// the back-office API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// init via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "barcraft"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (failure covers bad credentials and
//     inactive accounts alike, mirroring the API's uniform 401)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful registrations by granted role.
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful user registrations, by role.",
	},
	[]string{"role"},
)

// TokenRefreshesTotal counts successful token refreshes.
var TokenRefreshesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refreshes_total",
		Help:      "Total number of successful token refreshes.",
	},
)

// TokensRevokedTotal counts tokens denylisted via logout.
var TokensRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_revoked_total",
		Help:      "Total number of tokens revoked before natural expiry.",
	},
)

// ── Lead metrics ──────────────────────────────────────────────────────────────

// LeadsReceivedTotal counts leads accepted at the HTTP edge, before async
// processing.
var LeadsReceivedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leads_received_total",
		Help:      "Total number of leads accepted by the public form endpoints.",
	},
	[]string{"kind"},
)

// LeadsProcessedTotal counts leads that completed persistence.
var LeadsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leads_processed_total",
		Help:      "Total number of leads successfully persisted.",
	},
	[]string{"kind"},
)

// LeadsErrorsTotal counts leads that failed processing.
// Label:
//   - reason: short description of the failure ("invalid_lead", "insert_failed")
var LeadsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leads_errors_total",
		Help:      "Total number of leads that failed processing.",
	},
	[]string{"reason"},
)

// LeadQueueDepth tracks the current number of leads waiting in each worker
// channel.
var LeadQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "lead_queue_depth",
		Help:      "Current number of leads pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// LeadProcessingDuration measures how long a single lead takes from dequeue
// to persistence.
var LeadProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "lead_processing_duration_seconds",
		Help:      "Duration of lead processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"kind"},
)

// ── Gallery metrics ───────────────────────────────────────────────────────────

// GalleryReviewsTotal counts approval decisions.
// Label:
//   - decision: "approved" or "rejected"
var GalleryReviewsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gallery_reviews_total",
		Help:      "Total number of gallery review decisions.",
	},
	[]string{"decision"},
)
