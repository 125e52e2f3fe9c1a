// Package metrics содержит Prometheus-коллекторы сервиса.
// Отдаются через pkg/metrics.PrometheusServer на /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dealflow"

const (
	ResultOK    = "ok"
	ResultError = "error"
	ResultHit   = "hit"
	ResultMiss  = "miss"
)

//nolint:gochecknoglobals
var (
	DealsIngested = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deals_ingested_total",
		Help:      "Ingested deals by category and source.",
	}, []string{"category", "source"})

	DealScore = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "deal_score",
		Help:      "Distribution of computed deal scores.",
		Buckets:   prometheus.LinearBuckets(10, 10, 10),
	})

	ScoringFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scoring_fallbacks_total",
		Help:      "Deals that received the fallback score.",
	})

	AdvisorRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "advisor_requests_total",
		Help:      "Advisory scorer calls by result.",
	}, []string{"result"})

	AdvisorLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "advisor_latency_seconds",
		Help:      "Advisory scorer latency.",
		Buckets:   prometheus.DefBuckets,
	})

	MatchesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "matches_created_total",
		Help:      "Newly created buyer matches.",
	})

	Notifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Match notifications by channel and status.",
	}, []string{"channel", "status"})

	BuyerCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "buyer_cache_lookups_total",
		Help:      "Active buyer cache lookups by result.",
	}, []string{"result"})

	TasksProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_processed_total",
		Help:      "Background tasks by type and result.",
	}, []string{"task", "result"})
)
