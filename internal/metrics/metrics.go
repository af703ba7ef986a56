// Package metrics holds the prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StoreWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "whitebay",
		Name:      "store_writes_total",
		Help:      "Whole-collection writes by key and outcome.",
	}, []string{"key", "outcome"})

	SweepRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "whitebay",
		Name:      "maintenance_sweeps_total",
		Help:      "Maintenance sweeps by trigger and outcome.",
	}, []string{"trigger", "outcome"})

	SweepChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "whitebay",
		Name:      "maintenance_changes_total",
		Help:      "Records changed by maintenance sweeps.",
	}, []string{"kind"})

	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "whitebay",
		Name:      "change_events_published_total",
		Help:      "Change events handed to the broker by outcome.",
	}, []string{"outcome"})
)
