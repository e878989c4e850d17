package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Execution outcomes used as the status label.
const (
	statusSuccess    = "success"
	statusRejected   = "rejected"
	statusStoreError = "store_error"
)

var (
	// executionsTotal counts path executions by outcome.
	executionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cleaner",
		Subsystem: "robot",
		Name:      "executions_total",
		Help:      "Total path executions by outcome",
	}, []string{"status"})

	executionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "cleaner",
		Subsystem: "robot",
		Name:      "execution_duration_seconds",
		Help:      "Time spent walking a path in seconds",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
	})

	commandsPerExecution = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "cleaner",
		Subsystem: "robot",
		Name:      "commands_per_execution",
		Help:      "Number of commands in an executed path",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
	})

	// cellsCleanedTotal sums the unique cells of every stored execution.
	cellsCleanedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cleaner",
		Subsystem: "robot",
		Name:      "cells_cleaned_total",
		Help:      "Unique cells cleaned across all executions",
	})

	recentIndexSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "cleaner",
		Subsystem: "reports",
		Name:      "recent_index_size",
		Help:      "Executions currently held in the recent index",
	})

	reportCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cleaner",
		Subsystem: "reports",
		Name:      "cache_lookups_total",
		Help:      "Report cache lookups by result (hit, miss, error)",
	}, []string{"result"})
)
