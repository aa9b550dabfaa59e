// Package metrics defines and registers the custom Prometheus metrics for
// the contracts API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "contracts"

// AuthAttemptsTotal counts authentication attempts.
// Labels:
//   - action: "register" or "login"
//   - result: "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of registration and login attempts, by result.",
	},
	[]string{"action", "result"},
)

// ContractsCreatedTotal counts successfully signed contracts.
var ContractsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contracts_created_total",
		Help:      "Total number of contracts created.",
	},
)

// ContractsRenewedTotal counts successful renewals.
var ContractsRenewedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contracts_renewed_total",
		Help:      "Total number of contract renewals.",
	},
)

// AddressesCreatedTotal counts registered addresses.
var AddressesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "addresses_created_total",
		Help:      "Total number of addresses registered.",
	},
)

// CartTogglesTotal counts cart mutations.
// Label:
//   - result: "selected" or "deselected"
var CartTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_toggles_total",
		Help:      "Total number of cart toggle operations, by result.",
	},
	[]string{"result"},
)

// SubmitsBlockedTotal counts submits rejected because the same action was
// already in flight for the user.
// Label:
//   - action: the guarded action name (e.g. "create_contract")
var SubmitsBlockedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submits_blocked_total",
		Help:      "Total number of submits rejected by the in-flight guard.",
	},
	[]string{"action"},
)

// SnapshotDuration measures how long the three-way account snapshot read
// takes end-to-end.
var SnapshotDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "snapshot_duration_seconds",
		Help:      "Duration of the concurrent account snapshot assembly.",
		Buckets:   prometheus.DefBuckets,
	},
)
