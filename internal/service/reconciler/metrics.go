package reconciler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsAppliedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracking_events_applied_total",
			Help: "Total number of realtime events applied to tracking state",
		},
		[]string{"type"},
	)

	EventsDiscardedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracking_events_discarded_total",
			Help: "Total number of realtime events discarded during reconciliation",
		},
		[]string{"reason"},
	)

	StatusOutOfOrderTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tracking_status_out_of_order_total",
			Help: "Status events applied despite disagreeing with the local head",
		},
	)

	ResyncTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracking_resync_total",
			Help: "Resynchronization pulls against the backend query API",
		},
		[]string{"result"},
	)
)

const (
	discardReasonMalformed     = "malformed"
	discardReasonDuplicate     = "duplicate"
	discardReasonStalePosition = "stale_position"
	discardReasonLedger        = "ledger_error"
)
