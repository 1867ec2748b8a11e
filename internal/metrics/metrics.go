package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Order Metrics
var (
	// OrdersCreatedTotal tracks accepted order submissions
	OrdersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Total orders accepted and appended to the ledger",
		},
	)

	// OrdersRejectedTotal tracks rejected order submissions
	OrdersRejectedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_rejected_total",
			Help: "Total order submissions rejected by validation",
		},
	)
)

// Hub Metrics
var (
	// HubSubscribers tracks the current number of live display subscribers
	HubSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hub_subscribers",
			Help: "Current number of live kitchen-display subscribers",
		},
	)

	// HubPublishedTotal tracks orders fanned out by the hub
	HubPublishedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hub_published_total",
			Help: "Total order frames published through the hub",
		},
	)

	// HubDeliveriesTotal tracks per-subscriber delivery attempts by outcome
	HubDeliveriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hub_deliveries_total",
			Help: "Per-subscriber delivery attempts by outcome (delivered/buffer_full/gone)",
		},
		[]string{"outcome"},
	)

	// HubEvictedTotal tracks subscribers removed after a failed delivery
	HubEvictedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hub_evicted_subscribers_total",
			Help: "Total subscribers evicted after a failed delivery",
		},
	)
)

// Stream Transport Metrics
var (
	// StreamKeepalivesTotal tracks keepalive frames sent on idle streams
	StreamKeepalivesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stream_keepalives_total",
			Help: "Keepalive frames sent on idle stream connections by transport",
		},
		[]string{"transport"},
	)

	// StreamConnectionsRejectedTotal tracks stream connections refused by the limiter
	StreamConnectionsRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stream_connections_rejected_total",
			Help: "Stream connections rejected by the connection limiter, by reason",
		},
		[]string{"reason"},
	)
)
