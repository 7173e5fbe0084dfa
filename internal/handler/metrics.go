package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "market_service",
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Total number of orders created through checkout.",
	})

	ordersSettled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "market_service",
		Subsystem: "orders",
		Name:      "settled_total",
		Help:      "Total number of delivered orders settled to farmer wallets.",
	})

	withdrawalsRequested = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "market_service",
		Subsystem: "wallet",
		Name:      "withdrawals_requested_total",
		Help:      "Total number of withdrawal requests accepted.",
	})
)
