package delivery

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CachedDeliveries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "deliveries_cached",
			Help: "Number of deliveries held in the in-memory cache",
		},
	)

	TransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_transitions_total",
			Help: "Total number of delivery status transitions by target status and result",
		},
		[]string{"status", "result"},
	)
)
