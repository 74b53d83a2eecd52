package changefeed

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChangeEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "change_feed_events_total",
			Help: "Total number of table change notifications received",
		},
		[]string{"table"},
	)

	ReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "change_feed_reloads_total",
			Help: "Total number of cache reloads triggered by table changes",
		},
		[]string{"table", "subscriber", "result"},
	)
)
