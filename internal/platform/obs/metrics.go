package obs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StandingsLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "standings",
		Name:      "loads_total",
		Help:      "Standings loads by data source and outcome.",
	}, []string{"source", "outcome"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "standings",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route pattern and status code.",
	}, []string{"route", "code"})
)
