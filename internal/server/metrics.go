package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors exported on /metrics.
type Metrics struct {
	Requests    *prometheus.CounterVec
	GamesParsed prometheus.Counter
	Teams       prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "league_ranking",
			Name:      "requests_total",
			Help:      "Requests handled, by route and status code.",
		}, []string{"route", "code"}),
		GamesParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "league_ranking",
			Name:      "games_parsed_total",
			Help:      "Games parsed from submitted text.",
		}),
		Teams: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "league_ranking",
			Name:      "teams",
			Help:      "Teams per computed ranking.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}),
	}
	reg.MustRegister(m.Requests, m.GamesParsed, m.Teams)
	return m
}
