package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PollsCreated = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: "pulsepoll", Name: "polls_created_total", Help: "Number of polls created."},
	)
	VotesCast = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: "pulsepoll", Name: "votes_cast_total", Help: "Number of option votes recorded."},
	)
)
