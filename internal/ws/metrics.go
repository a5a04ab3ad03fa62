package ws

import "github.com/prometheus/client_golang/prometheus"

var (
	roomsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "arena_rooms_active",
			Help: "Number of live game rooms",
		},
	)
	movesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "arena_moves_total",
			Help: "Total legal moves applied",
		},
	)
	matchesFinished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arena_matches_finished_total",
			Help: "Matches that reached a terminal state",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(roomsActive)
	prometheus.MustRegister(movesTotal)
	prometheus.MustRegister(matchesFinished)
}
