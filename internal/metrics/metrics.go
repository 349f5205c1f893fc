package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	MatchesStarted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boardgame_matches_started_total",
			Help: "Total matches started",
		},
		[]string{"game"},
	)
	MatchesFinished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boardgame_matches_finished_total",
			Help: "Total matches finished, by how they ended",
		},
		[]string{"game", "outcome"},
	)
	Placements = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boardgame_placements_total",
			Help: "Total stones placed",
		},
		[]string{"game"},
	)
	Rejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boardgame_actions_rejected_total",
			Help: "Total actions rejected, by reason",
		},
		[]string{"reason"},
	)
	ActiveMatches = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "boardgame_active_matches",
			Help: "Matches currently held in memory",
		},
	)
)

func init() {
	prometheus.MustRegister(MatchesStarted)
	prometheus.MustRegister(MatchesFinished)
	prometheus.MustRegister(Placements)
	prometheus.MustRegister(Rejections)
	prometheus.MustRegister(ActiveMatches)
}
