package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	reactionSetTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kudos_reaction_set_total",
			Help: "Total number of reaction changes",
		},
		[]string{"parent_type", "op"},
	)

	summaryCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kudos_reaction_summary_cache_total",
			Help: "Reaction summary cache lookups",
		},
		[]string{"result"}, // hit / miss
	)
)

func init() {
	prometheus.MustRegister(reactionSetTotal)
	prometheus.MustRegister(summaryCacheTotal)
}
