package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Бизнес-метрики автомата
var (
	SessionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slot_sessions_created_total",
		Help: "Number of game sessions created",
	})

	SpinsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slot_spins_total",
		Help: "Number of accepted spins",
	})

	WinsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slot_wins_total",
		Help: "Number of winning spins",
	})

	JackpotsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slot_jackpots_total",
		Help: "Number of jackpot-class wins",
	})

	BetVolume = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slot_bet_volume_total",
		Help: "Total amount wagered",
	})

	PayoutVolume = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slot_payout_volume_total",
		Help: "Total amount paid out",
	})
)
