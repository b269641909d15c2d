package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TasksCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ston_tasks_completed_total",
		Help: "Task completions that credited a reward, by task type.",
	}, []string{"type"})

	VerificationsRequested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ston_verifications_requested_total",
		Help: "Manual verification requests enqueued for admin review.",
	})

	CheckIns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ston_checkins_total",
		Help: "Successful daily check-ins.",
	})

	Referrals = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ston_referrals_total",
		Help: "Successful referral attributions.",
	})

	WithdrawalsResolved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ston_withdrawals_resolved_total",
		Help: "Withdrawal requests resolved by an admin, by outcome.",
	}, []string{"outcome"})
)
