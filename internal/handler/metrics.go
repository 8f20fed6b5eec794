package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	attemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "practice_attempts_total",
			Help: "Total number of graded practice attempts by result.",
		},
		[]string{"result"},
	)

	usersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "users_created_total",
		Help: "Total number of successfully created user profiles.",
	})

	userCreateFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "users_create_failures_total",
		Help: "Total number of user profile writes rejected by the document store.",
	})

	tokenVerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "identity_token_verifications_total",
			Help: "Total number of ID token checks by status.",
		},
		[]string{"status"},
	)
)
