package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	authSuccesses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rango_auth_successes_total",
		Help: "Count of successful logins",
	})
	authFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rango_auth_failures_total",
		Help: "Count of failed logins",
	})
	listingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rango_listings_created_total",
		Help: "Count of listings created",
	})
)
