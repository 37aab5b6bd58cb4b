// Package metrics defines and registers all custom Prometheus metrics for
// the streaming API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "streaming"

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created via the credentials flow.",
	},
)

// LoginsTotal counts credential sign-in attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of credential sign-in attempts, by result.",
	},
	[]string{"result"},
)

// FavoriteMutationsTotal counts favorite-list mutations.
// Label:
//   - action: "add" or "remove"
var FavoriteMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "favorite_mutations_total",
		Help:      "Total number of favorite list mutations, by action.",
	},
	[]string{"action"},
)

// RandomPicksTotal counts random-movie requests.
// Label:
//   - outcome: "hit" (a movie was returned) or "empty" (catalog was empty)
var RandomPicksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "random_picks_total",
		Help:      "Total number of random movie picks, by outcome.",
	},
	[]string{"outcome"},
)
