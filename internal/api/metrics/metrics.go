// Package metrics defines and registers all custom Prometheus metrics for
// the Star Wars movies API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Collectors are registered with the default registry at init time; the
// echoprometheus middleware exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "starwars"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokensTotal counts tokens handed out by successful logins.
// Label:
//   - kind: "issued" (freshly signed) or "reused" (stored token still valid)
var TokensTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_total",
		Help:      "Total number of bearer tokens returned at login, by kind.",
	},
	[]string{"kind"},
)

// RegistrationsTotal counts successfully created user accounts.
// Label:
//   - role: "user" or "admin"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user accounts created, by role.",
	},
	[]string{"role"},
)

// ── Movie metrics ─────────────────────────────────────────────────────────────

// MovieWritesTotal counts successful movie mutations.
// Label:
//   - op: "create", "update", or "delete"
var MovieWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "movie_writes_total",
		Help:      "Total number of successful movie mutations, by operation.",
	},
	[]string{"op"},
)

// MoviesSeededTotal counts movies written by the seed endpoint.
var MoviesSeededTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "movies_seeded_total",
		Help:      "Total number of movies upserted from the external film API.",
	},
)

// CacheRequestsTotal counts movie cache lookups.
// Label:
//   - result: "hit" or "miss"
var CacheRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_requests_total",
		Help:      "Total number of movie cache lookups, by result.",
	},
	[]string{"result"},
)
