// Package metrics defines and registers all custom Prometheus metrics for
// the expense tracker API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init;
// the router exposes them on /metrics together with the per-request metrics
// contributed by the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "expense_tracker"

// SignupsTotal counts successfully created user accounts.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of user accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "disabled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TokensRevokedTotal counts refresh tokens added to the blacklist.
// Label:
//   - reason: "logout" or "rotation"
var TokensRevokedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_revoked_total",
		Help:      "Total number of refresh tokens blacklisted, labelled by reason.",
	},
	[]string{"reason"},
)

// FinanceWritesTotal counts finance record mutations.
// Labels:
//   - entity: "income" or "expenditure"
//   - op: "create", "update", or "delete"
var FinanceWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "finance_writes_total",
		Help:      "Total number of finance record writes, by entity and operation.",
	},
	[]string{"entity", "op"},
)
