// Package metrics defines and registers all custom Prometheus metrics for
// the studio CMS API. It is the single source of truth for metric names,
// labels, and help strings. Request-level metrics (latency, status codes)
// come from echoprometheus and are not duplicated here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "studio"

// ContentMutationsTotal counts successful dashboard mutations.
// Labels:
//   - resource: the collection mutated (e.g. "projects", "blogs")
//   - action: "create", "update", or "delete"
var ContentMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_mutations_total",
		Help:      "Total number of successful content mutations, by resource and action.",
	},
	[]string{"resource", "action"},
)

// AuthDenialsTotal counts declined operations.
// Label:
//   - reason: "unauthorized" (no session) or "forbidden" (insufficient role)
var AuthDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_denials_total",
		Help:      "Total number of operations declined by the authorization check.",
	},
	[]string{"reason"},
)

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

// LeadsReceivedTotal counts public contact-form submissions.
// Label:
//   - outcome: "clean" (both paths succeeded) or "degraded" (one path failed)
var LeadsReceivedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leads_received_total",
		Help:      "Total number of contact-form submissions accepted.",
	},
	[]string{"outcome"},
)

// UploadsTotal counts image uploads passed through to the object store.
// Label:
//   - result: "success" or "failure"
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of image uploads, by result.",
	},
	[]string{"result"},
)
