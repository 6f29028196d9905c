package conform

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	positionArgument = "argument"
	positionReturn   = "return"

	outcomeAccepted = "accepted"
	outcomeRejected = "rejected"
	outcomeSkipped  = "skipped"
	outcomeError    = "error"
)

// checksTotal counts conformance checks of single values.
//
// Labels:
//   - position: "argument" or "return".
//   - outcome: "accepted" if the value conforms, "rejected" if it does not,
//     "skipped" for unannotated positions, and "error" when the declared
//     spec could not be normalized.
//
// Usage example in dashboards:
//   - sum(rate(strict_hint_checks_total{outcome="rejected"}[5m])) by (position)
var checksTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
	Name: "strict_hint_checks_total",
	Help: "The total number of type-conformance checks, by position and outcome",
}, []string{"position", "outcome"})

// init pre-seeds every label combination so rate() works before the first check.
func init() {
	for _, position := range []string{positionArgument, positionReturn} {
		for _, outcome := range []string{outcomeAccepted, outcomeRejected, outcomeSkipped, outcomeError} {
			checksTotal.WithLabelValues(position, outcome).Add(0)
		}
	}
}

func observe(position string, ok bool, err error) {
	switch {
	case err != nil:
		checksTotal.WithLabelValues(position, outcomeError).Inc()
	case ok:
		checksTotal.WithLabelValues(position, outcomeAccepted).Inc()
	default:
		checksTotal.WithLabelValues(position, outcomeRejected).Inc()
	}
}
