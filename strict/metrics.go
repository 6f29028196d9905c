package strict

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomePassed   = "passed"
	outcomeRejected = "rejected"
	outcomeInvalid  = "invalid"
	outcomeFailed   = "failed"
	outcomeBypassed = "bypassed"
)

// guardedCallsTotal counts calls that went through a guard.
//
// Labels:
//   - outcome: "passed" when arguments and result conformed, "rejected" on a
//     conformance failure, "invalid" when a declared spec could not be
//     normalized, "failed" when the callable itself returned an error, and
//     "bypassed" while guards are disabled.
var guardedCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
	Name: "strict_hint_guarded_calls_total",
	Help: "The total number of guarded calls, by outcome",
}, []string{"outcome"})

func init() {
	for _, outcome := range []string{outcomePassed, outcomeRejected, outcomeInvalid, outcomeFailed, outcomeBypassed} {
		guardedCallsTotal.WithLabelValues(outcome).Add(0)
	}
}
