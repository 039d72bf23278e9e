package interp

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics for monitoring service.
var (
	statementsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Help:      "Number of successfully executed statements",
			Name:      "statements_total",
			Namespace: "lineinterp",
		},
		[]string{"kind"},
	)
	statementErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Help:      "Number of failed statements",
			Name:      "errors_total",
			Namespace: "lineinterp",
		},
		[]string{"kind"},
	)
	variablesDeclared = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Help:      "Number of variables in the last used symbol table",
			Name:      "variables",
			Namespace: "lineinterp",
		},
	)
)

func init() {
	prometheus.MustRegister(
		statementsProcessed,
		statementErrors,
		variablesDeclared,
	)
}
