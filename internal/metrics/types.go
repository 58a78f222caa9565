package metrics

import "github.com/prometheus/client_golang/prometheus"

// Command outcomes used as label values.
const (
	OutcomeOK            = "ok"
	OutcomeEmpty         = "empty"
	OutcomeUnknownTeam   = "unknown_team"
	OutcomeUpstreamError = "upstream_error"
)

type Service struct {
	Commands         *prometheus.CounterVec
	Autocompletes    *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec
}
