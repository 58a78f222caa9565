package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		Commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "partidos_commands_total",
			Help: "The total number of /partidos commands handled, by outcome.",
		}, []string{"outcome"}),
		Autocompletes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "partidos_autocomplete_total",
			Help: "The total number of autocomplete requests answered, by option.",
		}, []string{"option"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "partidos_upstream_request_duration_seconds",
			Help:    "The duration of football-data requests.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"result"}),
	}

	reg.MustRegister(
		s.Commands,
		s.Autocompletes,
		s.UpstreamDuration,
	)

	return s
}

func (s *Service) IncCommand(outcome string) {
	s.Commands.WithLabelValues(outcome).Inc()
}

func (s *Service) IncAutocomplete(option string) {
	s.Autocompletes.WithLabelValues(option).Inc()
}

func (s *Service) ObserveUpstream(seconds float64, failed bool) {
	result := "ok"
	if failed {
		result = "error"
	}
	s.UpstreamDuration.WithLabelValues(result).Observe(seconds)
}
