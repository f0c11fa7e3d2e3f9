package server

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/goliatone/go-formcheck/pkg/form"
	"github.com/goliatone/go-formcheck/pkg/rules"
)

// Metrics counts validation activity. It implements form.Observer so every
// controller the server creates reports into it.
type Metrics struct {
	registry    *prometheus.Registry
	validations *prometheus.CounterVec
	submits     *prometheus.CounterVec
	sessions    prometheus.Gauge
}

var _ form.Observer = (*Metrics)(nil)

// NewMetrics registers the collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "formcheck",
			Name:      "field_validations_total",
			Help:      "Field validator runs by field and result.",
		}, []string{"field", "valid"}),
		submits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "formcheck",
			Name:      "submits_total",
			Help:      "Form submissions by final state.",
		}, []string{"state"}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "formcheck",
			Name:      "live_sessions",
			Help:      "Open WebSocket sessions.",
		}),
	}
	m.registry.MustRegister(m.validations, m.submits, m.sessions)
	return m
}

func (m *Metrics) FieldValidated(field rules.Field, result rules.Result) {
	m.validations.WithLabelValues(string(field), strconv.FormatBool(result.Valid)).Inc()
}

func (m *Metrics) Submitted(outcome form.Outcome) {
	m.submits.WithLabelValues(outcome.State.String()).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests and embedding.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
