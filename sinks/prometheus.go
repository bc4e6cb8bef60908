package sinks

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/JakeFAU/unwrapprint"
)

// Metrics owns the collectors tracking diagnostics that pass through a
// counting printer.
type Metrics struct {
	diagnostics prometheus.Counter
	bytes       prometheus.Counter
}

// NewMetrics builds the collectors and registers them against reg. A nil
// reg uses the default registerer.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		diagnostics: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "unwrap_diagnostics_total",
			Help: "Total number of diagnostic lines dispatched.",
		}),
		bytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "unwrap_diagnostic_bytes_total",
			Help: "Total bytes of diagnostic text dispatched.",
		}),
	}

	for _, c := range []prometheus.Collector{m.diagnostics, m.bytes} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register diagnostics collector: %w", err)
		}
	}
	return m, nil
}

// Printer returns a printer that counts each diagnostic in m and then
// forwards it to next. A nil next counts without forwarding.
func (m *Metrics) Printer(next unwrapprint.Printer) unwrapprint.Printer {
	return func(text string) {
		m.diagnostics.Inc()
		m.bytes.Add(float64(len(text)))
		if next != nil {
			next(text)
		}
	}
}
