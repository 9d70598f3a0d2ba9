// Package metrics exposes application-level prometheus instruments.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds the counters the core operations increment. A dedicated
// registry keeps the /metrics output limited to this process.
type Metrics struct {
	Registry *prometheus.Registry

	InvoicesSaved     prometheus.Counter
	NumbersIssued     prometheus.Counter
	CounterRecoveries prometheus.Counter
	DocumentsRendered prometheus.Counter
}

// New configures the instruments and their registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		InvoicesSaved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chalan_invoices_saved_total",
			Help: "Invoices persisted to the store.",
		}),
		NumbersIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chalan_numbers_issued_total",
			Help: "Chalan numbers issued by the sequencer.",
		}),
		CounterRecoveries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chalan_counter_recoveries_total",
			Help: "Times the sequencer rebuilt the counter from the invoice max scan.",
		}),
		DocumentsRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chalan_documents_rendered_total",
			Help: "Invoice PDFs rendered.",
		}),
	}

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		m.InvoicesSaved,
		m.NumbersIssued,
		m.CounterRecoveries,
		m.DocumentsRendered,
	)
	return m
}
