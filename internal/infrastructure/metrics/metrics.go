// Package metrics exposes the business counters scraped from /metrics. HTTP
// request metrics live in the middleware; these count domain events.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// InvoicesCreated counts billed guides.
	InvoicesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "backoffice_invoices_created_total",
		Help: "Total number of invoices created",
	})

	// InvoicesVoided counts invoices removed from the books.
	InvoicesVoided = promauto.NewCounter(prometheus.CounterOpts{
		Name: "backoffice_invoices_voided_total",
		Help: "Total number of invoices voided",
	})

	// ExpensesRecorded counts registered expenses.
	ExpensesRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "backoffice_expenses_recorded_total",
		Help: "Total number of expenses recorded",
	})

	// AsientosRecorded counts accepted manual journal entries.
	AsientosRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "backoffice_asientos_recorded_total",
		Help: "Total number of manual journal entries recorded",
	})

	// VehiclesDispatched counts dispatch notes issued.
	VehiclesDispatched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "backoffice_vehicles_dispatched_total",
		Help: "Total number of vehicle dispatches",
	})

	// TripsFinalized counts completed delivery trips.
	TripsFinalized = promauto.NewCounter(prometheus.CounterOpts{
		Name: "backoffice_trips_finalized_total",
		Help: "Total number of trips finalized",
	})
)
