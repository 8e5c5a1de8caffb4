package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCountersIncrement(t *testing.T) {
	before := testutil.ToFloat64(InvoicesCreated)

	InvoicesCreated.Inc()
	InvoicesCreated.Inc()

	if got := testutil.ToFloat64(InvoicesCreated); got != before+2 {
		t.Fatalf("expected counter to advance by 2, got %v (was %v)", got, before)
	}
}

func TestCountersRegistered(t *testing.T) {
	// promauto registers on the default registry at package init; a second
	// registration of the same name would have panicked by now.
	if InvoicesVoided == nil || VehiclesDispatched == nil || TripsFinalized == nil {
		t.Fatal("expected counters to be initialized")
	}
}
