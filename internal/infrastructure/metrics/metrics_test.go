package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewWithRegistererRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	m := NewWithRegisterer(registry)

	if m.CalculationsTotal == nil || m.HTTPRequests == nil || m.VouchersCreated == nil {
		t.Fatalf("expected key metrics to be initialized: %+v", m)
	}

	m.CalculationsTotal.Inc()
	m.HTTPRequests.WithLabelValues("GET", "/health", "200").Inc()

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	if len(metricFamilies) == 0 {
		t.Fatalf("expected registered metrics, got none")
	}
}

func TestNewWithRegistererRejectsDuplicateRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	NewWithRegisterer(registry)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate registration")
		}
	}()
	NewWithRegisterer(registry)
}
