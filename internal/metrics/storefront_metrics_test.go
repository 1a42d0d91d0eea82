package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewStorefrontMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	m := newStorefrontMetricsWithRegisterer(registry)
	if m == nil {
		t.Fatal("expected metrics instance, got nil")
	}

	m.RecordOrdersFetched()
	m.RecordFetchFailed()
	m.RecordCancellation()
	m.RecordCancellationFailed()
	m.RecordInvoiceGenerated()
	m.RecordInvoiceMissingTax()
	m.RecordInvoiceRenderDuration(5 * time.Millisecond)

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(families) != 7 {
		t.Fatalf("expected 7 metric families, got %d", len(families))
	}
}

func TestStorefrontMetricsDoubleRegister(t *testing.T) {
	registry := prometheus.NewRegistry()

	first := newStorefrontMetricsWithRegisterer(registry)
	second := newStorefrontMetricsWithRegisterer(registry)

	// Повторная регистрация должна вернуть уже существующие коллекторы.
	first.RecordOrdersFetched()
	second.RecordOrdersFetched()

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, family := range families {
		if family.GetName() != "storefront_orders_fetched_total" {
			continue
		}
		if got := family.GetMetric()[0].GetCounter().GetValue(); got != 2 {
			t.Fatalf("expected shared counter value 2, got %v", got)
		}
		return
	}
	t.Fatal("storefront_orders_fetched_total not found")
}

func TestStorefrontMetricsNilReceiver(t *testing.T) {
	var m *StorefrontMetrics

	// Методы на nil-приёмнике не должны паниковать.
	m.RecordOrdersFetched()
	m.RecordFetchFailed()
	m.RecordCancellation()
	m.RecordCancellationFailed()
	m.RecordInvoiceGenerated()
	m.RecordInvoiceMissingTax()
	m.RecordInvoiceRenderDuration(time.Millisecond)
}
