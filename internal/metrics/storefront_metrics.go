package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StorefrontMetrics содержит метрики жизненного цикла заказов и генерации счетов.
type StorefrontMetrics struct {
	// Счётчики операций со списком заказов
	ordersFetched prometheus.Counter
	fetchFailed   prometheus.Counter

	// Счётчики отмен
	cancellations       prometheus.Counter
	cancellationsFailed prometheus.Counter

	// Счётчики и гистограмма генерации счетов-фактур
	invoicesGenerated  prometheus.Counter
	invoicesMissingTax prometheus.Counter
	invoiceRender      prometheus.Histogram
}

// NewStorefrontMetrics создаёт новый экземпляр метрик витрины.
func NewStorefrontMetrics() *StorefrontMetrics {
	return newStorefrontMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newStorefrontMetricsWithRegisterer(registerer prometheus.Registerer) *StorefrontMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &StorefrontMetrics{
		ordersFetched: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_orders_fetched_total",
			Help: "Total number of successful order list fetches",
		}),
		fetchFailed: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_fetch_failed_total",
			Help: "Total number of failed order or tax list fetches",
		}),
		cancellations: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_cancellations_total",
			Help: "Total number of successful order cancellations",
		}),
		cancellationsFailed: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_cancellations_failed_total",
			Help: "Total number of failed order cancellations",
		}),
		invoicesGenerated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_invoices_generated_total",
			Help: "Total number of invoice documents generated",
		}),
		invoicesMissingTax: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_invoices_missing_tax_total",
			Help: "Total number of invoice requests skipped due to a missing tax record",
		}),
		invoiceRender: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "storefront_invoice_render_seconds",
			Help:    "Duration of invoice PDF rendering in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Histogram)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}

// RecordOrdersFetched увеличивает счётчик успешных чтений списка заказов.
func (m *StorefrontMetrics) RecordOrdersFetched() {
	if m == nil {
		return
	}
	m.ordersFetched.Inc()
}

// RecordFetchFailed увеличивает счётчик неудачных чтений.
func (m *StorefrontMetrics) RecordFetchFailed() {
	if m == nil {
		return
	}
	m.fetchFailed.Inc()
}

// RecordCancellation увеличивает счётчик успешных отмен.
func (m *StorefrontMetrics) RecordCancellation() {
	if m == nil {
		return
	}
	m.cancellations.Inc()
}

// RecordCancellationFailed увеличивает счётчик неудачных отмен.
func (m *StorefrontMetrics) RecordCancellationFailed() {
	if m == nil {
		return
	}
	m.cancellationsFailed.Inc()
}

// RecordInvoiceGenerated увеличивает счётчик выпущенных счетов-фактур.
func (m *StorefrontMetrics) RecordInvoiceGenerated() {
	if m == nil {
		return
	}
	m.invoicesGenerated.Inc()
}

// RecordInvoiceMissingTax увеличивает счётчик пропусков из-за отсутствия налоговой записи.
func (m *StorefrontMetrics) RecordInvoiceMissingTax() {
	if m == nil {
		return
	}
	m.invoicesMissingTax.Inc()
}

// RecordInvoiceRenderDuration записывает время рендера счёта-фактуры.
func (m *StorefrontMetrics) RecordInvoiceRenderDuration(duration time.Duration) {
	if m == nil {
		return
	}
	m.invoiceRender.Observe(duration.Seconds())
}
