package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	QuotesBuiltTotal    *prometheus.CounterVec
	PromoLookupsTotal   *prometheus.CounterVec
}

// New регистрирует и возвращает метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path"}),

		QuotesBuiltTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "quotes_built_total",
			Help:        "Total number of priced booking summaries built",
			ConstLabels: constLabels,
		}, []string{"result"}),

		PromoLookupsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "promo_lookups_total",
			Help:        "Total number of promotion code validations by outcome",
			ConstLabels: constLabels,
		}, []string{"kind"}),
	}
}

// ObserveQuoteBuilt учитывает попытку построения расчета.
// Безопасен для nil-приемника: при выключенных метриках вызов - no-op.
func (m *Metrics) ObserveQuoteBuilt(result string) {
	if m == nil {
		return
	}
	m.QuotesBuiltTotal.WithLabelValues(result).Inc()
}

// ObservePromoLookup учитывает завершенную валидацию промокода
// (kind типа промокода либо "invalid")
func (m *Metrics) ObservePromoLookup(kind string) {
	if m == nil {
		return
	}
	m.PromoLookupsTotal.WithLabelValues(kind).Inc()
}
