package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор метрик сервиса
// Все методы Observe* безопасно вызывать на nil (метрики выключены)
type Metrics struct {
	serviceName string
	registry    *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration *prometheus.HistogramVec
	DBConnections   *prometheus.GaugeVec

	QuotesTotal        *prometheus.CounterVec
	ReservationsTotal  *prometheus.CounterVec
	ReservationAmount  *prometheus.HistogramVec
	InquiriesTotal     *prometheus.CounterVec
	NotificationErrors *prometheus.CounterVec
}

// New создает и регистрирует метрики в собственном реестре
func New(serviceName string) *Metrics {
	m := &Metrics{
		serviceName: serviceName,
		registry:    prometheus.NewRegistry(),

		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation"}),

		DBConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections",
			Help: "Database connection pool state",
		}, []string{"service", "state"}),

		QuotesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_quotes_total",
			Help: "Price quotes computed, by service type and validity",
		}, []string{"service", "service_type", "valid"}),

		ReservationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_reservations_total",
			Help: "Reservations handed off to the booking store",
		}, []string{"service", "service_type"}),

		ReservationAmount: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "booking_reservation_amount_usd",
			Help:    "Quoted totals of submitted reservations",
			Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
		}, []string{"service", "service_type"}),

		InquiriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_inquiries_total",
			Help: "Inquiry e-mails by result",
		}, []string{"service", "result"}),

		NotificationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_notification_errors_total",
			Help: "Failed best-effort notifications",
		}, []string{"service", "channel"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBConnections,
		m.QuotesTotal,
		m.ReservationsTotal,
		m.ReservationAmount,
		m.InquiriesTotal,
		m.NotificationErrors,
	)

	return m
}

// Handler возвращает HTTP обработчик для экспорта метрик
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry возвращает реестр метрик
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ServiceName возвращает имя сервиса в лейблах
func (m *Metrics) ServiceName() string {
	return m.serviceName
}

// ObserveQuote учитывает рассчитанную котировку
func (m *Metrics) ObserveQuote(serviceType string, valid bool) {
	if m == nil {
		return
	}
	m.QuotesTotal.WithLabelValues(m.serviceName, serviceType, strconv.FormatBool(valid)).Inc()
}

// ObserveReservation учитывает переданное в хранилище бронирование
func (m *Metrics) ObserveReservation(serviceType string, total float64) {
	if m == nil {
		return
	}
	m.ReservationsTotal.WithLabelValues(m.serviceName, serviceType).Inc()
	m.ReservationAmount.WithLabelValues(m.serviceName, serviceType).Observe(total)
}

// ObserveInquiry учитывает результат отправки запроса
func (m *Metrics) ObserveInquiry(result string) {
	if m == nil {
		return
	}
	m.InquiriesTotal.WithLabelValues(m.serviceName, result).Inc()
}

// ObserveNotificationError учитывает неудачную best-effort нотификацию
func (m *Metrics) ObserveNotificationError(channel string) {
	if m == nil {
		return
	}
	m.NotificationErrors.WithLabelValues(m.serviceName, channel).Inc()
}
