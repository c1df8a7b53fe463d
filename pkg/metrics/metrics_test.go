package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Observe(t *testing.T) {
	m := New("concierge")

	m.ObserveQuote("bike_rental", true)
	m.ObserveQuote("bike_rental", true)
	m.ObserveReservation("yacht_charter", 1200)
	m.ObserveInquiry("sent")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.QuotesTotal.WithLabelValues("concierge", "bike_rental", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReservationsTotal.WithLabelValues("concierge", "yacht_charter")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InquiriesTotal.WithLabelValues("concierge", "sent")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveQuote("island_tour", false)
		m.ObserveReservation("island_tour", 10)
		m.ObserveInquiry("failed")
		m.ObserveNotificationError("sms")
	})
}
