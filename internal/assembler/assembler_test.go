package assembler

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConciergeBooking/internal/catalog"
	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
	"github.com/m04kA/SMC-ConciergeBooking/internal/pricing"
)

var testNow = time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)

func assemble(t *testing.T, form domain.Form) *domain.ReservationRecord {
	t.Helper()
	catalogs := catalog.Default()

	quote, err := pricing.NewCalculator(catalogs, time.UTC).Quote(form)
	require.NoError(t, err)

	a := NewAssembler(catalogs)
	a.newID = func() string { return "res-1" }

	record, err := a.Assemble(form, quote, testNow)
	require.NoError(t, err)
	return record
}

func TestAssemble_AirportTransfer(t *testing.T) {
	form := &domain.AirportTransferForm{
		ArrivalDate:        "2025-06-15",
		ArrivalTime:        "10:30",
		IsRoundTrip:        true,
		ReturnDate:         "2025-06-20",
		ReturnTime:         "18:00",
		Adults:             2,
		Children:           1,
		CarSeats:           1,
		VehicleType:        "suv",
		Destination:        "Grand Palm Resort",
		ReturnAirline:      "Delta",
		ReturnFlightNumber: "DL124",
	}

	record := assemble(t, form)

	assert.Equal(t, "res-1", record.ID)
	assert.Equal(t, domain.ServiceAirportTransfer, record.ServiceType)
	assert.Equal(t, "Airport Transfer", record.ServiceName)
	assert.Equal(t, time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC), record.StartAt)
	require.NotNil(t, record.EndAt)
	assert.Equal(t, time.Date(2025, 6, 20, 18, 0, 0, 0, time.UTC), *record.EndAt)
	assert.Equal(t, domain.Party{Adults: 2, Children: 1, Total: 3}, record.Party)
	assert.Equal(t, 235.0, record.Total())
	assert.False(t, record.SameDay)
	assert.Equal(t, testNow, record.CreatedAt)

	require.Len(t, record.LineItems, 2)
	assert.Equal(t, domain.LineItem{ID: "suv", Name: "SUV", Quantity: 1, UnitPrice: 125, LineTotal: 125}, record.LineItems[0])
	assert.Equal(t, "car_seats", record.LineItems[1].ID)

	var decoded domain.AirportTransferForm
	require.NoError(t, json.Unmarshal(record.Form, &decoded))
	assert.Equal(t, *form, decoded)
}

func TestAssemble_OneWayTransferHasNoEnd(t *testing.T) {
	record := assemble(t, &domain.AirportTransferForm{
		ArrivalDate: "2025-06-15",
		ArrivalTime: "10:30",
		Adults:      1,
		VehicleType: "sedan",
		ReturnDate:  "2025-06-20",
		ReturnTime:  "18:00",
	})
	assert.Nil(t, record.EndAt)
}

func TestAssemble_BikeRentalDefaults(t *testing.T) {
	record := assemble(t, &domain.BikeRentalForm{
		StartDate: "2025-06-15",
		EndDate:   "2025-06-17",
		Adults:    2,
		Children:  1,
		Bikes:     []domain.Selection{{ID: "city", Quantity: 3}},
	})

	assert.Equal(t, time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC), record.StartAt)
	require.NotNil(t, record.EndAt)
	assert.Equal(t, time.Date(2025, 6, 17, 18, 0, 0, 0, time.UTC), *record.EndAt)
	assert.Equal(t, 180.0, record.Total())

	require.Len(t, record.LineItems, 1)
	assert.Equal(t, domain.LineItem{ID: "city", Name: "City Bike", Quantity: 3, UnitPrice: 60, LineTotal: 180}, record.LineItems[0])
}

func TestAssemble_YachtEndFromDuration(t *testing.T) {
	record := assemble(t, &domain.YachtCharterForm{
		Date:          "2025-06-15",
		StartTime:     "11:00",
		DurationHours: 6,
		Adults:        4,
		YachtType:     "catamaran_42",
		Catering:      "premium",
	})

	require.NotNil(t, record.EndAt)
	assert.Equal(t, time.Date(2025, 6, 15, 17, 0, 0, 0, time.UTC), *record.EndAt)

	names := make([]string, 0, len(record.LineItems))
	for _, item := range record.LineItems {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"42ft Catamaran", "Premium Catering"}, names, "multipliers are not line items")
}

func TestAssemble_IslandTourUsesFixedTimes(t *testing.T) {
	record := assemble(t, &domain.IslandTourForm{
		Date:       "2025-06-15",
		PickupTime: "13:00",
		Adults:     2,
		Children:   []domain.Child{{Age: 3}, {Age: 9}},
	})

	assert.Equal(t, time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC), record.StartAt)
	require.NotNil(t, record.EndAt)
	assert.Equal(t, time.Date(2025, 6, 15, 16, 0, 0, 0, time.UTC), *record.EndAt)
	assert.Equal(t, domain.Party{Adults: 2, Children: 2, Total: 4}, record.Party)
}

func TestAssemble_CustomPackageWholeDays(t *testing.T) {
	record := assemble(t, &domain.CustomPackageForm{
		StartDate: "2025-06-15",
		EndDate:   "2025-06-16",
		Guests:    2,
		Items:     []domain.Selection{{ID: "spa_massage", Quantity: 1}},
	})

	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), record.StartAt)
	require.NotNil(t, record.EndAt)
	assert.Equal(t, time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC), *record.EndAt)
	assert.Equal(t, domain.Party{Adults: 2, Total: 2}, record.Party)
}

func TestAssemble_SameDay(t *testing.T) {
	record := assemble(t, &domain.DecorationForm{
		Date:     "2025-06-10",
		Occasion: "birthday",
		Package:  "essential",
	})

	assert.True(t, record.SameDay)
	assert.Equal(t, time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC), record.StartAt)
	assert.Nil(t, record.EndAt)
}

func TestAssemble_Errors(t *testing.T) {
	a := NewAssembler(catalog.Default())

	t.Run("quote for another service", func(t *testing.T) {
		quote := &domain.PriceQuote{ServiceType: domain.ServiceYachtCharter}
		_, err := a.Assemble(&domain.DecorationForm{Date: "2025-06-20"}, quote, testNow)
		assert.True(t, errors.Is(err, ErrQuoteMismatch))
	})

	t.Run("unparseable date", func(t *testing.T) {
		quote := &domain.PriceQuote{ServiceType: domain.ServiceDecoration}
		_, err := a.Assemble(&domain.DecorationForm{Date: "soon"}, quote, testNow)
		assert.True(t, errors.Is(err, ErrInvalidSchedule))
	})
}

func TestAssemble_DefaultIDIsUUID(t *testing.T) {
	catalogs := catalog.Default()
	form := &domain.DecorationForm{Date: "2025-06-20", Occasion: "birthday", Package: "essential"}
	quote, err := pricing.NewCalculator(catalogs, time.UTC).Quote(form)
	require.NoError(t, err)

	first, err := NewAssembler(catalogs).Assemble(form, quote, testNow)
	require.NoError(t, err)
	second, err := NewAssembler(catalogs).Assemble(form, quote, testNow)
	require.NoError(t, err)

	assert.Len(t, first.ID, 36)
	assert.NotEqual(t, first.ID, second.ID)
}
