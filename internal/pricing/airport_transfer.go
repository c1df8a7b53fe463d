package pricing

import (
	"fmt"

	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
)

// (база + надбавка машины) × машины × (туда-обратно ? 1.8 : 1) + детские кресла
func (c *Calculator) airportTransfer(f *domain.AirportTransferForm) (*breakdown, error) {
	cat := &c.catalogs.AirportTransfer

	vehicle, ok := cat.Vehicles.Find(f.VehicleType)
	if !ok {
		return nil, unknownOption("vehicleType", f.VehicleType)
	}

	b := newBreakdown()
	b.item("vehicle", fmt.Sprintf("%s transfer", vehicle.Name), domain.KindBase,
		vehicle.ID, f.Vehicles(), cat.BasePrice+vehicle.Price)

	if f.IsRoundTrip {
		b.multiply("round_trip", "Round trip", cat.RoundTripMultiplier)
	}

	if f.CarSeats > 0 {
		b.item("car_seats", "Child car seats", domain.KindAddon, "", f.CarSeats, cat.CarSeatPrice)
	}

	return b, nil
}
