package pricing

import (
	"fmt"

	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
)

// яхта × множитель длительности + гости сверх включенных + кейтеринг + водные развлечения + трансфер
func (c *Calculator) yachtCharter(f *domain.YachtCharterForm) (*breakdown, error) {
	cat := &c.catalogs.YachtCharter

	yacht, ok := cat.Yachts.Find(f.YachtType)
	if !ok {
		return nil, unknownOption("yachtType", f.YachtType)
	}
	duration, ok := cat.Duration(f.DurationHours)
	if !ok {
		return nil, unknownOption("durationHours", fmt.Sprint(f.DurationHours))
	}

	b := newBreakdown()
	b.item("yacht", yacht.Name, domain.KindBase, yacht.ID, 1, yacht.Price)
	b.multiply("duration", fmt.Sprintf("%d hour charter", duration.Hours), duration.Multiplier)

	guests := f.Adults + f.Children
	if extra := guests - cat.IncludedGuests; extra > 0 {
		b.item("extra_guests", fmt.Sprintf("Guests beyond %d included", cat.IncludedGuests),
			domain.KindFee, "", extra, cat.ExtraGuestPrice)
	}

	if f.Catering != "" {
		catering, ok := cat.Catering.Find(f.Catering)
		if !ok {
			return nil, unknownOption("catering", f.Catering)
		}
		if catering.Price > 0 {
			b.item("catering", catering.Name, domain.KindAddon, catering.ID, 1, catering.Price)
		}
	}

	for _, id := range f.WaterSports {
		sport, ok := cat.WaterSports.Find(id)
		if !ok {
			return nil, unknownOption("waterSports", id)
		}
		b.item("water_sport", sport.Name, domain.KindAddon, sport.ID, 1, sport.Price)
	}

	if f.NeedsTransport {
		b.fee("transport", "Marina transport", cat.TransportFee)
	}

	return b, nil
}
