package pricing

import (
	"fmt"

	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
	"github.com/m04kA/SMC-ConciergeBooking/internal/eligibility"
)

// Σ количество × ставка в день × дни + доставка (если не самовывоз из отеля)
func (c *Calculator) bikeRental(f *domain.BikeRentalForm) (*breakdown, error) {
	cat := &c.catalogs.BikeRental
	days := eligibility.RentalDays(f.StartDate, f.EndDate, c.loc)

	b := newBreakdown()
	if err := rentalItems(b, "bike", cat.Bikes, f.Bikes, days); err != nil {
		return nil, err
	}

	if f.DeliveryToHotel && f.Location != domain.LocationHotelPickup {
		b.fee("delivery", "Hotel delivery", cat.DeliveryFee)
	}

	return b, nil
}

// Σ количество × ставка в день × дни + доставка
func (c *Calculator) golfCart(f *domain.GolfCartForm) (*breakdown, error) {
	cat := &c.catalogs.GolfCart
	days := eligibility.RentalDays(f.StartDate, f.EndDate, c.loc)

	b := newBreakdown()
	if err := rentalItems(b, "cart", cat.Carts, f.Carts, days); err != nil {
		return nil, err
	}

	if f.Delivery {
		b.fee("delivery", "Cart delivery", cat.DeliveryFee)
	}

	return b, nil
}

// rentalItems добавляет позиции посуточной аренды; цена за единицу - за весь срок
func rentalItems(b *breakdown, code string, options domain.Options, selections []domain.Selection, days int) error {
	for _, sel := range selections {
		if sel.Quantity <= 0 {
			continue
		}
		opt, ok := options.Find(sel.ID)
		if !ok {
			return unknownOption(code, sel.ID)
		}
		label := fmt.Sprintf("%s (%d %s at $%.2f/day)", opt.Name, days, pluralDays(days), opt.Price)
		b.item(code, label, domain.KindOption, opt.ID, sel.Quantity, opt.Price*float64(days))
	}
	return nil
}

func pluralDays(days int) string {
	if days == 1 {
		return "day"
	}
	return "days"
}
