package assembler

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
	"github.com/m04kA/SMC-ConciergeBooking/internal/eligibility"
)

// Assembler собирает запись брони из проверенной формы и расчета цены
// Повторная валидация не выполняется
type Assembler struct {
	catalogs *domain.Catalogs
	newID    func() string
}

// NewAssembler создает сборщик записей
func NewAssembler(catalogs *domain.Catalogs) *Assembler {
	return &Assembler{
		catalogs: catalogs,
		newID:    uuid.NewString,
	}
}

// Assemble создает запись брони; now задает локацию дат и момент создания
func (a *Assembler) Assemble(form domain.Form, quote *domain.PriceQuote, now time.Time) (*domain.ReservationRecord, error) {
	if quote == nil || quote.ServiceType != form.ServiceType() {
		return nil, ErrQuoteMismatch
	}

	start, end, err := a.schedule(form, now.Location())
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(form)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeForm, err)
	}

	date, _ := form.EligibilityDateTime()

	return &domain.ReservationRecord{
		ID:          a.newID(),
		ServiceType: form.ServiceType(),
		ServiceName: form.ServiceType().Name(),
		Form:        raw,
		Quote:       *quote,
		StartAt:     start,
		EndAt:       end,
		Party:       party(form),
		LineItems:   a.lineItems(form.ServiceType(), quote),
		SameDay:     eligibility.IsSameDay(date, now),
		CreatedAt:   now,
	}, nil
}

// party сводка по составу группы
func party(form domain.Form) domain.Party {
	var adults, children int

	switch f := form.(type) {
	case *domain.AirportTransferForm:
		adults, children = f.Adults, f.Children
	case *domain.BikeRentalForm:
		adults, children = f.Adults, f.Children
	case *domain.GolfCartForm:
		adults = f.Guests
	case *domain.YachtCharterForm:
		adults, children = f.Adults, f.Children
	case *domain.IslandTourForm:
		adults, children = f.Adults, len(f.Children)
	case *domain.CustomPackageForm:
		adults = f.Guests
	}

	return domain.Party{Adults: adults, Children: children, Total: adults + children}
}

// lineItems выбранные позиции из расшифровки цены
// Множители, сборы и скидки в позиции не попадают: итог берется из расчета
func (a *Assembler) lineItems(st domain.ServiceType, quote *domain.PriceQuote) []domain.LineItem {
	items := make([]domain.LineItem, 0, len(quote.Breakdown))
	for _, c := range quote.Breakdown {
		switch c.Kind {
		case domain.KindBase, domain.KindOption, domain.KindAddon:
		default:
			continue
		}

		id, name := c.Code, c.Label
		if c.OptionID != "" {
			id = c.OptionID
			if opt, ok := a.findOption(st, c.OptionID); ok {
				name = opt.Name
			}
		}

		items = append(items, domain.LineItem{
			ID:        id,
			Name:      name,
			Quantity:  c.Quantity,
			UnitPrice: c.UnitPrice,
			LineTotal: c.Amount,
		})
	}
	return items
}

// findOption ищет позицию во всех списках каталога услуги
func (a *Assembler) findOption(st domain.ServiceType, id string) (domain.Option, bool) {
	var lists []domain.Options

	switch st {
	case domain.ServiceAirportTransfer:
		lists = []domain.Options{a.catalogs.AirportTransfer.Vehicles}
	case domain.ServiceBikeRental:
		lists = []domain.Options{a.catalogs.BikeRental.Bikes}
	case domain.ServiceGolfCart:
		lists = []domain.Options{a.catalogs.GolfCart.Carts}
	case domain.ServiceYachtCharter:
		yc := &a.catalogs.YachtCharter
		lists = []domain.Options{yc.Yachts, yc.Catering, yc.WaterSports}
	case domain.ServiceDecoration:
		lists = []domain.Options{a.catalogs.Decoration.Packages, a.catalogs.Decoration.Addons}
	case domain.ServiceLiveMusic:
		lists = []domain.Options{a.catalogs.LiveMusic.Performers}
	case domain.ServiceCustomPackage:
		lists = []domain.Options{a.catalogs.CustomPackage.Items}
	}

	for _, options := range lists {
		if opt, ok := options.Find(id); ok {
			return opt, true
		}
	}
	return domain.Option{}, false
}
