package pricing

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ConciergeBooking/internal/catalog"
	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
)

// Calculator считает цену формы по каталогам услуг
// Цена каждый раз пересчитывается с нуля, состояние между вызовами не хранится
type Calculator struct {
	catalogs   *domain.Catalogs
	categories catalog.CategoryIndex
	loc        *time.Location
}

// NewCalculator создает калькулятор; индекс категорий пакетов строится один раз
// loc - локация, в которой интерпретируются даты без зоны
func NewCalculator(catalogs *domain.Catalogs, loc *time.Location) *Calculator {
	if loc == nil {
		loc = time.Local
	}
	return &Calculator{
		catalogs:   catalogs,
		categories: catalog.NewCategoryIndex(catalogs.CustomPackage.Items),
		loc:        loc,
	}
}

// Quote рассчитывает цену с расшифровкой
func (c *Calculator) Quote(form domain.Form) (*domain.PriceQuote, error) {
	var (
		b   *breakdown
		err error
	)

	switch f := form.(type) {
	case *domain.AirportTransferForm:
		b, err = c.airportTransfer(f)
	case *domain.BikeRentalForm:
		b, err = c.bikeRental(f)
	case *domain.GolfCartForm:
		b, err = c.golfCart(f)
	case *domain.YachtCharterForm:
		b, err = c.yachtCharter(f)
	case *domain.DecorationForm:
		b, err = c.decoration(f)
	case *domain.LiveMusicForm:
		b, err = c.liveMusic(f)
	case *domain.IslandTourForm:
		b, err = c.islandTour(f)
	case *domain.CustomPackageForm:
		b, err = c.customPackage(f)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedForm, form)
	}
	if err != nil {
		return nil, err
	}

	return &domain.PriceQuote{
		ServiceType: form.ServiceType(),
		Currency:    domain.Currency,
		Total:       b.total(),
		Breakdown:   b.components,
	}, nil
}

// breakdown накапливает строки расшифровки; сумма Amount всегда равна итогу
type breakdown struct {
	components []domain.PriceComponent
}

func newBreakdown() *breakdown {
	return &breakdown{components: make([]domain.PriceComponent, 0, 4)}
}

// add добавляет строку; сумма округляется до центов
func (b *breakdown) add(component domain.PriceComponent) {
	component.Amount = domain.RoundCents(component.Amount)
	b.components = append(b.components, component)
}

// item добавляет позицию quantity × unitPrice
func (b *breakdown) item(code, label string, kind domain.ComponentKind, optionID string, quantity int, unitPrice float64) {
	b.add(domain.PriceComponent{
		Code:      code,
		Label:     label,
		Kind:      kind,
		OptionID:  optionID,
		Quantity:  quantity,
		UnitPrice: domain.RoundCents(unitPrice),
		Amount:    float64(quantity) * unitPrice,
	})
}

// fee добавляет фиксированный сбор
func (b *breakdown) fee(code, label string, amount float64) {
	b.add(domain.PriceComponent{
		Code:      code,
		Label:     label,
		Kind:      domain.KindFee,
		Quantity:  1,
		UnitPrice: domain.RoundCents(amount),
		Amount:    amount,
	})
}

// multiply применяет множитель к текущей сумме; строка содержит прибавку
func (b *breakdown) multiply(code, label string, factor float64) {
	if factor == 1 {
		return
	}
	b.add(domain.PriceComponent{
		Code:   code,
		Label:  label,
		Kind:   domain.KindMultiplier,
		Factor: factor,
		Amount: b.subtotal() * (factor - 1),
	})
}

// discount вычитает долю rate от текущей суммы
func (b *breakdown) discount(code, label string, rate float64) {
	if rate <= 0 {
		return
	}
	b.add(domain.PriceComponent{
		Code:   code,
		Label:  label,
		Kind:   domain.KindDiscount,
		Factor: 1 - rate,
		Amount: -b.subtotal() * rate,
	})
}

func (b *breakdown) subtotal() float64 {
	var sum float64
	for _, c := range b.components {
		sum += c.Amount
	}
	return sum
}

func (b *breakdown) total() float64 {
	return domain.RoundCents(b.subtotal())
}

func unknownOption(field, id string) error {
	return fmt.Errorf("%w: %s=%q", ErrUnknownOption, field, id)
}
