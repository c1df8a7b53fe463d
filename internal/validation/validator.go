package validation

import (
	"time"

	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
	"github.com/m04kA/SMC-ConciergeBooking/internal/eligibility"
)

// Validator проверяет формы бронирования по правилам услуг и каталогам
type Validator struct {
	catalogs *domain.Catalogs
}

// NewValidator создает валидатор
func NewValidator(catalogs *domain.Catalogs) *Validator {
	return &Validator{catalogs: catalogs}
}

// Validate возвращает ошибки полей формы; пустая карта - форма валидна
// Проверяются все правила, первая ошибка не прерывает проверку
func (v *Validator) Validate(form domain.Form, now time.Time) domain.FieldErrors {
	c := newChecker(now)

	switch f := form.(type) {
	case *domain.AirportTransferForm:
		v.airportTransfer(c, f)
	case *domain.BikeRentalForm:
		v.bikeRental(c, f)
	case *domain.GolfCartForm:
		v.golfCart(c, f)
	case *domain.YachtCharterForm:
		v.yachtCharter(c, f)
	case *domain.DecorationForm:
		v.decoration(c, f)
	case *domain.LiveMusicForm:
		v.liveMusic(c, f)
	case *domain.IslandTourForm:
		v.islandTour(c, f)
	case *domain.CustomPackageForm:
		v.customPackage(c, f)
	default:
		c.add("serviceType", msgUnknownOption)
	}

	return c.errs
}

// Verdict проверяет срок бронирования формы
// Для тура время сбора берется из каталога
func (v *Validator) Verdict(form domain.Form, now time.Time) eligibility.Verdict {
	date, hhmm := form.EligibilityDateTime()
	if form.ServiceType() == domain.ServiceIslandTour {
		hhmm = v.catalogs.IslandTour.PickupTime
	}
	return eligibility.Check(eligibility.Combine(date, hhmm), form.ServiceType().LeadHours(), now)
}
