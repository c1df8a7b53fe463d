package assembler

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
	"github.com/m04kA/SMC-ConciergeBooking/internal/eligibility"
)

// schedule вычисляет начало и (если есть) конец брони
// Для каждой услуги подставляется время по умолчанию; у тура время сбора всегда из каталога
func (a *Assembler) schedule(form domain.Form, loc *time.Location) (time.Time, *time.Time, error) {
	switch f := form.(type) {
	case *domain.AirportTransferForm:
		start, err := at(f.ArrivalDate, f.ArrivalTime, loc)
		if err != nil || !f.IsRoundTrip {
			return start, nil, err
		}
		end, err := at(f.ReturnDate, f.ReturnTime, loc)
		return start, &end, err

	case *domain.BikeRentalForm:
		return span(f.StartDate, withDefault(f.PickupTime, domain.BikeRentalStartTime),
			f.EndDate, domain.BikeRentalEndTime, loc)

	case *domain.GolfCartForm:
		return span(f.StartDate, withDefault(f.PickupTime, domain.GolfCartStartTime),
			f.EndDate, domain.GolfCartEndTime, loc)

	case *domain.YachtCharterForm:
		start, err := at(f.Date, f.StartTime, loc)
		if err != nil {
			return start, nil, err
		}
		end := start.Add(time.Duration(f.DurationHours) * time.Hour)
		return start, &end, nil

	case *domain.DecorationForm:
		start, err := at(f.Date, withDefault(f.SetupTime, domain.DecorationSetupTime), loc)
		return start, nil, err

	case *domain.LiveMusicForm:
		return span(f.Date, f.StartTime, f.Date, f.EndTime, loc)

	case *domain.IslandTourForm:
		cat := &a.catalogs.IslandTour
		return span(f.Date, cat.PickupTime, f.Date, cat.ReturnTime, loc)

	case *domain.CustomPackageForm:
		// Пакет занимает дни целиком: конец - полночь после последнего дня
		start, err := at(f.StartDate, "", loc)
		if err != nil {
			return start, nil, err
		}
		lastDay, err := at(f.EndDate, "", loc)
		if err != nil {
			return start, nil, err
		}
		end := lastDay.AddDate(0, 0, 1)
		return start, &end, nil

	default:
		return time.Time{}, nil, fmt.Errorf("%w: unsupported form %T", ErrInvalidSchedule, form)
	}
}

func span(startDate, startTime, endDate, endTime string, loc *time.Location) (time.Time, *time.Time, error) {
	start, err := at(startDate, startTime, loc)
	if err != nil {
		return start, nil, err
	}
	end, err := at(endDate, endTime, loc)
	if err != nil {
		return start, nil, err
	}
	return start, &end, nil
}

func at(date, hhmm string, loc *time.Location) (time.Time, error) {
	t, ok := eligibility.Parse(eligibility.Combine(date, hhmm), loc)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q %q", ErrInvalidSchedule, date, hhmm)
	}
	return t, nil
}

func withDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
