package eligibility

import (
	"math"
	"strings"
	"time"

	"github.com/m04kA/SMC-ConciergeBooking/pkg/types"
)

// Форматы, в которых принимаются даты и дата-время
// Строки без зоны интерпретируются в локации now
var layouts = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
}

const hoursPerDay = 24

// Verdict результат проверки даты бронирования
type Verdict struct {
	SameDay       bool // бронь на сегодня - нужно явное подтверждение клиента
	MeetsLeadTime bool // соблюден минимальный срок
	Blocked       bool // !SameDay && !MeetsLeadTime - бронь недопустима
}

// Parse разбирает дату или дату-время в локации loc
// Возвращает false для пустой или некорректной строки
func Parse(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(loc), true
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Combine объединяет дату и время HH:MM в строку дата-время
// Пустое или некорректное время - возвращается только дата
func Combine(date, hhmm string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return ""
	}
	ts := types.TimeString(strings.TrimSpace(hhmm))
	if ts.IsZero() || ts.Validate() != nil {
		return date
	}
	return date + "T" + ts.String()
}

// IsSameDay возвращает true, если календарная дата совпадает с сегодняшней (в локации now)
func IsSameDay(dateStr string, now time.Time) bool {
	t, ok := Parse(dateStr, now.Location())
	if !ok {
		return false
	}
	y1, m1, d1 := t.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// HasMinimumLeadHours возвращает true, если до даты осталось не меньше hours часов
// Граница включительная
func HasMinimumLeadHours(dateStr string, hours int, now time.Time) bool {
	t, ok := Parse(dateStr, now.Location())
	if !ok {
		return false
	}
	return t.Sub(now) >= time.Duration(hours)*time.Hour
}

// IsRangeOrdered возвращает true, если конец не раньше начала (end >= start)
func IsRangeOrdered(startStr, endStr string, loc *time.Location) bool {
	start, okStart := Parse(startStr, loc)
	end, okEnd := Parse(endStr, loc)
	if !okStart || !okEnd {
		return false
	}
	return !end.Before(start)
}

// IsRangeStrictlyOrdered возвращает true, если конец строго позже начала (end > start)
func IsRangeStrictlyOrdered(startStr, endStr string, loc *time.Location) bool {
	start, okStart := Parse(startStr, loc)
	end, okEnd := Parse(endStr, loc)
	if !okStart || !okEnd {
		return false
	}
	return end.After(start)
}

// RentalDays количество дней аренды, обе даты включительно; минимум 1
func RentalDays(startStr, endStr string, loc *time.Location) int {
	start, okStart := Parse(startStr, loc)
	end, okEnd := Parse(endStr, loc)
	if !okStart || !okEnd {
		return 1
	}

	// Считаются календарные даты: время суток и переход на летнее время не влияют
	hours := calendarDate(end).Sub(calendarDate(start)).Hours()
	if hours < 0 {
		return 1
	}

	return int(math.Ceil(hours/hoursPerDay)) + 1
}

func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Check проверяет дату-время бронирования против срока leadHours
func Check(dateTimeStr string, leadHours int, now time.Time) Verdict {
	sameDay := IsSameDay(dateTimeStr, now)
	meetsLead := HasMinimumLeadHours(dateTimeStr, leadHours, now)
	return Verdict{
		SameDay:       sameDay,
		MeetsLeadTime: meetsLead,
		Blocked:       !sameDay && !meetsLead,
	}
}
