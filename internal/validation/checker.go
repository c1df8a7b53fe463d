package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ConciergeBooking/internal/counter"
	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
	"github.com/m04kA/SMC-ConciergeBooking/internal/eligibility"
	"github.com/m04kA/SMC-ConciergeBooking/pkg/types"
)

// checker собирает ошибки всех правил; правила не прерывают друг друга
type checker struct {
	errs domain.FieldErrors
	now  time.Time
}

func newChecker(now time.Time) *checker {
	return &checker{errs: domain.FieldErrors{}, now: now}
}

func (c *checker) add(field, format string, args ...interface{}) {
	if len(args) == 0 {
		c.errs.Add(field, format)
		return
	}
	c.errs.Add(field, fmt.Sprintf(format, args...))
}

// required проверяет непустое значение; возвращает true, если значение задано
func (c *checker) required(field, value string) bool {
	if strings.TrimSpace(value) == "" {
		c.add(field, msgRequired)
		return false
	}
	return true
}

// date проверяет формат YYYY-MM-DD; время суток в поле даты не допускается
func (c *checker) date(field, value string) bool {
	if !c.required(field, value) {
		return false
	}
	if _, err := time.ParseInLocation(domain.DateFormat, value, c.now.Location()); err != nil {
		c.add(field, msgInvalidDate)
		return false
	}
	return true
}

// clock проверяет формат HH:MM; пустое значение допустимо, если поле необязательное
func (c *checker) clock(field, value string, isRequired bool) bool {
	if strings.TrimSpace(value) == "" {
		if isRequired {
			c.add(field, msgRequired)
		}
		return false
	}
	if types.TimeString(value).Validate() != nil {
		c.add(field, msgInvalidTime)
		return false
	}
	return true
}

// eligible проверяет срок бронирования; ошибка пишется в поле даты
// Бронь на сегодня не блокируется, но время не должно быть в прошлом
func (c *checker) eligible(field, date, hhmm string, leadHours int) {
	moment := eligibility.Combine(date, hhmm)
	verdict := eligibility.Check(moment, leadHours, c.now)
	if verdict.Blocked {
		c.add(field, msgLeadTime, leadHours)
		return
	}
	if verdict.SameDay && moment != date {
		if t, ok := eligibility.Parse(moment, c.now.Location()); ok && t.Before(c.now) {
			c.add(field, msgTimePassed)
		}
	}
}

// bounded проверяет значение через ограниченный счетчик
func (c *checker) bounded(field string, value int, bounds counter.Counter) {
	if !bounds.Contains(value) {
		c.add(field, msgRange, bounds.Min(), bounds.Max())
	}
}

// maxLength проверяет длину текста в символах
func (c *checker) maxLength(field, value string, limit int) {
	if len([]rune(value)) > limit {
		c.add(field, msgTooLong, limit)
	}
}

// location проверяет выбор места; "other" требует свободный адрес
func (c *checker) location(field, value, addressField, address string) {
	if !c.required(field, value) {
		return
	}
	if value == domain.LocationOther {
		c.required(addressField, address)
	}
	c.maxLength(addressField, address, domain.MaxAddressLength)
}

// option проверяет, что id выбран и есть в каталоге
func (c *checker) option(field, id string, options domain.Options) (domain.Option, bool) {
	if !c.required(field, id) {
		return domain.Option{}, false
	}
	opt, ok := options.Find(id)
	if !ok {
		c.add(field, msgUnknownOption)
	}
	return opt, ok
}

// selections проверяет список позиций с количеством; возвращает сумму количеств
func (c *checker) selections(field string, selected []domain.Selection, options domain.Options) int {
	bounds := counter.New(0, 0, domain.MaxSelectedQty)
	total := 0
	for _, sel := range selected {
		if _, ok := options.Find(sel.ID); !ok {
			c.add(field, msgUnknownOption)
			continue
		}
		if !bounds.Contains(sel.Quantity) {
			c.add(field, msgRange, bounds.Min(), bounds.Max())
			continue
		}
		total += sel.Quantity
	}
	return total
}

// rangeOrdered проверяет порядок начала и конца по правилу услуги
func (c *checker) rangeOrdered(rule domain.RangeRule, field, message, start, end string) {
	loc := c.now.Location()
	switch rule {
	case domain.RangeInclusive:
		if !eligibility.IsRangeOrdered(start, end, loc) {
			c.errs.Add(field, message)
		}
	case domain.RangeStrict:
		if !eligibility.IsRangeStrictlyOrdered(start, end, loc) {
			c.errs.Add(field, message)
		}
	}
}

func adultsBounds() counter.Counter {
	return counter.New(domain.MinAdults, domain.MinAdults, domain.MaxAdults)
}

func childrenBounds() counter.Counter {
	return counter.New(domain.MinChildren, domain.MinChildren, domain.MaxChildren)
}

func guestsBounds() counter.Counter {
	return counter.New(domain.MinGuests, domain.MinGuests, domain.MaxGuests)
}
