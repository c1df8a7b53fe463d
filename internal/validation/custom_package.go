package validation

import (
	"time"

	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
)

func (v *Validator) customPackage(c *checker, f *domain.CustomPackageForm) {
	cat := &v.catalogs.CustomPackage

	startOK := c.date("startDate", f.StartDate)
	endOK := c.date("endDate", f.EndDate)
	if startOK {
		c.eligible("startDate", f.StartDate, "", f.ServiceType().LeadHours())
	}
	if startOK && endOK {
		c.rangeOrdered(f.ServiceType().RangeRule(), "endDate", msgEndBeforeStart, f.StartDate, f.EndDate)
	}

	c.bounded("guestCount", f.Guests, guestsBounds())
	packageItems(c, f.Items, cat)

	c.maxLength("name", f.Name, domain.MaxPackageNameLength)
	c.maxLength("specialRequests", f.SpecialRequests, domain.MaxSpecialRequestsLength)
}

// ValidatePackageDraft проверяет пакет перед сохранением в избранное
// Даты необязательны и не проверяются на срок бронирования, только формат и порядок
func (v *Validator) ValidatePackageDraft(f *domain.CustomPackageForm) domain.FieldErrors {
	c := newChecker(time.Time{})

	startOK := f.StartDate != "" && c.date("startDate", f.StartDate)
	endOK := f.EndDate != "" && c.date("endDate", f.EndDate)
	if startOK && endOK {
		c.rangeOrdered(domain.RangeInclusive, "endDate", msgEndBeforeStart, f.StartDate, f.EndDate)
	}

	c.required("name", f.Name)
	c.maxLength("name", f.Name, domain.MaxPackageNameLength)
	c.bounded("guestCount", f.Guests, guestsBounds())
	packageItems(c, f.Items, &v.catalogs.CustomPackage)

	return c.errs
}

// packageItems проверяет состав пакета: хотя бы одна позиция, все id из каталога
func packageItems(c *checker, items []domain.Selection, cat *domain.CustomPackageCatalog) {
	if total := c.selections("items", items, cat.Items); !c.errs.Has("items") && total == 0 {
		c.add("items", msgSelectItem)
	}
}
