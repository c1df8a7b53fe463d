package validation

import (
	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
	"github.com/m04kA/SMC-ConciergeBooking/internal/eligibility"
)

func (v *Validator) decoration(c *checker, f *domain.DecorationForm) {
	cat := &v.catalogs.Decoration

	if c.date("date", f.Date) {
		date, hhmm := f.EligibilityDateTime()
		c.eligible("date", date, hhmm, f.ServiceType().LeadHours())
	}
	c.clock("setupTime", f.SetupTime, false)

	if c.required("occasion", f.Occasion) {
		if _, ok := cat.Occasions.Find(f.Occasion); !ok {
			c.add("occasion", msgUnknownOption)
		}
	}
	c.option("package", f.Package, cat.Packages)
	for _, id := range f.Addons {
		if _, ok := cat.Addons.Find(id); !ok {
			c.add("addons", msgUnknownOption)
		}
	}

	c.location("location", f.Location, "address", f.Address)
	c.maxLength("specialRequests", f.SpecialRequests, domain.MaxSpecialRequestsLength)
}

func (v *Validator) liveMusic(c *checker, f *domain.LiveMusicForm) {
	cat := &v.catalogs.LiveMusic

	dateOK := c.date("date", f.Date)
	startOK := c.clock("startTime", f.StartTime, true)
	endOK := c.clock("endTime", f.EndTime, true)
	if dateOK {
		c.eligible("date", f.Date, f.StartTime, f.ServiceType().LeadHours())
	}
	if dateOK && startOK && endOK {
		c.rangeOrdered(f.ServiceType().RangeRule(), "endTime", msgEndTimeOrder,
			eligibility.Combine(f.Date, f.StartTime),
			eligibility.Combine(f.Date, f.EndTime))
	}

	c.option("performer", f.Performer, cat.Performers)
	if c.required("setOption", f.SetOption) {
		if _, ok := cat.Sets.Find(f.SetOption); !ok {
			c.add("setOption", msgUnknownOption)
		}
	}

	c.location("venue", f.Venue, "venueAddress", f.VenueAddress)
	c.maxLength("specialRequests", f.SpecialRequests, domain.MaxSpecialRequestsLength)
}
