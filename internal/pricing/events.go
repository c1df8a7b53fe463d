package pricing

import (
	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
)

// пакет × множитель повода + дополнения
func (c *Calculator) decoration(f *domain.DecorationForm) (*breakdown, error) {
	cat := &c.catalogs.Decoration

	pkg, ok := cat.Packages.Find(f.Package)
	if !ok {
		return nil, unknownOption("package", f.Package)
	}
	occasion, ok := cat.Occasions.Find(f.Occasion)
	if !ok {
		return nil, unknownOption("occasion", f.Occasion)
	}

	b := newBreakdown()
	b.item("package", pkg.Name, domain.KindBase, pkg.ID, 1, pkg.Price)
	b.multiply("occasion", occasion.Name, occasion.Value)

	for _, id := range f.Addons {
		addon, ok := cat.Addons.Find(id)
		if !ok {
			return nil, unknownOption("addons", id)
		}
		b.item("addon", addon.Name, domain.KindAddon, addon.ID, 1, addon.Price)
	}

	return b, nil
}

// исполнитель × множитель сетов + звук + трансфер для площадки "other"
func (c *Calculator) liveMusic(f *domain.LiveMusicForm) (*breakdown, error) {
	cat := &c.catalogs.LiveMusic

	performer, ok := cat.Performers.Find(f.Performer)
	if !ok {
		return nil, unknownOption("performer", f.Performer)
	}
	set, ok := cat.Sets.Find(f.SetOption)
	if !ok {
		return nil, unknownOption("setOption", f.SetOption)
	}

	b := newBreakdown()
	b.item("performer", performer.Name, domain.KindBase, performer.ID, 1, performer.Price)
	b.multiply("sets", set.Name, set.Value)

	if f.SoundSystem {
		b.fee("sound_system", "Sound system", cat.SoundSystemPrice)
	}
	if f.Venue == domain.LocationOther {
		b.fee("transport", "Equipment transport", cat.TransportFee)
	}

	return b, nil
}
