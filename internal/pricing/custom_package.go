package pricing

import (
	"fmt"

	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
)

// Σ цена × (на человека ? гости : 1) × количество; скидка за пакет из нескольких категорий
func (c *Calculator) customPackage(f *domain.CustomPackageForm) (*breakdown, error) {
	cat := &c.catalogs.CustomPackage

	guests := f.Guests
	if guests < 1 {
		guests = 1
	}

	b := newBreakdown()
	for _, sel := range f.Items {
		if sel.Quantity <= 0 {
			continue
		}
		item, ok := cat.Items.Find(sel.ID)
		if !ok {
			return nil, unknownOption("items", sel.ID)
		}

		unit := item.Price
		label := item.Name
		if item.PerPerson {
			unit *= float64(guests)
			label = fmt.Sprintf("%s (%d guests)", item.Name, guests)
		}
		b.item("item", label, domain.KindOption, item.ID, sel.Quantity, unit)
	}

	if c.categories.DistinctCategories(f.Items) >= cat.BundleMinCategories {
		b.discount("bundle", fmt.Sprintf("Bundle discount (%d+ categories)", cat.BundleMinCategories), cat.BundleDiscount)
	}

	return b, nil
}
