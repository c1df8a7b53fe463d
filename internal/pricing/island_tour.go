package pricing

import (
	"fmt"

	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
)

// Тарифные группы детей
const (
	tierFree  = "free"
	tierChild = "child"
	tierAdult = "adult"
)

// ChildTier возвращает тарифную группу ребенка по возрасту
// Границы включительны для младшей группы: 5 - бесплатно, 12 - детский тариф, 13 - взрослый
func ChildTier(age int, cat *domain.IslandTourCatalog) string {
	switch {
	case age <= cat.FreeMaxAge:
		return tierFree
	case age <= cat.ChildMaxAge:
		return tierChild
	default:
		return tierAdult
	}
}

// ChildPrice цена билета для ребенка указанного возраста
func ChildPrice(age int, cat *domain.IslandTourCatalog) float64 {
	switch ChildTier(age, cat) {
	case tierFree:
		return 0
	case tierChild:
		return cat.ChildPrice
	default:
		return cat.AdultPrice
	}
}

// взрослые × тариф + дети по возрастным группам + доплата за индивидуальный тур
func (c *Calculator) islandTour(f *domain.IslandTourForm) (*breakdown, error) {
	cat := &c.catalogs.IslandTour

	counts := make(map[string]int, 3)
	for _, child := range f.Children {
		counts[ChildTier(child.Age, cat)]++
	}

	b := newBreakdown()
	if f.Adults > 0 {
		b.item("adult", "Adult ticket", domain.KindBase, "", f.Adults, cat.AdultPrice)
	}
	if n := counts[tierAdult]; n > 0 {
		b.item("child_adult_rate", fmt.Sprintf("Child ticket (age %d+, adult rate)", cat.ChildMaxAge+1),
			domain.KindBase, "", n, cat.AdultPrice)
	}
	if n := counts[tierChild]; n > 0 {
		b.item("child", fmt.Sprintf("Child ticket (age %d-%d)", cat.FreeMaxAge+1, cat.ChildMaxAge),
			domain.KindBase, "", n, cat.ChildPrice)
	}
	if n := counts[tierFree]; n > 0 {
		b.item("child_free", fmt.Sprintf("Child ticket (age %d and under)", cat.FreeMaxAge),
			domain.KindBase, "", n, 0)
	}

	if f.PrivateTour {
		b.fee("private_tour", "Private tour", cat.PrivateSurcharge)
	}

	return b, nil
}
