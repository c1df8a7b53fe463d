package catalog

import "github.com/m04kA/SMC-ConciergeBooking/internal/domain"

// CategoryIndex явная таблица id позиции -> категория
type CategoryIndex map[string]string

// NewCategoryIndex строит индекс категорий по позициям каталога
func NewCategoryIndex(items domain.Options) CategoryIndex {
	index := make(CategoryIndex, len(items))
	for _, item := range items {
		index[item.ID] = item.Category
	}
	return index
}

// Category возвращает категорию позиции
func (idx CategoryIndex) Category(id string) (string, bool) {
	category, ok := idx[id]
	return category, ok
}

// DistinctCategories количество различных категорий среди выбранных позиций
// Позиции с нулевым количеством и неизвестные id не учитываются
func (idx CategoryIndex) DistinctCategories(selections []domain.Selection) int {
	seen := make(map[string]struct{})
	for _, sel := range selections {
		if sel.Quantity <= 0 {
			continue
		}
		if category, ok := idx[sel.ID]; ok {
			seen[category] = struct{}{}
		}
	}
	return len(seen)
}
