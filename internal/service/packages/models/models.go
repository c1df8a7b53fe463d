package models

import (
	"time"

	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
)

// Request модели

// SavePackageRequest запрос на сохранение пакета
// Пустой ID создает новый пакет, непустой - обновляет свой
type SavePackageRequest struct {
	OwnerID   string             `json:"-"`
	ID        string             `json:"id,omitempty"`
	Name      string             `json:"name"`
	StartDate string             `json:"startDate,omitempty"`
	EndDate   string             `json:"endDate,omitempty"`
	Guests    int                `json:"guestCount"`
	Items     []domain.Selection `json:"items"`
}

// Form форма конструктора для проверки и расчета
func (r *SavePackageRequest) Form() *domain.CustomPackageForm {
	return &domain.CustomPackageForm{
		Name:      r.Name,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Guests:    r.Guests,
		Items:     r.Items,
	}
}

// Response модели

// PackageItemResponse позиция пакета
type PackageItemResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

// PackageResponse сохраненный пакет
type PackageResponse struct {
	ID        string                `json:"id"`
	Name      string                `json:"name"`
	StartDate string                `json:"startDate,omitempty"`
	EndDate   string                `json:"endDate,omitempty"`
	Guests    int                   `json:"guestCount"`
	Items     []PackageItemResponse `json:"items"`
	Total     float64               `json:"total"`
	Currency  string                `json:"currency"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

// PackageListResponse список пакетов владельца
type PackageListResponse struct {
	Packages []*PackageResponse `json:"packages"`
	Total    int                `json:"total"`
}

// FromDomainPackage конвертирует пакет; имена и категории берутся из каталога
// Позиции, удаленные из каталога, возвращаются с id вместо имени
func FromDomainPackage(pkg *domain.SavedPackage, items domain.Options) *PackageResponse {
	resp := &PackageResponse{
		ID:        pkg.ID,
		Name:      pkg.Name,
		StartDate: pkg.StartDate,
		EndDate:   pkg.EndDate,
		Guests:    pkg.Guests,
		Items:     make([]PackageItemResponse, 0, len(pkg.Items)),
		Total:     pkg.Total,
		Currency:  domain.Currency,
		CreatedAt: pkg.CreatedAt,
		UpdatedAt: pkg.UpdatedAt,
	}

	for _, sel := range pkg.Items {
		item := PackageItemResponse{ID: sel.ID, Name: sel.ID, Quantity: sel.Quantity}
		if opt, ok := items.Find(sel.ID); ok {
			item.Name = opt.Name
			item.Category = opt.Category
		}
		resp.Items = append(resp.Items, item)
	}

	return resp
}
