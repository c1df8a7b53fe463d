package domain

import "time"

// SavedPackage сохраненный пользователем пакет из конструктора
type SavedPackage struct {
	ID        string
	OwnerID   string // сессия-владелец
	Name      string
	StartDate string
	EndDate   string
	Guests    int
	Items     []Selection
	Total     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}
