package domain

import (
	"encoding/json"
	"time"
)

// Party состав группы
type Party struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Total    int `json:"total"`
}

// LineItem выбранная позиция с ценой
type LineItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"lineTotal"`
}

// ReservationRecord готовая к передаче в хранилище бронь
// Создается при отправке формы, читается один раз страницей подтверждения и больше не меняется
type ReservationRecord struct {
	ID          string          `json:"id"`
	ServiceType ServiceType     `json:"serviceType"`
	ServiceName string          `json:"serviceName"`
	Form        json.RawMessage `json:"form"`
	Quote       PriceQuote      `json:"quote"`
	StartAt     time.Time       `json:"startAt"`
	EndAt       *time.Time      `json:"endAt,omitempty"`
	Party       Party           `json:"party"`
	LineItems   []LineItem      `json:"lineItems"`
	SameDay     bool            `json:"sameDay"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Total итоговая сумма брони
func (r *ReservationRecord) Total() float64 {
	return r.Quote.Total
}

// Confirmation ответ на успешную отправку брони
type Confirmation struct {
	ReservationID    string      `json:"reservationId"`
	ServiceType      ServiceType `json:"serviceType"`
	ConfirmationPath string      `json:"confirmationPath"`
	Total            float64     `json:"total"`
	Currency         string      `json:"currency"`
	SameDay          bool        `json:"sameDay"`
}
