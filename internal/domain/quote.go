package domain

import "math"

// ComponentKind вид строки расшифровки цены
type ComponentKind string

const (
	KindBase       ComponentKind = "base"
	KindOption     ComponentKind = "option"
	KindAddon      ComponentKind = "addon"
	KindMultiplier ComponentKind = "multiplier"
	KindDiscount   ComponentKind = "discount"
	KindFee        ComponentKind = "fee"
)

// PriceComponent строка расшифровки цены
// Для множителей Factor - коэффициент, Amount - прибавка к промежуточной сумме
type PriceComponent struct {
	Code      string        `json:"code"`
	Label     string        `json:"label"`
	Kind      ComponentKind `json:"kind"`
	OptionID  string        `json:"optionId,omitempty"`
	Quantity  int           `json:"quantity,omitempty"`
	UnitPrice float64       `json:"unitPrice,omitempty"`
	Factor    float64       `json:"factor,omitempty"`
	Amount    float64       `json:"amount"`
}

// PriceQuote результат расчета цены
// Total - авторитетное значение, Breakdown - только для отображения
type PriceQuote struct {
	ServiceType ServiceType      `json:"serviceType"`
	Currency    string           `json:"currency"`
	Total       float64          `json:"total"`
	Breakdown   []PriceComponent `json:"breakdown"`
}

// RoundCents округляет сумму до центов
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
