package pricing

import (
	"math"

	"github.com/m04kA/SBN-BookingService/internal/domain"
)

// Estimate разбивка оценочной цены
type Estimate struct {
	BasePrice           float64 // surface × rate
	DiscountedBasePrice float64 // после скидки за частоту
	AdditionalCost      float64
	DiscountPercent     float64
	TotalPrice          float64 // округлено до целых евро
}

// Engine движок расчета цены
// Расчет чистый: одинаковые входные данные дают одинаковый результат, ошибок нет
type Engine struct {
	tables Tables
}

// NewEngine создает движок с переданными тарифными таблицами
func NewEngine(tables Tables) *Engine {
	return &Engine{tables: tables}
}

// Compute вычисляет оценочную цену
// Неизвестная категория дает ставку 0, неизвестная дополнительная услуга стоит 0
func (e *Engine) Compute(
	serviceType domain.ServiceType,
	surface float64,
	frequency domain.Frequency,
	addOnIDs []string,
) Estimate {
	base := surface * e.tables.Rates[serviceType]
	discount := e.tables.Discounts[frequency]
	discounted := base * (1 - discount/100)

	var additional float64
	for _, id := range addOnIDs {
		additional += e.tables.AddOns[id]
	}

	return Estimate{
		BasePrice:           base,
		DiscountedBasePrice: discounted,
		AdditionalCost:      additional,
		DiscountPercent:     discount,
		TotalPrice:          RoundHalfUp(discounted + additional),
	}
}

// ComputeDraft вычисляет цену по черновику бронирования
func (e *Engine) ComputeDraft(d *domain.Draft) Estimate {
	return e.Compute(d.ServiceType, d.Surface, d.Frequency, d.AdditionalServices)
}

// ApplyPromo применяет скидку промокода к итоговой цене
func (e *Engine) ApplyPromo(total, percent float64) float64 {
	if percent <= 0 {
		return total
	}
	return RoundHalfUp(total * (1 - percent/100))
}

// AddOnFee возвращает цену дополнительной услуги
func (e *Engine) AddOnFee(id string) (float64, bool) {
	fee, ok := e.tables.AddOns[id]
	return fee, ok
}

// RoundHalfUp округляет до целого, .5 округляется вверх
func RoundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
