package domain

import "time"

// AvailabilityRules правила доступности слотов
// Слот доступен в будний день в пределах горизонта, если дата не закрыта и есть свободные места
type AvailabilityRules struct {
	CapacityPerSlot int
	HorizonDays     int // 0 = без ограничения
	ClosedDates     []time.Time
}

// HasHorizon returns true if there's a limit on how far in advance bookings can be made
func (r *AvailabilityRules) HasHorizon() bool {
	return r.HorizonDays > 0
}

// IsClosed returns true if the date is explicitly closed
func (r *AvailabilityRules) IsClosed(date time.Time) bool {
	for _, closed := range r.ClosedDates {
		if IsSameDay(closed, date) {
			return true
		}
	}
	return false
}

// IsBookableDate проверяет дату без учета занятости слотов
func (r *AvailabilityRules) IsBookableDate(date, now time.Time) bool {
	if IsDateInPast(date, now) || !IsWeekday(date) || r.IsClosed(date) {
		return false
	}
	if r.HasHorizon() {
		maxDate := DateOnly(now).AddDate(0, 0, r.HorizonDays)
		if DateOnly(date).After(maxDate) {
			return false
		}
	}
	return true
}

// PromoCode промокод со скидкой в процентах
type PromoCode struct {
	Code        string
	Discount    float64
	Description string
}

// DefaultPromoCodes промокоды по умолчанию
var DefaultPromoCodes = []PromoCode{
	{Code: "NOUVEAU10", Discount: 10, Description: "Nouveau client"},
	{Code: "FIDELE15", Discount: 15, Description: "Client fidèle"},
	{Code: "PARTENAIRE20", Discount: 20, Description: "Partenaire"},
}
