package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Draft бронирование, собираемое мастером по шагам
// EstimatedPrice всегда вычисляется движком цен из ServiceType, Surface, Frequency и AdditionalServices
type Draft struct {
	ServiceType        ServiceType
	Surface            float64
	Frequency          Frequency
	AdditionalServices []string
	Date               time.Time
	TimeSlot           string

	CompanyName         string
	ContactName         string
	Email               string
	Phone               string
	SpecialInstructions *string
	AccessCode          *string

	EstimatedPrice float64
}

// Booking represents a submitted cleaning booking
type Booking struct {
	ID string
	Draft
	Status BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still holds its time slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// HoldsSlot returns true if the booking occupies the given slot on the given day
func (b *Booking) HoldsSlot(date time.Time, timeSlot string) bool {
	return b.IsActive() && b.TimeSlot == timeSlot && IsSameDay(b.Date, date)
}

// IsSameDay проверяет, что две даты относятся к одному и тому же дню
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsDateInPast проверяет, что дата раньше сегодняшнего дня
func IsDateInPast(date, now time.Time) bool {
	return DateOnly(date).Before(DateOnly(now))
}

// DateOnly обнуляет время, сохраняя календарную дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsWeekday returns true from Monday to Friday
func IsWeekday(date time.Time) bool {
	wd := date.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}
