package wizard

import (
	"fmt"
	"time"

	"github.com/m04kA/SBN-BookingService/internal/domain"
)

// Snapshot сериализуемое состояние мастера (для хранения сессий)
type Snapshot struct {
	Step    Step             `json:"step"`
	Draft   DraftSnapshot    `json:"draft"`
	Booking *BookingSnapshot `json:"booking,omitempty"`
}

// DraftSnapshot поля черновика
type DraftSnapshot struct {
	ServiceType         domain.ServiceType `json:"serviceType,omitempty"`
	Surface             float64            `json:"surface,omitempty"`
	Frequency           domain.Frequency   `json:"frequency,omitempty"`
	AdditionalServices  []string           `json:"additionalServices,omitempty"`
	Date                *time.Time         `json:"date,omitempty"`
	TimeSlot            string             `json:"timeSlot,omitempty"`
	CompanyName         string             `json:"companyName,omitempty"`
	ContactName         string             `json:"contactName,omitempty"`
	Email               string             `json:"email,omitempty"`
	Phone               string             `json:"phone,omitempty"`
	SpecialInstructions *string            `json:"specialInstructions,omitempty"`
	AccessCode          *string            `json:"accessCode,omitempty"`
	EstimatedPrice      float64            `json:"estimatedPrice"`
}

// BookingSnapshot данные созданного бронирования
type BookingSnapshot struct {
	ID        string               `json:"id"`
	Status    domain.BookingStatus `json:"status"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// Snapshot снимает текущее состояние
func (m *Machine) Snapshot() Snapshot {
	d := m.Draft()
	s := Snapshot{
		Step: m.current,
		Draft: DraftSnapshot{
			ServiceType:         d.ServiceType,
			Surface:             d.Surface,
			Frequency:           d.Frequency,
			AdditionalServices:  d.AdditionalServices,
			TimeSlot:            d.TimeSlot,
			CompanyName:         d.CompanyName,
			ContactName:         d.ContactName,
			Email:               d.Email,
			Phone:               d.Phone,
			SpecialInstructions: d.SpecialInstructions,
			AccessCode:          d.AccessCode,
			EstimatedPrice:      d.EstimatedPrice,
		},
	}
	if !d.Date.IsZero() {
		date := d.Date
		s.Draft.Date = &date
	}
	if m.booking != nil {
		s.Booking = &BookingSnapshot{
			ID:        m.booking.ID,
			Status:    m.booking.Status,
			CreatedAt: m.booking.CreatedAt,
			UpdatedAt: m.booking.UpdatedAt,
		}
	}
	return s
}

// Restore восстанавливает состояние из снимка
// Цена пересчитывается движком, а не берется из снимка
func (m *Machine) Restore(s Snapshot) error {
	if !s.Step.IsValid() {
		return fmt.Errorf("%w: step %d", ErrInvalidSnapshot, s.Step)
	}
	if s.Step == StepSubmitted && s.Booking == nil {
		return fmt.Errorf("%w: submitted snapshot without booking", ErrInvalidSnapshot)
	}

	draft := domain.Draft{
		ServiceType:         s.Draft.ServiceType,
		Surface:             s.Draft.Surface,
		Frequency:           s.Draft.Frequency,
		AdditionalServices:  append([]string(nil), s.Draft.AdditionalServices...),
		TimeSlot:            s.Draft.TimeSlot,
		CompanyName:         s.Draft.CompanyName,
		ContactName:         s.Draft.ContactName,
		Email:               s.Draft.Email,
		Phone:               s.Draft.Phone,
		SpecialInstructions: s.Draft.SpecialInstructions,
		AccessCode:          s.Draft.AccessCode,
	}
	if s.Draft.Date != nil {
		draft.Date = *s.Draft.Date
	}

	m.current = s.Step
	m.draft = draft
	m.recomputePrice()

	m.booking = nil
	if s.Booking != nil {
		m.booking = &domain.Booking{
			ID:        s.Booking.ID,
			Draft:     m.Draft(),
			Status:    s.Booking.Status,
			CreatedAt: s.Booking.CreatedAt,
			UpdatedAt: s.Booking.UpdatedAt,
		}
	}
	return nil
}
