package wizard_session

import (
	"github.com/m04kA/SBN-BookingService/internal/domain"
	"github.com/m04kA/SBN-BookingService/internal/service/bookings/models"
	wizardSession "github.com/m04kA/SBN-BookingService/internal/usecase/wizard_session"
)

// BackRequest тело POST .../back
type BackRequest struct {
	Step string `json:"step"` // имя ("details") или номер ("2")
}

// DraftResponse черновик мастера
type DraftResponse struct {
	ServiceType         string   `json:"serviceType,omitempty"`
	Surface             float64  `json:"surface,omitempty"`
	Frequency           string   `json:"frequency,omitempty"`
	AdditionalServices  []string `json:"additionalServices"`
	Date                string   `json:"date,omitempty"`
	TimeSlot            string   `json:"timeSlot,omitempty"`
	CompanyName         string   `json:"companyName,omitempty"`
	ContactName         string   `json:"contactName,omitempty"`
	Email               string   `json:"email,omitempty"`
	Phone               string   `json:"phone,omitempty"`
	SpecialInstructions *string  `json:"specialInstructions,omitempty"`
	AccessCode          *string  `json:"accessCode,omitempty"`
	EstimatedPrice      float64  `json:"estimatedPrice"`
}

// EstimateResponse разбивка цены
type EstimateResponse struct {
	BasePrice           float64 `json:"basePrice"`
	DiscountPercent     float64 `json:"discountPercent"`
	DiscountedBasePrice float64 `json:"discountedBasePrice"`
	AdditionalCost      float64 `json:"additionalCost"`
	TotalPrice          float64 `json:"totalPrice"`
}

// SessionResponse состояние сессии
type SessionResponse struct {
	SessionID  string                  `json:"sessionId"`
	Step       string                  `json:"step"`
	StepNumber int                     `json:"stepNumber"`
	Draft      DraftResponse           `json:"draft"`
	Estimate   *EstimateResponse       `json:"estimate"`
	Booking    *models.BookingResponse `json:"booking"`
}

// Envelope обертка ответа
type Envelope struct {
	Success bool             `json:"success"`
	Session *SessionResponse `json:"session"`
}

// FromState конвертирует состояние use case в HTTP response
func FromState(s *wizardSession.State) *SessionResponse {
	d := s.Draft
	additional := d.AdditionalServices
	if additional == nil {
		additional = []string{}
	}

	resp := &SessionResponse{
		SessionID:  s.SessionID,
		Step:       s.Step.String(),
		StepNumber: int(s.Step),
		Draft: DraftResponse{
			ServiceType:         string(d.ServiceType),
			Surface:             d.Surface,
			Frequency:           string(d.Frequency),
			AdditionalServices:  additional,
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
		resp.Draft.Date = d.Date.Format(domain.DateFormat)
	}
	if s.Estimate != nil {
		resp.Estimate = &EstimateResponse{
			BasePrice:           s.Estimate.BasePrice,
			DiscountPercent:     s.Estimate.DiscountPercent,
			DiscountedBasePrice: s.Estimate.DiscountedBasePrice,
			AdditionalCost:      s.Estimate.AdditionalCost,
			TotalPrice:          s.Estimate.TotalPrice,
		}
	}
	if s.Booking != nil {
		resp.Booking = models.FromDomainBooking(s.Booking)
	}
	return resp
}
