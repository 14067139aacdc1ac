package models

import (
	"time"

	"github.com/m04kA/SBN-BookingService/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID                  string   `json:"id"`
	ServiceType         string   `json:"serviceType"`
	Surface             float64  `json:"surface"`
	Frequency           string   `json:"frequency"`
	AdditionalServices  []string `json:"additionalServices"`
	Date                string   `json:"date"`     // "2026-10-19"
	TimeSlot            string   `json:"timeSlot"` // "08:00"
	CompanyName         string   `json:"companyName"`
	ContactName         string   `json:"contactName"`
	Email               string   `json:"email"`
	Phone               string   `json:"phone"`
	SpecialInstructions *string  `json:"specialInstructions,omitempty"`
	AccessCode          *string  `json:"accessCode,omitempty"`
	EstimatedPrice      float64  `json:"estimatedPrice"`
	Status              string   `json:"status"`
	CreatedAt           string   `json:"createdAt"`
	UpdatedAt           string   `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует domain модель в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	additional := b.AdditionalServices
	if additional == nil {
		additional = []string{}
	}

	var date string
	if !b.Date.IsZero() {
		date = b.Date.Format(domain.DateFormat)
	}

	return &BookingResponse{
		ID:                  b.ID,
		ServiceType:         string(b.ServiceType),
		Surface:             b.Surface,
		Frequency:           string(b.Frequency),
		AdditionalServices:  additional,
		Date:                date,
		TimeSlot:            b.TimeSlot,
		CompanyName:         b.CompanyName,
		ContactName:         b.ContactName,
		Email:               b.Email,
		Phone:               b.Phone,
		SpecialInstructions: b.SpecialInstructions,
		AccessCode:          b.AccessCode,
		EstimatedPrice:      b.EstimatedPrice,
		Status:              string(b.Status),
		CreatedAt:           b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           b.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список domain моделей в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = *FromDomainBooking(b)
	}

	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}
