package bookingapi

import (
	"fmt"
	"time"

	"github.com/m04kA/SBN-BookingService/internal/domain"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// bookingRequest тело POST /api/bookings
type bookingRequest struct {
	ServiceType         string   `json:"serviceType"`
	Surface             float64  `json:"surface"`
	Frequency           string   `json:"frequency"`
	AdditionalServices  []string `json:"additionalServices"`
	Date                string   `json:"date"`
	TimeSlot            string   `json:"timeSlot"`
	CompanyName         string   `json:"companyName"`
	ContactName         string   `json:"contactName"`
	Email               string   `json:"email"`
	Phone               string   `json:"phone"`
	SpecialInstructions *string  `json:"specialInstructions,omitempty"`
	AccessCode          *string  `json:"accessCode,omitempty"`
	EstimatedPrice      float64  `json:"estimatedPrice"`
}

// Booking бронирование в ответах API
type Booking struct {
	ID                  string   `json:"id"`
	ServiceType         string   `json:"serviceType"`
	Surface             float64  `json:"surface"`
	Frequency           string   `json:"frequency"`
	AdditionalServices  []string `json:"additionalServices"`
	Date                string   `json:"date"`
	TimeSlot            string   `json:"timeSlot"`
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

type createBookingResponse struct {
	Success   bool     `json:"success"`
	BookingID string   `json:"bookingId"`
	Booking   *Booking `json:"booking"`
	Message   string   `json:"message"`
}

type listBookingsResponse struct {
	Success  bool      `json:"success"`
	Bookings []Booking `json:"bookings"`
}

type getBookingResponse struct {
	Success bool     `json:"success"`
	Booking *Booking `json:"booking"`
}

// PromoResult ответ POST /api/promo/validate
type PromoResult struct {
	Valid    bool     `json:"valid"`
	Discount *float64 `json:"discount,omitempty"`
	Message  string   `json:"message"`
}

func fromDraft(d *domain.Draft) bookingRequest {
	additional := d.AdditionalServices
	if additional == nil {
		additional = []string{}
	}
	return bookingRequest{
		ServiceType:         string(d.ServiceType),
		Surface:             d.Surface,
		Frequency:           string(d.Frequency),
		AdditionalServices:  additional,
		Date:                d.Date.Format(domain.DateFormat),
		TimeSlot:            d.TimeSlot,
		CompanyName:         d.CompanyName,
		ContactName:         d.ContactName,
		Email:               d.Email,
		Phone:               d.Phone,
		SpecialInstructions: d.SpecialInstructions,
		AccessCode:          d.AccessCode,
		EstimatedPrice:      d.EstimatedPrice,
	}
}

// ToDomain конвертирует ответ API в domain модель
func (b *Booking) ToDomain() (*domain.Booking, error) {
	date, err := time.Parse(domain.DateFormat, b.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: booking %s date %q", ErrInvalidResponse, b.ID, b.Date)
	}

	booking := &domain.Booking{
		ID: b.ID,
		Draft: domain.Draft{
			ServiceType:         domain.ServiceType(b.ServiceType),
			Surface:             b.Surface,
			Frequency:           domain.Frequency(b.Frequency),
			AdditionalServices:  b.AdditionalServices,
			Date:                date,
			TimeSlot:            b.TimeSlot,
			CompanyName:         b.CompanyName,
			ContactName:         b.ContactName,
			Email:               b.Email,
			Phone:               b.Phone,
			SpecialInstructions: b.SpecialInstructions,
			AccessCode:          b.AccessCode,
			EstimatedPrice:      b.EstimatedPrice,
		},
		Status: domain.BookingStatus(b.Status),
	}

	// метки времени не критичны для клиента, некорректные оставляем нулевыми
	booking.CreatedAt, _ = time.Parse(time.RFC3339, b.CreatedAt)
	booking.UpdatedAt, _ = time.Parse(time.RFC3339, b.UpdatedAt)
	return booking, nil
}
