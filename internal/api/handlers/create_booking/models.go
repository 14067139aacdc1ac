package create_booking

import (
	"encoding/json"

	"github.com/m04kA/SBN-BookingService/internal/api/handlers"
	"github.com/m04kA/SBN-BookingService/internal/domain"
	"github.com/m04kA/SBN-BookingService/internal/service/bookings/models"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
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

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Success   bool                    `json:"success"`
	BookingID string                  `json:"bookingId"`
	Booking   *models.BookingResponse `json:"booking"`
}

// parseRequest декодирует тело, уже прошедшее проверку схемы
func parseRequest(body []byte) (*CreateBookingRequest, error) {
	var req CreateBookingRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// ToDraft конвертирует HTTP запрос в черновик бронирования
func (r *CreateBookingRequest) ToDraft() (*domain.Draft, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &domain.Draft{
		ServiceType:         domain.ServiceType(r.ServiceType),
		Surface:             r.Surface,
		Frequency:           domain.Frequency(r.Frequency),
		AdditionalServices:  r.AdditionalServices,
		Date:                date,
		TimeSlot:            r.TimeSlot,
		CompanyName:         r.CompanyName,
		ContactName:         r.ContactName,
		Email:               r.Email,
		Phone:               r.Phone,
		SpecialInstructions: r.SpecialInstructions,
		AccessCode:          r.AccessCode,
		EstimatedPrice:      r.EstimatedPrice,
	}, nil
}
