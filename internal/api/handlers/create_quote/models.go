package create_quote

import (
	"time"

	"github.com/m04kA/SBN-BookingService/internal/api/handlers"
	"github.com/m04kA/SBN-BookingService/internal/domain"
	generateQuote "github.com/m04kA/SBN-BookingService/internal/usecase/generate_quote"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	ServiceType         string   `json:"serviceType"`
	Surface             float64  `json:"surface"`
	Frequency           string   `json:"frequency"`
	AdditionalServices  []string `json:"additionalServices"`
	Date                string   `json:"date,omitempty"`
	TimeSlot            string   `json:"timeSlot,omitempty"`
	CompanyName         string   `json:"companyName"`
	ContactName         string   `json:"contactName"`
	Email               string   `json:"email"`
	Phone               string   `json:"phone"`
	SpecialInstructions *string  `json:"specialInstructions,omitempty"`
	PromoCode           string   `json:"promoCode,omitempty"`
}

// QuoteResponse HTTP модель предложения
type QuoteResponse struct {
	ID                      string   `json:"id"`
	ServiceType             string   `json:"serviceType"`
	Surface                 float64  `json:"surface"`
	Frequency               string   `json:"frequency"`
	AdditionalServices      []string `json:"additionalServices"`
	Date                    string   `json:"date,omitempty"`
	TimeSlot                string   `json:"timeSlot,omitempty"`
	CompanyName             string   `json:"companyName"`
	ContactName             string   `json:"contactName"`
	Email                   string   `json:"email"`
	Phone                   string   `json:"phone"`
	BasePrice               float64  `json:"basePrice"`
	AdditionalServicesPrice float64  `json:"additionalServicesPrice"`
	Discount                float64  `json:"discount"`
	PromoCode               string   `json:"promoCode,omitempty"`
	PromoDiscount           float64  `json:"promoDiscount,omitempty"`
	EstimatedPrice          float64  `json:"estimatedPrice"`
	TotalPrice              float64  `json:"totalPrice"`
	Status                  string   `json:"status"`
	CreatedAt               string   `json:"createdAt"`
	ValidUntil              string   `json:"validUntil"`
}

// CreateQuoteResponse ответ POST /quotes
type CreateQuoteResponse struct {
	Success bool           `json:"success"`
	Quote   *QuoteResponse `json:"quote"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Дата необязательна: предложение можно запросить до выбора слота
func (r *QuoteRequest) ToUseCaseRequest() (*generateQuote.Request, error) {
	var date time.Time
	if r.Date != "" {
		parsed, err := handlers.ParseDate(r.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	return &generateQuote.Request{
		Draft: domain.Draft{
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
		},
		PromoCode: r.PromoCode,
	}, nil
}

// FromDomainQuote конвертирует domain модель в HTTP response
func FromDomainQuote(q *domain.Quote) *QuoteResponse {
	additional := q.AdditionalServices
	if additional == nil {
		additional = []string{}
	}

	var date string
	if !q.Date.IsZero() {
		date = q.Date.Format(domain.DateFormat)
	}

	return &QuoteResponse{
		ID:                      q.ID,
		ServiceType:             string(q.ServiceType),
		Surface:                 q.Surface,
		Frequency:               string(q.Frequency),
		AdditionalServices:      additional,
		Date:                    date,
		TimeSlot:                q.TimeSlot,
		CompanyName:             q.CompanyName,
		ContactName:             q.ContactName,
		Email:                   q.Email,
		Phone:                   q.Phone,
		BasePrice:               q.BasePrice,
		AdditionalServicesPrice: q.AdditionalServicesPrice,
		Discount:                q.Discount,
		PromoCode:               q.PromoCode,
		PromoDiscount:           q.PromoDiscount,
		EstimatedPrice:          q.EstimatedPrice,
		TotalPrice:              q.TotalPrice,
		Status:                  string(q.Status),
		CreatedAt:               q.CreatedAt.Format(time.RFC3339),
		ValidUntil:              q.ValidUntil.Format(time.RFC3339),
	}
}
