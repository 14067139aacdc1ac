package generate_quote

import "github.com/m04kA/SBN-BookingService/internal/domain"

// Request модель запроса на расчет предложения
type Request struct {
	Draft     domain.Draft
	PromoCode string // опционально
}
