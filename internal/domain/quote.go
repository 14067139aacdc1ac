package domain

import "time"

// QuoteStatus статус коммерческого предложения
type QuoteStatus string

const (
	QuoteStatusDraft QuoteStatus = "draft"
)

// Quote коммерческое предложение (devis), рассчитанное по черновику бронирования
type Quote struct {
	ID string
	Draft

	BasePrice               float64
	AdditionalServicesPrice float64
	Discount                float64 // скидка за частоту в евро
	PromoCode               string
	PromoDiscount           float64 // процент промокода
	TotalPrice              float64

	Status     QuoteStatus
	CreatedAt  time.Time
	ValidUntil time.Time
}
