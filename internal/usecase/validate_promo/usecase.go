package validate_promo

import (
	"fmt"
	"strings"

	"github.com/m04kA/SBN-BookingService/internal/domain"
)

const (
	msgPromoApplied = "Code promo appliqué : -%g%%"
	msgPromoInvalid = "Code promo invalide"
)

// UseCase use case для проверки промокода
type UseCase struct {
	codes  map[string]domain.PromoCode
	logger Logger
}

// NewUseCase создает новый экземпляр use case
// Коды сравниваются без учета регистра
func NewUseCase(codes []domain.PromoCode, logger Logger) *UseCase {
	index := make(map[string]domain.PromoCode, len(codes))
	for _, c := range codes {
		index[normalize(c.Code)] = c
	}
	return &UseCase{codes: index, logger: logger}
}

// Execute проверяет промокод
// Неизвестный код не является ошибкой: возвращается Valid=false
func (uc *UseCase) Execute(code string) *Response {
	promo, ok := uc.Lookup(code)
	if !ok {
		uc.logger.Warn("ValidatePromo: invalid code %q", code)
		return &Response{Valid: false, Message: msgPromoInvalid}
	}

	uc.logger.Info("ValidatePromo: code %s applied, discount=%g%%", promo.Code, promo.Discount)
	return &Response{
		Valid:    true,
		Code:     promo.Code,
		Discount: promo.Discount,
		Message:  fmt.Sprintf(msgPromoApplied, promo.Discount),
	}
}

// Lookup ищет промокод
func (uc *UseCase) Lookup(code string) (domain.PromoCode, bool) {
	promo, ok := uc.codes[normalize(code)]
	return promo, ok
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
