package validate_promo

import validatePromo "github.com/m04kA/SBN-BookingService/internal/usecase/validate_promo"

type ValidatePromoUseCase interface {
	Execute(code string) *validatePromo.Response
}

type Logger interface {
	Warn(format string, v ...interface{})
}
