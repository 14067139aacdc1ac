package generate_quote

import "errors"

var (
	// ErrInvalidInput возвращается, когда категория или частота неизвестны
	ErrInvalidInput = errors.New("generate_quote: invalid input data")

	// ErrInvalidPromoCode возвращается для неизвестного промокода
	ErrInvalidPromoCode = errors.New("generate_quote: invalid promo code")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("generate_quote: internal error")
)
