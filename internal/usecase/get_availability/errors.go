package get_availability

import "errors"

var (
	// ErrUnknownTimeSlot возвращается, когда слот отсутствует в каталоге
	ErrUnknownTimeSlot = errors.New("get_availability: unknown time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
