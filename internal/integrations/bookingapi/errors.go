package bookingapi

import "errors"

var (
	// ErrBookingNotFound возвращается, когда API не знает бронирование
	ErrBookingNotFound = errors.New("bookingapi client: booking not found")

	// ErrRejected возвращается, когда API ответил success=false
	ErrRejected = errors.New("bookingapi client: request rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("bookingapi client: invalid response")
)
