package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается, когда черновик не передан
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase (в т.ч. ошибках хранилища)
	ErrInternal = errors.New("create_booking: internal error")
)
