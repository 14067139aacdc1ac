package wizard_session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("wizard_session: session not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("wizard_session: internal error")
)
