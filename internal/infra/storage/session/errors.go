package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("session.store: session not found")

	// ErrEncode возвращается при ошибке сериализации снимка
	ErrEncode = errors.New("session.store: failed to encode snapshot")

	// ErrDecode возвращается при ошибке десериализации снимка
	ErrDecode = errors.New("session.store: failed to decode snapshot")

	// ErrStore возвращается при ошибке обращения к хранилищу
	ErrStore = errors.New("session.store: storage error")
)
