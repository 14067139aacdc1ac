package config

import "errors"

var (
	// ErrDecode возвращается, когда config.toml не удалось прочитать
	ErrDecode = errors.New("config: failed to decode file")

	// ErrInvalidEnv возвращается при некорректной переменной окружения
	ErrInvalidEnv = errors.New("config: invalid environment variable")

	// ErrInvalidConfig возвращается при несогласованной конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)
