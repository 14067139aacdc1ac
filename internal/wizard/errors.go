package wizard

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrStepMismatch возвращается, когда поля не относятся к текущему шагу
	ErrStepMismatch = errors.New("wizard: input does not belong to the current step")

	// ErrCannotGoBack возвращается при попытке вернуться на непройденный шаг
	ErrCannotGoBack = errors.New("wizard: step has not been completed yet")

	// ErrSubmitRequired возвращается при попытке продвинуть последний шаг без отправки
	ErrSubmitRequired = errors.New("wizard: contact step is completed by submission")

	// ErrSubmitted возвращается при попытке изменить уже отправленное бронирование
	ErrSubmitted = errors.New("wizard: booking already submitted")

	// ErrSubmission возвращается, когда шлюз бронирований не принял заявку
	ErrSubmission = errors.New("wizard: booking submission failed")

	// ErrUnknownStep возвращается при разборе неизвестного шага
	ErrUnknownStep = errors.New("wizard: unknown step")

	// ErrInvalidSnapshot возвращается при восстановлении из некорректного снимка
	ErrInvalidSnapshot = errors.New("wizard: invalid snapshot")
)

// ValidationError ошибки полей одного шага
type ValidationError struct {
	Step   Step
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "wizard: step " + e.Step.String() + " is invalid: " + strings.Join(parts, "; ")
}

// IsValidationError проверяет, что ошибка является ошибкой валидации шага
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
