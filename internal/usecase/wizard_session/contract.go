package wizard_session

import (
	"context"

	"github.com/m04kA/SBN-BookingService/internal/wizard"
)

// SessionStore интерфейс хранилища сессий мастера
type SessionStore interface {
	Save(ctx context.Context, id string, snapshot wizard.Snapshot) error
	Get(ctx context.Context, id string) (wizard.Snapshot, error)
	Delete(ctx context.Context, id string) error
}

// Metrics интерфейс метрик переходов мастера
type Metrics interface {
	ObserveTransition(step, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
