package generate_quote

import (
	"time"

	"github.com/m04kA/SBN-BookingService/internal/domain"
)

// PromoLookup интерфейс поиска промокода
type PromoLookup interface {
	Lookup(code string) (domain.PromoCode, bool)
}

// Metrics интерфейс метрик предложений
type Metrics interface {
	ObserveQuote(format string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
