package loggertest

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/m04kA/SBN-BookingService/pkg/logger"
)

// New логгер, пишущий в вывод теста
func New(t testing.TB) *logger.Logger {
	return logger.FromZap(zaptest.NewLogger(t))
}
