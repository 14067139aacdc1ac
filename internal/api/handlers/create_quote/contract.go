package create_quote

import (
	"io"

	"github.com/m04kA/SBN-BookingService/internal/domain"
	generateQuote "github.com/m04kA/SBN-BookingService/internal/usecase/generate_quote"
)

type GenerateQuoteUseCase interface {
	Create(req *generateQuote.Request) (*domain.Quote, error)
	RenderPDF(w io.Writer, req *generateQuote.Request) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
