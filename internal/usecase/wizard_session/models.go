package wizard_session

import (
	"github.com/m04kA/SBN-BookingService/internal/domain"
	"github.com/m04kA/SBN-BookingService/internal/pricing"
	"github.com/m04kA/SBN-BookingService/internal/wizard"
)

// State состояние сессии мастера
type State struct {
	SessionID string
	Step      wizard.Step
	Draft     domain.Draft
	Estimate  *pricing.Estimate // nil, пока не известны категория, площадь и частота
	Booking   *domain.Booking   // nil до отправки
}
