package wizard_session

import (
	"context"

	wizardSession "github.com/m04kA/SBN-BookingService/internal/usecase/wizard_session"
	"github.com/m04kA/SBN-BookingService/internal/wizard"
)

type WizardSessionUseCase interface {
	Start(ctx context.Context) (*wizardSession.State, error)
	Get(ctx context.Context, id string) (*wizardSession.State, error)
	Advance(ctx context.Context, id string, input wizard.StepInput) (*wizardSession.State, error)
	Back(ctx context.Context, id string, target wizard.Step) (*wizardSession.State, error)
	Submit(ctx context.Context, id string, input *wizard.ContactInput) (*wizardSession.State, error)
	Delete(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
