package wizard_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SBN-BookingService/internal/api/handlers"
	wizardSession "github.com/m04kA/SBN-BookingService/internal/usecase/wizard_session"
	"github.com/m04kA/SBN-BookingService/internal/wizard"
)

const (
	msgInvalidRequestBody = "Corps de requête invalide"
	msgSessionNotFound    = "Session introuvable ou expirée"
	msgUnknownStep        = "Étape inconnue"
	msgStepMismatch       = "Cette étape ne correspond pas à l'étape en cours"
	msgSubmitRequired     = "La dernière étape se valide par l'envoi de la réservation"
	msgAlreadySubmitted   = "La réservation a déjà été envoyée"
	msgCannotGoBack       = "Impossible de revenir à une étape non complétée"
	msgValidationFailed   = "Veuillez corriger les champs indiqués"
	msgSubmissionFailed   = "Erreur lors de la création de la réservation, veuillez réessayer"
)

type Handler struct {
	useCase WizardSessionUseCase
	logger  Logger
}

func NewHandler(useCase WizardSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleStart POST /api/wizard/sessions
func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	state, err := h.useCase.Start(r.Context())
	if err != nil {
		h.respondError(w, "POST /wizard/sessions", err)
		return
	}
	handlers.RespondJSON(w, http.StatusCreated, Envelope{Success: true, Session: FromState(state)})
}

// HandleGet GET /api/wizard/sessions/{sessionId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	state, err := h.useCase.Get(r.Context(), mux.Vars(r)["sessionId"])
	if err != nil {
		h.respondError(w, "GET /wizard/sessions/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, Envelope{Success: true, Session: FromState(state)})
}

// HandleStep POST /api/wizard/sessions/{sessionId}/steps/{step}
func (h *Handler) HandleStep(w http.ResponseWriter, r *http.Request) {
	const route = "POST /wizard/sessions/{id}/steps/{step}"
	vars := mux.Vars(r)

	step, err := wizard.ParseStep(vars["step"])
	if err != nil {
		h.logger.Warn("%s - %v", route, err)
		handlers.RespondBadRequest(w, msgUnknownStep)
		return
	}

	input, err := wizard.NewInput(step)
	if err != nil {
		h.logger.Warn("%s - %v", route, err)
		handlers.RespondBadRequest(w, msgUnknownStep)
		return
	}

	if err := handlers.DecodeJSON(r, input); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	state, err := h.useCase.Advance(r.Context(), vars["sessionId"], input)
	if err != nil {
		h.respondError(w, route, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, Envelope{Success: true, Session: FromState(state)})
}

// HandleBack POST /api/wizard/sessions/{sessionId}/back
func (h *Handler) HandleBack(w http.ResponseWriter, r *http.Request) {
	const route = "POST /wizard/sessions/{id}/back"

	var req BackRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	target, err := wizard.ParseStep(req.Step)
	if err != nil {
		h.logger.Warn("%s - %v", route, err)
		handlers.RespondBadRequest(w, msgUnknownStep)
		return
	}

	state, err := h.useCase.Back(r.Context(), mux.Vars(r)["sessionId"], target)
	if err != nil {
		h.respondError(w, route, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, Envelope{Success: true, Session: FromState(state)})
}

// HandleSubmit POST /api/wizard/sessions/{sessionId}/submit
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	const route = "POST /wizard/sessions/{id}/submit"

	var input wizard.ContactInput
	if err := handlers.DecodeJSON(r, &input); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	state, err := h.useCase.Submit(r.Context(), mux.Vars(r)["sessionId"], &input)
	if err != nil {
		h.respondError(w, route, err)
		return
	}

	h.logger.Info("%s - Booking submitted: session=%s, booking_id=%s", route, state.SessionID, state.Booking.ID)
	handlers.RespondJSON(w, http.StatusCreated, Envelope{Success: true, Session: FromState(state)})
}

// HandleDelete DELETE /api/wizard/sessions/{sessionId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.useCase.Delete(r.Context(), mux.Vars(r)["sessionId"]); err != nil {
		h.respondError(w, "DELETE /wizard/sessions/{id}", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	if ve, ok := wizard.IsValidationError(err); ok {
		h.logger.Warn("%s - Validation failed: %v", route, ve)
		handlers.RespondValidationError(w, msgValidationFailed, ve.Fields)
		return
	}

	switch {
	case errors.Is(err, wizardSession.ErrSessionNotFound):
		h.logger.Warn("%s - Session not found", route)
		handlers.RespondNotFound(w, msgSessionNotFound)

	case errors.Is(err, wizard.ErrStepMismatch):
		h.logger.Warn("%s - %v", route, err)
		handlers.RespondConflict(w, msgStepMismatch)

	case errors.Is(err, wizard.ErrSubmitRequired):
		h.logger.Warn("%s - %v", route, err)
		handlers.RespondConflict(w, msgSubmitRequired)

	case errors.Is(err, wizard.ErrSubmitted):
		h.logger.Warn("%s - %v", route, err)
		handlers.RespondConflict(w, msgAlreadySubmitted)

	case errors.Is(err, wizard.ErrCannotGoBack):
		h.logger.Warn("%s - %v", route, err)
		handlers.RespondConflict(w, msgCannotGoBack)

	case errors.Is(err, wizard.ErrSubmission):
		h.logger.Error("%s - Submission failed: %v", route, err)
		handlers.RespondError(w, http.StatusBadGateway, msgSubmissionFailed)

	default:
		h.logger.Error("%s - Unexpected error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
