package get_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SBN-BookingService/internal/api/handlers"
	"github.com/m04kA/SBN-BookingService/internal/domain"
	getAvailability "github.com/m04kA/SBN-BookingService/internal/usecase/get_availability"
)

const (
	msgInvalidDate     = "Date invalide, format attendu : AAAA-MM-JJ"
	msgUnknownTimeSlot = "Créneau inconnu"
	msgSlotsFailed     = "Erreur lors de la récupération des créneaux"
	msgCheckFailed     = "Erreur lors de la vérification"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleSlots GET /api/availability/{date}
func (h *Handler) HandleSlots(w http.ResponseWriter, r *http.Request) {
	rawDate := mux.Vars(r)["date"]
	date, err := handlers.ParseDate(rawDate)
	if err != nil {
		h.logger.Warn("GET /availability/{date} - Invalid date: %q", rawDate)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Slots(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /availability/{date} - Failed to get slots: date=%s, error=%v", rawDate, err)
		handlers.RespondError(w, http.StatusInternalServerError, msgSlotsFailed)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseSlots(result))
}

// HandleSlot GET /api/availability/{date}/{timeSlot}
func (h *Handler) HandleSlot(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	rawDate, timeSlot := vars["date"], vars["timeSlot"]

	date, err := handlers.ParseDate(rawDate)
	if err != nil {
		h.logger.Warn("GET /availability/{date}/{timeSlot} - Invalid date: %q", rawDate)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.CheckSlot(r.Context(), date, timeSlot)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrUnknownTimeSlot):
			h.logger.Warn("GET /availability/{date}/{timeSlot} - Unknown time slot: %q", timeSlot)
			handlers.RespondBadRequest(w, msgUnknownTimeSlot)

		default:
			h.logger.Error("GET /availability/{date}/{timeSlot} - Failed to check slot: date=%s, slot=%s, error=%v",
				rawDate, timeSlot, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgCheckFailed)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CheckSlotResponse{
		Success:   true,
		Date:      result.Date.Format(domain.DateFormat),
		TimeSlot:  result.TimeSlot,
		Available: result.Available,
	})
}

// HandleDates GET /api/availability-dates
func (h *Handler) HandleDates(w http.ResponseWriter, r *http.Request) {
	dates := h.useCase.BookableDates()

	formatted := make([]string, len(dates))
	for i, d := range dates {
		formatted[i] = d.Format(domain.DateFormat)
	}

	handlers.RespondJSON(w, http.StatusOK, DatesResponse{Success: true, Dates: formatted})
}
