package create_booking

import (
	"net/http"
	"strings"

	"github.com/m04kA/SBN-BookingService/internal/api/handlers"
	"github.com/m04kA/SBN-BookingService/internal/service/bookings/models"
)

const msgCreateFailed = "Erreur lors de la création de la réservation"

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings
// Любая ошибка, включая некорректное тело, возвращается как 500 {success:false, message}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := handlers.ReadBody(r)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to read body: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgCreateFailed)
		return
	}

	problems, err := validateShape(body)
	if err != nil {
		h.logger.Warn("POST /bookings - Malformed JSON: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgCreateFailed)
		return
	}
	if len(problems) > 0 {
		h.logger.Warn("POST /bookings - Payload does not match schema: %s", strings.Join(problems, "; "))
		handlers.RespondError(w, http.StatusInternalServerError, msgCreateFailed)
		return
	}

	req, err := parseRequest(body)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgCreateFailed)
		return
	}

	draft, err := req.ToDraft()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date %q: %v", req.Date, err)
		handlers.RespondError(w, http.StatusInternalServerError, msgCreateFailed)
		return
	}

	booking, err := h.useCase.Execute(r.Context(), draft)
	if err != nil {
		h.logger.Error("POST /bookings - Failed to create booking: company=%q, error=%v", req.CompanyName, err)
		handlers.RespondError(w, http.StatusInternalServerError, msgCreateFailed)
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s", booking.ID)
	handlers.RespondJSON(w, http.StatusCreated, CreateBookingResponse{
		Success:   true,
		BookingID: booking.ID,
		Booking:   models.FromDomainBooking(booking),
	})
}
