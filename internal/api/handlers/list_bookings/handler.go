package list_bookings

import (
	"net/http"

	"github.com/m04kA/SBN-BookingService/internal/api/handlers"
	"github.com/m04kA/SBN-BookingService/internal/service/bookings/models"
)

const msgListFailed = "Erreur lors de la récupération des réservations"

// ListBookingsResponse HTTP response model
type ListBookingsResponse struct {
	Success  bool                     `json:"success"`
	Bookings []models.BookingResponse `json:"bookings"`
}

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgListFailed)
		return
	}

	h.logger.Info("GET /bookings - Returned %d bookings", result.Total)
	handlers.RespondJSON(w, http.StatusOK, ListBookingsResponse{
		Success:  true,
		Bookings: result.Bookings,
	})
}
