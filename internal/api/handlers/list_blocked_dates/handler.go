package list_blocked_dates

import (
	"net/http"

	"github.com/avikez/SAS-AppointmentService/internal/api/handlers"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/blocked-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListBlockedDates(r.Context())
	if err != nil {
		h.logger.Error("GET /schedule/blocked-dates - Failed to list blocked dates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule/blocked-dates - Blocked dates retrieved successfully: count=%d",
		len(result.BlockedDates))
	handlers.RespondJSON(w, http.StatusOK, result)
}
