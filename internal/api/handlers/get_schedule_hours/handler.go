package get_schedule_hours

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

// Handle GET /api/v1/schedule/hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListHours(r.Context())
	if err != nil {
		h.logger.Error("GET /schedule/hours - Failed to list business hours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule/hours - Business hours retrieved successfully: count=%d", len(result.Hours))
	handlers.RespondJSON(w, http.StatusOK, result)
}
