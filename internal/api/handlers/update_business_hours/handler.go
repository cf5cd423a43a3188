package update_business_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avikez/SAS-AppointmentService/internal/api/handlers"
	"github.com/avikez/SAS-AppointmentService/internal/api/middleware"
	"github.com/avikez/SAS-AppointmentService/internal/service/schedule"
)

const (
	msgInvalidHoursID     = "некорректный ID строки расписания"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует идентификатор пользователя"
	msgHoursNotFound      = "строка расписания не найдена"
	msgUserNotFound       = "пользователь не найден"
	msgForbidden          = "доступ запрещен"
	msgInvalidInput       = "некорректный интервал рабочих часов"
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

// Handle PUT /api/v1/schedule/hours/{hoursId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hoursIDStr := vars["hoursId"]

	hoursID, err := strconv.ParseInt(hoursIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /schedule/hours/{id} - Invalid hours ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHoursID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /schedule/hours/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/hours/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.UpdateHours(r.Context(), hoursID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrHoursNotFound):
			h.logger.Warn("PUT /schedule/hours/{id} - Hours not found: hours_id=%d", hoursID)
			handlers.RespondNotFound(w, msgHoursNotFound)

		case errors.Is(err, schedule.ErrUserNotFound):
			h.logger.Warn("PUT /schedule/hours/{id} - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("PUT /schedule/hours/{id} - Access denied: hours_id=%d, user_id=%d", hoursID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /schedule/hours/{id} - Invalid input: hours_id=%d, error=%v", hoursID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /schedule/hours/{id} - Failed to update hours: hours_id=%d, error=%v", hoursID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule/hours/{id} - Hours updated successfully: hours_id=%d, user_id=%d", hoursID, userID)
	handlers.RespondJSON(w, http.StatusOK, updated)
}
