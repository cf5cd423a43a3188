package delete_blocked_date

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
	msgInvalidBlockedDateID = "некорректный ID блокировки"
	msgMissingUserID        = "отсутствует идентификатор пользователя"
	msgNotFound             = "блокировка даты не найдена"
	msgUserNotFound         = "пользователь не найден"
	msgForbidden            = "доступ запрещен"
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

// Handle DELETE /api/v1/schedule/blocked-dates/{blockedDateId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	blockedDateIDStr := vars["blockedDateId"]

	blockedDateID, err := strconv.ParseInt(blockedDateIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /schedule/blocked-dates/{id} - Invalid blocked date ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockedDateID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /schedule/blocked-dates/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.DeleteBlockedDate(r.Context(), blockedDateID, userID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrBlockedDateNotFound):
			h.logger.Warn("DELETE /schedule/blocked-dates/{id} - Blocked date not found: blocked_date_id=%d",
				blockedDateID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedule.ErrUserNotFound):
			h.logger.Warn("DELETE /schedule/blocked-dates/{id} - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("DELETE /schedule/blocked-dates/{id} - Access denied: blocked_date_id=%d, user_id=%d",
				blockedDateID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /schedule/blocked-dates/{id} - Failed to delete blocked date: blocked_date_id=%d, error=%v",
				blockedDateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /schedule/blocked-dates/{id} - Blocked date deleted successfully: blocked_date_id=%d, user_id=%d",
		blockedDateID, userID)
	w.WriteHeader(http.StatusNoContent)
}
