package create_blocked_date

import (
	"errors"
	"net/http"

	"github.com/avikez/SAS-AppointmentService/internal/api/handlers"
	"github.com/avikez/SAS-AppointmentService/internal/api/middleware"
	"github.com/avikez/SAS-AppointmentService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует идентификатор пользователя"
	msgUserNotFound       = "пользователь не найден"
	msgForbidden          = "доступ запрещен"
	msgAlreadyBlocked     = "дата уже заблокирована"
	msgInvalidInput       = "некорректная дата, ожидается YYYY-MM-DD"
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

// Handle POST /api/v1/schedule/blocked-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /schedule/blocked-dates - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBlockedDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedule/blocked-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.CreateBlockedDate(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrDateAlreadyBlocked):
			h.logger.Warn("POST /schedule/blocked-dates - Date already blocked: date=%s", req.Date)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyBlocked)

		case errors.Is(err, schedule.ErrUserNotFound):
			h.logger.Warn("POST /schedule/blocked-dates - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("POST /schedule/blocked-dates - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /schedule/blocked-dates - Invalid input: date=%s, error=%v", req.Date, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /schedule/blocked-dates - Failed to block date: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule/blocked-dates - Date blocked successfully: blocked_date_id=%d, date=%s, user_id=%d",
		created.ID, req.Date, userID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}
