package delete_blocked_date

import "context"

type ScheduleService interface {
	DeleteBlockedDate(ctx context.Context, blockedDateID int64, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
