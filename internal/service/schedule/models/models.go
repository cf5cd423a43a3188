package models

import "github.com/avikez/SAS-AppointmentService/internal/domain"

// Request модели

// UpdateHoursRequest запрос на обновление рабочих часов дня недели
type UpdateHoursRequest struct {
	UserID    int64  `json:"userId"`
	StartTime string `json:"startTime"` // "09:00" или "09:00:00"
	EndTime   string `json:"endTime"`
	Active    bool   `json:"active"`
}

// CreateBlockedDateRequest запрос на блокировку даты
type CreateBlockedDateRequest struct {
	UserID int64   `json:"userId"`
	Date   string  `json:"date"` // "2025-12-31"
	Reason *string `json:"reason,omitempty"`
}

// Response модели

// BusinessHoursResponse строка недельного расписания
type BusinessHoursResponse struct {
	ID        int64  `json:"id"`
	Weekday   int    `json:"weekday"` // 0=воскресенье .. 6=суббота
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Active    bool   `json:"active"`
}

// BusinessHoursListResponse недельное расписание целиком
type BusinessHoursListResponse struct {
	Hours []*BusinessHoursResponse `json:"hours"`
}

// BlockedDateResponse заблокированная дата
type BlockedDateResponse struct {
	ID     int64   `json:"id"`
	Date   string  `json:"date"`
	Reason *string `json:"reason,omitempty"`
}

// BlockedDateListResponse список заблокированных дат
type BlockedDateListResponse struct {
	BlockedDates []*BlockedDateResponse `json:"blockedDates"`
}

// FromDomainHours конвертирует domain модель в response
func FromDomainHours(h *domain.BusinessHours) *BusinessHoursResponse {
	return &BusinessHoursResponse{
		ID:        h.ID,
		Weekday:   h.Weekday,
		StartTime: h.StartTime.String(),
		EndTime:   h.EndTime.String(),
		Active:    h.Active,
	}
}

// FromDomainHoursList конвертирует слайс domain моделей в response
func FromDomainHoursList(hours []*domain.BusinessHours) *BusinessHoursListResponse {
	result := make([]*BusinessHoursResponse, len(hours))
	for i, h := range hours {
		result[i] = FromDomainHours(h)
	}
	return &BusinessHoursListResponse{Hours: result}
}

// FromDomainBlockedDate конвертирует domain модель в response
func FromDomainBlockedDate(b *domain.BlockedDate) *BlockedDateResponse {
	return &BlockedDateResponse{
		ID:     b.ID,
		Date:   b.Date.Format(domain.DateFormat),
		Reason: b.Reason,
	}
}

// FromDomainBlockedDateList конвертирует слайс domain моделей в response
func FromDomainBlockedDateList(blocked []*domain.BlockedDate) *BlockedDateListResponse {
	result := make([]*BlockedDateResponse, len(blocked))
	for i, b := range blocked {
		result[i] = FromDomainBlockedDate(b)
	}
	return &BlockedDateListResponse{BlockedDates: result}
}
