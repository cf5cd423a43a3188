package models

import (
	"time"

	"github.com/avikez/SAS-AppointmentService/internal/domain"
)

// Request модели

// SetStatusRequest запрос на изменение статуса записи
type SetStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// ListRequest запрос на получение списка записей.
// Администратор видит все записи, обычный пользователь - только свои.
type ListRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// Response модели

// AppointmentResponse представление записи для внешних слоев
type AppointmentResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	ServiceID int64  `json:"serviceId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`

	CustomerName  *string `json:"customerName,omitempty"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	CustomerEmail *string `json:"customerEmail,omitempty"`

	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`

	Notes *string `json:"notes,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment конвертирует domain модель в response
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            appt.ID,
		UserID:        appt.UserID,
		ServiceID:     appt.ServiceID,
		Date:          appt.Date.Format(domain.DateFormat),
		StartTime:     appt.StartTime.String(),
		EndTime:       appt.EndTime.String(),
		Status:        string(appt.Status),
		CustomerName:  appt.CustomerName,
		CustomerPhone: appt.CustomerPhone,
		CustomerEmail: appt.CustomerEmail,
		ServiceName:   appt.ServiceName,
		ServicePrice:  appt.ServicePrice,
		Notes:         appt.Notes,
		CreatedAt:     appt.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     appt.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainAppointmentList конвертирует слайс domain моделей в response
func FromDomainAppointmentList(appts []*domain.Appointment) *AppointmentListResponse {
	result := make([]*AppointmentResponse, len(appts))
	for i, appt := range appts {
		result[i] = FromDomainAppointment(appt)
	}
	return &AppointmentListResponse{Appointments: result}
}
