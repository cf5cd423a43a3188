package models

import (
	"github.com/avikez/SAS-AppointmentService/internal/domain"
)

// CreateServiceRequest модель запроса на создание услуги
type CreateServiceRequest struct {
	UserID          int64
	Name            string
	Price           float64
	DurationMinutes int
	Description     *string
}

// UpdateServiceRequest модель запроса на обновление услуги
type UpdateServiceRequest struct {
	UserID          int64
	Name            string
	Price           float64
	DurationMinutes int
	Description     *string
}

// ServiceResponse модель услуги каталога в ответе
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Description     *string `json:"description,omitempty"`
}

// ServiceListResponse модель списка услуг каталога
type ServiceListResponse struct {
	Services []*ServiceResponse `json:"services"`
}

// FromDomainService конвертирует доменную модель услуги в модель ответа
func FromDomainService(svc *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              svc.ID,
		Name:            svc.Name,
		Price:           svc.Price,
		DurationMinutes: svc.DurationMinutes,
		Description:     svc.Description,
	}
}

// FromDomainServiceList конвертирует список доменных моделей услуг
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{Services: make([]*ServiceResponse, 0, len(services))}
	for _, svc := range services {
		resp.Services = append(resp.Services, FromDomainService(svc))
	}
	return resp
}
