package contracts

import (
	"context"

	"counselink-service/internal/app/models"
	"counselink-service/internal/pkg/dto/requests"
	"counselink-service/internal/pkg/dto/responses"
)

type ServiceUsecase interface {
	ListServices(ctx context.Context, pagination *requests.Pagination) ([]responses.Service, int, error)
	CreateService(ctx context.Context, session *models.Session, request *requests.CreateService) (*responses.Service, error)
}

type ServiceRepository interface {
	CreateService(ctx context.Context, service *models.Service) (serviceID string, err error)
	FindByID(ctx context.Context, serviceID string) (*models.Service, error)
	FindAll(ctx context.Context, page, pageSize int) ([]models.Service, int, error)
}
