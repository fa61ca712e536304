package servicecatalog

import (
	"context"
	"fmt"
	"sync"

	"counselink-service/internal/app/contracts"
	"counselink-service/internal/app/models"
	"counselink-service/internal/pkg/constvars"
	"counselink-service/internal/pkg/dto/requests"
	"counselink-service/internal/pkg/dto/responses"
	"counselink-service/internal/pkg/exceptions"
	"counselink-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type serviceUsecase struct {
	ServiceRepository contracts.ServiceRepository
	Log               *zap.Logger
}

var (
	serviceUsecaseInstance contracts.ServiceUsecase
	onceServiceUsecase     sync.Once
)

func NewServiceUsecase(serviceRepository contracts.ServiceRepository, logger *zap.Logger) contracts.ServiceUsecase {
	onceServiceUsecase.Do(func() {
		serviceUsecaseInstance = &serviceUsecase{
			ServiceRepository: serviceRepository,
			Log:               logger,
		}
	})
	return serviceUsecaseInstance
}

func (uc *serviceUsecase) ListServices(ctx context.Context, pagination *requests.Pagination) ([]responses.Service, int, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("serviceUsecase.ListServices called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	services, total, err := uc.ServiceRepository.FindAll(ctx, pagination.Page, pagination.PageSize)
	if err != nil {
		return nil, 0, err
	}

	response := make([]responses.Service, 0, len(services))
	for i := range services {
		response = append(response, *buildServiceResponse(&services[i]))
	}
	return response, total, nil
}

func (uc *serviceUsecase) CreateService(ctx context.Context, session *models.Session, request *requests.CreateService) (*responses.Service, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("serviceUsecase.CreateService called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, session.AccountID),
	)

	if session.Role != constvars.RoleAdmin {
		return nil, exceptions.ErrRoleNotAllowed(fmt.Errorf("account %s may not manage the service catalog", session.AccountID))
	}

	service := &models.Service{
		Name:          request.Name,
		Description:   request.Description,
		Price:         request.Price,
		Currency:      request.Currency,
		DurationMins:  request.DurationMins,
		ReportEnabled: request.ReportEnabled,
	}

	serviceID, err := uc.ServiceRepository.CreateService(ctx, service)
	if err != nil {
		return nil, err
	}
	service.ID = serviceID

	uc.Log.Info("serviceUsecase.CreateService succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return buildServiceResponse(service), nil
}

func buildServiceResponse(service *models.Service) *responses.Service {
	return &responses.Service{
		ID:            service.ID,
		Name:          service.Name,
		Description:   service.Description,
		Price:         service.Price,
		Currency:      service.Currency,
		DurationMins:  service.DurationMins,
		ReportEnabled: service.ReportEnabled,
	}
}
