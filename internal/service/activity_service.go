package service

import (
	"context"

	"sentinel-kyc-be/internal/dto"
	"sentinel-kyc-be/internal/repository/specification"
	"sentinel-kyc-be/internal/repository/unitofwork"
)

type IActivityService interface {
	List(ctx context.Context) ([]*dto.ActivityLogResponse, error)
	Record(ctx context.Context, action string, analystName string) error
}

type activityService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewActivityService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) IActivityService {
	return &activityService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *activityService) List(ctx context.Context) ([]*dto.ActivityLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entries, err := uow.ActivityLogRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ActivityLogResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, toActivityLogResponse(entry))
	}
	return result, nil
}

func (s *activityService) Record(ctx context.Context, action string, analystName string) error {
	return s.publisherService.PublishActivity(ctx, action, analystName)
}
