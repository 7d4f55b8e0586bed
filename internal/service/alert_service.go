package service

import (
	"context"
	"fmt"
	"strings"

	"sentinel-kyc-be/internal/constant"
	"sentinel-kyc-be/internal/dto"
	"sentinel-kyc-be/internal/pkg/serverutils"
	"sentinel-kyc-be/internal/repository/memory"
	"sentinel-kyc-be/internal/repository/specification"
	"sentinel-kyc-be/internal/repository/unitofwork"
)

var alertSortColumns = map[string]string{
	"alert_id":         "alert_id",
	"alert_type":       "alert_type",
	"severity":         "severity",
	"status":           "status",
	"created_date":     "created_date",
	"assigned_analyst": "assigned_analyst",
}

type IAlertService interface {
	List(ctx context.Context, query *dto.AlertListQuery) ([]*dto.AlertResponse, error)
	Types(ctx context.Context) ([]string, error)
	Show(ctx context.Context, alertId string) (*dto.AlertResponse, error)
	UpdateStatus(ctx context.Context, alertId string, newStatus string) (*dto.AlertResponse, error)
}

type alertService struct {
	uowFactory       unitofwork.RepositoryFactory
	lookups          *memory.LookupRepository
	publisherService IPublisherService
}

func NewAlertService(
	uowFactory unitofwork.RepositoryFactory,
	lookups *memory.LookupRepository,
	publisherService IPublisherService,
) IAlertService {
	return &alertService{
		uowFactory:       uowFactory,
		lookups:          lookups,
		publisherService: publisherService,
	}
}

func (s *alertService) List(ctx context.Context, query *dto.AlertListQuery) ([]*dto.AlertResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := make([]specification.Specification, 0)
	if query.Search != "" {
		specs = append(specs, specification.AlertSearch{Query: query.Search})
	}
	specs = append(specs,
		specification.InValues{Field: "alerts.severity", Values: splitCSV(query.Severity)},
		specification.InValues{Field: "alerts.status", Values: splitCSV(query.Status)},
		specification.InValues{Field: "alerts.alert_type", Values: splitCSV(query.AlertType)},
	)

	sortColumn, ok := alertSortColumns[query.SortBy]
	if !ok {
		sortColumn = "alert_id"
	}
	specs = append(specs, specification.OrderBy{
		Field: "alerts." + sortColumn,
		Desc:  strings.EqualFold(query.SortOrder, "desc"),
	})

	alerts, err := uow.AlertRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AlertResponse, 0, len(alerts))
	for _, alert := range alerts {
		result = append(result, toAlertResponse(alert))
	}
	return result, nil
}

func (s *alertService) Types(ctx context.Context) ([]string, error) {
	if cached, found := s.lookups.Get("alert_types"); found {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	types, err := uow.AlertRepository().DistinctTypes(ctx)
	if err != nil {
		return nil, err
	}

	s.lookups.Save("alert_types", types)
	return types, nil
}

func (s *alertService) Show(ctx context.Context, alertId string) (*dto.AlertResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	alert, err := uow.AlertRepository().FindOne(ctx, specification.ByAlertCode{Code: alertId})
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, serverutils.NotFound("Alert not found")
	}
	return toAlertResponse(alert), nil
}

func (s *alertService) UpdateStatus(ctx context.Context, alertId string, newStatus string) (*dto.AlertResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	alert, err := uow.AlertRepository().FindOne(ctx, specification.ByAlertCode{Code: alertId})
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, serverutils.NotFound("Alert not found")
	}

	if !constant.CanTransition(constant.AlertTransitions, alert.Status, newStatus) {
		return nil, serverutils.BadRequest(
			fmt.Sprintf("Invalid transition from '%s' to '%s'", alert.Status, newStatus))
	}

	previous := alert.Status
	alert.Status = newStatus
	if err := uow.AlertRepository().Update(ctx, alert); err != nil {
		return nil, err
	}

	// Re-load so the customer relation is populated for the response
	alert, err = uow.AlertRepository().FindOne(ctx, specification.ByAlertCode{Code: alertId})
	if err != nil {
		return nil, err
	}

	// Feed entry is best effort, the status change already landed
	action := fmt.Sprintf("Updated alert %s status from %s to %s", alertId, previous, newStatus)
	_ = s.publisherService.PublishActivity(ctx, action, alert.AssignedAnalyst)

	return toAlertResponse(alert), nil
}
