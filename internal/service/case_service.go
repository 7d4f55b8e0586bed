package service

import (
	"context"
	"fmt"
	"strings"

	"sentinel-kyc-be/internal/constant"
	"sentinel-kyc-be/internal/dto"
	"sentinel-kyc-be/internal/entity"
	"sentinel-kyc-be/internal/pkg/serverutils"
	"sentinel-kyc-be/internal/repository/memory"
	"sentinel-kyc-be/internal/repository/specification"
	"sentinel-kyc-be/internal/repository/unitofwork"
)

var caseSortColumns = map[string]string{
	"case_id":          "case_id",
	"case_type":        "case_type",
	"priority":         "priority",
	"status":           "status",
	"opened_date":      "opened_date",
	"due_date":         "due_date",
	"assigned_analyst": "assigned_analyst",
}

type ICaseService interface {
	List(ctx context.Context, query *dto.CaseListQuery) ([]*dto.CaseResponse, error)
	Types(ctx context.Context) ([]string, error)
	Show(ctx context.Context, caseId string) (*dto.CaseResponse, error)
	Notes(ctx context.Context, caseId string) ([]*dto.CaseNoteResponse, error)
	AddNote(ctx context.Context, caseId string, req *dto.CreateCaseNoteRequest) (*dto.CaseNoteResponse, error)
	UpdateStatus(ctx context.Context, caseId string, newStatus string) (*dto.CaseResponse, error)
}

type caseService struct {
	uowFactory       unitofwork.RepositoryFactory
	lookups          *memory.LookupRepository
	publisherService IPublisherService
}

func NewCaseService(
	uowFactory unitofwork.RepositoryFactory,
	lookups *memory.LookupRepository,
	publisherService IPublisherService,
) ICaseService {
	return &caseService{
		uowFactory:       uowFactory,
		lookups:          lookups,
		publisherService: publisherService,
	}
}

func (s *caseService) List(ctx context.Context, query *dto.CaseListQuery) ([]*dto.CaseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := make([]specification.Specification, 0)
	if query.Search != "" {
		specs = append(specs, specification.CaseSearch{Query: query.Search})
	}
	specs = append(specs,
		specification.InValues{Field: "cases.status", Values: splitCSV(query.Status)},
		specification.InValues{Field: "cases.case_type", Values: splitCSV(query.CaseType)},
		specification.InValues{Field: "cases.priority", Values: splitCSV(query.Priority)},
	)

	sortColumn, ok := caseSortColumns[query.SortBy]
	if !ok {
		sortColumn = "case_id"
	}
	specs = append(specs, specification.OrderBy{
		Field: "cases." + sortColumn,
		Desc:  strings.EqualFold(query.SortOrder, "desc"),
	})

	cases, err := uow.CaseRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CaseResponse, 0, len(cases))
	for _, kase := range cases {
		result = append(result, toCaseResponse(kase))
	}
	return result, nil
}

func (s *caseService) Types(ctx context.Context) ([]string, error) {
	if cached, found := s.lookups.Get("case_types"); found {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	types, err := uow.CaseRepository().DistinctTypes(ctx)
	if err != nil {
		return nil, err
	}

	s.lookups.Save("case_types", types)
	return types, nil
}

func (s *caseService) Show(ctx context.Context, caseId string) (*dto.CaseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	kase, err := uow.CaseRepository().FindOne(ctx, specification.ByCaseCode{Code: caseId})
	if err != nil {
		return nil, err
	}
	if kase == nil {
		return nil, serverutils.NotFound("Case not found")
	}
	return toCaseResponse(kase), nil
}

func (s *caseService) Notes(ctx context.Context, caseId string) ([]*dto.CaseNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	kase, err := uow.CaseRepository().FindOne(ctx, specification.ByCaseCode{Code: caseId})
	if err != nil {
		return nil, err
	}
	if kase == nil {
		return nil, serverutils.NotFound("Case not found")
	}

	notes, err := uow.CaseNoteRepository().FindAll(ctx,
		specification.Filter("case_id", kase.Id),
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CaseNoteResponse, 0, len(notes))
	for _, note := range notes {
		result = append(result, toCaseNoteResponse(note))
	}
	return result, nil
}

func (s *caseService) AddNote(ctx context.Context, caseId string, req *dto.CreateCaseNoteRequest) (*dto.CaseNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	kase, err := uow.CaseRepository().FindOne(ctx, specification.ByCaseCode{Code: caseId})
	if err != nil {
		return nil, err
	}
	if kase == nil {
		return nil, serverutils.NotFound("Case not found")
	}

	analyst := req.Analyst
	if analyst == "" {
		analyst = constant.DefaultAnalyst
	}

	note := &entity.CaseNote{
		CaseId:      kase.Id,
		Content:     req.Content,
		AnalystName: analyst,
	}
	if err := uow.CaseNoteRepository().Create(ctx, note); err != nil {
		return nil, err
	}

	action := fmt.Sprintf("Added note to case %s", caseId)
	_ = s.publisherService.PublishActivity(ctx, action, analyst)

	return toCaseNoteResponse(note), nil
}

func (s *caseService) UpdateStatus(ctx context.Context, caseId string, newStatus string) (*dto.CaseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	kase, err := uow.CaseRepository().FindOne(ctx, specification.ByCaseCode{Code: caseId})
	if err != nil {
		return nil, err
	}
	if kase == nil {
		return nil, serverutils.NotFound("Case not found")
	}

	if !constant.CanTransition(constant.CaseTransitions, kase.Status, newStatus) {
		return nil, serverutils.BadRequest(
			fmt.Sprintf("Invalid transition from '%s' to '%s'", kase.Status, newStatus))
	}

	previous := kase.Status
	kase.Status = newStatus
	if err := uow.CaseRepository().Update(ctx, kase); err != nil {
		return nil, err
	}

	kase, err = uow.CaseRepository().FindOne(ctx, specification.ByCaseCode{Code: caseId})
	if err != nil {
		return nil, err
	}

	action := fmt.Sprintf("Updated case %s status from %s to %s", caseId, previous, newStatus)
	_ = s.publisherService.PublishActivity(ctx, action, kase.AssignedAnalyst)

	return toCaseResponse(kase), nil
}
