package service

import (
	"context"
	"strings"

	"sentinel-kyc-be/internal/dto"
	"sentinel-kyc-be/internal/pkg/serverutils"
	"sentinel-kyc-be/internal/repository/memory"
	"sentinel-kyc-be/internal/repository/specification"
	"sentinel-kyc-be/internal/repository/unitofwork"
)

// customerSortColumns whitelists the columns the registry table can sort by.
var customerSortColumns = map[string]string{
	"customer_id":      "customer_id",
	"legal_name":       "legal_name",
	"business_type":    "business_type",
	"jurisdiction":     "jurisdiction",
	"risk_tier":        "risk_tier",
	"kyc_status":       "kyc_status",
	"last_review_date": "last_review_date",
	"next_review_due":  "next_review_due",
	"onboarding_date":  "onboarding_date",
	"assigned_analyst": "assigned_analyst",
}

type ICustomerService interface {
	List(ctx context.Context, query *dto.CustomerListQuery) ([]*dto.CustomerResponse, error)
	Jurisdictions(ctx context.Context) ([]string, error)
	Show(ctx context.Context, customerId string) (*dto.CustomerResponse, error)
	Alerts(ctx context.Context, customerId string) ([]*dto.AlertResponse, error)
	Documents(ctx context.Context, customerId string) ([]*dto.DocumentResponse, error)
	Cases(ctx context.Context, customerId string) ([]*dto.CaseResponse, error)
	Activity(ctx context.Context, customerId string) ([]*dto.ActivityLogResponse, error)
}

type customerService struct {
	uowFactory unitofwork.RepositoryFactory
	lookups    *memory.LookupRepository
}

func NewCustomerService(
	uowFactory unitofwork.RepositoryFactory,
	lookups *memory.LookupRepository,
) ICustomerService {
	return &customerService{
		uowFactory: uowFactory,
		lookups:    lookups,
	}
}

func (s *customerService) List(ctx context.Context, query *dto.CustomerListQuery) ([]*dto.CustomerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := make([]specification.Specification, 0)
	if query.Search != "" {
		specs = append(specs, specification.CustomerSearch{Query: query.Search})
	}
	specs = append(specs,
		specification.InValues{Field: "risk_tier", Values: splitCSV(query.RiskTier)},
		specification.InValues{Field: "kyc_status", Values: splitCSV(query.KycStatus)},
		specification.InValues{Field: "jurisdiction", Values: splitCSV(query.Jurisdiction)},
	)

	sortColumn, ok := customerSortColumns[query.SortBy]
	if !ok {
		sortColumn = "customer_id"
	}
	specs = append(specs, specification.OrderBy{
		Field: sortColumn,
		Desc:  strings.EqualFold(query.SortOrder, "desc"),
	})

	customers, err := uow.CustomerRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		result = append(result, toCustomerResponse(customer))
	}
	return result, nil
}

func (s *customerService) Jurisdictions(ctx context.Context) ([]string, error) {
	if cached, found := s.lookups.Get("customer_jurisdictions"); found {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	jurisdictions, err := uow.CustomerRepository().DistinctJurisdictions(ctx)
	if err != nil {
		return nil, err
	}

	s.lookups.Save("customer_jurisdictions", jurisdictions)
	return jurisdictions, nil
}

func (s *customerService) Show(ctx context.Context, customerId string) (*dto.CustomerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByCustomerCode{Code: customerId})
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, serverutils.NotFound("Customer not found")
	}
	return toCustomerResponse(customer), nil
}

func (s *customerService) Alerts(ctx context.Context, customerId string) ([]*dto.AlertResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByCustomerCode{Code: customerId})
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, serverutils.NotFound("Customer not found")
	}

	alerts, err := uow.AlertRepository().FindAll(ctx,
		specification.ByCustomerID{CustomerID: customer.Id},
		specification.OrderBy{Field: "created_date", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AlertResponse, 0, len(alerts))
	for _, alert := range alerts {
		result = append(result, toAlertResponse(alert))
	}
	return result, nil
}

func (s *customerService) Documents(ctx context.Context, customerId string) ([]*dto.DocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByCustomerCode{Code: customerId})
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, serverutils.NotFound("Customer not found")
	}

	documents, err := uow.DocumentRepository().FindAll(ctx,
		specification.ByCustomerID{CustomerID: customer.Id},
		specification.ExpiryOrder{},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.DocumentResponse, 0, len(documents))
	for _, document := range documents {
		result = append(result, toDocumentResponse(document))
	}
	return result, nil
}

func (s *customerService) Cases(ctx context.Context, customerId string) ([]*dto.CaseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByCustomerCode{Code: customerId})
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, serverutils.NotFound("Customer not found")
	}

	cases, err := uow.CaseRepository().FindAll(ctx,
		specification.ByCustomerID{CustomerID: customer.Id},
		specification.OrderBy{Field: "opened_date", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CaseResponse, 0, len(cases))
	for _, kase := range cases {
		result = append(result, toCaseResponse(kase))
	}
	return result, nil
}

func (s *customerService) Activity(ctx context.Context, customerId string) ([]*dto.ActivityLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByCustomerCode{Code: customerId})
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, serverutils.NotFound("Customer not found")
	}

	// Activity entries reference customers by name or business ID in free
	// text, not by foreign key.
	entries, err := uow.ActivityLogRepository().FindAll(ctx,
		specification.ActionMentions{Terms: []string{customer.CustomerId, customer.LegalName}},
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
