package service

import (
	"context"

	"sentinel-kyc-be/internal/dto"
	"sentinel-kyc-be/internal/pkg/serverutils"
	"sentinel-kyc-be/internal/repository/specification"
	"sentinel-kyc-be/internal/repository/unitofwork"
)

// maxHitsPerType caps each entity group in the global search response.
const maxHitsPerType = 8

type ISearchService interface {
	Search(ctx context.Context, query string) (*dto.SearchResponse, error)
}

type searchService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSearchService(uowFactory unitofwork.RepositoryFactory) ISearchService {
	return &searchService{
		uowFactory: uowFactory,
	}
}

func (s *searchService) Search(ctx context.Context, query string) (*dto.SearchResponse, error) {
	if len(query) < 2 {
		return nil, serverutils.BadRequest("Search query must be at least 2 characters")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	customers, err := uow.CustomerRepository().FindAll(ctx,
		specification.CustomerGlobalSearch{Query: query},
		specification.Limit{N: maxHitsPerType},
	)
	if err != nil {
		return nil, err
	}

	alerts, err := uow.AlertRepository().FindAll(ctx,
		specification.AlertGlobalSearch{Query: query},
		specification.Limit{N: maxHitsPerType},
	)
	if err != nil {
		return nil, err
	}

	cases, err := uow.CaseRepository().FindAll(ctx,
		specification.CaseGlobalSearch{Query: query},
		specification.Limit{N: maxHitsPerType},
	)
	if err != nil {
		return nil, err
	}

	documents, err := uow.DocumentRepository().FindAll(ctx,
		specification.DocumentGlobalSearch{Query: query},
		specification.Limit{N: maxHitsPerType},
	)
	if err != nil {
		return nil, err
	}

	response := &dto.SearchResponse{
		Customers: make([]dto.SearchCustomerHit, 0, len(customers)),
		Alerts:    make([]dto.SearchAlertHit, 0, len(alerts)),
		Cases:     make([]dto.SearchCaseHit, 0, len(cases)),
		Documents: make([]dto.SearchDocumentHit, 0, len(documents)),
	}

	for _, c := range customers {
		response.Customers = append(response.Customers, dto.SearchCustomerHit{
			Id:           c.Id,
			CustomerId:   c.CustomerId,
			LegalName:    c.LegalName,
			RiskTier:     c.RiskTier,
			KycStatus:    c.KycStatus,
			BusinessType: c.BusinessType,
		})
	}

	for _, a := range alerts {
		hit := dto.SearchAlertHit{
			Id:        a.Id,
			AlertId:   a.AlertId,
			AlertType: a.AlertType,
			Severity:  a.Severity,
			Status:    a.Status,
		}
		if a.Customer != nil {
			hit.CustomerName = a.Customer.LegalName
			hit.CustomerCid = a.Customer.CustomerId
		}
		response.Alerts = append(response.Alerts, hit)
	}

	for _, c := range cases {
		hit := dto.SearchCaseHit{
			Id:       c.Id,
			CaseId:   c.CaseId,
			CaseType: c.CaseType,
			Priority: c.Priority,
			Status:   c.Status,
		}
		if c.Customer != nil {
			hit.CustomerName = c.Customer.LegalName
			hit.CustomerCid = c.Customer.CustomerId
		}
		response.Cases = append(response.Cases, hit)
	}

	for _, d := range documents {
		hit := dto.SearchDocumentHit{
			Id:                 d.Id,
			DocumentId:         d.DocumentId,
			DocType:            d.DocType,
			VerificationStatus: d.VerificationStatus,
		}
		if d.Customer != nil {
			hit.CustomerName = d.Customer.LegalName
			hit.CustomerCid = d.Customer.CustomerId
		}
		response.Documents = append(response.Documents, hit)
	}

	return response, nil
}
