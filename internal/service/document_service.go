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

var documentSortColumns = map[string]string{
	"document_id":         "document_id",
	"doc_type":            "doc_type",
	"verification_status": "verification_status",
	"issue_date":          "issue_date",
	"expiry_date":         "expiry_date",
}

type IDocumentService interface {
	List(ctx context.Context, query *dto.DocumentListQuery) ([]*dto.DocumentResponse, error)
	Types(ctx context.Context) ([]string, error)
	Show(ctx context.Context, documentId string) (*dto.DocumentResponse, error)
	UpdateStatus(ctx context.Context, documentId string, newStatus string) (*dto.DocumentResponse, error)
}

type documentService struct {
	uowFactory       unitofwork.RepositoryFactory
	lookups          *memory.LookupRepository
	publisherService IPublisherService
}

func NewDocumentService(
	uowFactory unitofwork.RepositoryFactory,
	lookups *memory.LookupRepository,
	publisherService IPublisherService,
) IDocumentService {
	return &documentService{
		uowFactory:       uowFactory,
		lookups:          lookups,
		publisherService: publisherService,
	}
}

func (s *documentService) List(ctx context.Context, query *dto.DocumentListQuery) ([]*dto.DocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := make([]specification.Specification, 0)
	if query.Search != "" {
		specs = append(specs, specification.DocumentSearch{Query: query.Search})
	}
	specs = append(specs,
		specification.InValues{Field: "documents.verification_status", Values: splitCSV(query.Status)},
		specification.InValues{Field: "documents.doc_type", Values: splitCSV(query.DocType)},
	)

	// Expiry is the default sort and needs NULL handling, every other
	// column sorts plainly.
	desc := strings.EqualFold(query.SortOrder, "desc")
	sortColumn, ok := documentSortColumns[query.SortBy]
	if !ok || sortColumn == "expiry_date" {
		specs = append(specs, specification.ExpiryOrder{Desc: desc})
	} else {
		specs = append(specs, specification.OrderBy{Field: "documents." + sortColumn, Desc: desc})
	}

	documents, err := uow.DocumentRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.DocumentResponse, 0, len(documents))
	for _, document := range documents {
		result = append(result, toDocumentResponse(document))
	}
	return result, nil
}

func (s *documentService) Types(ctx context.Context) ([]string, error) {
	if cached, found := s.lookups.Get("document_types"); found {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	types, err := uow.DocumentRepository().DistinctTypes(ctx)
	if err != nil {
		return nil, err
	}

	s.lookups.Save("document_types", types)
	return types, nil
}

func (s *documentService) Show(ctx context.Context, documentId string) (*dto.DocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	document, err := uow.DocumentRepository().FindOne(ctx, specification.ByDocumentCode{Code: documentId})
	if err != nil {
		return nil, err
	}
	if document == nil {
		return nil, serverutils.NotFound("Document not found")
	}
	return toDocumentResponse(document), nil
}

func (s *documentService) UpdateStatus(ctx context.Context, documentId string, newStatus string) (*dto.DocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	document, err := uow.DocumentRepository().FindOne(ctx, specification.ByDocumentCode{Code: documentId})
	if err != nil {
		return nil, err
	}
	if document == nil {
		return nil, serverutils.NotFound("Document not found")
	}

	if !constant.CanTransition(constant.DocumentTransitions, document.VerificationStatus, newStatus) {
		return nil, serverutils.BadRequest(
			fmt.Sprintf("Invalid transition from '%s' to '%s'", document.VerificationStatus, newStatus))
	}

	previous := document.VerificationStatus
	document.VerificationStatus = newStatus
	if err := uow.DocumentRepository().Update(ctx, document); err != nil {
		return nil, err
	}

	document, err = uow.DocumentRepository().FindOne(ctx, specification.ByDocumentCode{Code: documentId})
	if err != nil {
		return nil, err
	}

	analyst := constant.DefaultAnalyst
	if document.Customer != nil && document.Customer.AssignedAnalyst != "" {
		analyst = document.Customer.AssignedAnalyst
	}
	action := fmt.Sprintf("Updated document %s status from %s to %s", documentId, previous, newStatus)
	_ = s.publisherService.PublishActivity(ctx, action, analyst)

	return toDocumentResponse(document), nil
}
