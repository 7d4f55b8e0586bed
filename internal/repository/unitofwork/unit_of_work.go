package unitofwork

import (
	"context"

	"sentinel-kyc-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	CustomerRepository() contract.CustomerRepository
	AlertRepository() contract.AlertRepository
	DocumentRepository() contract.DocumentRepository
	CaseRepository() contract.CaseRepository
	CaseNoteRepository() contract.CaseNoteRepository
	ActivityLogRepository() contract.ActivityLogRepository
	AnalystRepository() contract.AnalystRepository
}
