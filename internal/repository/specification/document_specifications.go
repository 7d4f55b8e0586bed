package specification

import (
	"time"

	"gorm.io/gorm"
)

type ByDocumentCode struct {
	Code string
}

func (s ByDocumentCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("document_id = ?", s.Code)
}

type DocumentSearch struct {
	Query string
}

func (s DocumentSearch) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Joins("JOIN customers ON customers.id = documents.customer_id").
		Where("documents.document_id ILIKE ? OR customers.legal_name ILIKE ?", pattern, pattern)
}

type DocumentGlobalSearch struct {
	Query string
}

func (s DocumentGlobalSearch) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Joins("JOIN customers ON customers.id = documents.customer_id").
		Where("documents.document_id ILIKE ? OR customers.legal_name ILIKE ?", pattern, pattern)
}

// ExpiryOrder sorts by expiry date keeping NULL expiries out of the way:
// ascending pushes them last, descending pulls them first.
type ExpiryOrder struct {
	Desc bool
}

func (s ExpiryOrder) Apply(db *gorm.DB) *gorm.DB {
	if s.Desc {
		return db.Order("expiry_date DESC NULLS FIRST")
	}
	return db.Order("expiry_date ASC NULLS LAST")
}

// ExpiringBetween filters documents whose expiry date falls in [From, To]
type ExpiringBetween struct {
	From time.Time
	To   time.Time
}

func (s ExpiringBetween) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("expiry_date >= ? AND expiry_date <= ?", s.From, s.To)
}
