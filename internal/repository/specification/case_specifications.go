package specification

import "gorm.io/gorm"

type ByCaseCode struct {
	Code string
}

func (s ByCaseCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("case_id = ?", s.Code)
}

type CaseSearch struct {
	Query string
}

func (s CaseSearch) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Joins("JOIN customers ON customers.id = cases.customer_id").
		Where("cases.case_id ILIKE ? OR customers.legal_name ILIKE ?", pattern, pattern)
}

type CaseGlobalSearch struct {
	Query string
}

func (s CaseGlobalSearch) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Joins("JOIN customers ON customers.id = cases.customer_id").
		Where("cases.case_id ILIKE ? OR cases.assigned_analyst ILIKE ? OR customers.legal_name ILIKE ?",
			pattern, pattern, pattern)
}
