package specification

import "gorm.io/gorm"

// ByCustomerCode matches the public business identifier (e.g. CUS-10001)
type ByCustomerCode struct {
	Code string
}

func (s ByCustomerCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("customer_id = ?", s.Code)
}

// CustomerSearch matches the registry search box: legal name or business ID,
// case-insensitive.
type CustomerSearch struct {
	Query string
}

func (s CustomerSearch) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("legal_name ILIKE ? OR customer_id ILIKE ?", pattern, pattern)
}

// CustomerGlobalSearch is the wider match used by the command palette:
// business ID, legal name, or assigned analyst.
type CustomerGlobalSearch struct {
	Query string
}

func (s CustomerGlobalSearch) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("customer_id ILIKE ? OR legal_name ILIKE ? OR assigned_analyst ILIKE ?",
		pattern, pattern, pattern)
}

// ReviewDueInMonth filters customers whose next review falls inside the given
// calendar month.
type ReviewDueInMonth struct {
	Year  int
	Month int
}

func (s ReviewDueInMonth) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(
		"EXTRACT(YEAR FROM next_review_due) = ? AND EXTRACT(MONTH FROM next_review_due) = ?",
		s.Year, s.Month,
	)
}
