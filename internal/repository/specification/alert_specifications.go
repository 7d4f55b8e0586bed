package specification

import "gorm.io/gorm"

type ByAlertCode struct {
	Code string
}

func (s ByAlertCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("alert_id = ?", s.Code)
}

// AlertSearch matches alert ID or the owning customer's legal name. The join
// is added here so list and search callers don't need to know about it.
type AlertSearch struct {
	Query string
}

func (s AlertSearch) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Joins("JOIN customers ON customers.id = alerts.customer_id").
		Where("alerts.alert_id ILIKE ? OR customers.legal_name ILIKE ?", pattern, pattern)
}

// AlertGlobalSearch adds assigned analyst to the command palette match.
type AlertGlobalSearch struct {
	Query string
}

func (s AlertGlobalSearch) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Joins("JOIN customers ON customers.id = alerts.customer_id").
		Where("alerts.alert_id ILIKE ? OR alerts.assigned_analyst ILIKE ? OR customers.legal_name ILIKE ?",
			pattern, pattern, pattern)
}
