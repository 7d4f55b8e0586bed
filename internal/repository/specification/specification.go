package specification

import "gorm.io/gorm"

// Specification narrows a GORM query. Repositories compose any number of
// them onto a base query before executing it.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
