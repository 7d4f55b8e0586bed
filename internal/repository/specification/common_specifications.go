package specification

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByID filters by ID
type ByID struct {
	ID uuid.UUID
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// ByIDs filters by a list of IDs
type ByIDs struct {
	IDs []uuid.UUID
}

func (s ByIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id IN ?", s.IDs)
}

// ByCustomerID filters child records by their owning customer
type ByCustomerID struct {
	CustomerID uuid.UUID
}

func (s ByCustomerID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("customer_id = ?", s.CustomerID)
}

// OrderBy applies ordering
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}

// Pagination
type Pagination struct {
	Limit  int
	Offset int
}

func (s Pagination) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.Limit).Offset(s.Offset)
}

// Limit caps the result set without an offset
type Limit struct {
	N int
}

func (s Limit) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.N)
}

// FilterBy Generic Filter
type FilterBy struct {
	Field string
	Value interface{}
}

func (s FilterBy) Apply(db *gorm.DB) *gorm.DB {
	query := fmt.Sprintf("%s = ?", s.Field)
	return db.Where(query, s.Value)
}

func Filter(field string, value interface{}) Specification {
	return FilterBy{Field: field, Value: value}
}

// InValues matches a column against a set of values. Used for the
// comma-separated multi-select filters on list endpoints. An empty set is a
// no-op so callers can pass parsed query params straight through.
type InValues struct {
	Field  string
	Values []string
}

func (s InValues) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Values) == 0 {
		return db
	}
	query := fmt.Sprintf("%s IN ?", s.Field)
	return db.Where(query, s.Values)
}

// DateBetween filters a date column to [From, To)
type DateBetween struct {
	Field string
	From  time.Time
	To    time.Time
}

func (s DateBetween) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(fmt.Sprintf("%s >= ? AND %s < ?", s.Field, s.Field), s.From, s.To)
}
