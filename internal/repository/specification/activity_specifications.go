package specification

import "gorm.io/gorm"

// ActionMentions matches activity entries whose action text mentions any of
// the given terms (customer business ID, legal name).
type ActionMentions struct {
	Terms []string
}

func (s ActionMentions) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Terms) == 0 {
		return db
	}
	query := db
	clause := ""
	args := make([]interface{}, 0, len(s.Terms))
	for i, term := range s.Terms {
		if i > 0 {
			clause += " OR "
		}
		clause += "action ILIKE ?"
		args = append(args, "%"+term+"%")
	}
	return query.Where(clause, args...)
}
