package specification

import "gorm.io/gorm"

// OwnedBy restricts notebooks to a single owner. Every notebook query
// that targets a specific resource must carry this spec so ownership is
// checked inside the query, not afterwards in application code.
type OwnedBy struct {
	UserID string
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}
