package specification

import "gorm.io/gorm"

// ByPendingOrder sorts tasks the way a daily review wants them: highest
// priority first, earliest due date next. Nulls sort last on Postgres ASC.
type ByPendingOrder struct{}

func (s ByPendingOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("CASE priority WHEN 'high' THEN 1 WHEN 'medium' THEN 2 WHEN 'low' THEN 3 ELSE 4 END").
		Order("due_date ASC")
}

// ByStatus filters tasks by lifecycle status
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}
