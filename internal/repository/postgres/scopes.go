package postgres

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ownedBy restricts a query to rows belonging to the given account. Every
// resource repository goes through this scope so the ownership check cannot
// be forgotten on a new query.
func ownedBy(userID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
