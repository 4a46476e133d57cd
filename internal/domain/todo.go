package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Todo struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Text        string    `json:"text" gorm:"not null"`
	IsCompleted bool      `json:"is_completed" gorm:"not null;default:false"`

	// Date-only, set once at creation. Drives the 7-day visibility window
	// for completed items; never updated afterwards.
	CreatedDate datatypes.Date `json:"created_date" gorm:"type:date;not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
