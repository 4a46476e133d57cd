package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`

	// Pomodoro timer preferences, minutes.
	PomodoroWorkDuration       int `json:"pomodoro_work_duration" gorm:"not null;default:25"`
	PomodoroShortBreakDuration int `json:"pomodoro_short_break_duration" gorm:"not null;default:5"`
	PomodoroLongBreakDuration  int `json:"pomodoro_long_break_duration" gorm:"not null;default:15"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Notes        []Note        `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Todos        []Todo        `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	ChatMessages []ChatMessage `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
