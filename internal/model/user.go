package model

import "time"

// User represents a registered account able to open sessions.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"size:255;not null;uniqueIndex:users_username_unique"`
	Email     string    `json:"email" gorm:"size:255;not null;uniqueIndex:users_email_unique"`
	Password  string    `json:"-" gorm:"size:255;not null"` // hex scrypt digest, never exposed
	Salt      string    `json:"-" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_date"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_date"`
}
