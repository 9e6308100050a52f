package model

import "time"

// Transcript is a named block of text captured during a call.
type Transcript struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Content   string    `json:"content,omitempty" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_date;index"`
}

// TranscriptSummary is the listing projection without the content body.
type TranscriptSummary struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_date"`
}
