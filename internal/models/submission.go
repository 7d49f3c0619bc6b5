package models

import "time"

// Submission is an immutable record of a successful channel post. Records are
// append-only; multiple submissions may exist for the same identity key.
type Submission struct {
	ID          string      `gorm:"primaryKey"`
	UserID      string      `gorm:"not null;index:idx_submission_key"`
	WeekStart   time.Time   `gorm:"type:date;not null;index:idx_submission_key"`
	Section     SectionKind `gorm:"not null;index:idx_submission_key"`
	DaySlot     int         `gorm:"not null;default:-1;index:idx_submission_key"`
	Body        string
	MediaIDs    []string  `gorm:"serializer:json"`
	ChannelID   string    `gorm:"not null"`
	SubmittedAt time.Time `gorm:"not null"`
}
