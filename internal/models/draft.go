package models

import "time"

// Draft is the single mutable entry per (user, week, section, day slot) key.
// Saving replaces it wholesale; submitting never removes it.
type Draft struct {
	ID        uint        `gorm:"primaryKey"`
	UserID    string      `gorm:"not null;uniqueIndex:uidx_draft_key"`
	WeekStart time.Time   `gorm:"type:date;not null;uniqueIndex:uidx_draft_key"`
	Section   SectionKind `gorm:"not null;uniqueIndex:uidx_draft_key"`
	DaySlot   int         `gorm:"not null;default:-1;uniqueIndex:uidx_draft_key"`
	Body      string
	MediaIDs  []string `gorm:"serializer:json"`
	ChannelID string
	CreatedAt time.Time
	UpdatedAt time.Time
}
