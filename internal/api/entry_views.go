package api

import (
	"time"

	"github.com/crusadia/journal/internal/models"
	"github.com/crusadia/journal/internal/services"
)

type draftView struct {
	WeekStart string             `json:"week_start"`
	Section   models.SectionKind `json:"section"`
	DayIndex  *int               `json:"day_index"`
	Text      string             `json:"text"`
	MediaIDs  []string           `json:"media_ids"`
	ChannelID string             `json:"channel_id"`
	UpdatedAt time.Time          `json:"updated_at"`
}

type submissionView struct {
	ID          string             `json:"id"`
	WeekStart   string             `json:"week_start"`
	Section     models.SectionKind `json:"section"`
	DayIndex    *int               `json:"day_index"`
	Text        string             `json:"text"`
	MediaIDs    []string           `json:"media_ids"`
	ChannelID   string             `json:"channel_id"`
	SubmittedAt time.Time          `json:"submitted_at"`
}

func newDraftView(draft models.Draft) draftView {
	return draftView{
		WeekStart: services.FormatWeekStart(draft.WeekStart),
		Section:   draft.Section,
		DayIndex:  dayIndexView(draft.DaySlot),
		Text:      draft.Body,
		MediaIDs:  mediaIDsView(draft.MediaIDs),
		ChannelID: draft.ChannelID,
		UpdatedAt: draft.UpdatedAt,
	}
}

func newDraftViews(drafts []models.Draft) []draftView {
	views := make([]draftView, 0, len(drafts))
	for _, draft := range drafts {
		views = append(views, newDraftView(draft))
	}
	return views
}

func newSubmissionView(submission models.Submission) submissionView {
	return submissionView{
		ID:          submission.ID,
		WeekStart:   services.FormatWeekStart(submission.WeekStart),
		Section:     submission.Section,
		DayIndex:    dayIndexView(submission.DaySlot),
		Text:        submission.Body,
		MediaIDs:    mediaIDsView(submission.MediaIDs),
		ChannelID:   submission.ChannelID,
		SubmittedAt: submission.SubmittedAt,
	}
}

func newSubmissionViews(submissions []models.Submission) []submissionView {
	views := make([]submissionView, 0, len(submissions))
	for _, submission := range submissions {
		views = append(views, newSubmissionView(submission))
	}
	return views
}

func dayIndexView(daySlot int) *int {
	if daySlot == models.WholeWeekSlot {
		return nil
	}
	return &daySlot
}

func mediaIDsView(mediaIDs []string) []string {
	if mediaIDs == nil {
		return []string{}
	}
	return mediaIDs
}
