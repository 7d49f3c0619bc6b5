package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/crusadia/journal/internal/models"
	"github.com/google/uuid"
)

var (
	ErrUnknownSection = errors.New("unknown section kind")
	ErrInvalidDaySlot = errors.New("invalid day slot for section")
	ErrMissingChannel = errors.New("channel selection required")
	ErrPostingFailed  = errors.New("channel post failed")

	ErrSubmissionWindowClosed = errors.New("submission window closed")

	ErrDraftLoadFailed        = errors.New("load drafts failed")
	ErrDraftSaveFailed        = errors.New("save draft failed")
	ErrDraftClearFailed       = errors.New("clear draft failed")
	ErrSubmissionListFailed   = errors.New("list submissions failed")
	ErrSubmissionRecordFailed = errors.New("record submission failed")
)

// WindowClosedError matches ErrSubmissionWindowClosed and carries the
// user-facing reason for the closed window.
type WindowClosedError struct {
	Section models.SectionKind
	Reason  string
}

func (err *WindowClosedError) Error() string {
	return "submission window closed: " + err.Reason
}

func (err *WindowClosedError) Is(target error) bool {
	return target == ErrSubmissionWindowClosed
}

// DraftInput is the full field set of a draft. Saving replaces the stored
// record wholesale; callers that want a partial update must read, merge and
// resend the complete fields. The store layer never merges.
type DraftInput struct {
	Body      string
	MediaIDs  []string
	ChannelID string
}

type DraftRepository interface {
	ListByUserWeek(userID string, weekStart time.Time, section *models.SectionKind, daySlot *int) ([]models.Draft, error)
	FindByKey(userID string, weekStart time.Time, section models.SectionKind, daySlot int) (models.Draft, bool, error)
	Create(draft *models.Draft) error
	Save(draft *models.Draft) error
	DeleteByKey(userID string, weekStart time.Time, section models.SectionKind, daySlot int) error
}

type SubmissionRepository interface {
	Append(submission *models.Submission) error
	ListByUserWeek(userID string, weekStart time.Time, section *models.SectionKind, daySlot *int) ([]models.Submission, error)
}

// ChannelPoster delivers finalized content to a platform channel.
type ChannelPoster interface {
	PostToChannel(ctx context.Context, channelID string, text string, mediaIDs []string) error
}

type JournalService struct {
	drafts      DraftRepository
	submissions SubmissionRepository
	poster      ChannelPoster
	clock       func() time.Time
}

func NewJournalService(drafts DraftRepository, submissions SubmissionRepository, poster ChannelPoster) *JournalService {
	return &JournalService{
		drafts:      drafts,
		submissions: submissions,
		poster:      poster,
		clock:       time.Now,
	}
}

// WithClock replaces the wall clock used for submission-window checks and
// timestamps.
func (service *JournalService) WithClock(clock func() time.Time) *JournalService {
	service.clock = clock
	return service
}

func (service *JournalService) ListDrafts(userID string, weekStart time.Time, section *models.SectionKind, dayIndex *int) ([]models.Draft, error) {
	drafts, err := service.drafts.ListByUserWeek(userID, WeekStart(weekStart), section, dayIndex)
	if err != nil {
		return nil, ErrDraftLoadFailed
	}
	return drafts, nil
}

// SaveDraft creates or replaces the draft at the identity key. Last write
// wins; there is no versioning.
func (service *JournalService) SaveDraft(userID string, weekStart time.Time, kind models.SectionKind, slot Slot, input DraftInput) (models.Draft, error) {
	if err := validateKey(kind, slot); err != nil {
		return models.Draft{}, err
	}

	week := WeekStart(weekStart)
	daySlot := slot.storageValue()
	draft, found, err := service.drafts.FindByKey(userID, week, kind, daySlot)
	if err != nil {
		return models.Draft{}, ErrDraftLoadFailed
	}

	if found {
		draft.Body = input.Body
		draft.MediaIDs = normalizeMediaIDs(input.MediaIDs)
		draft.ChannelID = input.ChannelID
		if err := service.drafts.Save(&draft); err != nil {
			return models.Draft{}, ErrDraftSaveFailed
		}
		return draft, nil
	}

	draft = models.Draft{
		UserID:    userID,
		WeekStart: week,
		Section:   kind,
		DaySlot:   daySlot,
		Body:      input.Body,
		MediaIDs:  normalizeMediaIDs(input.MediaIDs),
		ChannelID: input.ChannelID,
	}
	if err := service.drafts.Create(&draft); err != nil {
		return models.Draft{}, ErrDraftSaveFailed
	}
	return draft, nil
}

// ClearDraft resets an existing draft to empty fields. The identity key stays
// live so the client keeps a stable record to edit. Clearing a key that was
// never saved is a no-op and creates nothing.
func (service *JournalService) ClearDraft(userID string, weekStart time.Time, kind models.SectionKind, slot Slot) error {
	if err := validateKey(kind, slot); err != nil {
		return err
	}

	week := WeekStart(weekStart)
	draft, found, err := service.drafts.FindByKey(userID, week, kind, slot.storageValue())
	if err != nil {
		return ErrDraftLoadFailed
	}
	if !found {
		return nil
	}

	draft.Body = ""
	draft.MediaIDs = []string{}
	draft.ChannelID = ""
	if err := service.drafts.Save(&draft); err != nil {
		return ErrDraftClearFailed
	}
	return nil
}

func (service *JournalService) ListSubmissions(userID string, weekStart time.Time, section *models.SectionKind, dayIndex *int) ([]models.Submission, error) {
	submissions, err := service.submissions.ListByUserWeek(userID, WeekStart(weekStart), section, dayIndex)
	if err != nil {
		return nil, ErrSubmissionListFailed
	}
	return submissions, nil
}

// Submit posts the content to the selected channel and appends an immutable
// submission record. The window is evaluated against the clock on every call,
// never cached: time advances between draft saves and submit attempts. The
// draft at the key is left untouched so the user can still see what went out.
func (service *JournalService) Submit(ctx context.Context, userID string, weekStart time.Time, kind models.SectionKind, slot Slot, input DraftInput) (models.Submission, error) {
	if err := validateKey(kind, slot); err != nil {
		return models.Submission{}, err
	}

	now := service.clock()
	if !CanSubmit(kind, now) {
		return models.Submission{}, &WindowClosedError{Section: kind, Reason: SubmitWindowReason(kind)}
	}

	channelID := strings.TrimSpace(input.ChannelID)
	if channelID == "" {
		return models.Submission{}, ErrMissingChannel
	}

	mediaIDs := normalizeMediaIDs(input.MediaIDs)
	if err := service.poster.PostToChannel(ctx, channelID, input.Body, mediaIDs); err != nil {
		return models.Submission{}, ErrPostingFailed
	}

	submission := models.Submission{
		ID:          uuid.NewString(),
		UserID:      userID,
		WeekStart:   WeekStart(weekStart),
		Section:     kind,
		DaySlot:     slot.storageValue(),
		Body:        input.Body,
		MediaIDs:    mediaIDs,
		ChannelID:   channelID,
		SubmittedAt: now.UTC(),
	}
	if err := service.submissions.Append(&submission); err != nil {
		return models.Submission{}, ErrSubmissionRecordFailed
	}
	return submission, nil
}

func validateKey(kind models.SectionKind, slot Slot) error {
	section, known := SectionByKind(kind)
	if !known {
		return ErrUnknownSection
	}
	if !slot.valid() {
		return ErrInvalidDaySlot
	}
	if section.HasDays != !slot.IsWholeWeek() {
		return ErrInvalidDaySlot
	}
	return nil
}

func normalizeMediaIDs(mediaIDs []string) []string {
	if mediaIDs == nil {
		return []string{}
	}
	return mediaIDs
}
