package services

import (
	"time"

	"github.com/crusadia/journal/internal/models"
)

// Section carries the display metadata of a journal section kind.
type Section struct {
	Kind           models.SectionKind
	Title          string
	HasDays        bool
	PromptTemplate string
}

const reflectionPromptTemplate = `What did I improve this week?
Where did I fail to meet the standard? Where did I fall short?
What's my strategic correction moving forward?
How did I help the people inside Crusadia?`

const (
	weighInClosedReason    = "Available Thursday or later"
	reflectionClosedReason = "Available on weekends only"
)

// Sections returns the journal catalog in page order.
func Sections() []Section {
	return []Section{
		{Kind: models.SectionDailyRent, Title: "Daily Rent", HasDays: true},
		{Kind: models.SectionWeighIn, Title: "Weekly Weigh-In"},
		{Kind: models.SectionReflection, Title: "Weekly Reflection", PromptTemplate: reflectionPromptTemplate},
	}
}

func SectionByKind(kind models.SectionKind) (Section, bool) {
	for _, section := range Sections() {
		if section.Kind == kind {
			return section, true
		}
	}
	return Section{}, false
}

// CanSubmit reports whether the section kind is inside its submission window
// at the given instant. The weekday is taken from the instant itself, not
// from the week being submitted: a stale week's reflection is submittable on
// any weekend.
func CanSubmit(kind models.SectionKind, now time.Time) bool {
	switch kind {
	case models.SectionWeighIn:
		// Thursday or after; the week ends on Saturday.
		return now.Weekday() >= time.Thursday
	case models.SectionReflection:
		weekday := now.Weekday()
		return weekday == time.Saturday || weekday == time.Sunday
	default:
		return true
	}
}

// SubmitWindowReason returns the static user-facing explanation shown while a
// section's submission window is closed. Empty for unrestricted sections.
func SubmitWindowReason(kind models.SectionKind) string {
	switch kind {
	case models.SectionWeighIn:
		return weighInClosedReason
	case models.SectionReflection:
		return reflectionClosedReason
	default:
		return ""
	}
}
