package services

import (
	"testing"
	"time"

	"github.com/crusadia/journal/internal/models"
)

// 2026-02-01 is a Sunday; offsets walk the whole week.
func weekdayInstant(offset int) time.Time {
	return time.Date(2026, 2, 1+offset, 10, 0, 0, 0, time.UTC)
}

func TestCanSubmitByWeekday(t *testing.T) {
	tests := []struct {
		kind models.SectionKind
		want [7]bool
	}{
		{kind: models.SectionDailyRent, want: [7]bool{true, true, true, true, true, true, true}},
		{kind: models.SectionWeighIn, want: [7]bool{false, false, false, false, true, true, true}},
		{kind: models.SectionReflection, want: [7]bool{true, false, false, false, false, false, true}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			for offset := 0; offset < 7; offset++ {
				now := weekdayInstant(offset)
				if got := CanSubmit(tt.kind, now); got != tt.want[offset] {
					t.Fatalf("CanSubmit(%s, %s) = %v, want %v", tt.kind, now.Weekday(), got, tt.want[offset])
				}
			}
		})
	}
}

func TestCanSubmitWeighInOpensOnThursday(t *testing.T) {
	wednesday := weekdayInstant(3)
	if CanSubmit(models.SectionWeighIn, wednesday) {
		t.Fatalf("expected weigh-in closed on %s", wednesday.Weekday())
	}
	if got := SubmitWindowReason(models.SectionWeighIn); got != "Available Thursday or later" {
		t.Fatalf("unexpected weigh-in reason %q", got)
	}

	thursday := weekdayInstant(4)
	if !WeekStart(thursday).Equal(WeekStart(wednesday)) {
		t.Fatalf("test dates must share a week")
	}
	if !CanSubmit(models.SectionWeighIn, thursday) {
		t.Fatalf("expected weigh-in open on %s", thursday.Weekday())
	}
}

func TestSubmitWindowReasons(t *testing.T) {
	if got := SubmitWindowReason(models.SectionReflection); got != "Available on weekends only" {
		t.Fatalf("unexpected reflection reason %q", got)
	}
	if got := SubmitWindowReason(models.SectionDailyRent); got != "" {
		t.Fatalf("expected empty reason for daily-rent, got %q", got)
	}
}

func TestSectionCatalog(t *testing.T) {
	sections := Sections()
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}

	dailyRent, ok := SectionByKind(models.SectionDailyRent)
	if !ok || !dailyRent.HasDays {
		t.Fatalf("expected daily-rent with day slots, got %#v", dailyRent)
	}

	weighIn, ok := SectionByKind(models.SectionWeighIn)
	if !ok || weighIn.HasDays || weighIn.Title != "Weekly Weigh-In" {
		t.Fatalf("unexpected weigh-in metadata %#v", weighIn)
	}

	reflection, ok := SectionByKind(models.SectionReflection)
	if !ok || reflection.PromptTemplate == "" {
		t.Fatalf("expected reflection prompt template, got %#v", reflection)
	}

	if _, ok := SectionByKind("daily-vent"); ok {
		t.Fatalf("expected unknown kind to miss the catalog")
	}
}
