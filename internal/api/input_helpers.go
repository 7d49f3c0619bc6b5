package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/crusadia/journal/internal/models"
	"github.com/crusadia/journal/internal/services"
)

type entryPayload struct {
	WeekStart string   `json:"week_start"`
	Section   string   `json:"section"`
	DayIndex  *int     `json:"day_index"`
	Text      string   `json:"text"`
	MediaIDs  []string `json:"media_ids"`
	ChannelID string   `json:"channel_id"`
}

func (payload entryPayload) input() services.DraftInput {
	return services.DraftInput{
		Body:      payload.Text,
		MediaIDs:  payload.MediaIDs,
		ChannelID: payload.ChannelID,
	}
}

func parseWeekParam(raw string) (time.Time, bool) {
	week, err := services.ParseWeekStart(strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, false
	}
	return week, true
}

func parseSectionParam(raw string) (models.SectionKind, bool) {
	kind := models.SectionKind(strings.TrimSpace(raw))
	if _, known := services.SectionByKind(kind); !known {
		return "", false
	}
	return kind, true
}

// parseSectionFilter treats an absent value as "match all sections".
func parseSectionFilter(raw string) (*models.SectionKind, bool) {
	if strings.TrimSpace(raw) == "" {
		return nil, true
	}
	kind, ok := parseSectionParam(raw)
	if !ok {
		return nil, false
	}
	return &kind, true
}

// parseDayFilter treats an absent value as "match all day slots".
func parseDayFilter(raw string) (*int, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, true
	}
	day, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, false
	}
	return &day, true
}
