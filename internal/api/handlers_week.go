package api

import (
	"strings"

	"github.com/crusadia/journal/internal/models"
	"github.com/crusadia/journal/internal/services"
	"github.com/gofiber/fiber/v2"
)

type weekDayView struct {
	Index        int    `json:"index"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type weekSectionView struct {
	Kind           models.SectionKind `json:"kind"`
	Title          string             `json:"title"`
	HasDays        bool               `json:"has_days"`
	PromptTemplate string             `json:"prompt_template,omitempty"`
	CanSubmit      bool               `json:"can_submit"`
	Reason         string             `json:"reason,omitempty"`
}

type weekView struct {
	WeekStart string            `json:"week_start"`
	WeekEnd   string            `json:"week_end"`
	Label     string            `json:"label"`
	Previous  string            `json:"previous"`
	Next      string            `json:"next"`
	Days      []weekDayView     `json:"days"`
	Sections  []weekSectionView `json:"sections"`
}

// GetWeek returns everything the journal page needs to render a week header:
// boundaries, navigation targets and the current submission-window state of
// each section.
func (handler *Handler) GetWeek(c *fiber.Ctx) error {
	weekParam := strings.TrimSpace(c.Query("w"))
	if weekParam == "" {
		weekParam = services.CurrentWeekStart()
	}
	weekStart, ok := parseWeekParam(weekParam)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid week start date")
	}
	weekEnd := services.WeekEnd(weekStart)
	weekStartISO := services.FormatWeekStart(weekStart)

	days := make([]weekDayView, 0, 7)
	for index := 0; index < 7; index++ {
		days = append(days, weekDayView{
			Index:        index,
			Name:         services.DayName(index),
			Abbreviation: services.DayAbbreviation(index),
		})
	}

	now := handler.now().In(handler.location)
	sections := make([]weekSectionView, 0, 3)
	for _, section := range services.Sections() {
		view := weekSectionView{
			Kind:           section.Kind,
			Title:          section.Title,
			HasDays:        section.HasDays,
			PromptTemplate: section.PromptTemplate,
			CanSubmit:      services.CanSubmit(section.Kind, now),
		}
		if !view.CanSubmit {
			view.Reason = services.SubmitWindowReason(section.Kind)
		}
		sections = append(sections, view)
	}

	return c.JSON(weekView{
		WeekStart: weekStartISO,
		WeekEnd:   weekEnd.Format("2006-01-02"),
		Label:     services.FormatWeekRange(weekStart, weekEnd),
		Previous:  services.ShiftWeek(weekStartISO, -1),
		Next:      services.ShiftWeek(weekStartISO, 1),
		Days:      days,
		Sections:  sections,
	})
}
