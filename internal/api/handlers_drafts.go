package api

import (
	"errors"

	"github.com/crusadia/journal/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetDrafts(c *fiber.Ctx) error {
	week, ok := parseWeekParam(c.Query("week"))
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "week is required")
	}
	section, ok := parseSectionFilter(c.Query("section"))
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "unknown section")
	}
	day, ok := parseDayFilter(c.Query("day"))
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid day index")
	}

	drafts, err := handler.journal.ListDrafts(currentUserID(c), week, section, day)
	if err != nil {
		return apiError(c, fiber.StatusServiceUnavailable, "failed to fetch drafts")
	}
	return c.JSON(newDraftViews(drafts))
}

func (handler *Handler) SaveDraft(c *fiber.Ctx) error {
	payload := entryPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	week, ok := parseWeekParam(payload.WeekStart)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "week_start and section are required")
	}
	kind, ok := parseSectionParam(payload.Section)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "week_start and section are required")
	}

	draft, err := handler.journal.SaveDraft(currentUserID(c), week, kind, services.SlotFromDayIndex(payload.DayIndex), payload.input())
	switch {
	case err == nil:
		return c.JSON(newDraftView(draft))
	case errors.Is(err, services.ErrUnknownSection), errors.Is(err, services.ErrInvalidDaySlot):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		return apiError(c, fiber.StatusServiceUnavailable, "failed to save draft")
	}
}

func (handler *Handler) ClearDraft(c *fiber.Ctx) error {
	week, ok := parseWeekParam(c.Query("week"))
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "week and section are required")
	}
	kind, ok := parseSectionParam(c.Query("section"))
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "week and section are required")
	}
	day, ok := parseDayFilter(c.Query("day"))
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid day index")
	}

	err := handler.journal.ClearDraft(currentUserID(c), week, kind, services.SlotFromDayIndex(day))
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"success": true})
	case errors.Is(err, services.ErrUnknownSection), errors.Is(err, services.ErrInvalidDaySlot):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		return apiError(c, fiber.StatusServiceUnavailable, "failed to clear draft")
	}
}
