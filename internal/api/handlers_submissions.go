package api

import (
	"errors"

	"github.com/crusadia/journal/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Submit(c *fiber.Ctx) error {
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

	submission, err := handler.journal.Submit(c.UserContext(), currentUserID(c), week, kind, services.SlotFromDayIndex(payload.DayIndex), payload.input())
	if err == nil {
		return c.JSON(fiber.Map{"success": true, "submission": newSubmissionView(submission)})
	}

	windowErr := &services.WindowClosedError{}
	switch {
	case errors.As(err, &windowErr):
		return apiError(c, fiber.StatusUnprocessableEntity, windowErr.Reason)
	case errors.Is(err, services.ErrUnknownSection), errors.Is(err, services.ErrInvalidDaySlot):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrMissingChannel):
		return apiError(c, fiber.StatusBadRequest, "channel selection is required")
	case errors.Is(err, services.ErrPostingFailed):
		return apiError(c, fiber.StatusBadGateway, "failed to post to channel")
	default:
		return apiError(c, fiber.StatusServiceUnavailable, "failed to record submission")
	}
}

func (handler *Handler) GetSubmissions(c *fiber.Ctx) error {
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

	submissions, err := handler.journal.ListSubmissions(currentUserID(c), week, section, day)
	if err != nil {
		return apiError(c, fiber.StatusServiceUnavailable, "failed to fetch submissions")
	}
	return c.JSON(newSubmissionViews(submissions))
}
