package api

import "github.com/gofiber/fiber/v2"

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func currentUserID(c *fiber.Ctx) string {
	userID, _ := c.Locals(contextUserKey).(string)
	return userID
}
