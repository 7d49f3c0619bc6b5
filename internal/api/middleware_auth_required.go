package api

import (
	"github.com/crusadia/journal/internal/platform"
	"github.com/gofiber/fiber/v2"
)

// AuthRequired resolves the platform user token and stores the member id for
// downstream handlers. No journal state is touched on failure.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	userID, err := handler.verifier.VerifyUserToken(c.Get(platform.UserTokenHeader))
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextUserKey, userID)
	return c.Next()
}
