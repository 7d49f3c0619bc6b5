package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetUser(c *fiber.Ctx) error {
	user, err := handler.users.GetUser(c.UserContext(), currentUserID(c))
	if err != nil {
		return apiError(c, fiber.StatusBadGateway, "failed to fetch user information")
	}
	return c.JSON(user)
}

func (handler *Handler) GetChannels(c *fiber.Ctx) error {
	channels, err := handler.directory.ListChannels(c.UserContext())
	if err != nil {
		return apiError(c, fiber.StatusBadGateway, "failed to fetch channels")
	}
	return c.JSON(channels)
}

// UploadMedia stores the file with the platform before any draft or
// submission references it; a failed upload leaves journal state untouched.
func (handler *Handler) UploadMedia(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "failed to read file")
	}
	defer file.Close()

	mediaID, err := handler.media.UploadMedia(c.UserContext(), fileHeader.Filename, file)
	if err != nil {
		return apiError(c, fiber.StatusBadGateway, "failed to upload media")
	}
	return c.JSON(fiber.Map{"media_id": mediaID})
}
