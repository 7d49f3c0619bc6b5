package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api", handler.AuthRequired)
	api.Get("/user", handler.GetUser)
	api.Get("/channels", handler.GetChannels)
	api.Get("/week", handler.GetWeek)

	api.Get("/drafts", handler.GetDrafts)
	api.Post("/drafts", handler.SaveDraft)
	api.Delete("/drafts", handler.ClearDraft)

	api.Post("/submit", handler.Submit)
	api.Get("/submissions", handler.GetSubmissions)

	api.Post("/media", handler.UploadMedia)
}
