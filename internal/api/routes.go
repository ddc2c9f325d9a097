package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api", handler.RequireStateLoaded)

	api.Get("/state", handler.GetState)
	api.Get("/home", handler.GetHome)

	api.Post("/onboarding/complete", handler.CompleteOnboarding)
	api.Get("/profile", handler.GetProfile)
	api.Put("/profile", handler.UpdateProfile)

	contacts := api.Group("/contacts")
	contacts.Get("", handler.ListContacts)
	contacts.Post("", handler.AddContact)
	contacts.Put("/:id", handler.UpdateContact)
	contacts.Delete("/:id", handler.DeleteContact)

	schedule := api.Group("/schedule")
	schedule.Get("", handler.GetSchedule)
	schedule.Put("/offsets", handler.UpdateScheduleOffsets)
	schedule.Post("/times", handler.AddScheduleTime)
	schedule.Put("/times/:id", handler.UpdateScheduleTime)
	schedule.Delete("/times/:id", handler.DeleteScheduleTime)

	api.Post("/checkin", handler.CheckIn)
	api.Get("/today/status", handler.TodayStatus)
	api.Post("/today/reset", handler.ResetToday)

	subscription := api.Group("/subscription")
	subscription.Get("", handler.GetSubscription)
	subscription.Post("/activate", handler.ActivateSubscription)

	invite := api.Group("/invite")
	invite.Post("/generate", handler.GenerateInvite)
	invite.Post("/validate", handler.ValidateInvite)
	invite.Post("/accept", handler.AcceptInvite)

	api.Post("/notifications/send", handler.SendNotifications)
}
