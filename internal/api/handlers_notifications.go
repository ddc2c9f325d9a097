package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type sendNotificationsInput struct {
	DeviceTokens []string `json:"deviceTokens"`
	Title        string   `json:"title"`
	Body         string   `json:"body"`
}

// SendNotifications is a push-delivery mock: it logs the request and reports
// every token as sent.
func (handler *Handler) SendNotifications(c *fiber.Ctx) error {
	var input sendNotificationsInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	handler.log.Info("mock push notification send",
		zap.Int("device_tokens", len(input.DeviceTokens)),
		zap.String("title", input.Title),
	)
	return c.JSON(fiber.Map{
		"success":   true,
		"sentCount": len(input.DeviceTokens),
	})
}
