package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/imok-app/imok/internal/models"
	"github.com/imok-app/imok/internal/services"
)

func (handler *Handler) GetSubscription(c *fiber.Ctx) error {
	state := handler.store.Snapshot()
	now := handler.store.Now()
	return c.JSON(fiber.Map{
		"subscription":          state.Subscription,
		"hasActiveSubscription": services.HasActiveSubscription(state, now),
		"trialDaysLeft":         services.TrialDaysLeft(state.Subscription, now),
	})
}

// ActivateSubscription marks the entitlement as paid. There is no payment
// provider behind this; it mirrors the mocked purchase flow.
func (handler *Handler) ActivateSubscription(c *fiber.Ctx) error {
	now := handler.store.Now()
	state, err := handler.store.Apply(func(state models.AppState) (models.AppState, error) {
		return services.ActivateSubscription(state, now)
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(state.Subscription)
}
