package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/imok-app/imok/internal/services"
)

type onboardingInput struct {
	Name          string `json:"name"`
	Photo         string `json:"photo"`
	Timezone      string `json:"timezone"`
	CustomMessage string `json:"customMessage"`
	Role          string `json:"role"`
}

type profileUpdateInput struct {
	Name          *string `json:"name"`
	Photo         *string `json:"photo"`
	Timezone      *string `json:"timezone"`
	CustomMessage *string `json:"customMessage"`
}

// CompleteOnboarding creates the profile and marks onboarding done.
func (handler *Handler) CompleteOnboarding(c *fiber.Ctx) error {
	var input onboardingInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	profile, err := handler.profiles.CompleteOnboarding(services.ProfileInput{
		Name:          input.Name,
		Photo:         input.Photo,
		Timezone:      input.Timezone,
		CustomMessage: input.CustomMessage,
		Role:          input.Role,
	})
	if err != nil {
		return serviceError(c, err)
	}

	handler.notifier.Resync(handler.store.Snapshot())
	return c.JSON(profile)
}

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	state := handler.store.Snapshot()
	if state.Profile == nil {
		return apiError(c, fiber.StatusNotFound, "profile has not been created yet")
	}
	return c.JSON(state.Profile)
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	var input profileUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	profile, err := handler.profiles.UpdateProfile(services.ProfileUpdate{
		Name:          input.Name,
		Photo:         input.Photo,
		Timezone:      input.Timezone,
		CustomMessage: input.CustomMessage,
	})
	if err != nil {
		return serviceError(c, err)
	}

	// The notification body embeds the custom message, so keep it in sync.
	if input.CustomMessage != nil {
		handler.notifier.Resync(handler.store.Snapshot())
	}
	return c.JSON(profile)
}
