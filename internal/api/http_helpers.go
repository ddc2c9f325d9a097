package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/imok-app/imok/internal/services"
)

const subscriptionRequiredMessage = "Je proefperiode is verlopen. Activeer Premium om door te gaan met check-ins."

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// serviceError maps domain errors onto HTTP statuses.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrStateNotLoaded):
		return apiError(c, fiber.StatusServiceUnavailable, err.Error())
	case errors.Is(err, services.ErrContactNotFound),
		errors.Is(err, services.ErrCheckInTimeNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrSubscriptionRequired):
		return apiError(c, fiber.StatusPaymentRequired, subscriptionRequiredMessage)
	case errors.Is(err, services.ErrNoCurrentAlert),
		errors.Is(err, services.ErrAlreadyCheckedIn),
		errors.Is(err, services.ErrCheckInNotYetActive),
		errors.Is(err, services.ErrLastCheckInTime):
		return apiError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrProfileNameRequired),
		errors.Is(err, services.ErrProfileMissing),
		errors.Is(err, services.ErrInvalidUserRole),
		errors.Is(err, services.ErrContactNameRequired),
		errors.Is(err, services.ErrInvalidInviteStatus),
		errors.Is(err, services.ErrCheckInHourOutOfRange),
		errors.Is(err, services.ErrCheckInMinuteOutOfRange),
		errors.Is(err, services.ErrNegativeOffsetMinutes):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}

// RequireStateLoaded rejects API calls until the persisted state is in memory.
func (handler *Handler) RequireStateLoaded(c *fiber.Ctx) error {
	if !handler.store.Loaded() {
		return apiError(c, fiber.StatusServiceUnavailable, "state not loaded")
	}
	return c.Next()
}
