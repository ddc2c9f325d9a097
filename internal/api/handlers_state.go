package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/imok-app/imok/internal/services"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// GetState returns the full application state document.
func (handler *Handler) GetState(c *fiber.Ctx) error {
	return c.JSON(handler.store.Snapshot())
}

// GetHome resolves the home-screen view: the current alert, whether it is
// actionable yet, and what comes after it.
func (handler *Handler) GetHome(c *fiber.Ctx) error {
	state := handler.store.Snapshot()
	now := handler.store.Now()
	nowMinutes := services.MinutesOfDay(now, handler.store.Location())

	response := fiber.Map{
		"todayStatus":           services.TodayStatus(state.TodayCheckIns, ""),
		"contactCount":          len(state.Contacts),
		"hasActiveSubscription": services.HasActiveSubscription(state, now),
		"trialDaysLeft":         services.TrialDaysLeft(state.Subscription, now),
	}

	current := services.CurrentAlert(state.Schedule.Times, state.TodayCheckIns, nowMinutes)
	if current == nil {
		response["currentAlert"] = nil
		response["active"] = false
		return c.JSON(response)
	}

	active := services.IsSlotActive(*current, nowMinutes)
	response["currentAlert"] = current
	response["active"] = active
	if !active {
		response["message"] = "available at " + services.FormatSlotTime(*current)
	}
	if next := services.NextAlertAfter(state.Schedule.Times, state.TodayCheckIns, *current); next != nil {
		response["nextAlert"] = next
	}
	return c.JSON(response)
}
