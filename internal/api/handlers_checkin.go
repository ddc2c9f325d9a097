package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type checkInInput struct {
	ScheduleTimeID string `json:"scheduleTimeId"`
}

// CheckIn records a completion for the currently due slot.
func (handler *Handler) CheckIn(c *fiber.Ctx) error {
	var input checkInInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.ScheduleTimeID == "" {
		return apiError(c, fiber.StatusBadRequest, "scheduleTimeId is required")
	}

	record, err := handler.checkIns.CheckIn(input.ScheduleTimeID)
	if err != nil {
		return serviceError(c, err)
	}

	handler.log.Info("check-in recorded",
		zap.String("record_id", record.ID),
		zap.String("schedule_time_id", record.ScheduleTimeID),
	)
	return c.JSON(record)
}

// TodayStatus reports the check-in status for a slot, or for the whole day
// when no scheduleTimeId query parameter is given.
func (handler *Handler) TodayStatus(c *fiber.Ctx) error {
	status := handler.checkIns.TodayStatus(c.Query("scheduleTimeId"))
	return c.JSON(fiber.Map{"status": status})
}

// ResetToday clears today's completion records.
func (handler *Handler) ResetToday(c *fiber.Ctx) error {
	if err := handler.checkIns.ResetToday(); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
