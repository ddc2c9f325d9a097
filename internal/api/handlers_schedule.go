package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/imok-app/imok/internal/services"
)

type offsetsInput struct {
	ReminderMinutes int `json:"reminderMinutes"`
	AlertMinutes    int `json:"alertMinutes"`
}

type timeInput struct {
	Hour    int    `json:"hour"`
	Minute  int    `json:"minute"`
	Enabled bool   `json:"enabled"`
	Label   string `json:"label"`
}

type timeUpdateInput struct {
	Hour    *int    `json:"hour"`
	Minute  *int    `json:"minute"`
	Enabled *bool   `json:"enabled"`
	Label   *string `json:"label"`
}

func (handler *Handler) GetSchedule(c *fiber.Ctx) error {
	state := handler.store.Snapshot()
	return c.JSON(state.Schedule)
}

func (handler *Handler) UpdateScheduleOffsets(c *fiber.Ctx) error {
	var input offsetsInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	schedule, err := handler.schedule.UpdateOffsets(input.ReminderMinutes, input.AlertMinutes)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(schedule)
}

func (handler *Handler) AddScheduleTime(c *fiber.Ctx) error {
	var input timeInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	slot, err := handler.schedule.AddTime(services.TimeInput{
		Hour:    input.Hour,
		Minute:  input.Minute,
		Enabled: input.Enabled,
		Label:   input.Label,
	})
	if err != nil {
		return serviceError(c, err)
	}

	handler.notifier.Resync(handler.store.Snapshot())
	return c.Status(fiber.StatusCreated).JSON(slot)
}

func (handler *Handler) UpdateScheduleTime(c *fiber.Ctx) error {
	var input timeUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	slot, err := handler.schedule.UpdateTime(c.Params("id"), services.TimeUpdate{
		Hour:    input.Hour,
		Minute:  input.Minute,
		Enabled: input.Enabled,
		Label:   input.Label,
	})
	if err != nil {
		return serviceError(c, err)
	}

	handler.notifier.Resync(handler.store.Snapshot())
	return c.JSON(slot)
}

func (handler *Handler) DeleteScheduleTime(c *fiber.Ctx) error {
	if err := handler.schedule.DeleteTime(c.Params("id")); err != nil {
		return serviceError(c, err)
	}

	handler.notifier.Resync(handler.store.Snapshot())
	return c.JSON(fiber.Map{"success": true})
}
