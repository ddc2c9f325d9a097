package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/imok-app/imok/internal/services"
)

type contactInput struct {
	Name        string `json:"name"`
	Relation    string `json:"relation"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	InviteToken string `json:"inviteToken"`
}

type contactUpdateInput struct {
	Name         *string `json:"name"`
	Relation     *string `json:"relation"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	InviteStatus *string `json:"inviteStatus"`
	DeviceToken  *string `json:"deviceToken"`
	UserID       *string `json:"userId"`
}

func (handler *Handler) ListContacts(c *fiber.Ctx) error {
	state := handler.store.Snapshot()
	return c.JSON(state.Contacts)
}

func (handler *Handler) AddContact(c *fiber.Ctx) error {
	var input contactInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	contact, err := handler.contacts.AddContact(services.ContactInput{
		Name:        input.Name,
		Relation:    input.Relation,
		Phone:       input.Phone,
		Email:       input.Email,
		InviteToken: input.InviteToken,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(contact)
}

func (handler *Handler) UpdateContact(c *fiber.Ctx) error {
	var input contactUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	contact, err := handler.contacts.UpdateContact(c.Params("id"), services.ContactUpdate{
		Name:         input.Name,
		Relation:     input.Relation,
		Phone:        input.Phone,
		Email:        input.Email,
		InviteStatus: input.InviteStatus,
		DeviceToken:  input.DeviceToken,
		UserID:       input.UserID,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(contact)
}

func (handler *Handler) DeleteContact(c *fiber.Ctx) error {
	if err := handler.contacts.DeleteContact(c.Params("id")); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
