package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/imok-app/imok/internal/models"
)

var (
	ErrContactNameRequired = errors.New("contact name is required")
	ErrContactNotFound     = errors.New("contact not found")
	ErrInvalidInviteStatus = errors.New("invite status must be pending, accepted or expired")
)

type ContactInput struct {
	Name        string
	Relation    string
	Phone       string
	Email       string
	InviteToken string
}

type ContactUpdate struct {
	Name         *string
	Relation     *string
	Phone        *string
	Email        *string
	InviteStatus *string
	DeviceToken  *string
	UserID       *string
}

// ContactService manages the notified-contacts list and invite transitions.
type ContactService struct {
	store *StateStore
}

func NewContactService(store *StateStore) *ContactService {
	return &ContactService{store: store}
}

func (service *ContactService) AddContact(input ContactInput) (models.Contact, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return models.Contact{}, ErrContactNameRequired
	}

	now := service.store.Now()
	contact := models.Contact{
		ID:        uuid.NewString(),
		Name:      name,
		Relation:  strings.TrimSpace(input.Relation),
		Phone:     input.Phone,
		Email:     input.Email,
		CreatedAt: now,
	}
	if input.InviteToken != "" {
		sentAt := now
		contact.InviteToken = input.InviteToken
		contact.InviteStatus = models.InviteStatusPending
		contact.InviteSentAt = &sentAt
	}

	_, err := service.store.Apply(func(state models.AppState) (models.AppState, error) {
		state.Contacts = append(state.Contacts, contact)
		return state, nil
	})
	if err != nil {
		return models.Contact{}, err
	}
	return contact, nil
}

func (service *ContactService) UpdateContact(id string, updates ContactUpdate) (models.Contact, error) {
	if updates.Name != nil && strings.TrimSpace(*updates.Name) == "" {
		return models.Contact{}, ErrContactNameRequired
	}
	if updates.InviteStatus != nil && !isValidInviteStatus(*updates.InviteStatus) {
		return models.Contact{}, ErrInvalidInviteStatus
	}

	var updated models.Contact
	_, err := service.store.Apply(func(state models.AppState) (models.AppState, error) {
		for index, contact := range state.Contacts {
			if contact.ID != id {
				continue
			}

			if updates.Name != nil {
				contact.Name = strings.TrimSpace(*updates.Name)
			}
			if updates.Relation != nil {
				contact.Relation = strings.TrimSpace(*updates.Relation)
			}
			if updates.Phone != nil {
				contact.Phone = *updates.Phone
			}
			if updates.Email != nil {
				contact.Email = *updates.Email
			}
			if updates.InviteStatus != nil {
				contact.InviteStatus = *updates.InviteStatus
			}
			if updates.DeviceToken != nil {
				contact.DeviceToken = *updates.DeviceToken
			}
			if updates.UserID != nil {
				contact.UserID = *updates.UserID
			}

			state.Contacts[index] = contact
			updated = contact
			return state, nil
		}
		return state, ErrContactNotFound
	})
	if err != nil {
		return models.Contact{}, err
	}
	return updated, nil
}

func (service *ContactService) DeleteContact(id string) error {
	_, err := service.store.Apply(func(state models.AppState) (models.AppState, error) {
		remaining := make([]models.Contact, 0, len(state.Contacts))
		found := false
		for _, contact := range state.Contacts {
			if contact.ID == id {
				found = true
				continue
			}
			remaining = append(remaining, contact)
		}
		if !found {
			return state, ErrContactNotFound
		}
		state.Contacts = remaining
		return state, nil
	})
	return err
}

func isValidInviteStatus(status string) bool {
	switch status {
	case models.InviteStatusPending, models.InviteStatusAccepted, models.InviteStatusExpired:
		return true
	default:
		return false
	}
}
