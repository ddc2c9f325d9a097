package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/imok-app/imok/internal/models"
)

var (
	ErrProfileNameRequired = errors.New("profile name is required")
	ErrProfileMissing      = errors.New("profile has not been created yet")
	ErrInvalidUserRole     = errors.New("user role must be checkin or receiver")
)

type ProfileInput struct {
	Name          string
	Photo         string
	Timezone      string
	CustomMessage string
	Role          string
}

type ProfileUpdate struct {
	Name          *string
	Photo         *string
	Timezone      *string
	CustomMessage *string
}

// ProfileService creates the profile at onboarding and applies settings edits.
type ProfileService struct {
	store *StateStore
}

func NewProfileService(store *StateStore) *ProfileService {
	return &ProfileService{store: store}
}

// CompleteOnboarding creates the user profile and marks onboarding done.
func (service *ProfileService) CompleteOnboarding(input ProfileInput) (models.UserProfile, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return models.UserProfile{}, ErrProfileNameRequired
	}

	role := input.Role
	if role == "" {
		role = models.RoleCheckIn
	}
	if role != models.RoleCheckIn && role != models.RoleReceiver {
		return models.UserProfile{}, ErrInvalidUserRole
	}

	timezone := strings.TrimSpace(input.Timezone)
	if timezone == "" {
		timezone = service.store.Location().String()
	}

	profile := models.UserProfile{
		ID:            uuid.NewString(),
		Name:          name,
		Photo:         input.Photo,
		Timezone:      timezone,
		CustomMessage: input.CustomMessage,
		CreatedAt:     service.store.Now(),
	}

	_, err := service.store.Apply(func(state models.AppState) (models.AppState, error) {
		state.Profile = &profile
		state.HasCompletedOnboarding = true
		state.UserRole = role
		return state, nil
	})
	if err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}

// UpdateProfile applies a partial edit to the existing profile.
func (service *ProfileService) UpdateProfile(updates ProfileUpdate) (models.UserProfile, error) {
	if updates.Name != nil && strings.TrimSpace(*updates.Name) == "" {
		return models.UserProfile{}, ErrProfileNameRequired
	}

	var updated models.UserProfile
	_, err := service.store.Apply(func(state models.AppState) (models.AppState, error) {
		if state.Profile == nil {
			return state, ErrProfileMissing
		}

		profile := *state.Profile
		if updates.Name != nil {
			profile.Name = strings.TrimSpace(*updates.Name)
		}
		if updates.Photo != nil {
			profile.Photo = *updates.Photo
		}
		if updates.Timezone != nil {
			profile.Timezone = *updates.Timezone
		}
		if updates.CustomMessage != nil {
			profile.CustomMessage = *updates.CustomMessage
		}

		state.Profile = &profile
		updated = profile
		return state, nil
	})
	if err != nil {
		return models.UserProfile{}, err
	}
	return updated, nil
}
