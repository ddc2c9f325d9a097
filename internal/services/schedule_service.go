package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/imok-app/imok/internal/models"
)

var (
	ErrCheckInTimeNotFound     = errors.New("check-in time not found")
	ErrLastCheckInTime         = errors.New("at least one check-in time must remain")
	ErrCheckInHourOutOfRange   = errors.New("check-in hour must be between 0 and 23")
	ErrCheckInMinuteOutOfRange = errors.New("check-in minute must be between 0 and 59")
	ErrNegativeOffsetMinutes   = errors.New("offset minutes must not be negative")
)

type TimeInput struct {
	Hour    int
	Minute  int
	Enabled bool
	Label   string
}

type TimeUpdate struct {
	Hour    *int
	Minute  *int
	Enabled *bool
	Label   *string
}

// ScheduleService edits the daily check-in schedule.
type ScheduleService struct {
	store *StateStore
}

func NewScheduleService(store *StateStore) *ScheduleService {
	return &ScheduleService{store: store}
}

// ValidateSlotTime checks hour/minute bounds for a clock time.
func ValidateSlotTime(hour, minute int) error {
	if hour < 0 || hour > 23 {
		return ErrCheckInHourOutOfRange
	}
	if minute < 0 || minute > 59 {
		return ErrCheckInMinuteOutOfRange
	}
	return nil
}

// UpdateOffsets stores the reminder/alert lead minutes. These are displayed
// configuration only; no scheduler consumes them yet.
func (service *ScheduleService) UpdateOffsets(reminderMinutes, alertMinutes int) (models.CheckInSchedule, error) {
	if reminderMinutes < 0 || alertMinutes < 0 {
		return models.CheckInSchedule{}, ErrNegativeOffsetMinutes
	}

	var updated models.CheckInSchedule
	_, err := service.store.Apply(func(state models.AppState) (models.AppState, error) {
		state.Schedule.ReminderMinutes = reminderMinutes
		state.Schedule.AlertMinutes = alertMinutes
		updated = state.Schedule
		return state, nil
	})
	if err != nil {
		return models.CheckInSchedule{}, err
	}
	return updated, nil
}

func (service *ScheduleService) AddTime(input TimeInput) (models.CheckInTime, error) {
	if err := ValidateSlotTime(input.Hour, input.Minute); err != nil {
		return models.CheckInTime{}, err
	}

	slot := models.CheckInTime{
		ID:      uuid.NewString(),
		Hour:    input.Hour,
		Minute:  input.Minute,
		Enabled: input.Enabled,
		Label:   strings.TrimSpace(input.Label),
	}

	_, err := service.store.Apply(func(state models.AppState) (models.AppState, error) {
		state.Schedule.Times = append(state.Schedule.Times, slot)
		return state, nil
	})
	if err != nil {
		return models.CheckInTime{}, err
	}
	return slot, nil
}

func (service *ScheduleService) UpdateTime(id string, updates TimeUpdate) (models.CheckInTime, error) {
	var updated models.CheckInTime
	_, err := service.store.Apply(func(state models.AppState) (models.AppState, error) {
		for index, slot := range state.Schedule.Times {
			if slot.ID != id {
				continue
			}

			if updates.Hour != nil {
				slot.Hour = *updates.Hour
			}
			if updates.Minute != nil {
				slot.Minute = *updates.Minute
			}
			if updates.Enabled != nil {
				slot.Enabled = *updates.Enabled
			}
			if updates.Label != nil {
				slot.Label = strings.TrimSpace(*updates.Label)
			}
			if err := ValidateSlotTime(slot.Hour, slot.Minute); err != nil {
				return state, err
			}

			state.Schedule.Times[index] = slot
			updated = slot
			return state, nil
		}
		return state, ErrCheckInTimeNotFound
	})
	if err != nil {
		return models.CheckInTime{}, err
	}
	return updated, nil
}

func (service *ScheduleService) DeleteTime(id string) error {
	_, err := service.store.Apply(func(state models.AppState) (models.AppState, error) {
		if len(state.Schedule.Times) <= 1 {
			return state, ErrLastCheckInTime
		}

		remaining := make([]models.CheckInTime, 0, len(state.Schedule.Times))
		found := false
		for _, slot := range state.Schedule.Times {
			if slot.ID == id {
				found = true
				continue
			}
			remaining = append(remaining, slot)
		}
		if !found {
			return state, ErrCheckInTimeNotFound
		}
		state.Schedule.Times = remaining
		return state, nil
	})
	return err
}
