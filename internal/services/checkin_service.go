package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/imok-app/imok/internal/models"
)

var (
	ErrNoCurrentAlert       = errors.New("no check-in slot is currently due")
	ErrAlreadyCheckedIn     = errors.New("slot is already checked in today")
	ErrCheckInNotYetActive  = errors.New("check-in slot is not active yet")
	ErrSubscriptionRequired = errors.New("an active subscription or trial is required to check in")
)

// CheckInService records completions against the resolved current alert.
// Preconditions are re-validated inside the store lock, so two rapid
// submissions cannot both observe an unchecked slot.
type CheckInService struct {
	store *StateStore
}

func NewCheckInService(store *StateStore) *CheckInService {
	return &CheckInService{store: store}
}

// CheckIn validates that slotID is the current alert, time-active, not yet
// checked in, and that the entitlement gate grants access, then appends the
// completion record and persists the state.
func (service *CheckInService) CheckIn(slotID string) (models.CheckInRecord, error) {
	now := service.store.Now()
	location := service.store.Location()

	var record models.CheckInRecord
	_, err := service.store.Apply(func(state models.AppState) (models.AppState, error) {
		nowMinutes := MinutesOfDay(now, location)

		if IsSlotCheckedIn(state.TodayCheckIns, slotID) {
			return state, ErrAlreadyCheckedIn
		}

		current := CurrentAlert(state.Schedule.Times, state.TodayCheckIns, nowMinutes)
		if current == nil || current.ID != slotID {
			return state, ErrNoCurrentAlert
		}
		if !IsSlotActive(*current, nowMinutes) {
			return state, ErrCheckInNotYetActive
		}
		if !HasActiveSubscription(state, now) {
			return state, ErrSubscriptionRequired
		}

		record = NewCheckInRecord(now, location, slotID)
		return AppendCheckIn(state, record), nil
	})
	if err != nil {
		return models.CheckInRecord{}, err
	}
	return record, nil
}

// TodayStatus reports checked_in/pending for a slot, or for the day as a
// whole when slotID is empty.
func (service *CheckInService) TodayStatus(slotID string) string {
	state := service.store.Snapshot()
	return TodayStatus(state.TodayCheckIns, slotID)
}

// ResetToday clears today's completion records.
func (service *CheckInService) ResetToday() error {
	_, err := service.store.Apply(func(state models.AppState) (models.AppState, error) {
		state.TodayCheckIns = []models.CheckInRecord{}
		return state, nil
	})
	return err
}

// NewCheckInRecord builds a completion event: id is the epoch-millisecond
// timestamp as a string, date the local calendar day.
func NewCheckInRecord(now time.Time, location *time.Location, slotID string) models.CheckInRecord {
	return models.CheckInRecord{
		ID:             strconv.FormatInt(now.UnixMilli(), 10),
		Timestamp:      now,
		Status:         models.CheckInStatusCheckedIn,
		Date:           LocalDate(now, location),
		ScheduleTimeID: slotID,
	}
}

// AppendCheckIn adds a record to today's completions and prepends it to the
// history, truncating the history to its cap (newest first).
func AppendCheckIn(state models.AppState, record models.CheckInRecord) models.AppState {
	state.TodayCheckIns = append(state.TodayCheckIns, record)

	history := make([]models.CheckInRecord, 0, len(state.CheckInHistory)+1)
	history = append(history, record)
	history = append(history, state.CheckInHistory...)
	if len(history) > models.CheckInHistoryLimit {
		history = history[:models.CheckInHistoryLimit]
	}
	state.CheckInHistory = history

	return state
}

// TodayStatus resolves a slot's status from today's records. Slot lookups
// return the matching record's status; day-level lookups report checked_in
// when any record exists.
func TodayStatus(records []models.CheckInRecord, slotID string) string {
	if slotID != "" {
		for _, record := range records {
			if record.ScheduleTimeID == slotID {
				return record.Status
			}
		}
		return models.CheckInStatusPending
	}
	if len(records) > 0 {
		return models.CheckInStatusCheckedIn
	}
	return models.CheckInStatusPending
}
