package models

import "time"

const (
	RoleCheckIn  = "checkin"
	RoleReceiver = "receiver"
)

// SchemaVersion tags every persisted state document. Documents without the
// field predate versioning and go through the legacy shape upgrades.
const SchemaVersion = 2

const TrialDuration = 7 * 24 * time.Hour

// AppState is the root aggregate and the unit of persistence: every mutation
// replaces and rewrites the whole document.
type AppState struct {
	SchemaVersion          int                `json:"schemaVersion"`
	Profile                *UserProfile       `json:"profile"`
	Contacts               []Contact          `json:"contacts"`
	Schedule               CheckInSchedule    `json:"schedule"`
	TodayCheckIns          []CheckInRecord    `json:"todayCheckIns"`
	CheckInHistory         []CheckInRecord    `json:"checkInHistory"`
	HasCompletedOnboarding bool               `json:"hasCompletedOnboarding"`
	Subscription           SubscriptionStatus `json:"subscription"`
	UserRole               string             `json:"userRole,omitempty"`
	LinkedToUser           string             `json:"linkedToUser,omitempty"`
}

func DefaultSchedule() CheckInSchedule {
	return CheckInSchedule{
		Times: []CheckInTime{
			{
				ID:      "1",
				Hour:    9,
				Minute:  0,
				Enabled: true,
				Label:   DefaultCheckInLabel,
			},
		},
		ReminderMinutes: DefaultReminderMinutes,
		AlertMinutes:    DefaultAlertMinutes,
	}
}

func DefaultSubscription(now time.Time) SubscriptionStatus {
	trialEnd := now.Add(TrialDuration)
	return SubscriptionStatus{
		IsActive:    false,
		IsTrialing:  true,
		TrialEndsAt: &trialEnd,
	}
}

func DefaultState(now time.Time) AppState {
	return AppState{
		SchemaVersion:          SchemaVersion,
		Profile:                nil,
		Contacts:               []Contact{},
		Schedule:               DefaultSchedule(),
		TodayCheckIns:          []CheckInRecord{},
		CheckInHistory:         []CheckInRecord{},
		HasCompletedOnboarding: false,
		Subscription:           DefaultSubscription(now),
		UserRole:               RoleCheckIn,
	}
}

// Clone returns a deep copy so that snapshots handed to readers never alias
// the store's authoritative copy.
func (state AppState) Clone() AppState {
	copied := state

	if state.Profile != nil {
		profile := *state.Profile
		copied.Profile = &profile
	}

	copied.Contacts = make([]Contact, len(state.Contacts))
	for index, contact := range state.Contacts {
		copied.Contacts[index] = contact.clone()
	}

	copied.Schedule.Times = append([]CheckInTime(nil), state.Schedule.Times...)
	copied.TodayCheckIns = append([]CheckInRecord(nil), state.TodayCheckIns...)
	copied.CheckInHistory = append([]CheckInRecord(nil), state.CheckInHistory...)
	copied.Subscription = state.Subscription.clone()

	return copied
}
