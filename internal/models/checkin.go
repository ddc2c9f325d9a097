package models

import "time"

const (
	CheckInStatusCheckedIn = "checked_in"
	CheckInStatusMissed    = "missed"
	CheckInStatusReminded  = "reminded"
	CheckInStatusPending   = "pending"
)

const (
	DefaultCheckInLabel    = "Morning check-in"
	DefaultReminderMinutes = 15
	DefaultAlertMinutes    = 30

	// CheckInHistoryLimit caps checkInHistory, newest first.
	CheckInHistoryLimit = 30
)

// CheckInTime is one named recurring daily slot. The collection carries no
// uniqueness constraint on hour/minute; colliding slots are allowed.
type CheckInTime struct {
	ID      string `json:"id"`
	Hour    int    `json:"hour"`
	Minute  int    `json:"minute"`
	Enabled bool   `json:"enabled"`
	Label   string `json:"label,omitempty"`
}

// CheckInSchedule holds the slot set plus the reminder/alert offsets.
// The two minute fields are configuration only; no scheduler consumes them yet.
type CheckInSchedule struct {
	Times           []CheckInTime `json:"times"`
	ReminderMinutes int           `json:"reminderMinutes"`
	AlertMinutes    int           `json:"alertMinutes"`
}

// CheckInRecord is an immutable completion event. Date is the local calendar
// day (YYYY-MM-DD) the record belongs to.
type CheckInRecord struct {
	ID             string    `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	Status         string    `json:"status"`
	Date           string    `json:"date"`
	ScheduleTimeID string    `json:"scheduleTimeId,omitempty"`
}
