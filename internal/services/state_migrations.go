package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/imok-app/imok/internal/models"
)

// DecodeStateDocument parses a persisted state document. Documents carrying
// the current schema version decode directly; anything older passes through
// the legacy shape upgrades first. Today-records from a previous calendar day
// are discarded on every load, not archived.
func DecodeStateDocument(data []byte, now time.Time, location *time.Location) (models.AppState, error) {
	var document map[string]json.RawMessage
	if err := json.Unmarshal(data, &document); err != nil {
		return models.AppState{}, fmt.Errorf("decode state document: %w", err)
	}

	if documentSchemaVersion(document) < models.SchemaVersion {
		upgradeLegacyDocument(document, now)
	}

	merged, err := json.Marshal(document)
	if err != nil {
		return models.AppState{}, fmt.Errorf("re-encode state document: %w", err)
	}

	var state models.AppState
	if err := json.Unmarshal(merged, &state); err != nil {
		return models.AppState{}, fmt.Errorf("decode app state: %w", err)
	}

	state.SchemaVersion = models.SchemaVersion
	if state.UserRole == "" {
		state.UserRole = models.RoleCheckIn
	}
	if state.Contacts == nil {
		state.Contacts = []models.Contact{}
	}
	if state.Schedule.Times == nil {
		state.Schedule = models.DefaultSchedule()
	}
	if state.CheckInHistory == nil {
		state.CheckInHistory = []models.CheckInRecord{}
	}
	state.TodayCheckIns = FilterRecordsForDate(state.TodayCheckIns, LocalDate(now, location))

	return state, nil
}

func documentSchemaVersion(document map[string]json.RawMessage) int {
	raw, ok := document["schemaVersion"]
	if !ok {
		return 0
	}
	var version int
	if err := json.Unmarshal(raw, &version); err != nil {
		return 0
	}
	return version
}

// upgradeLegacyDocument applies the pre-versioning shape fixes in order:
// default subscription, single-time schedule to a times array, singular
// todayCheckIn wrapped into todayCheckIns, missing todayCheckIns to empty.
func upgradeLegacyDocument(document map[string]json.RawMessage, now time.Time) {
	if _, ok := document["subscription"]; !ok {
		if raw, err := json.Marshal(models.DefaultSubscription(now)); err == nil {
			document["subscription"] = raw
		}
	}

	if raw, ok := document["schedule"]; ok && isLegacySingleTimeSchedule(raw) {
		if upgraded, err := json.Marshal(upgradeLegacySchedule(raw)); err == nil {
			document["schedule"] = upgraded
		}
	}

	if raw, ok := document["todayCheckIn"]; ok {
		if !isJSONNull(raw) {
			document["todayCheckIns"] = json.RawMessage("[" + string(raw) + "]")
		}
		delete(document, "todayCheckIn")
	}

	if _, ok := document["todayCheckIns"]; !ok {
		document["todayCheckIns"] = json.RawMessage("[]")
	}
}

func isLegacySingleTimeSchedule(raw json.RawMessage) bool {
	var probe struct {
		Times json.RawMessage `json:"times"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false
	}
	return len(probe.Times) == 0 || probe.Times[0] != '['
}

func upgradeLegacySchedule(raw json.RawMessage) models.CheckInSchedule {
	var legacy struct {
		Hour            *int  `json:"hour"`
		Minute          *int  `json:"minute"`
		Enabled         *bool `json:"enabled"`
		ReminderMinutes *int  `json:"reminderMinutes"`
		AlertMinutes    *int  `json:"alertMinutes"`
	}
	// A decode failure leaves every field nil, which yields the defaults.
	_ = json.Unmarshal(raw, &legacy)

	return models.CheckInSchedule{
		Times: []models.CheckInTime{
			{
				ID:      "1",
				Hour:    intOrDefault(legacy.Hour, 9),
				Minute:  intOrDefault(legacy.Minute, 0),
				Enabled: legacy.Enabled == nil || *legacy.Enabled,
				Label:   models.DefaultCheckInLabel,
			},
		},
		ReminderMinutes: intOrDefault(legacy.ReminderMinutes, models.DefaultReminderMinutes),
		AlertMinutes:    intOrDefault(legacy.AlertMinutes, models.DefaultAlertMinutes),
	}
}

func intOrDefault(value *int, fallback int) int {
	if value == nil {
		return fallback
	}
	return *value
}

func isJSONNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
