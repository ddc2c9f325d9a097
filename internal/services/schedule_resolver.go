package services

import (
	"fmt"
	"sort"

	"github.com/imok-app/imok/internal/models"
)

// SlotMinutes is a slot's time expressed as minutes since midnight.
func SlotMinutes(slot models.CheckInTime) int {
	return slot.Hour*60 + slot.Minute
}

// EnabledSlotsInTimeOrder filters to enabled slots and sorts them ascending by
// minutes since midnight. The sort is stable: slots with identical times keep
// their original order, which is the tie-break for all "next" queries.
func EnabledSlotsInTimeOrder(times []models.CheckInTime) []models.CheckInTime {
	slots := make([]models.CheckInTime, 0, len(times))
	for _, slot := range times {
		if slot.Enabled {
			slots = append(slots, slot)
		}
	}
	sort.SliceStable(slots, func(i, j int) bool {
		return SlotMinutes(slots[i]) < SlotMinutes(slots[j])
	})
	return slots
}

// IsSlotCheckedIn reports whether any today-record satisfies the slot.
func IsSlotCheckedIn(records []models.CheckInRecord, slotID string) bool {
	for _, record := range records {
		if record.ScheduleTimeID == slotID {
			return true
		}
	}
	return false
}

// CurrentAlert selects the slot the user should act on next: the earliest
// past-due unchecked slot, else the earliest future unchecked slot, else the
// earliest unchecked slot overall, else none.
func CurrentAlert(times []models.CheckInTime, records []models.CheckInRecord, nowMinutes int) *models.CheckInTime {
	slots := EnabledSlotsInTimeOrder(times)
	if len(slots) == 0 {
		return nil
	}

	for _, slot := range slots {
		if !IsSlotCheckedIn(records, slot.ID) && SlotMinutes(slot) <= nowMinutes {
			current := slot
			return &current
		}
	}

	for _, slot := range slots {
		if !IsSlotCheckedIn(records, slot.ID) && SlotMinutes(slot) > nowMinutes {
			current := slot
			return &current
		}
	}

	// Defensive fallback: earliest unchecked slot regardless of time.
	for _, slot := range slots {
		if !IsSlotCheckedIn(records, slot.ID) {
			current := slot
			return &current
		}
	}

	return nil
}

// IsSlotActive reports whether the slot may be checked in right now.
func IsSlotActive(slot models.CheckInTime, nowMinutes int) bool {
	return nowMinutes >= SlotMinutes(slot)
}

// NextAlertAfter finds the slot following the current alert: the earliest
// unchecked slot strictly later than the current one, wrapping to the earliest
// unchecked slot among the rest when none is later.
func NextAlertAfter(times []models.CheckInTime, records []models.CheckInRecord, current models.CheckInTime) *models.CheckInTime {
	remaining := make([]models.CheckInTime, 0, len(times))
	for _, slot := range times {
		if slot.ID != current.ID {
			remaining = append(remaining, slot)
		}
	}
	slots := EnabledSlotsInTimeOrder(remaining)
	currentMinutes := SlotMinutes(current)

	for _, slot := range slots {
		if !IsSlotCheckedIn(records, slot.ID) && SlotMinutes(slot) > currentMinutes {
			next := slot
			return &next
		}
	}

	for _, slot := range slots {
		if !IsSlotCheckedIn(records, slot.ID) {
			next := slot
			return &next
		}
	}

	return nil
}

// FormatSlotTime renders a slot's time as zero-padded 24-hour HH:MM.
func FormatSlotTime(slot models.CheckInTime) string {
	return fmt.Sprintf("%02d:%02d", slot.Hour, slot.Minute)
}
