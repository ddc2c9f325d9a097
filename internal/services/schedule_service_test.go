package services

import (
	"errors"
	"testing"

	"github.com/imok-app/imok/internal/models"
)

func newScheduleFixture(t *testing.T) (*ScheduleService, *StateStore) {
	t.Helper()
	store := newTestStore(t, newMemoryDocuments(), testNow)
	return NewScheduleService(store), store
}

func TestAddTimeValidatesBounds(t *testing.T) {
	service, store := newScheduleFixture(t)

	if _, err := service.AddTime(TimeInput{Hour: 24, Minute: 0}); !errors.Is(err, ErrCheckInHourOutOfRange) {
		t.Fatalf("err = %v, want ErrCheckInHourOutOfRange", err)
	}
	if _, err := service.AddTime(TimeInput{Hour: 12, Minute: 60}); !errors.Is(err, ErrCheckInMinuteOutOfRange) {
		t.Fatalf("err = %v, want ErrCheckInMinuteOutOfRange", err)
	}

	slot, err := service.AddTime(TimeInput{Hour: 20, Minute: 30, Enabled: true, Label: "Evening"})
	if err != nil {
		t.Fatalf("AddTime: %v", err)
	}
	if slot.ID == "" {
		t.Fatalf("added slot has no id")
	}
	if got := len(store.Snapshot().Schedule.Times); got != 2 {
		t.Fatalf("schedule length = %d, want 2", got)
	}
}

func TestUpdateTimeAppliesPartialFields(t *testing.T) {
	service, store := newScheduleFixture(t)

	hour := 10
	enabled := false
	slot, err := service.UpdateTime("1", TimeUpdate{Hour: &hour, Enabled: &enabled})
	if err != nil {
		t.Fatalf("UpdateTime: %v", err)
	}
	if slot.Hour != 10 || slot.Minute != 0 || slot.Enabled {
		t.Fatalf("updated slot = %+v", slot)
	}
	if got := store.Snapshot().Schedule.Times[0]; got.Hour != 10 {
		t.Fatalf("update not persisted: %+v", got)
	}

	badMinute := 75
	if _, err := service.UpdateTime("1", TimeUpdate{Minute: &badMinute}); !errors.Is(err, ErrCheckInMinuteOutOfRange) {
		t.Fatalf("err = %v, want ErrCheckInMinuteOutOfRange", err)
	}
	if _, err := service.UpdateTime("missing", TimeUpdate{Hour: &hour}); !errors.Is(err, ErrCheckInTimeNotFound) {
		t.Fatalf("err = %v, want ErrCheckInTimeNotFound", err)
	}
}

func TestDeleteTimeKeepsAtLeastOne(t *testing.T) {
	service, store := newScheduleFixture(t)

	if err := service.DeleteTime("1"); !errors.Is(err, ErrLastCheckInTime) {
		t.Fatalf("err = %v, want ErrLastCheckInTime", err)
	}

	added, err := service.AddTime(TimeInput{Hour: 20, Minute: 0, Enabled: true})
	if err != nil {
		t.Fatalf("AddTime: %v", err)
	}
	if err := service.DeleteTime(added.ID); err != nil {
		t.Fatalf("DeleteTime: %v", err)
	}
	if err := service.DeleteTime("missing"); !errors.Is(err, ErrLastCheckInTime) {
		t.Fatalf("err = %v, want ErrLastCheckInTime with a single slot left", err)
	}
	if got := len(store.Snapshot().Schedule.Times); got != 1 {
		t.Fatalf("schedule length = %d, want 1", got)
	}
}

func TestDeleteTimeUnknownID(t *testing.T) {
	service, _ := newScheduleFixture(t)
	if _, err := service.AddTime(TimeInput{Hour: 20, Minute: 0, Enabled: true}); err != nil {
		t.Fatalf("AddTime: %v", err)
	}
	if err := service.DeleteTime("missing"); !errors.Is(err, ErrCheckInTimeNotFound) {
		t.Fatalf("err = %v, want ErrCheckInTimeNotFound", err)
	}
}

func TestUpdateOffsets(t *testing.T) {
	service, store := newScheduleFixture(t)

	if _, err := service.UpdateOffsets(-1, 30); !errors.Is(err, ErrNegativeOffsetMinutes) {
		t.Fatalf("err = %v, want ErrNegativeOffsetMinutes", err)
	}

	schedule, err := service.UpdateOffsets(5, 45)
	if err != nil {
		t.Fatalf("UpdateOffsets: %v", err)
	}
	if schedule.ReminderMinutes != 5 || schedule.AlertMinutes != 45 {
		t.Fatalf("offsets = %d/%d, want 5/45", schedule.ReminderMinutes, schedule.AlertMinutes)
	}

	persisted := store.Snapshot().Schedule
	if persisted.ReminderMinutes != 5 || persisted.AlertMinutes != 45 {
		t.Fatalf("offsets not persisted: %+v", persisted)
	}
	if got := persisted.Times; len(got) != 1 || got[0] != models.DefaultSchedule().Times[0] {
		t.Fatalf("offset update must not touch the times: %+v", got)
	}
}
