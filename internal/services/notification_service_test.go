package services

import (
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/imok-app/imok/internal/models"
)

type fakeScheduler struct {
	cancelCalls int
	scheduled   []scheduledNotification
	failAll     bool
}

type scheduledNotification struct {
	hour   int
	minute int
	title  string
	body   string
}

func (scheduler *fakeScheduler) CancelAll() error {
	scheduler.cancelCalls++
	scheduler.scheduled = nil
	return nil
}

func (scheduler *fakeScheduler) ScheduleDaily(hour, minute int, title, body string) (string, error) {
	if scheduler.failAll {
		return "", fmt.Errorf("platform unavailable")
	}
	scheduler.scheduled = append(scheduler.scheduled, scheduledNotification{hour, minute, title, body})
	return fmt.Sprintf("n-%d", len(scheduler.scheduled)), nil
}

func newNotificationFixture(t *testing.T, now time.Time) (*NotificationService, *StateStore, *fakeScheduler) {
	t.Helper()
	store := newTestStore(t, newMemoryDocuments(), now)
	scheduler := &fakeScheduler{}
	return NewNotificationService(store, scheduler, zap.NewNop()), store, scheduler
}

func TestResyncCancelsThenSchedulesEnabledSlots(t *testing.T) {
	service, store, scheduler := newNotificationFixture(t, testNow)
	setScheduleTimes(t, store, []models.CheckInTime{
		{ID: "evening", Hour: 20, Minute: 30, Enabled: true, Label: "Evening check-in"},
		{ID: "disabled", Hour: 12, Minute: 0, Enabled: false},
		{ID: "morning", Hour: 8, Minute: 0, Enabled: true},
	})

	ids := service.Resync(store.Snapshot())

	if scheduler.cancelCalls != 1 {
		t.Fatalf("cancel calls = %d, want 1", scheduler.cancelCalls)
	}
	if len(ids) != 2 || len(scheduler.scheduled) != 2 {
		t.Fatalf("scheduled %d notifications, want 2", len(scheduler.scheduled))
	}
	if scheduler.scheduled[0].hour != 8 || scheduler.scheduled[1].hour != 20 {
		t.Fatalf("notifications not in time order: %+v", scheduler.scheduled)
	}
	if scheduler.scheduled[0].title != "Tijd om in te checken" {
		t.Fatalf("unlabeled slot title = %q", scheduler.scheduled[0].title)
	}
	if scheduler.scheduled[1].title != "Evening check-in" {
		t.Fatalf("labeled slot title = %q", scheduler.scheduled[1].title)
	}
}

func TestResyncAppendsCustomMessageToBody(t *testing.T) {
	service, store, scheduler := newNotificationFixture(t, testNow)
	_, err := store.Apply(func(state models.AppState) (models.AppState, error) {
		state.Profile = &models.UserProfile{ID: "p", Name: "Anna", CustomMessage: "Groetjes!"}
		return state, nil
	})
	if err != nil {
		t.Fatalf("set profile: %v", err)
	}

	service.Resync(store.Snapshot())

	if len(scheduler.scheduled) != 1 {
		t.Fatalf("scheduled %d notifications, want 1", len(scheduler.scheduled))
	}
	want := "Laat je dierbaren weten dat het goed met je gaat vandaag ❤️\nGroetjes!"
	if scheduler.scheduled[0].body != want {
		t.Fatalf("body = %q, want %q", scheduler.scheduled[0].body, want)
	}
}

func TestResyncSkipsFailedSchedules(t *testing.T) {
	service, store, scheduler := newNotificationFixture(t, testNow)
	scheduler.failAll = true

	ids := service.Resync(store.Snapshot())
	if len(ids) != 0 {
		t.Fatalf("ids = %v, want none when every schedule fails", ids)
	}
}

func TestTickDropsStaleRecordsAndResyncs(t *testing.T) {
	service, store, scheduler := newNotificationFixture(t, testNow)
	_, err := store.Apply(func(state models.AppState) (models.AppState, error) {
		state.TodayCheckIns = []models.CheckInRecord{
			{ID: "stale", Date: "2025-03-09", ScheduleTimeID: "1"},
			{ID: "fresh", Date: "2025-03-10", ScheduleTimeID: "1"},
		}
		return state, nil
	})
	if err != nil {
		t.Fatalf("seed records: %v", err)
	}

	service.tick()

	records := store.Snapshot().TodayCheckIns
	if len(records) != 1 || records[0].ID != "fresh" {
		t.Fatalf("rollover kept the wrong records: %+v", records)
	}
	if scheduler.cancelCalls != 1 {
		t.Fatalf("rollover must resync notifications, cancel calls = %d", scheduler.cancelCalls)
	}
}

func TestTickWithoutStaleRecordsIsNoop(t *testing.T) {
	service, store, scheduler := newNotificationFixture(t, testNow)
	_, err := store.Apply(func(state models.AppState) (models.AppState, error) {
		state.TodayCheckIns = []models.CheckInRecord{{ID: "fresh", Date: "2025-03-10", ScheduleTimeID: "1"}}
		return state, nil
	})
	if err != nil {
		t.Fatalf("seed records: %v", err)
	}

	service.tick()

	if scheduler.cancelCalls != 0 {
		t.Fatalf("no rollover expected, cancel calls = %d", scheduler.cancelCalls)
	}
	if got := len(store.Snapshot().TodayCheckIns); got != 1 {
		t.Fatalf("records changed without a rollover: %d", got)
	}
}
