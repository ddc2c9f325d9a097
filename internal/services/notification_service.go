package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/imok-app/imok/internal/models"
)

const (
	checkInNotificationTitle = "Tijd om in te checken"
	checkInNotificationBody  = "Laat je dierbaren weten dat het goed met je gaat vandaag ❤️"
)

// PlatformScheduler abstracts the device-level daily notification API.
type PlatformScheduler interface {
	CancelAll() error
	ScheduleDaily(hour, minute int, title, body string) (string, error)
}

// LogScheduler is the stand-in platform scheduler: it only logs what a real
// device integration would do and hands back generated notification ids.
type LogScheduler struct {
	log *zap.Logger
}

func NewLogScheduler(log *zap.Logger) *LogScheduler {
	return &LogScheduler{log: log}
}

func (scheduler *LogScheduler) CancelAll() error {
	scheduler.log.Debug("cancelled all scheduled notifications")
	return nil
}

func (scheduler *LogScheduler) ScheduleDaily(hour, minute int, title, body string) (string, error) {
	id := uuid.NewString()
	scheduler.log.Info("scheduled daily notification",
		zap.Int("hour", hour),
		zap.Int("minute", minute),
		zap.String("title", title),
		zap.String("notification_id", id),
	)
	return id, nil
}

// NotificationService keeps the platform's daily notifications aligned with
// the schedule and rolls today's records over at midnight.
type NotificationService struct {
	store    *StateStore
	platform PlatformScheduler
	log      *zap.Logger
	interval time.Duration
}

func NewNotificationService(store *StateStore, platform PlatformScheduler, log *zap.Logger) *NotificationService {
	return &NotificationService{
		store:    store,
		platform: platform,
		log:      log,
		interval: time.Minute,
	}
}

// Resync cancels everything and reschedules one daily notification per
// enabled slot. Returns the platform ids of the scheduled notifications.
func (service *NotificationService) Resync(state models.AppState) []string {
	if err := service.platform.CancelAll(); err != nil {
		service.log.Warn("cancel scheduled notifications failed", zap.Error(err))
	}

	body := checkInNotificationBody
	if state.Profile != nil && state.Profile.CustomMessage != "" {
		body += "\n" + state.Profile.CustomMessage
	}

	ids := make([]string, 0, len(state.Schedule.Times))
	for _, slot := range EnabledSlotsInTimeOrder(state.Schedule.Times) {
		title := checkInNotificationTitle
		if slot.Label != "" {
			title = slot.Label
		}

		id, err := service.platform.ScheduleDaily(slot.Hour, slot.Minute, title, body)
		if err != nil {
			service.log.Warn("schedule daily notification failed",
				zap.String("slot_id", slot.ID),
				zap.Error(err),
			)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// Start runs the rollover ticker until the context is cancelled.
func (service *NotificationService) Start(ctx context.Context) {
	ticker := time.NewTicker(service.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				service.tick()
			}
		}
	}()
}

// tick drops yesterday's records once the local date changes and resyncs the
// platform notifications against the surviving state.
func (service *NotificationService) tick() {
	if !service.store.Loaded() {
		return
	}

	state := service.store.Snapshot()
	today := LocalDate(service.store.Now(), service.store.Location())

	stale := false
	for _, record := range state.TodayCheckIns {
		if record.Date != today {
			stale = true
			break
		}
	}
	if !stale {
		return
	}

	next, err := service.store.Apply(func(state models.AppState) (models.AppState, error) {
		state.TodayCheckIns = FilterRecordsForDate(state.TodayCheckIns, today)
		return state, nil
	})
	if err != nil {
		service.log.Warn("midnight rollover failed", zap.Error(err))
		return
	}
	service.Resync(next)
}
