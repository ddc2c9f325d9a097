package services

import (
	"errors"
	"testing"
	"time"

	"github.com/imok-app/imok/internal/models"
)

type memoryDocuments struct {
	bodies   map[string]string
	saveErr  error
	loadErr  error
	saveHits int
}

func newMemoryDocuments() *memoryDocuments {
	return &memoryDocuments{bodies: map[string]string{}}
}

func (repo *memoryDocuments) Load(key string) (string, bool, error) {
	if repo.loadErr != nil {
		return "", false, repo.loadErr
	}
	body, ok := repo.bodies[key]
	return body, ok, nil
}

func (repo *memoryDocuments) Save(key string, body string) error {
	repo.saveHits++
	if repo.saveErr != nil {
		return repo.saveErr
	}
	repo.bodies[key] = body
	return nil
}

func fixedClock(value time.Time) func() time.Time {
	return func() time.Time { return value }
}

var testNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T, repo *memoryDocuments, now time.Time) *StateStore {
	t.Helper()
	store := NewStateStore(repo, nil, time.UTC, fixedClock(now))
	store.Load()
	if !store.Loaded() {
		t.Fatalf("store did not report loaded after Load")
	}
	return store
}

func TestLoadMissingDocumentUsesDefaults(t *testing.T) {
	store := newTestStore(t, newMemoryDocuments(), testNow)

	state := store.Snapshot()
	if state.Profile != nil {
		t.Fatalf("expected no profile in default state")
	}
	if len(state.Schedule.Times) != 1 {
		t.Fatalf("expected one default check-in time, got %d", len(state.Schedule.Times))
	}
	slot := state.Schedule.Times[0]
	if slot.Hour != 9 || slot.Minute != 0 || !slot.Enabled {
		t.Fatalf("unexpected default slot: %+v", slot)
	}
	if !state.Subscription.IsTrialing || state.Subscription.TrialEndsAt == nil {
		t.Fatalf("expected default state to start a trial")
	}
	wantTrialEnd := testNow.Add(models.TrialDuration)
	if !state.Subscription.TrialEndsAt.Equal(wantTrialEnd) {
		t.Fatalf("trial end = %v, want %v", state.Subscription.TrialEndsAt, wantTrialEnd)
	}
}

func TestLoadReadErrorDegradesToDefaults(t *testing.T) {
	repo := newMemoryDocuments()
	repo.loadErr = errors.New("disk on fire")

	store := newTestStore(t, repo, testNow)
	if got := len(store.Snapshot().Schedule.Times); got != 1 {
		t.Fatalf("expected default schedule after read failure, got %d times", got)
	}
}

func TestLoadCorruptDocumentDegradesToDefaults(t *testing.T) {
	repo := newMemoryDocuments()
	repo.bodies[StateDocumentKey] = "{not json"

	store := newTestStore(t, repo, testNow)
	if got := store.Snapshot().UserRole; got != models.RoleCheckIn {
		t.Fatalf("user role = %q, want %q", got, models.RoleCheckIn)
	}
}

func TestApplyPersistsBeforeCommit(t *testing.T) {
	repo := newMemoryDocuments()
	store := newTestStore(t, repo, testNow)

	_, err := store.Apply(func(state models.AppState) (models.AppState, error) {
		state.HasCompletedOnboarding = true
		return state, nil
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if repo.saveHits != 1 {
		t.Fatalf("save hits = %d, want 1", repo.saveHits)
	}

	reloaded := NewStateStore(repo, nil, time.UTC, fixedClock(testNow))
	reloaded.Load()
	if !reloaded.Snapshot().HasCompletedOnboarding {
		t.Fatalf("mutation did not survive a reload")
	}
}

func TestApplySaveFailureLeavesStateUnchanged(t *testing.T) {
	repo := newMemoryDocuments()
	store := newTestStore(t, repo, testNow)
	repo.saveErr = errors.New("write failed")

	_, err := store.Apply(func(state models.AppState) (models.AppState, error) {
		state.HasCompletedOnboarding = true
		return state, nil
	})
	if err == nil {
		t.Fatalf("expected Apply to surface the save failure")
	}
	if store.Snapshot().HasCompletedOnboarding {
		t.Fatalf("failed save must not commit the mutation")
	}
}

func TestApplyReducerErrorSkipsSave(t *testing.T) {
	repo := newMemoryDocuments()
	store := newTestStore(t, repo, testNow)

	wantErr := errors.New("rejected")
	_, err := store.Apply(func(state models.AppState) (models.AppState, error) {
		return state, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
	if repo.saveHits != 0 {
		t.Fatalf("rejected mutation must not reach storage, save hits = %d", repo.saveHits)
	}
}

func TestApplyBeforeLoadReturnsNotLoaded(t *testing.T) {
	store := NewStateStore(newMemoryDocuments(), nil, time.UTC, fixedClock(testNow))

	_, err := store.Apply(func(state models.AppState) (models.AppState, error) {
		return state, nil
	})
	if !errors.Is(err, ErrStateNotLoaded) {
		t.Fatalf("err = %v, want ErrStateNotLoaded", err)
	}
}

func TestSnapshotDoesNotAliasStoreState(t *testing.T) {
	store := newTestStore(t, newMemoryDocuments(), testNow)

	snapshot := store.Snapshot()
	snapshot.Schedule.Times[0].Hour = 23

	if got := store.Snapshot().Schedule.Times[0].Hour; got != 9 {
		t.Fatalf("snapshot mutation leaked into the store, hour = %d", got)
	}
}
