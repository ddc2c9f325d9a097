package services

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/imok-app/imok/internal/models"
)

// StateDocumentKey is the fixed storage key of the application state document.
const StateDocumentKey = "imok_app_state"

var ErrStateNotLoaded = errors.New("application state has not been loaded yet")

// StateDocumentRepository is the durable storage the store writes through.
type StateDocumentRepository interface {
	Load(key string) (string, bool, error)
	Save(key string, body string) error
}

// Reducer transforms a copy of the state into its successor. Returning an
// error rejects the mutation without persisting anything.
type Reducer func(models.AppState) (models.AppState, error)

// StateStore owns the single in-memory AppState and its durable mirror.
// Mutations are serialized: each one reads the authoritative copy, applies a
// reducer, persists the whole document, and only then replaces the in-memory
// copy visible to readers. A failed write leaves readers on the prior state.
type StateStore struct {
	documents StateDocumentRepository
	log       *zap.Logger
	location  *time.Location
	clock     func() time.Time

	mu     sync.Mutex
	state  models.AppState
	loaded bool
}

func NewStateStore(documents StateDocumentRepository, log *zap.Logger, location *time.Location, clock func() time.Time) *StateStore {
	if log == nil {
		log = zap.NewNop()
	}
	if location == nil {
		location = time.UTC
	}
	if clock == nil {
		clock = time.Now
	}
	return &StateStore{
		documents: documents,
		log:       log,
		location:  location,
		clock:     clock,
	}
}

func (store *StateStore) Location() *time.Location { return store.location }

func (store *StateStore) Now() time.Time { return store.clock() }

// Load reads the persisted document once per process. Any read or parse
// failure degrades to the default state; it is logged, never surfaced.
func (store *StateStore) Load() {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.loaded {
		return
	}

	now := store.clock()
	body, found, err := store.documents.Load(StateDocumentKey)
	if err != nil {
		store.log.Warn("load app state failed, using defaults", zap.Error(err))
		store.state = models.DefaultState(now)
		store.loaded = true
		return
	}
	if !found {
		store.state = models.DefaultState(now)
		store.loaded = true
		return
	}

	state, err := DecodeStateDocument([]byte(body), now, store.location)
	if err != nil {
		store.log.Warn("parse app state failed, using defaults", zap.Error(err))
		state = models.DefaultState(now)
	}
	store.state = state
	store.loaded = true
}

func (store *StateStore) Loaded() bool {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.loaded
}

// Snapshot returns a deep copy of the current state for readers.
func (store *StateStore) Snapshot() models.AppState {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.state.Clone()
}

// Apply runs a reducer against the authoritative state under the store lock
// and persists the result before committing it. On a write failure the
// in-memory state is not updated, so readers and storage cannot diverge.
func (store *StateStore) Apply(reduce Reducer) (models.AppState, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if !store.loaded {
		return models.AppState{}, ErrStateNotLoaded
	}

	next, err := reduce(store.state.Clone())
	if err != nil {
		return models.AppState{}, err
	}
	next.SchemaVersion = models.SchemaVersion

	body, err := json.Marshal(next)
	if err != nil {
		store.log.Error("encode app state failed", zap.Error(err))
		return models.AppState{}, err
	}
	if err := store.documents.Save(StateDocumentKey, string(body)); err != nil {
		store.log.Error("save app state failed, mutation not committed", zap.Error(err))
		return models.AppState{}, err
	}

	store.state = next
	return next.Clone(), nil
}
