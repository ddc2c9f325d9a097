package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/imok-app/imok/internal/db"
	"github.com/imok-app/imok/internal/models"
	"github.com/imok-app/imok/internal/services"
)

var testNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func newTestApp(t *testing.T) (*fiber.App, *services.StateStore) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "imok-test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	log := zap.NewNop()
	store := services.NewStateStore(db.NewDocumentRepository(database), log, time.UTC, func() time.Time { return testNow })
	store.Load()

	notifier := services.NewNotificationService(store, services.NewLogScheduler(log), log)
	handler := NewHandler(Dependencies{
		Store:     store,
		CheckIns:  services.NewCheckInService(store),
		Profiles:  services.NewProfileService(store),
		Contacts:  services.NewContactService(store),
		Schedule:  services.NewScheduleService(store),
		Notifier:  notifier,
		Log:       log,
		SecretKey: []byte("test-secret"),
		BaseURL:   "https://imok.test",
	})

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, store
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) (int, map[string]any) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body failed: %v", method, path, err)
	}

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("%s %s decode body failed: %v (%s)", method, path, err, raw)
		}
	}
	return response.StatusCode, decoded
}

func expireTrial(t *testing.T, store *services.StateStore) {
	t.Helper()
	_, err := store.Apply(func(state models.AppState) (models.AppState, error) {
		expired := testNow.Add(-time.Second)
		state.Subscription = models.SubscriptionStatus{IsTrialing: true, TrialEndsAt: &expired}
		return state, nil
	})
	if err != nil {
		t.Fatalf("expire trial: %v", err)
	}
}

func expectStatus(t *testing.T, got, want int, context string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: status = %d, want %d", context, got, want)
	}
}
