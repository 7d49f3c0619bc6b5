package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/crusadia/journal/internal/db"
	"github.com/crusadia/journal/internal/platform"
	"github.com/crusadia/journal/internal/services"
	"github.com/gofiber/fiber/v2"
)

const testUserID = "user_123"

var (
	testWednesday = time.Date(2026, 2, 4, 12, 0, 0, 0, time.UTC)
	testSaturday  = time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)
)

type directoryStub struct {
	channels []platform.Channel
	err      error
}

func (stub directoryStub) ListChannels(context.Context) ([]platform.Channel, error) {
	if stub.err != nil {
		return nil, stub.err
	}
	return stub.channels, nil
}

type usersStub struct {
	user platform.UserInfo
	err  error
}

func (stub usersStub) GetUser(_ context.Context, userID string) (platform.UserInfo, error) {
	if stub.err != nil {
		return platform.UserInfo{}, stub.err
	}
	user := stub.user
	user.ID = userID
	return user, nil
}

type mediaStub struct {
	mediaID string
	err     error
}

func (stub mediaStub) UploadMedia(_ context.Context, _ string, content io.Reader) (string, error) {
	if stub.err != nil {
		return "", stub.err
	}
	if _, err := io.Copy(io.Discard, content); err != nil {
		return "", err
	}
	return stub.mediaID, nil
}

type posterStub struct {
	calls int
	err   error
}

func (stub *posterStub) PostToChannel(context.Context, string, string, []string) error {
	if stub.err != nil {
		return stub.err
	}
	stub.calls++
	return nil
}

func newJournalTestApp(t *testing.T, now time.Time, poster services.ChannelPoster) *fiber.App {
	t.Helper()
	return newJournalTestAppWithVerifier(t, now, poster, platform.DevVerifier{UserID: testUserID})
}

func newJournalTestAppWithVerifier(t *testing.T, now time.Time, poster services.ChannelPoster, verifier TokenVerifier) *fiber.App {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "journal-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	repositories := db.NewRepositories(database)
	clock := func() time.Time { return now }
	journal := services.NewJournalService(repositories.Drafts, repositories.Submissions, poster).WithClock(clock)

	handler := NewHandler(
		journal,
		verifier,
		directoryStub{channels: []platform.Channel{{ID: "channel-1", Name: "General"}, {ID: "channel-2", Name: "Progress Updates"}}},
		usersStub{user: platform.UserInfo{Name: "Test Member", Username: "member"}},
		mediaStub{mediaID: "media_abc"},
		time.UTC,
	).WithClock(clock)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

func jsonRequest(t *testing.T, method string, target string, payload any) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, target, body)
	if payload != nil {
		request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	return request
}

func decodeBody(t *testing.T, response *http.Response, out any) {
	t.Helper()
	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}
