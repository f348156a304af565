// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap/zaptest"

	"github.com/danielhkuo/pollbooth/auth"
	"github.com/danielhkuo/pollbooth/cliparse"
	"github.com/danielhkuo/pollbooth/db"
	"github.com/danielhkuo/pollbooth/polls"
)

// Now is the fixed instant tests run at.
var Now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// SetupTestDB creates a fresh sqlite database with the full schema in a
// temporary directory. It is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, "file:"+filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestStore returns a db.Store over a fresh test database.
func SetupTestStore(t *testing.T) *db.Store {
	t.Helper()
	return db.NewStore(SetupTestDB(t))
}

// NewTestService builds a service over store with the clock pinned at now.
func NewTestService(t *testing.T, store polls.Store, now time.Time, opts ...polls.Option) *polls.Service {
	t.Helper()
	return polls.NewService(store, polls.FixedClock{T: now}, zaptest.NewLogger(t).Sugar(), opts...)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseType: db.TypeSQLite,
		DatabaseURL:  "file:test.db",
		AdminKeySalt: "test-admin-salt",
		IPHashSalt:   "test-ip-salt",
		Environment:  "test",
	}
}

// CreateTestQuestion stores a question with the given window and returns it.
func CreateTestQuestion(t *testing.T, store polls.Store, text string, pub, end time.Time) polls.Question {
	t.Helper()

	q := polls.Question{
		ID:      uuid.NewString(),
		Text:    text,
		PubDate: pub.UTC(),
		EndDate: end.UTC(),
	}
	if err := store.CreateQuestion(context.Background(), q, nil); err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}
	return q
}

// CreateOpenQuestion stores a question published 10h before Now that closes
// 10h after it.
func CreateOpenQuestion(t *testing.T, store polls.Store, text string) polls.Question {
	t.Helper()
	return CreateTestQuestion(t, store, text, Now.Add(-10*time.Hour), Now.Add(10*time.Hour))
}

// AddTestChoice adds a choice to a question and returns it
func AddTestChoice(t *testing.T, store polls.Store, questionID, text string) polls.Choice {
	t.Helper()

	c, err := store.AddChoice(context.Background(), polls.Choice{
		ID:         uuid.NewString(),
		QuestionID: questionID,
		Text:       text,
	})
	if err != nil {
		t.Fatalf("Failed to create test choice: %v", err)
	}
	return c
}

// CreateTestVoter registers a voter and returns it with its token set.
func CreateTestVoter(t *testing.T, store polls.Store) polls.Voter {
	t.Helper()

	token, err := auth.GenerateVoterToken()
	if err != nil {
		t.Fatalf("Failed to generate voter token: %v", err)
	}
	v := polls.Voter{
		ID:         uuid.NewString(),
		Token:      token,
		CreatedAt:  Now,
		LastSeenAt: Now,
	}
	if err := store.CreateVoter(context.Background(), v); err != nil {
		t.Fatalf("Failed to create test voter: %v", err)
	}
	return v
}

// ChoiceVotes reads the current tally of a choice.
func ChoiceVotes(t *testing.T, store polls.Store, questionID, choiceID string) int {
	t.Helper()

	c, err := store.GetChoice(context.Background(), questionID, choiceID)
	if err != nil {
		t.Fatalf("Failed to read choice: %v", err)
	}
	return c.Votes
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
