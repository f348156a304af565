// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/danielhkuo/pollbooth/auth"
	"github.com/danielhkuo/pollbooth/cliparse"
	"github.com/danielhkuo/pollbooth/db"
	"github.com/danielhkuo/pollbooth/testutil"
)

func setupRouter(t *testing.T) (*http.ServeMux, *db.Store, cliparse.Config) {
	t.Helper()
	store := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	svc := testutil.NewTestService(t, store, testutil.Now)
	return NewRouter(svc, cfg, zaptest.NewLogger(t).Sugar()), store, cfg
}

func TestHealthEndpoint(t *testing.T) {
	mux, _, _ := setupRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux, _, _ := setupRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	expected := "pollbooth API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestUnknownPathIsNotFound(t *testing.T) {
	mux, _, _ := setupRouter(t)

	req := httptest.NewRequest("GET", "/nope", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestRouteExistence(t *testing.T) {
	mux, _, _ := setupRouter(t)

	// 400, 401, 403, 404 are all valid handler responses here
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},

		{"GET", "/questions"},
		{"GET", "/questions/test-id"},
		{"POST", "/questions/test-id/vote"},
		{"GET", "/questions/test-id/results"},

		{"POST", "/questions"},
		{"GET", "/questions/test-id/admin"},
		{"PATCH", "/questions/test-id"},
		{"DELETE", "/questions/test-id"},
		{"POST", "/questions/test-id/choices"},
		{"DELETE", "/questions/test-id/choices/choice-id"},
		{"POST", "/questions/test-id/publish"},
		{"POST", "/questions/test-id/close"},
		{"POST", "/questions/test-id/reset"},

		{"POST", "/voters/register"},
		{"GET", "/voters/me"},
		{"GET", "/voters/me/votes"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux, _, _ := setupRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"PUT", "/questions/test-id"},
		{"DELETE", "/questions/test-id/admin"},
		{"GET", "/questions/test-id/vote"},
		{"PUT", "/questions/test-id/choices"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestAdminRoutesRequireKey(t *testing.T) {
	mux, store, cfg := setupRouter(t)
	q := testutil.CreateOpenQuestion(t, store, "Favourite colour?")

	t.Run("no key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/questions/"+q.ID+"/admin", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("valid key extracts id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/questions/"+q.ID+"/admin", nil)
		req.Header.Set("X-Admin-Key", auth.GenerateAdminKey(q.ID, cfg.AdminKeySalt))
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)
	})
}

func TestVoterRoutesRequireToken(t *testing.T) {
	mux, store, _ := setupRouter(t)
	voter := testutil.CreateTestVoter(t, store)

	req := httptest.NewRequest("GET", "/voters/me", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	req = httptest.NewRequest("GET", "/voters/me", nil)
	req.Header.Set("X-Voter-Token", voter.Token)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
}
