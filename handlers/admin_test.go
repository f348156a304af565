// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/danielhkuo/pollbooth/auth"
	"github.com/danielhkuo/pollbooth/db"
	"github.com/danielhkuo/pollbooth/middleware"
	"github.com/danielhkuo/pollbooth/models"
	"github.com/danielhkuo/pollbooth/polls"
	"github.com/danielhkuo/pollbooth/testutil"
)

func setupAdminHandler(t *testing.T) (*AdminHandler, *db.Store) {
	t.Helper()
	store := testutil.SetupTestStore(t)
	svc := testutil.NewTestService(t, store, testutil.Now)
	return NewAdminHandler(svc, testutil.GetTestConfig(), zaptest.NewLogger(t).Sugar()), store
}

func adminRequest(method, path, id string, body interface{}) *http.Request {
	req := testutil.MakeRequest(method, path, body, nil)
	req.SetPathValue("id", id)
	return req
}

func TestCreateQuestion(t *testing.T) {
	h, _ := setupAdminHandler(t)
	cfg := testutil.GetTestConfig()
	end := testutil.Now.Add(24 * time.Hour)

	req := testutil.MakeRequest("POST", "/questions", models.CreateQuestionRequest{
		Text:    "  Favourite colour?  ",
		EndDate: &end,
		Choices: []string{"Red", "Blue"},
	}, nil)
	w := httptest.NewRecorder()

	h.Create(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)
	var resp models.CreateQuestionResponse
	testutil.AssertJSON(t, w, &resp)

	require.NotEmpty(t, resp.QuestionID)
	assert.Equal(t, auth.GenerateAdminKey(resp.QuestionID, cfg.AdminKeySalt), resp.AdminKey)
	assert.Equal(t, "Favourite colour?", resp.Question.Text)
	assert.True(t, resp.Question.PubDate.Equal(testutil.Now), "pub_date defaults to now")
	require.Len(t, resp.Choices, 2)
	assert.Equal(t, 1, resp.Choices[0].Position)
	assert.Equal(t, "Blue", resp.Choices[1].Text)
}

func TestCreateQuestionValidation(t *testing.T) {
	h, _ := setupAdminHandler(t)
	now := testutil.Now
	end := now.Add(time.Hour)
	before := now.Add(-time.Hour)
	long := make([]rune, polls.MaxTextLength+1)
	for i := range long {
		long[i] = 'x'
	}

	testCases := []struct {
		name string
		req  models.CreateQuestionRequest
	}{
		{"missing end date", models.CreateQuestionRequest{Text: "Q"}},
		{"empty text", models.CreateQuestionRequest{Text: "   ", EndDate: &end}},
		{"text too long", models.CreateQuestionRequest{Text: string(long), EndDate: &end}},
		{"end before pub", models.CreateQuestionRequest{Text: "Q", PubDate: &now, EndDate: &before}},
		{"empty choice", models.CreateQuestionRequest{Text: "Q", EndDate: &end, Choices: []string{"A", ""}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.Create(w, testutil.MakeRequest("POST", "/questions", tc.req, nil))
			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}
}

func TestShowQuestion(t *testing.T) {
	h, store := setupAdminHandler(t)
	future := testutil.CreateTestQuestion(t, store, "Future", testutil.Now.Add(time.Hour), testutil.Now.Add(2*time.Hour))

	w := httptest.NewRecorder()
	h.Show(w, adminRequest("GET", "/questions/"+future.ID+"/admin", future.ID, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.QuestionDetailResponse
	testutil.AssertJSON(t, w, &resp)
	assert.Equal(t, polls.StatusScheduled, resp.Status)

	w = httptest.NewRecorder()
	h.Show(w, adminRequest("GET", "/questions/nope/admin", "nope", nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestUpdateQuestion(t *testing.T) {
	h, store := setupAdminHandler(t)
	q := testutil.CreateOpenQuestion(t, store, "Old text")

	text := "New text"
	w := httptest.NewRecorder()
	h.Update(w, adminRequest("PATCH", "/questions/"+q.ID, q.ID, models.UpdateQuestionRequest{Text: &text}))

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp polls.Question
	testutil.AssertJSON(t, w, &resp)
	assert.Equal(t, "New text", resp.Text)
	assert.True(t, resp.EndDate.Equal(q.EndDate))

	t.Run("schedule inversion rejected", func(t *testing.T) {
		end := q.PubDate.Add(-time.Minute)
		w := httptest.NewRecorder()
		h.Update(w, adminRequest("PATCH", "/questions/"+q.ID, q.ID, models.UpdateQuestionRequest{EndDate: &end}))
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("missing question", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Update(w, adminRequest("PATCH", "/questions/nope", "nope", models.UpdateQuestionRequest{Text: &text}))
		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}

func TestPublishAndCloseQuestion(t *testing.T) {
	h, store := setupAdminHandler(t)
	now := testutil.Now
	q := testutil.CreateTestQuestion(t, store, "Scheduled", now.Add(time.Hour), now.Add(2*time.Hour))

	// Closing before publishing is refused
	w := httptest.NewRecorder()
	h.Close(w, adminRequest("POST", "/questions/"+q.ID+"/close", q.ID, nil))
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	w = httptest.NewRecorder()
	h.Publish(w, adminRequest("POST", "/questions/"+q.ID+"/publish", q.ID, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	var published polls.Question
	testutil.AssertJSON(t, w, &published)
	assert.True(t, published.PubDate.Equal(now))
	assert.True(t, published.CanVote(now))

	w = httptest.NewRecorder()
	h.Close(w, adminRequest("POST", "/questions/"+q.ID+"/close", q.ID, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	var closed polls.Question
	testutil.AssertJSON(t, w, &closed)
	assert.True(t, closed.EndDate.Equal(now))
	assert.False(t, closed.CanVote(now))
}

func TestChoiceManagement(t *testing.T) {
	h, store := setupAdminHandler(t)
	q := testutil.CreateOpenQuestion(t, store, "Favourite colour?")
	testutil.AddTestChoice(t, store, q.ID, "Red")

	w := httptest.NewRecorder()
	h.AddChoice(w, adminRequest("POST", "/questions/"+q.ID+"/choices", q.ID, models.AddChoiceRequest{Text: "Green"}))
	testutil.AssertStatus(t, w, http.StatusCreated)
	var added polls.Choice
	testutil.AssertJSON(t, w, &added)
	assert.Equal(t, "Green", added.Text)
	assert.Equal(t, 2, added.Position)
	assert.Equal(t, 0, added.Votes)

	w = httptest.NewRecorder()
	h.AddChoice(w, adminRequest("POST", "/questions/"+q.ID+"/choices", q.ID, models.AddChoiceRequest{Text: ""}))
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	w = httptest.NewRecorder()
	h.AddChoice(w, adminRequest("POST", "/questions/nope/choices", "nope", models.AddChoiceRequest{Text: "X"}))
	testutil.AssertStatus(t, w, http.StatusNotFound)

	del := adminRequest("DELETE", "/questions/"+q.ID+"/choices/"+added.ID, q.ID, nil)
	del.SetPathValue("choiceID", added.ID)
	w = httptest.NewRecorder()
	h.DeleteChoice(w, del)
	testutil.AssertStatus(t, w, http.StatusNoContent)

	w = httptest.NewRecorder()
	h.DeleteChoice(w, del)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestResetAndDeleteQuestion(t *testing.T) {
	h, store := setupAdminHandler(t)
	q := testutil.CreateOpenQuestion(t, store, "Favourite colour?")
	red := testutil.AddTestChoice(t, store, q.ID, "Red")

	svc := testutil.NewTestService(t, store, testutil.Now)
	_, err := svc.CastVote(t.Context(), polls.Ballot{QuestionID: q.ID, ChoiceID: red.ID})
	require.NoError(t, err)
	require.Equal(t, 1, testutil.ChoiceVotes(t, store, q.ID, red.ID))

	w := httptest.NewRecorder()
	h.Reset(w, adminRequest("POST", "/questions/"+q.ID+"/reset", q.ID, nil))
	testutil.AssertStatus(t, w, http.StatusNoContent)
	assert.Equal(t, 0, testutil.ChoiceVotes(t, store, q.ID, red.ID))

	w = httptest.NewRecorder()
	h.Delete(w, adminRequest("DELETE", "/questions/"+q.ID, q.ID, nil))
	testutil.AssertStatus(t, w, http.StatusNoContent)

	_, err = store.GetQuestion(t.Context(), q.ID)
	assert.ErrorIs(t, err, polls.ErrNotFound)
	_, err = store.GetChoice(t.Context(), q.ID, red.ID)
	assert.ErrorIs(t, err, polls.ErrNotFound)

	w = httptest.NewRecorder()
	h.Delete(w, adminRequest("DELETE", "/questions/"+q.ID, q.ID, nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestCreateQuestionBodyTooLarge(t *testing.T) {
	h, store := setupAdminHandler(t)
	body := `{"text":"` + strings.Repeat("x", middleware.MaxBodyBytes) + `"}`

	req := httptest.NewRequest("POST", "/questions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.Create(w, req)

	testutil.AssertStatus(t, w, http.StatusRequestEntityTooLarge)
	all, err := store.ListQuestions(req.Context())
	require.NoError(t, err)
	assert.Empty(t, all)
}
