// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/danielhkuo/pollbooth/middleware"
	"github.com/danielhkuo/pollbooth/models"
	"github.com/danielhkuo/pollbooth/polls"
	"github.com/danielhkuo/pollbooth/testutil"
)

func TestVoterRegister(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := testutil.NewTestService(t, store, testutil.Now)
	h := NewVoterHandler(svc, zaptest.NewLogger(t).Sugar())

	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		h.Register(w, httptest.NewRequest("POST", "/voters/register", nil))

		testutil.AssertStatus(t, w, http.StatusCreated)
		var resp models.RegisterVoterResponse
		testutil.AssertJSON(t, w, &resp)
		require.NotEmpty(t, resp.VoterToken)
		assert.False(t, seen[resp.VoterToken], "tokens must be unique")
		seen[resp.VoterToken] = true

		voter, err := svc.Authenticate(t.Context(), resp.VoterToken)
		require.NoError(t, err)
		assert.Equal(t, resp.VoterID, voter.ID)
	}
}

func TestVoterGetMeAndVotes(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := testutil.NewTestService(t, store, testutil.Now)
	h := NewVoterHandler(svc, zaptest.NewLogger(t).Sugar())

	voter := testutil.CreateTestVoter(t, store)
	q1 := testutil.CreateOpenQuestion(t, store, "First")
	c1 := testutil.AddTestChoice(t, store, q1.ID, "A")
	q2 := testutil.CreateOpenQuestion(t, store, "Second")
	c2 := testutil.AddTestChoice(t, store, q2.ID, "B")

	for _, b := range []polls.Ballot{
		{QuestionID: q1.ID, ChoiceID: c1.ID, Voter: voter.ID},
		{QuestionID: q2.ID, ChoiceID: c2.ID, Voter: voter.ID},
	} {
		_, err := svc.CastVote(t.Context(), b)
		require.NoError(t, err)
	}

	withVoter := func(path string) *http.Request {
		req := httptest.NewRequest("GET", path, nil)
		return req.WithContext(middleware.WithVoterContext(req.Context(), voter))
	}

	t.Run("me", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.GetMe(w, withVoter("/voters/me"))

		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.VoterResponse
		testutil.AssertJSON(t, w, &resp)
		assert.Equal(t, voter.ID, resp.Voter.ID)
		assert.Equal(t, 2, resp.VoteCount)
		assert.NotContains(t, w.Body.String(), voter.Token)
	})

	t.Run("votes", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.GetMyVotes(w, withVoter("/voters/me/votes"))

		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.VoterVotesResponse
		testutil.AssertJSON(t, w, &resp)
		require.Len(t, resp.Votes, 2)
		questions := []string{resp.Votes[0].QuestionID, resp.Votes[1].QuestionID}
		assert.ElementsMatch(t, []string{q1.ID, q2.ID}, questions)
	})

	t.Run("anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.GetMyVotes(w, httptest.NewRequest("GET", "/voters/me/votes", nil))
		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})
}
