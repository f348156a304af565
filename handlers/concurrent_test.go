// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/pollbooth/middleware"
	"github.com/danielhkuo/pollbooth/models"
	"github.com/danielhkuo/pollbooth/polls"
	"github.com/danielhkuo/pollbooth/testutil"
)

// TestConcurrentVotes verifies that simultaneous votes on one choice are all
// counted exactly once
func TestConcurrentVotes(t *testing.T) {
	h, store := setupQuestionHandler(t)
	q := testutil.CreateOpenQuestion(t, store, "Favourite colour?")
	red := testutil.AddTestChoice(t, store, q.ID, "Red")
	blue := testutil.AddTestChoice(t, store, q.ID, "Blue")

	numVotes := 25
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVotes; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			w := httptest.NewRecorder()
			h.Vote(w, voteRequest(q.ID, models.VoteRequest{Choice: red.ID}))

			if w.Code == http.StatusSeeOther {
				successCount.Add(1)
			}
		}()
	}

	wg.Wait()

	if int(successCount.Load()) != numVotes {
		t.Errorf("Expected %d successful votes, got %d", numVotes, successCount.Load())
	}
	if got := testutil.ChoiceVotes(t, store, q.ID, red.ID); got != numVotes {
		t.Errorf("Expected tally %d, got %d", numVotes, got)
	}
	if got := testutil.ChoiceVotes(t, store, q.ID, blue.ID); got != 0 {
		t.Errorf("Expected untouched choice to stay at 0, got %d", got)
	}

	var ledger int
	err := store.DB().QueryRow("SELECT COUNT(*) FROM vote WHERE question_id = $1", q.ID).Scan(&ledger)
	if err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	if ledger != numVotes {
		t.Errorf("Expected %d ledger rows, got %d", numVotes, ledger)
	}
}

// TestConcurrentDuplicateVoter verifies that when one identified voter races
// several votes on the same question, exactly one is recorded
func TestConcurrentDuplicateVoter(t *testing.T) {
	h, store := setupQuestionHandler(t)
	q := testutil.CreateOpenQuestion(t, store, "Favourite colour?")
	red := testutil.AddTestChoice(t, store, q.ID, "Red")
	blue := testutil.AddTestChoice(t, store, q.ID, "Blue")
	voter := testutil.CreateTestVoter(t, store)

	numAttempts := 10
	var successCount, conflictCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numAttempts; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			choice := red.ID
			if idx%2 == 1 {
				choice = blue.ID
			}
			req := voteRequest(q.ID, models.VoteRequest{Choice: choice})
			req = req.WithContext(middleware.WithVoterContext(req.Context(), voter))
			w := httptest.NewRecorder()

			h.Vote(w, req)

			switch w.Code {
			case http.StatusSeeOther:
				successCount.Add(1)
			case http.StatusConflict:
				conflictCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if successCount.Load() != 1 {
		t.Errorf("Expected exactly 1 successful vote, got %d", successCount.Load())
	}
	if int(conflictCount.Load()) != numAttempts-1 {
		t.Errorf("Expected %d conflicts, got %d", numAttempts-1, conflictCount.Load())
	}

	total := testutil.ChoiceVotes(t, store, q.ID, red.ID) + testutil.ChoiceVotes(t, store, q.ID, blue.ID)
	if total != 1 {
		t.Errorf("Expected total tally 1, got %d", total)
	}
}

// TestParallelQuestions verifies that votes on different questions do not
// interfere with each other
func TestParallelQuestions(t *testing.T) {
	h, store := setupQuestionHandler(t)

	numQuestions := 4
	votesPerQuestion := 5
	questions := make([]polls.Question, numQuestions)
	choices := make([]polls.Choice, numQuestions)
	for i := range questions {
		questions[i] = testutil.CreateOpenQuestion(t, store, "Question "+string(rune('A'+i)))
		choices[i] = testutil.AddTestChoice(t, store, questions[i].ID, "Yes")
	}

	var wg sync.WaitGroup
	for i := 0; i < numQuestions; i++ {
		for j := 0; j < votesPerQuestion; j++ {
			wg.Add(1)
			go func(qi int) {
				defer wg.Done()
				w := httptest.NewRecorder()
				h.Vote(w, voteRequest(questions[qi].ID, models.VoteRequest{Choice: choices[qi].ID}))
			}(i)
		}
	}
	wg.Wait()

	for i := range questions {
		if got := testutil.ChoiceVotes(t, store, questions[i].ID, choices[i].ID); got != votesPerQuestion {
			t.Errorf("Question %d: expected %d votes, got %d", i, votesPerQuestion, got)
		}
	}
}
