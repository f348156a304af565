// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestLifecycleScenarios(t *testing.T) {
	testCases := []struct {
		name      string
		pub, end  time.Time
		published bool
		canVote   bool
		recent    bool
		status    Status
	}{
		{"open window", now.Add(-10 * time.Hour), now.Add(10 * time.Hour), true, true, true, StatusOpen},
		{"future question", now.Add(10 * time.Hour), now.Add(20 * time.Hour), false, false, false, StatusScheduled},
		{"empty window", now, now, true, false, true, StatusClosed},
		{"ended", now.Add(-48 * time.Hour), now.Add(-time.Second), true, false, false, StatusClosed},
		{"published exactly 24h ago", now.Add(-24 * time.Hour), now.Add(time.Hour), true, true, true, StatusOpen},
		{"published just over 24h ago", now.Add(-24*time.Hour - time.Nanosecond), now.Add(time.Hour), true, true, false, StatusOpen},
		{"ends one nanosecond from now", now.Add(-time.Hour), now.Add(time.Nanosecond), true, true, true, StatusOpen},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := Question{ID: "q", Text: "Q", PubDate: tc.pub, EndDate: tc.end}

			assert.Equal(t, tc.published, q.IsPublished(now), "IsPublished")
			assert.Equal(t, tc.canVote, q.CanVote(now), "CanVote")
			assert.Equal(t, tc.recent, q.WasPublishedRecently(now), "WasPublishedRecently")
			assert.Equal(t, tc.status, q.Status(now), "Status")
		})
	}
}

// Sweeps now across a fixed window and checks each predicate against its
// defining inequality.
func TestPredicatesMatchDefinitions(t *testing.T) {
	pub := now
	end := now.Add(6 * time.Hour)
	q := Question{PubDate: pub, EndDate: end}

	for offset := -30 * time.Hour; offset <= 30*time.Hour; offset += 30 * time.Minute {
		at := now.Add(offset)

		wantPublished := !pub.After(at)
		wantVote := !pub.After(at) && at.Before(end)
		wantRecent := !at.Add(-24*time.Hour).After(pub) && !pub.After(at)

		assert.Equal(t, wantPublished, q.IsPublished(at), "IsPublished at %s", offset)
		assert.Equal(t, wantVote, q.CanVote(at), "CanVote at %s", offset)
		assert.Equal(t, wantRecent, q.WasPublishedRecently(at), "WasPublishedRecently at %s", offset)
	}
}

func TestPredicatesTolerateInvertedWindow(t *testing.T) {
	q := Question{PubDate: now.Add(-time.Hour), EndDate: now.Add(-2 * time.Hour)}

	assert.True(t, q.IsPublished(now))
	assert.False(t, q.CanVote(now))
	assert.Equal(t, StatusClosed, q.Status(now))
}

func TestNormalizeText(t *testing.T) {
	t.Run("trims", func(t *testing.T) {
		got, err := NormalizeText("  What's up?  ")
		require.NoError(t, err)
		assert.Equal(t, "What's up?", got)
	})

	t.Run("composes to NFC", func(t *testing.T) {
		got, err := NormalizeText("cafe\u0301")
		require.NoError(t, err)
		assert.Equal(t, "caf\u00e9", got)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := NormalizeText(" \t ")
		assert.Error(t, err)
	})

	t.Run("limit counts characters not bytes", func(t *testing.T) {
		_, err := NormalizeText(strings.Repeat("\u00e9", MaxTextLength))
		assert.NoError(t, err)

		_, err = NormalizeText(strings.Repeat("x", MaxTextLength+1))
		assert.Error(t, err)
	})
}

func TestValidateSchedule(t *testing.T) {
	assert.NoError(t, ValidateSchedule(now, now))
	assert.NoError(t, ValidateSchedule(now, now.Add(time.Hour)))
	assert.ErrorIs(t, ValidateSchedule(now, now.Add(-time.Second)), ErrInvalidSchedule)
	assert.ErrorIs(t, ValidateSchedule(time.Time{}, now), ErrInvalidSchedule)
	assert.ErrorIs(t, ValidateSchedule(now, time.Time{}), ErrInvalidSchedule)
}

func TestQuestionUpdateApply(t *testing.T) {
	q := Question{ID: "q", Text: "Old", PubDate: now, EndDate: now.Add(time.Hour)}

	text := "  New  "
	got, err := QuestionUpdate{Text: &text}.Apply(q)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Text)
	assert.Equal(t, q.EndDate, got.EndDate)
	assert.Equal(t, "Old", q.Text, "input is not mutated")

	early := now.Add(-time.Minute)
	_, err = QuestionUpdate{EndDate: &early}.Apply(q)
	assert.ErrorIs(t, err, ErrInvalidSchedule)

	empty := ""
	_, err = QuestionUpdate{Text: &empty}.Apply(q)
	assert.True(t, errors.Is(err, ErrInvalidQuestion))
}
