// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// MaxTextLength bounds question and choice text, counted in characters.
const MaxTextLength = 200

// RecentWindow is how far back WasPublishedRecently looks.
const RecentWindow = 24 * time.Hour

// Status is a derived label for where a question is in its lifecycle.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusOpen      Status = "open"
	StatusClosed    Status = "closed"
)

type Question struct {
	ID      string    `json:"id"`
	Text    string    `json:"text"`
	PubDate time.Time `json:"pub_date"`
	EndDate time.Time `json:"end_date"`
}

// IsPublished reports whether the question is visible at now.
func (q Question) IsPublished(now time.Time) bool {
	return !q.PubDate.After(now)
}

// CanVote reports whether votes are accepted at now. The end date is
// exclusive.
func (q Question) CanVote(now time.Time) bool {
	return q.IsPublished(now) && now.Before(q.EndDate)
}

// WasPublishedRecently reports whether the publish date falls within the
// last RecentWindow, both bounds inclusive.
func (q Question) WasPublishedRecently(now time.Time) bool {
	return !q.PubDate.Before(now.Add(-RecentWindow)) && !q.PubDate.After(now)
}

func (q Question) Status(now time.Time) Status {
	switch {
	case !q.IsPublished(now):
		return StatusScheduled
	case q.CanVote(now):
		return StatusOpen
	default:
		return StatusClosed
	}
}

func (q Question) String() string {
	return q.Text
}

// QuestionWithChoices is a question together with its choices in display order.
type QuestionWithChoices struct {
	Question Question `json:"question"`
	Choices  []Choice `json:"choices"`
}

// NewQuestion is the input for creating a question.
type NewQuestion struct {
	Text    string
	PubDate time.Time
	EndDate time.Time
	Choices []string
}

// QuestionUpdate carries the fields an administrator may change. Nil fields
// are left as they are.
type QuestionUpdate struct {
	Text    *string
	PubDate *time.Time
	EndDate *time.Time
}

// Apply returns q with the update merged in, validated.
func (u QuestionUpdate) Apply(q Question) (Question, error) {
	if u.Text != nil {
		text, err := NormalizeText(*u.Text)
		if err != nil {
			return Question{}, fmt.Errorf("%w: %v", ErrInvalidQuestion, err)
		}
		q.Text = text
	}
	if u.PubDate != nil {
		q.PubDate = *u.PubDate
	}
	if u.EndDate != nil {
		q.EndDate = *u.EndDate
	}
	if err := ValidateSchedule(q.PubDate, q.EndDate); err != nil {
		return Question{}, err
	}
	return q, nil
}

// NormalizeText NFC-normalizes and trims s, then checks it is non-empty and
// within MaxTextLength characters.
func NormalizeText(s string) (string, error) {
	text := strings.TrimSpace(norm.NFC.String(s))
	if text == "" {
		return "", fmt.Errorf("text is required")
	}
	if n := utf8.RuneCountInString(text); n > MaxTextLength {
		return "", fmt.Errorf("text is %d characters, limit is %d", n, MaxTextLength)
	}
	return text, nil
}

// ValidateSchedule rejects windows that close before they open.
func ValidateSchedule(pub, end time.Time) error {
	if pub.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: pub_date and end_date are required", ErrInvalidSchedule)
	}
	if end.Before(pub) {
		return ErrInvalidSchedule
	}
	return nil
}
