// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import "time"

type Choice struct {
	ID         string `json:"id"`
	QuestionID string `json:"question_id"`
	Text       string `json:"text"`
	Votes      int    `json:"votes"`
	Position   int    `json:"position"`
}

func (c Choice) String() string {
	return c.Text
}

// Vote is a ledger entry written for every accepted vote. Voter is empty for
// anonymous votes.
type Vote struct {
	ID         string    `json:"id"`
	QuestionID string    `json:"question_id"`
	ChoiceID   string    `json:"choice_id"`
	Voter      string    `json:"-"`
	IPHash     string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

// Voter is the identity behind a voter token.
type Voter struct {
	ID         string    `json:"id"`
	Token      string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	LastSeenAt time.Time `json:"last_seen_at"`
}
