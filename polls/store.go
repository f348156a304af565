// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/danielhkuo/pollbooth/polls Store

import (
	"context"
	"time"
)

// Store is the storage collaborator. Lookups that find nothing return
// ErrNotFound. RecordVote must insert the ledger entry and increment the
// choice tally as one atomic unit; it returns ErrDuplicateVote when the
// (question, voter) pair already exists and ErrNotFound when the choice is
// gone.
type Store interface {
	GetQuestion(ctx context.Context, id string) (Question, error)
	ListPublished(ctx context.Context, now time.Time, limit int) ([]Question, error)
	ListQuestions(ctx context.Context) ([]Question, error)
	CreateQuestion(ctx context.Context, q Question, choices []Choice) error
	UpdateQuestion(ctx context.Context, q Question) error
	DeleteQuestion(ctx context.Context, id string) error

	GetChoice(ctx context.Context, questionID, choiceID string) (Choice, error)
	ListChoices(ctx context.Context, questionID string) ([]Choice, error)
	AddChoice(ctx context.Context, c Choice) (Choice, error)
	DeleteChoice(ctx context.Context, questionID, choiceID string) error
	ResetVotes(ctx context.Context, questionID string) error

	HasVoted(ctx context.Context, questionID, voter string) (bool, error)
	RecordVote(ctx context.Context, v Vote) error
	ListVotesByVoter(ctx context.Context, voter string) ([]Vote, error)

	CreateVoter(ctx context.Context, v Voter) error
	GetVoterByToken(ctx context.Context, token string) (Voter, error)
	TouchVoter(ctx context.Context, id string, at time.Time) error
}
