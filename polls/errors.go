// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import "errors"

// Outcomes of CastVote other than success. The presentation layer decides
// how each is shown; none of them leaves a partial tally mutation behind.
var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrVotingClosed     = errors.New("voting is closed")
	ErrNoChoiceSelected = errors.New("no choice selected")
	ErrAlreadyVoted     = errors.New("already voted")
)

// Administrative and validation errors.
var (
	ErrInvalidQuestion = errors.New("invalid question")
	ErrInvalidChoice   = errors.New("invalid choice")
	ErrInvalidSchedule = errors.New("end date precedes publish date")
	ErrChoiceNotFound  = errors.New("choice not found")
	ErrVoterNotFound   = errors.New("voter not found")
)

// Errors returned by Store implementations.
var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateVote = errors.New("duplicate vote")
)
