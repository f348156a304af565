// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"time"

	"github.com/danielhkuo/pollbooth/polls"
)

// User-facing messages
const (
	MessageNoChoice     = "You didn't select a choice."
	MessagePollEnded    = "This poll has already ended."
	MessageVoted        = "Vote recorded"
	MessageAlreadyVoted = "You have already voted on this question."
)

// Request types

type CreateQuestionRequest struct {
	Text    string     `json:"text"`
	PubDate *time.Time `json:"pub_date,omitempty"` // defaults to now
	EndDate *time.Time `json:"end_date"`
	Choices []string   `json:"choices"`
}

// Nil fields are left unchanged
type UpdateQuestionRequest struct {
	Text    *string    `json:"text,omitempty"`
	PubDate *time.Time `json:"pub_date,omitempty"`
	EndDate *time.Time `json:"end_date,omitempty"`
}

type AddChoiceRequest struct {
	Text string `json:"text"`
}

type VoteRequest struct {
	Choice string `json:"choice"`
}

// Response types

type CreateQuestionResponse struct {
	QuestionID string         `json:"question_id"`
	AdminKey   string         `json:"admin_key"`
	Question   polls.Question `json:"question"`
	Choices    []polls.Choice `json:"choices"`
}

type QuestionSummary struct {
	polls.Question
	Status               polls.Status `json:"status"`
	WasPublishedRecently bool         `json:"was_published_recently"`
}

type QuestionListResponse struct {
	Questions []QuestionSummary `json:"questions"`
}

type QuestionDetailResponse struct {
	Question polls.Question `json:"question"`
	Choices  []polls.Choice `json:"choices"`
	Status   polls.Status   `json:"status"`
}

type VoteResponse struct {
	VoteID     string `json:"vote_id"`
	Message    string `json:"message"`
	ResultsURL string `json:"results_url"`
}

// VoteErrorResponse is returned when a vote is refused. Question is set when
// the client should show the voting form again; Redirect when it should go
// back to the listing.
type VoteErrorResponse struct {
	Error    string                     `json:"error"`
	Message  string                     `json:"message"`
	Question *polls.QuestionWithChoices `json:"question,omitempty"`
	Redirect string                     `json:"redirect,omitempty"`
}

type RegisterVoterResponse struct {
	VoterID    string `json:"voter_id"`
	VoterToken string `json:"voter_token"`
}

type VoterResponse struct {
	Voter     polls.Voter `json:"voter"`
	VoteCount int         `json:"vote_count"`
}

type VoterVotesResponse struct {
	Votes []polls.Vote `json:"votes"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
