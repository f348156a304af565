// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

Domain types (Question, Choice, Vote, Voter) live in package polls and are
embedded here where a response carries them.

# Request Types

  - CreateQuestionRequest: text, pub_date, end_date, choices
  - UpdateQuestionRequest: optional text, pub_date, end_date
  - AddChoiceRequest: text
  - VoteRequest: choice (also accepted as a form field)

# Response Types

  - CreateQuestionResponse: question_id, admin_key, question, choices
  - QuestionListResponse: questions with status and was_published_recently
  - QuestionDetailResponse: question, choices, status
  - VoteResponse: vote_id, message, results_url
  - VoteErrorResponse: error, message, and either the question to re-render
    or the listing to redirect to
  - RegisterVoterResponse: voter_id, voter_token
  - VoterResponse, VoterVotesResponse: identity and vote history
  - ErrorResponse: error, message

# Messages

	MessageNoChoice  = "You didn't select a choice."
	MessagePollEnded = "This poll has already ended."
*/
package models
