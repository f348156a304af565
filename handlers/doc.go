// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the polls API.

# Handler Types

Each handler is a struct holding the polls.Service, configuration and a
zap logger:

  - QuestionHandler: listing, voting form, vote submission, results
  - AdminHandler: question and choice management behind admin keys
  - VoterHandler: voter registration and vote history

Handlers are created via constructor functions:

	questionHandler := handlers.NewQuestionHandler(svc, cfg, logger)

# Voting

	GET  /questions                → List (published, newest first)
	GET  /questions/{id}           → Detail
	POST /questions/{id}/vote      → Vote
	GET  /questions/{id}/results   → Results

Service errors map to responses:

	ErrQuestionNotFound  → 404
	ErrVotingClosed      → 303 to /questions, "This poll has already ended."
	ErrNoChoiceSelected  → 422 with the question, "You didn't select a choice."
	ErrAlreadyVoted      → 409
	anything else        → 500 "Database error", logged

A successful vote answers 303 with Location pointing at the results. The
vote body is either JSON {"choice": "<id>"} or a form field named choice.
The caller's IP address is hashed with IP_HASH_SALT before it is stored.

# Question Management

Create returns the admin key for the new question. It is derived from the
question id with HMAC, so it is never stored and cannot be recovered if lost.
Other admin routes require it in X-Admin-Key (see middleware.RequireAdminKey).
Validation failures (text, choices, schedule) map to 400.

# Voter Identity

Register issues a random token. Votes sent with X-Voter-Token are recorded
against the voter and limited to one per question; votes without it are
anonymous and never de-duplicated.
*/
package handlers
