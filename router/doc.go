// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the polls API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(svc, cfg, logger)

Every route is wrapped with middleware.WithLogging.

# Endpoints

Health:

	GET /health
	GET /

Voting (public):

	GET  /questions               - Published questions, newest first
	GET  /questions/{id}          - Voting form (303 to /questions once closed)
	POST /questions/{id}/vote     - Cast a vote (303 to results)
	GET  /questions/{id}/results  - Tallies, shares and ranks

Question management (X-Admin-Key, except create):

	POST   /questions                           - Create, returns admin_key
	GET    /questions/{id}/admin                - Any schedule, with tallies
	PATCH  /questions/{id}                      - Edit text or schedule
	DELETE /questions/{id}                      - Delete with choices and votes
	POST   /questions/{id}/choices              - Add a choice
	DELETE /questions/{id}/choices/{choiceID}   - Remove a choice
	POST   /questions/{id}/publish              - Publish now
	POST   /questions/{id}/close                - Stop voting now
	POST   /questions/{id}/reset                - Zero tallies

Voter identity (X-Voter-Token):

	POST /voters/register  - Issue a voter token
	GET  /voters/me        - Identity and vote count
	GET  /voters/me/votes  - Vote history

The vote route resolves X-Voter-Token when present; without it the vote is
anonymous.
*/
package router
