// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package polls holds the question lifecycle and the voting rules.

# Lifecycle

A Question has a publish date and an end date. Every predicate takes the
current time explicitly:

	q.IsPublished(now)          // PubDate <= now
	q.CanVote(now)              // PubDate <= now < EndDate
	q.WasPublishedRecently(now) // now-24h <= PubDate <= now

Status(now) folds these into scheduled, open or closed.

# Voting

Service.CastVote runs the checks in order and stops at the first failure:

	ErrQuestionNotFound  question id is unknown
	ErrVotingClosed      CanVote(now) is false
	ErrNoChoiceSelected  choice id is empty or belongs to another question
	ErrAlreadyVoted      identified voter already has a ledger entry

On success the Store records the ledger entry and increments the tally in
one atomic step. Anonymous votes (empty voter) are never de-duplicated.

# Storage

Store is implemented by db.Store (postgres, sqlite) and memstore.Store.
Time comes from a Clock so tests can pin it with FixedClock.
*/
package polls
