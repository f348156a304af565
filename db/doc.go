// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections, schema creation and the SQL
implementation of polls.Store.

# Connecting

Open accepts "postgres" (lib/pq) or "sqlite" (modernc, pure Go):

	conn, err := db.Open(db.TypeSQLite, "file:polls.db")

SQLite connections get foreign_keys, busy_timeout and WAL pragmas and are
limited to a single open connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - question: text and publish/end window
  - choice: answers with a vote tally and display order
  - voter: voter tokens
  - vote: ledger of accepted votes

# Relationships

	question 1──* choice
	question 1──* vote
	choice   1──* vote

All foreign keys use ON DELETE CASCADE. A partial unique index on
vote(question_id, voter_id) allows one vote per identified voter per
question; anonymous rows (NULL voter_id) are not constrained.

# Store

NewStore wraps a connection as a polls.Store. RecordVote increments the
tally with UPDATE ... SET votes = votes + 1 and inserts the ledger row in
one transaction.
*/
package db
