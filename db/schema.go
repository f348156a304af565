// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The same statements run on postgres and sqlite.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Questions
CREATE TABLE IF NOT EXISTS question (
    id TEXT PRIMARY KEY,
    question_text VARCHAR(200) NOT NULL,
    pub_date TIMESTAMP NOT NULL,
    end_date TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_question_pub_date ON question(pub_date);

-- Choices
CREATE TABLE IF NOT EXISTS choice (
    id TEXT PRIMARY KEY,
    question_id TEXT NOT NULL REFERENCES question(id) ON DELETE CASCADE,
    choice_text VARCHAR(200) NOT NULL,
    votes INTEGER NOT NULL DEFAULT 0 CHECK (votes >= 0),
    sort_order INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_choice_question_id ON choice(question_id);

-- Voters
CREATE TABLE IF NOT EXISTS voter (
    id TEXT PRIMARY KEY,
    token TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL,
    last_seen_at TIMESTAMP NOT NULL
);

-- Vote ledger
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    question_id TEXT NOT NULL REFERENCES question(id) ON DELETE CASCADE,
    choice_id TEXT NOT NULL REFERENCES choice(id) ON DELETE CASCADE,
    voter_id TEXT,
    ip_hash TEXT,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vote_question_id ON vote(question_id);
CREATE INDEX IF NOT EXISTS idx_vote_voter_id ON vote(voter_id);
CREATE UNIQUE INDEX IF NOT EXISTS idx_vote_question_voter ON vote(question_id, voter_id) WHERE voter_id IS NOT NULL;
`
