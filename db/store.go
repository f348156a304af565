// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/pollbooth/polls"
)

// Store implements polls.Store on database/sql. Queries use $N placeholders,
// which both lib/pq and modernc sqlite accept. Times are written in UTC so
// sqlite's text timestamps compare in chronological order.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying connection pool.
func (s *Store) DB() *sql.DB {
	return s.db
}

type scanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row scanner) (polls.Question, error) {
	var q polls.Question
	if err := row.Scan(&q.ID, &q.Text, &q.PubDate, &q.EndDate); err != nil {
		return polls.Question{}, err
	}
	q.PubDate = q.PubDate.UTC()
	q.EndDate = q.EndDate.UTC()
	return q, nil
}

func scanChoice(row scanner) (polls.Choice, error) {
	var c polls.Choice
	err := row.Scan(&c.ID, &c.QuestionID, &c.Text, &c.Votes, &c.Position)
	return c, err
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// ---------- Questions ----------

const questionColumns = `id, question_text, pub_date, end_date`

func (s *Store) GetQuestion(ctx context.Context, id string) (polls.Question, error) {
	q, err := scanQuestion(s.db.QueryRowContext(ctx, `
		SELECT `+questionColumns+` FROM question WHERE id = $1
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return polls.Question{}, polls.ErrNotFound
	}
	if err != nil {
		return polls.Question{}, fmt.Errorf("failed to query question: %w", err)
	}
	return q, nil
}

func (s *Store) ListPublished(ctx context.Context, now time.Time, limit int) ([]polls.Question, error) {
	query := `
		SELECT ` + questionColumns + ` FROM question
		WHERE pub_date <= $1
		ORDER BY pub_date DESC, id`
	args := []any{now.UTC()}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	return s.queryQuestions(ctx, query, args...)
}

func (s *Store) ListQuestions(ctx context.Context) ([]polls.Question, error) {
	return s.queryQuestions(ctx, `
		SELECT `+questionColumns+` FROM question
		ORDER BY pub_date DESC, id
	`)
}

func (s *Store) queryQuestions(ctx context.Context, query string, args ...any) ([]polls.Question, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	questions := []polls.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate questions: %w", err)
	}
	return questions, nil
}

func (s *Store) CreateQuestion(ctx context.Context, q polls.Question, choices []polls.Choice) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO question (id, question_text, pub_date, end_date)
		VALUES ($1, $2, $3, $4)
	`, q.ID, q.Text, q.PubDate.UTC(), q.EndDate.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert question: %w", err)
	}

	for _, c := range choices {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO choice (id, question_id, choice_text, votes, sort_order)
			VALUES ($1, $2, $3, $4, $5)
		`, c.ID, q.ID, c.Text, c.Votes, c.Position)
		if err != nil {
			return fmt.Errorf("failed to insert choice: %w", err)
		}
	}

	return tx.Commit()
}

func (s *Store) UpdateQuestion(ctx context.Context, q polls.Question) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE question
		SET question_text = $1, pub_date = $2, end_date = $3
		WHERE id = $4
	`, q.Text, q.PubDate.UTC(), q.EndDate.UTC(), q.ID)
	if err != nil {
		return fmt.Errorf("failed to update question: %w", err)
	}
	return expectRows(res)
}

func (s *Store) DeleteQuestion(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM question WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	return expectRows(res)
}

// expectRows maps "no row touched" to polls.ErrNotFound.
func expectRows(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return polls.ErrNotFound
	}
	return nil
}

// ---------- Choices ----------

const choiceColumns = `id, question_id, choice_text, votes, sort_order`

func (s *Store) GetChoice(ctx context.Context, questionID, choiceID string) (polls.Choice, error) {
	c, err := scanChoice(s.db.QueryRowContext(ctx, `
		SELECT `+choiceColumns+` FROM choice WHERE id = $1 AND question_id = $2
	`, choiceID, questionID))
	if errors.Is(err, sql.ErrNoRows) {
		return polls.Choice{}, polls.ErrNotFound
	}
	if err != nil {
		return polls.Choice{}, fmt.Errorf("failed to query choice: %w", err)
	}
	return c, nil
}

func (s *Store) ListChoices(ctx context.Context, questionID string) ([]polls.Choice, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+choiceColumns+` FROM choice
		WHERE question_id = $1
		ORDER BY sort_order, id
	`, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query choices: %w", err)
	}
	defer rows.Close()

	choices := []polls.Choice{}
	for rows.Next() {
		c, err := scanChoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan choice: %w", err)
		}
		choices = append(choices, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate choices: %w", err)
	}
	return choices, nil
}

func (s *Store) AddChoice(ctx context.Context, c polls.Choice) (polls.Choice, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return polls.Choice{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM question WHERE id = $1)
	`, c.QuestionID).Scan(&exists)
	if err != nil {
		return polls.Choice{}, fmt.Errorf("failed to query question: %w", err)
	}
	if !exists {
		return polls.Choice{}, polls.ErrNotFound
	}

	var last int
	err = tx.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(sort_order), 0) FROM choice WHERE question_id = $1
	`, c.QuestionID).Scan(&last)
	if err != nil {
		return polls.Choice{}, fmt.Errorf("failed to query choice order: %w", err)
	}

	c.Position = last + 1
	c.Votes = 0
	_, err = tx.ExecContext(ctx, `
		INSERT INTO choice (id, question_id, choice_text, votes, sort_order)
		VALUES ($1, $2, $3, 0, $4)
	`, c.ID, c.QuestionID, c.Text, c.Position)
	if err != nil {
		return polls.Choice{}, fmt.Errorf("failed to insert choice: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return polls.Choice{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return c, nil
}

func (s *Store) DeleteChoice(ctx context.Context, questionID, choiceID string) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM choice WHERE id = $1 AND question_id = $2
	`, choiceID, questionID)
	if err != nil {
		return fmt.Errorf("failed to delete choice: %w", err)
	}
	return expectRows(res)
}

func (s *Store) ResetVotes(ctx context.Context, questionID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM question WHERE id = $1)
	`, questionID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to query question: %w", err)
	}
	if !exists {
		return polls.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `UPDATE choice SET votes = 0 WHERE question_id = $1`, questionID); err != nil {
		return fmt.Errorf("failed to reset tallies: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM vote WHERE question_id = $1`, questionID); err != nil {
		return fmt.Errorf("failed to clear ledger: %w", err)
	}

	return tx.Commit()
}

// ---------- Votes ----------

func (s *Store) HasVoted(ctx context.Context, questionID, voter string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM vote
			WHERE question_id = $1 AND voter_id = $2
		)
	`, questionID, voter).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to query ledger: %w", err)
	}
	return exists, nil
}

// RecordVote increments the tally in SQL and inserts the ledger row in the
// same transaction. The UPDATE takes the row lock first, so concurrent votes
// on one choice queue behind each other instead of losing increments.
func (s *Store) RecordVote(ctx context.Context, v polls.Vote) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE choice SET votes = votes + 1
		WHERE id = $1 AND question_id = $2
	`, v.ChoiceID, v.QuestionID)
	if err != nil {
		return fmt.Errorf("failed to increment tally: %w", err)
	}
	if err := expectRows(res); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO vote (id, question_id, choice_id, voter_id, ip_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, v.ID, v.QuestionID, v.ChoiceID, nullable(v.Voter), nullable(v.IPHash), v.CreatedAt.UTC())
	if isUniqueViolation(err) {
		return polls.ErrDuplicateVote
	}
	if err != nil {
		return fmt.Errorf("failed to insert vote: %w", err)
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return polls.ErrDuplicateVote
		}
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *Store) ListVotesByVoter(ctx context.Context, voter string) ([]polls.Vote, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question_id, choice_id, voter_id, ip_hash, created_at
		FROM vote
		WHERE voter_id = $1
		ORDER BY created_at DESC, id
	`, voter)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	votes := []polls.Vote{}
	for rows.Next() {
		var (
			v      polls.Vote
			voter  sql.NullString
			ipHash sql.NullString
		)
		if err := rows.Scan(&v.ID, &v.QuestionID, &v.ChoiceID, &voter, &ipHash, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		v.Voter = voter.String
		v.IPHash = ipHash.String
		v.CreatedAt = v.CreatedAt.UTC()
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate votes: %w", err)
	}
	return votes, nil
}

// ---------- Voters ----------

func (s *Store) CreateVoter(ctx context.Context, v polls.Voter) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO voter (id, token, created_at, last_seen_at)
		VALUES ($1, $2, $3, $4)
	`, v.ID, v.Token, v.CreatedAt.UTC(), v.LastSeenAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert voter: %w", err)
	}
	return nil
}

func (s *Store) GetVoterByToken(ctx context.Context, token string) (polls.Voter, error) {
	var v polls.Voter
	err := s.db.QueryRowContext(ctx, `
		SELECT id, token, created_at, last_seen_at FROM voter WHERE token = $1
	`, token).Scan(&v.ID, &v.Token, &v.CreatedAt, &v.LastSeenAt)
	if errors.Is(err, sql.ErrNoRows) {
		return polls.Voter{}, polls.ErrNotFound
	}
	if err != nil {
		return polls.Voter{}, fmt.Errorf("failed to query voter: %w", err)
	}
	v.CreatedAt = v.CreatedAt.UTC()
	v.LastSeenAt = v.LastSeenAt.UTC()
	return v, nil
}

func (s *Store) TouchVoter(ctx context.Context, id string, at time.Time) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE voter SET last_seen_at = $1 WHERE id = $2
	`, at.UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update voter: %w", err)
	}
	return expectRows(res)
}
