// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service holds the voting rules and the administrative operations on top
// of a Store. It is safe for concurrent use as long as the Store is.
type Service struct {
	store     Store
	clock     Clock
	logger    *zap.SugaredLogger
	listLimit int
}

type Option func(*Service)

// WithListLimit caps ListPublished. Zero or less means no cap.
func WithListLimit(n int) Option {
	return func(s *Service) {
		s.listLimit = n
	}
}

func NewService(store Store, clock Clock, logger *zap.SugaredLogger, opts ...Option) *Service {
	if clock == nil {
		clock = SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	s := &Service{store: store, clock: clock, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the service clock's current time.
func (s *Service) Now() time.Time {
	return s.clock.Now()
}

// Ballot is one vote submission.
type Ballot struct {
	QuestionID string
	ChoiceID   string
	Voter      string // empty for anonymous
	IPHash     string
}

// CastVote checks eligibility and records exactly one vote for the chosen
// choice. It returns ErrQuestionNotFound, ErrVotingClosed,
// ErrNoChoiceSelected or ErrAlreadyVoted without touching any tally.
func (s *Service) CastVote(ctx context.Context, b Ballot) (Vote, error) {
	q, err := s.store.GetQuestion(ctx, b.QuestionID)
	if errors.Is(err, ErrNotFound) {
		return Vote{}, ErrQuestionNotFound
	}
	if err != nil {
		return Vote{}, fmt.Errorf("get question: %w", err)
	}

	now := s.clock.Now()
	if !q.CanVote(now) {
		return Vote{}, ErrVotingClosed
	}

	if b.ChoiceID == "" {
		return Vote{}, ErrNoChoiceSelected
	}
	choice, err := s.store.GetChoice(ctx, q.ID, b.ChoiceID)
	if errors.Is(err, ErrNotFound) {
		return Vote{}, ErrNoChoiceSelected
	}
	if err != nil {
		return Vote{}, fmt.Errorf("get choice: %w", err)
	}

	if b.Voter != "" {
		voted, err := s.store.HasVoted(ctx, q.ID, b.Voter)
		if err != nil {
			return Vote{}, fmt.Errorf("check ledger: %w", err)
		}
		if voted {
			return Vote{}, ErrAlreadyVoted
		}
	}

	vote := Vote{
		ID:         uuid.NewString(),
		QuestionID: q.ID,
		ChoiceID:   choice.ID,
		Voter:      b.Voter,
		IPHash:     b.IPHash,
		CreatedAt:  now,
	}

	err = s.store.RecordVote(ctx, vote)
	switch {
	case errors.Is(err, ErrDuplicateVote):
		return Vote{}, ErrAlreadyVoted
	case errors.Is(err, ErrNotFound):
		return Vote{}, ErrNoChoiceSelected
	case err != nil:
		return Vote{}, fmt.Errorf("record vote: %w", err)
	}

	s.logger.Infow("vote recorded",
		"question_id", q.ID,
		"choice_id", choice.ID,
		"anonymous", b.Voter == "",
	)
	return vote, nil
}

// ListPublished returns questions published at or before now, newest first.
func (s *Service) ListPublished(ctx context.Context) ([]Question, error) {
	questions, err := s.store.ListPublished(ctx, s.clock.Now(), s.listLimit)
	if err != nil {
		return nil, fmt.Errorf("list published: %w", err)
	}
	return questions, nil
}

// ListQuestions returns every question regardless of schedule.
func (s *Service) ListQuestions(ctx context.Context) ([]Question, error) {
	questions, err := s.store.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

// GetQuestion loads a question for the voting form. Unpublished questions
// are reported as not found; published ones that no longer accept votes
// return ErrVotingClosed.
func (s *Service) GetQuestion(ctx context.Context, id string) (QuestionWithChoices, error) {
	qc, err := s.loadPublished(ctx, id)
	if err != nil {
		return QuestionWithChoices{}, err
	}
	if !qc.Question.CanVote(s.clock.Now()) {
		return QuestionWithChoices{}, ErrVotingClosed
	}
	return qc, nil
}

// Results returns tallies for a published question.
func (s *Service) Results(ctx context.Context, id string) (Results, error) {
	qc, err := s.loadPublished(ctx, id)
	if err != nil {
		return Results{}, err
	}
	choices, total := Tally(qc.Choices)
	return Results{Question: qc.Question, Choices: choices, TotalVotes: total}, nil
}

// Load returns a question and its choices regardless of schedule. Used by
// administrative surfaces.
func (s *Service) Load(ctx context.Context, id string) (QuestionWithChoices, error) {
	q, err := s.store.GetQuestion(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return QuestionWithChoices{}, ErrQuestionNotFound
	}
	if err != nil {
		return QuestionWithChoices{}, fmt.Errorf("get question: %w", err)
	}
	choices, err := s.store.ListChoices(ctx, id)
	if err != nil {
		return QuestionWithChoices{}, fmt.Errorf("list choices: %w", err)
	}
	return QuestionWithChoices{Question: q, Choices: choices}, nil
}

func (s *Service) loadPublished(ctx context.Context, id string) (QuestionWithChoices, error) {
	qc, err := s.Load(ctx, id)
	if err != nil {
		return QuestionWithChoices{}, err
	}
	if !qc.Question.IsPublished(s.clock.Now()) {
		return QuestionWithChoices{}, ErrQuestionNotFound
	}
	return qc, nil
}

// CreateQuestion validates and stores a new question with its choices.
func (s *Service) CreateQuestion(ctx context.Context, nq NewQuestion) (QuestionWithChoices, error) {
	text, err := NormalizeText(nq.Text)
	if err != nil {
		return QuestionWithChoices{}, fmt.Errorf("%w: %v", ErrInvalidQuestion, err)
	}
	if err := ValidateSchedule(nq.PubDate, nq.EndDate); err != nil {
		return QuestionWithChoices{}, err
	}

	q := Question{
		ID:      uuid.NewString(),
		Text:    text,
		PubDate: nq.PubDate,
		EndDate: nq.EndDate,
	}

	choices := make([]Choice, 0, len(nq.Choices))
	for i, raw := range nq.Choices {
		ct, err := NormalizeText(raw)
		if err != nil {
			return QuestionWithChoices{}, fmt.Errorf("%w: choice %d: %v", ErrInvalidChoice, i+1, err)
		}
		choices = append(choices, Choice{
			ID:         uuid.NewString(),
			QuestionID: q.ID,
			Text:       ct,
			Position:   i + 1,
		})
	}

	if err := s.store.CreateQuestion(ctx, q, choices); err != nil {
		return QuestionWithChoices{}, fmt.Errorf("create question: %w", err)
	}

	s.logger.Infow("question created", "question_id", q.ID, "choices", len(choices))
	return QuestionWithChoices{Question: q, Choices: choices}, nil
}

// UpdateQuestion merges u into the stored question.
func (s *Service) UpdateQuestion(ctx context.Context, id string, u QuestionUpdate) (Question, error) {
	q, err := s.store.GetQuestion(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return Question{}, ErrQuestionNotFound
	}
	if err != nil {
		return Question{}, fmt.Errorf("get question: %w", err)
	}

	updated, err := u.Apply(q)
	if err != nil {
		return Question{}, err
	}
	if err := s.save(ctx, updated); err != nil {
		return Question{}, err
	}

	s.logger.Infow("question updated", "question_id", id)
	return updated, nil
}

// Publish makes the question visible now. Publishing a question that is
// already visible is a no-op. An end date already in the past is moved to
// now so the window stays ordered.
func (s *Service) Publish(ctx context.Context, id string) (Question, error) {
	now := s.clock.Now()
	var end *time.Time

	q, err := s.store.GetQuestion(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return Question{}, ErrQuestionNotFound
	}
	if err != nil {
		return Question{}, fmt.Errorf("get question: %w", err)
	}
	if q.IsPublished(now) {
		return q, nil
	}
	if q.EndDate.Before(now) {
		end = &now
	}
	return s.UpdateQuestion(ctx, id, QuestionUpdate{PubDate: &now, EndDate: end})
}

// Close stops voting now. Closing a question that has not been published
// yet is rejected.
func (s *Service) Close(ctx context.Context, id string) (Question, error) {
	now := s.clock.Now()

	q, err := s.store.GetQuestion(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return Question{}, ErrQuestionNotFound
	}
	if err != nil {
		return Question{}, fmt.Errorf("get question: %w", err)
	}
	if !q.IsPublished(now) {
		return Question{}, fmt.Errorf("%w: question is not published", ErrInvalidSchedule)
	}
	if !q.EndDate.After(now) {
		return q, nil
	}
	return s.UpdateQuestion(ctx, id, QuestionUpdate{EndDate: &now})
}

func (s *Service) save(ctx context.Context, q Question) error {
	err := s.store.UpdateQuestion(ctx, q)
	if errors.Is(err, ErrNotFound) {
		return ErrQuestionNotFound
	}
	if err != nil {
		return fmt.Errorf("update question: %w", err)
	}
	return nil
}

// DeleteQuestion removes a question, its choices and its ledger entries.
func (s *Service) DeleteQuestion(ctx context.Context, id string) error {
	err := s.store.DeleteQuestion(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return ErrQuestionNotFound
	}
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	s.logger.Infow("question deleted", "question_id", id)
	return nil
}

// AddChoice appends a choice to an existing question.
func (s *Service) AddChoice(ctx context.Context, questionID, text string) (Choice, error) {
	ct, err := NormalizeText(text)
	if err != nil {
		return Choice{}, fmt.Errorf("%w: %v", ErrInvalidChoice, err)
	}

	if _, err := s.store.GetQuestion(ctx, questionID); errors.Is(err, ErrNotFound) {
		return Choice{}, ErrQuestionNotFound
	} else if err != nil {
		return Choice{}, fmt.Errorf("get question: %w", err)
	}

	c, err := s.store.AddChoice(ctx, Choice{
		ID:         uuid.NewString(),
		QuestionID: questionID,
		Text:       ct,
	})
	if err != nil {
		return Choice{}, fmt.Errorf("add choice: %w", err)
	}

	s.logger.Infow("choice added", "question_id", questionID, "choice_id", c.ID)
	return c, nil
}

// DeleteChoice removes one choice and the ledger entries pointing at it.
func (s *Service) DeleteChoice(ctx context.Context, questionID, choiceID string) error {
	err := s.store.DeleteChoice(ctx, questionID, choiceID)
	if errors.Is(err, ErrNotFound) {
		return ErrChoiceNotFound
	}
	if err != nil {
		return fmt.Errorf("delete choice: %w", err)
	}
	s.logger.Infow("choice deleted", "question_id", questionID, "choice_id", choiceID)
	return nil
}

// ResetVotes zeroes every tally on the question and clears its ledger.
func (s *Service) ResetVotes(ctx context.Context, questionID string) error {
	err := s.store.ResetVotes(ctx, questionID)
	if errors.Is(err, ErrNotFound) {
		return ErrQuestionNotFound
	}
	if err != nil {
		return fmt.Errorf("reset votes: %w", err)
	}
	s.logger.Infow("votes reset", "question_id", questionID)
	return nil
}

// RegisterVoter stores a new identity for token.
func (s *Service) RegisterVoter(ctx context.Context, token string) (Voter, error) {
	now := s.clock.Now()
	v := Voter{
		ID:         uuid.NewString(),
		Token:      token,
		CreatedAt:  now,
		LastSeenAt: now,
	}
	if err := s.store.CreateVoter(ctx, v); err != nil {
		return Voter{}, fmt.Errorf("create voter: %w", err)
	}
	s.logger.Infow("voter registered", "voter_id", v.ID)
	return v, nil
}

// Authenticate resolves a voter token and records the visit.
func (s *Service) Authenticate(ctx context.Context, token string) (Voter, error) {
	v, err := s.store.GetVoterByToken(ctx, token)
	if errors.Is(err, ErrNotFound) {
		return Voter{}, ErrVoterNotFound
	}
	if err != nil {
		return Voter{}, fmt.Errorf("get voter: %w", err)
	}

	now := s.clock.Now()
	if err := s.store.TouchVoter(ctx, v.ID, now); err != nil {
		// Non-fatal: the identity is valid even if last_seen_at is stale
		s.logger.Warnw("failed to touch voter", "voter_id", v.ID, "error", err)
	} else {
		v.LastSeenAt = now
	}
	return v, nil
}

// VoterHistory lists the ledger entries cast by voter, newest first.
func (s *Service) VoterHistory(ctx context.Context, voter string) ([]Vote, error) {
	votes, err := s.store.ListVotesByVoter(ctx, voter)
	if err != nil {
		return nil, fmt.Errorf("list votes: %w", err)
	}
	return votes, nil
}
