// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package memstore is an in-memory polls.Store. One mutex guards all state,
// so every method, RecordVote included, is atomic.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/danielhkuo/pollbooth/polls"
)

type Store struct {
	mu        sync.Mutex
	questions map[string]polls.Question
	choices   map[string]polls.Choice // by choice id
	votes     []polls.Vote
	voters    map[string]polls.Voter // by id
}

func New() *Store {
	return &Store{
		questions: make(map[string]polls.Question),
		choices:   make(map[string]polls.Choice),
		voters:    make(map[string]polls.Voter),
	}
}

func (s *Store) GetQuestion(ctx context.Context, id string) (polls.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.questions[id]
	if !ok {
		return polls.Question{}, polls.ErrNotFound
	}
	return q, nil
}

func (s *Store) ListPublished(ctx context.Context, now time.Time, limit int) ([]polls.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := []polls.Question{}
	for _, q := range s.questions {
		if q.IsPublished(now) {
			list = append(list, q)
		}
	}
	sortNewestFirst(list)
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (s *Store) ListQuestions(ctx context.Context) ([]polls.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]polls.Question, 0, len(s.questions))
	for _, q := range s.questions {
		list = append(list, q)
	}
	sortNewestFirst(list)
	return list, nil
}

func sortNewestFirst(list []polls.Question) {
	sort.Slice(list, func(i, j int) bool {
		if !list[i].PubDate.Equal(list[j].PubDate) {
			return list[i].PubDate.After(list[j].PubDate)
		}
		return list[i].ID < list[j].ID
	})
}

func (s *Store) CreateQuestion(ctx context.Context, q polls.Question, choices []polls.Choice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.questions[q.ID] = q
	for _, c := range choices {
		s.choices[c.ID] = c
	}
	return nil
}

func (s *Store) UpdateQuestion(ctx context.Context, q polls.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.questions[q.ID]; !ok {
		return polls.ErrNotFound
	}
	s.questions[q.ID] = q
	return nil
}

func (s *Store) DeleteQuestion(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.questions[id]; !ok {
		return polls.ErrNotFound
	}
	delete(s.questions, id)
	for cid, c := range s.choices {
		if c.QuestionID == id {
			delete(s.choices, cid)
		}
	}
	s.dropVotes(func(v polls.Vote) bool { return v.QuestionID == id })
	return nil
}

func (s *Store) GetChoice(ctx context.Context, questionID, choiceID string) (polls.Choice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.choices[choiceID]
	if !ok || c.QuestionID != questionID {
		return polls.Choice{}, polls.ErrNotFound
	}
	return c, nil
}

func (s *Store) ListChoices(ctx context.Context, questionID string) ([]polls.Choice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.choicesOf(questionID), nil
}

func (s *Store) choicesOf(questionID string) []polls.Choice {
	list := []polls.Choice{}
	for _, c := range s.choices {
		if c.QuestionID == questionID {
			list = append(list, c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Position < list[j].Position })
	return list
}

func (s *Store) AddChoice(ctx context.Context, c polls.Choice) (polls.Choice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.questions[c.QuestionID]; !ok {
		return polls.Choice{}, polls.ErrNotFound
	}
	pos := 0
	for _, existing := range s.choicesOf(c.QuestionID) {
		if existing.Position > pos {
			pos = existing.Position
		}
	}
	c.Position = pos + 1
	c.Votes = 0
	s.choices[c.ID] = c
	return c, nil
}

func (s *Store) DeleteChoice(ctx context.Context, questionID, choiceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.choices[choiceID]
	if !ok || c.QuestionID != questionID {
		return polls.ErrNotFound
	}
	delete(s.choices, choiceID)
	s.dropVotes(func(v polls.Vote) bool { return v.ChoiceID == choiceID })
	return nil
}

func (s *Store) ResetVotes(ctx context.Context, questionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.questions[questionID]; !ok {
		return polls.ErrNotFound
	}
	for id, c := range s.choices {
		if c.QuestionID == questionID {
			c.Votes = 0
			s.choices[id] = c
		}
	}
	s.dropVotes(func(v polls.Vote) bool { return v.QuestionID == questionID })
	return nil
}

func (s *Store) HasVoted(ctx context.Context, questionID, voter string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.hasVoted(questionID, voter), nil
}

func (s *Store) hasVoted(questionID, voter string) bool {
	for _, v := range s.votes {
		if v.QuestionID == questionID && v.Voter == voter {
			return true
		}
	}
	return false
}

func (s *Store) RecordVote(ctx context.Context, v polls.Vote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.choices[v.ChoiceID]
	if !ok || c.QuestionID != v.QuestionID {
		return polls.ErrNotFound
	}
	if v.Voter != "" && s.hasVoted(v.QuestionID, v.Voter) {
		return polls.ErrDuplicateVote
	}

	c.Votes++
	s.choices[c.ID] = c
	s.votes = append(s.votes, v)
	return nil
}

func (s *Store) ListVotesByVoter(ctx context.Context, voter string) ([]polls.Vote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := []polls.Vote{}
	for i := len(s.votes) - 1; i >= 0; i-- {
		if s.votes[i].Voter == voter {
			list = append(list, s.votes[i])
		}
	}
	return list, nil
}

// dropVotes removes ledger entries matching fn. Caller holds mu.
func (s *Store) dropVotes(fn func(polls.Vote) bool) {
	kept := s.votes[:0]
	for _, v := range s.votes {
		if !fn(v) {
			kept = append(kept, v)
		}
	}
	s.votes = kept
}

func (s *Store) CreateVoter(ctx context.Context, v polls.Voter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.voters[v.ID] = v
	return nil
}

func (s *Store) GetVoterByToken(ctx context.Context, token string) (polls.Voter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range s.voters {
		if v.Token == token {
			return v, nil
		}
	}
	return polls.Voter{}, polls.ErrNotFound
}

func (s *Store) TouchVoter(ctx context.Context, id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.voters[id]
	if !ok {
		return polls.ErrNotFound
	}
	v.LastSeenAt = at
	s.voters[id] = v
	return nil
}
