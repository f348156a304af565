// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/pollbooth/polls"
)

// Fixture is the file format read by seed and written by export. It carries
// no ids so a dump can be loaded into another database.
type Fixture struct {
	Questions []FixtureQuestion `yaml:"questions" json:"questions"`
}

type FixtureQuestion struct {
	Text    string          `yaml:"text" json:"text"`
	PubDate time.Time       `yaml:"pub_date" json:"pub_date"`
	EndDate time.Time       `yaml:"end_date" json:"end_date"`
	Choices []FixtureChoice `yaml:"choices" json:"choices"`
}

// Votes is informational. Seeding never sets a tally; tallies only move
// when votes are cast.
type FixtureChoice struct {
	Text  string `yaml:"text" json:"text"`
	Votes int    `yaml:"votes" json:"votes"`
}

// ReadFixture decodes a YAML fixture. JSON is valid YAML, so exports in
// either format can be read back.
func ReadFixture(r io.Reader) (Fixture, error) {
	var f Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return Fixture{}, nil
		}
		return Fixture{}, fmt.Errorf("failed to parse fixture: %w", err)
	}
	return f, nil
}

// buildFixture loads every question with its choices, in listing order.
func buildFixture(ctx context.Context, svc *polls.Service) (Fixture, error) {
	questions, err := svc.ListQuestions(ctx)
	if err != nil {
		return Fixture{}, err
	}

	f := Fixture{Questions: make([]FixtureQuestion, 0, len(questions))}
	for _, q := range questions {
		qc, err := svc.Load(ctx, q.ID)
		if err != nil {
			return Fixture{}, fmt.Errorf("load %s: %w", q.ID, err)
		}
		fq := FixtureQuestion{
			Text:    qc.Question.Text,
			PubDate: qc.Question.PubDate,
			EndDate: qc.Question.EndDate,
			Choices: make([]FixtureChoice, 0, len(qc.Choices)),
		}
		for _, c := range qc.Choices {
			fq.Choices = append(fq.Choices, FixtureChoice{Text: c.Text, Votes: c.Votes})
		}
		f.Questions = append(f.Questions, fq)
	}
	return f, nil
}
