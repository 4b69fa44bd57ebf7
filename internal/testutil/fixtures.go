// Package testutil provides shared fixtures for package tests.
package testutil

import (
	"time"

	"github.com/alexanderramin/wardrisk/internal/domain"
)

// FullAnswerSet answers every catalog question for every given hazard,
// picking the second option where one exists so tests see non-zero labels.
func FullAnswerSet(hazards ...string) domain.AnswerSet {
	answers := make(domain.AnswerSet)
	for _, h := range hazards {
		for _, q := range domain.AllQuestions() {
			opt := q.Options[0]
			if len(q.Options) > 1 {
				opt = q.Options[1]
			}
			answers[domain.AnswerKey{Hazard: h, QuestionID: q.ID}] = opt
		}
	}
	return answers
}

// SubmissionOption customizes a test submission.
type SubmissionOption func(*domain.Submission)

func WithEmail(email string) SubmissionOption {
	return func(s *domain.Submission) { s.Email = email }
}

func WithDate(date time.Time) SubmissionOption {
	return func(s *domain.Submission) { s.Date = date }
}

// NewTestSubmission builds a fully-answered submission for the given ward,
// respondent and hazards.
func NewTestSubmission(ward, name string, hazards []string, opts ...SubmissionOption) *domain.Submission {
	answers := FullAnswerSet(hazards...)
	var records []domain.ResponseRecord
	for _, h := range hazards {
		for _, q := range domain.AllQuestions() {
			records = append(records, domain.ResponseRecord{
				Hazard:   h,
				Question: q.Prompt,
				Response: answers[domain.AnswerKey{Hazard: h, QuestionID: q.ID}],
			})
		}
	}

	sub := &domain.Submission{
		ID:             "test-submission",
		RespondentName: name,
		Ward:           ward,
		Date:           time.Date(2025, 6, 15, 10, 30, 45, 0, time.UTC),
		Records:        records,
	}
	for _, opt := range opts {
		opt(sub)
	}
	return sub
}
