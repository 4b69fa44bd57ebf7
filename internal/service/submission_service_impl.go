package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/wardrisk/internal/contract"
	"github.com/alexanderramin/wardrisk/internal/domain"
	"github.com/alexanderramin/wardrisk/internal/mail"
	"github.com/alexanderramin/wardrisk/internal/survey"
)

type submissionService struct {
	renderer Renderer
	mailer   mail.Dispatcher
	admins   []string
	clock    func() time.Time
	observer PipelineObserver
}

// SubmissionOption customizes the submission service.
type SubmissionOption func(*submissionService)

// WithClock overrides the submission timestamp source.
func WithClock(clock func() time.Time) SubmissionOption {
	return func(s *submissionService) { s.clock = clock }
}

// WithObserver attaches pipeline telemetry.
func WithObserver(obs PipelineObserver) SubmissionOption {
	return func(s *submissionService) {
		if obs != nil {
			s.observer = obs
		}
	}
}

func NewSubmissionService(renderer Renderer, mailer mail.Dispatcher, adminEmails []string, opts ...SubmissionOption) SubmissionService {
	s := &submissionService{
		renderer: renderer,
		mailer:   mailer,
		admins:   adminEmails,
		clock:    time.Now,
		observer: NoopPipelineObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit runs the whole pipeline for one survey: validate, aggregate,
// render, deliver. Validation and export failures abort with nothing (more)
// persisted; delivery failures degrade to warnings on the result because
// the files already exist on disk for manual follow-up.
func (s *submissionService) Submit(ctx context.Context, req contract.SubmitRequest) (*contract.SubmitResult, error) {
	started := s.clock()
	result, err := s.submit(ctx, req, started)

	event := PipelineEvent{
		Duration:  s.clock().Sub(started),
		Success:   err == nil,
		Err:       err,
		Ward:      req.Ward,
		StartedAt: started,
	}
	if result != nil {
		event.HazardCount = result.HazardCount
		event.RecordCount = result.RecordCount
		event.Warnings = len(result.DeliveryWarnings)
	}
	s.observer.ObserveSubmission(ctx, event)

	return result, err
}

func (s *submissionService) submit(ctx context.Context, req contract.SubmitRequest, now time.Time) (*contract.SubmitResult, error) {
	if strings.TrimSpace(req.RespondentName) == "" {
		return nil, domain.ErrNameRequired
	}
	if strings.TrimSpace(req.Ward) == "" {
		return nil, domain.ErrWardRequired
	}

	records, err := survey.Aggregate(req.Hazards, req.CustomHazard, req.Answers)
	if err != nil {
		return nil, err
	}

	sub := &domain.Submission{
		ID:             uuid.New().String(),
		RespondentName: strings.TrimSpace(req.RespondentName),
		Ward:           strings.TrimSpace(req.Ward),
		Email:          strings.TrimSpace(req.Email),
		Date:           now,
		Records:        records,
	}

	bundle, err := s.renderer.Render(sub)
	if err != nil {
		return nil, err
	}

	result := &contract.SubmitResult{
		SubmissionID: sub.ID,
		RecordCount:  len(records),
		HazardCount:  len(sub.Hazards()),
		Bundle:       bundle,
	}

	text, html := mail.SubmissionBody(sub.RespondentName, sub.Ward, sub.Date, bundle.Attachments())
	msg := mail.Message{
		Subject:     mail.SubmissionSubject,
		TextBody:    text,
		HTMLBody:    html,
		Attachments: bundle.Attachments(),
	}

	// Respondent copy only when an address was given; a blank address is a
	// silent skip, not an error.
	if sub.Email != "" {
		msg.To = []string{sub.Email}
		if err := s.mailer.Dispatch(ctx, msg); err != nil {
			derr := &domain.DeliveryError{Recipient: sub.Email, Err: err}
			result.DeliveryWarnings = append(result.DeliveryWarnings, derr.Error())
		} else {
			result.RespondentMailed = true
		}
	}

	// Administrator copy goes out unconditionally.
	if len(s.admins) > 0 {
		msg.To = s.admins
		if err := s.mailer.Dispatch(ctx, msg); err != nil {
			derr := &domain.DeliveryError{Recipient: strings.Join(s.admins, ", "), Err: err}
			result.DeliveryWarnings = append(result.DeliveryWarnings, derr.Error())
		} else {
			result.AdminMailed = true
		}
	}

	return result, nil
}
