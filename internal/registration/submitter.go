// Package registration turns a filled-in form into a stored team entry:
// validation, team numbering, the document write and the confirmation email.
package registration

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mckvie/hackathon/internal/hackathon"
)

type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

const (
	MsgPhotographyConsent = "You must agree to the photography policy"
	MsgWriteFailed        = "Registration failed. Please try again."
)

// Store persists registrations. Add assigns the document ID and the
// server timestamp.
type Store interface {
	CollectionCounter
	Add(ctx context.Context, rec hackathon.RegistrationRecord) (hackathon.RegistrationRecord, error)
}

type Mailer interface {
	SendRegistrationEmail(ctx context.Context, rec hackathon.RegistrationRecord, teamID string) bool
}

// Notifier is told about every stored registration. Failures stay inside
// the notifier.
type Notifier interface {
	RegistrationAdded(ctx context.Context, rec hackathon.RegistrationRecord)
}

// Result is shown on the success screen.
type Result struct {
	TeamID     string `json:"teamId"`
	TeamName   string `json:"teamName"`
	TeamNumber int    `json:"teamNumber"`
	EmailSent  bool   `json:"emailSent"`
}

// Outcome is where one submission ended.
type Outcome struct {
	State   State                        `json:"state"`
	Errors  []string                     `json:"errors,omitempty"`
	Message string                       `json:"message,omitempty"`
	Result  *Result                      `json:"result,omitempty"`
	Record  hackathon.RegistrationRecord `json:"-"`
}

type Submitter struct {
	logger   *slog.Logger
	store    Store
	counter  *Counter
	mailer   Mailer
	notifier Notifier
	now      func() time.Time

	// mu orders count-then-write so this process never reuses a number.
	mu sync.Mutex
}

func NewSubmitter(logger *slog.Logger, store Store, counter *Counter, mailer Mailer, notifier Notifier) *Submitter {
	return &Submitter{
		logger:   logger,
		store:    store,
		counter:  counter,
		mailer:   mailer,
		notifier: notifier,
		now:      time.Now,
	}
}

// Submit validates and stores a public registration. On success the form
// is reset; otherwise it keeps what the user typed.
func (s *Submitter) Submit(ctx context.Context, form *hackathon.FormState[hackathon.RegistrationRecord]) Outcome {
	rec := form.Value()
	s.transition(StateValidating, rec)

	v := hackathon.Validate(rec)
	errs := v.Errors
	if !rec.AgreeToPhotography {
		errs = append(errs, MsgPhotographyConsent)
	}
	if len(errs) > 0 {
		s.transition(StateIdle, rec, "errors", len(errs))
		return Outcome{State: StateIdle, Errors: errs}
	}

	return s.persist(ctx, form, rec)
}

// SubmitManual stores a team entered by an operator in the back office.
// Consents are recorded as given and addedBy/addedAt are stamped.
func (s *Submitter) SubmitManual(ctx context.Context, form *hackathon.FormState[hackathon.RegistrationRecord], addedBy string) Outcome {
	rec := form.Value()
	s.transition(StateValidating, rec)

	v := hackathon.ValidateManualEntry(rec)
	if !v.IsValid {
		s.transition(StateIdle, rec, "errors", len(v.Errors))
		return Outcome{State: StateIdle, Errors: v.Errors}
	}

	at := s.now().UTC()
	rec.AddedBy = addedBy
	rec.AddedAt = &at
	rec.AgreeToTerms = true
	rec.AgreeToPhotography = true
	return s.persist(ctx, form, rec)
}

func (s *Submitter) persist(ctx context.Context, form *hackathon.FormState[hackathon.RegistrationRecord], rec hackathon.RegistrationRecord) Outcome {
	s.transition(StateSubmitting, rec)

	s.mu.Lock()
	rec.TeamNumber = s.counter.NextTeamNumber(ctx)
	rec.TeamID = hackathon.GenerateTeamID(rec.TeamNumber, rec.ProblemCategory)
	stored, err := s.store.Add(ctx, rec)
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("storing registration failed", "team_id", rec.TeamID, "error", err)
		s.transition(StateFailed, rec)
		return Outcome{State: StateFailed, Message: MsgWriteFailed}
	}

	sent := false
	if s.mailer != nil {
		sent = s.mailer.SendRegistrationEmail(ctx, stored, stored.TeamID)
	}
	if s.notifier != nil {
		s.notifier.RegistrationAdded(ctx, stored)
	}

	form.Reset()
	s.transition(StateSucceeded, stored, "email_sent", sent)
	return Outcome{
		State: StateSucceeded,
		Result: &Result{
			TeamID:     stored.TeamID,
			TeamName:   stored.TeamName,
			TeamNumber: stored.TeamNumber,
			EmailSent:  sent,
		},
		Record: stored,
	}
}

func (s *Submitter) transition(to State, rec hackathon.RegistrationRecord, args ...any) {
	attrs := append([]any{"state", to, "team_name", rec.TeamName}, args...)
	if rec.TeamID != "" {
		attrs = append(attrs, "team_id", rec.TeamID)
	}
	s.logger.Info("registration", attrs...)
}
