package registration

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/mckvie/hackathon/internal/hackathon"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeStore struct {
	mu       sync.Mutex
	recs     []hackathon.RegistrationRecord
	countErr error
	addErr   error
	adds     int
}

func (f *fakeStore) Count(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.countErr != nil {
		return 0, f.countErr
	}
	return len(f.recs), nil
}

func (f *fakeStore) Add(_ context.Context, rec hackathon.RegistrationRecord) (hackathon.RegistrationRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.adds++
	if f.addErr != nil {
		return hackathon.RegistrationRecord{}, f.addErr
	}
	rec.ID = "doc-" + rec.TeamID
	f.recs = append(f.recs, rec)
	return rec, nil
}

type fakeLocal struct {
	values map[string]int
	err    error
}

func (f *fakeLocal) Incr(_ context.Context, key string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.values[key]++
	return f.values[key], nil
}

func (f *fakeLocal) Delete(_ context.Context, key string) error {
	delete(f.values, key)
	return f.err
}

type fakeMailer struct {
	ok     bool
	calls  int
	teamID string
}

func (f *fakeMailer) SendRegistrationEmail(_ context.Context, _ hackathon.RegistrationRecord, teamID string) bool {
	f.calls++
	f.teamID = teamID
	return f.ok
}

type fakeNotifier struct {
	recs []hackathon.RegistrationRecord
}

func (f *fakeNotifier) RegistrationAdded(_ context.Context, rec hackathon.RegistrationRecord) {
	f.recs = append(f.recs, rec)
}

func validRecord() hackathon.RegistrationRecord {
	return hackathon.RegistrationRecord{
		TeamName:           "Ghosts",
		TeamSize:           "2",
		ProblemCategory:    "ai",
		Experience:         "beginner",
		TeamLeaderName:     "Asha",
		TeamLeaderEmail:    "asha@example.com",
		TeamLeaderPhone:    "+91 98765 43210",
		Institution:        "MCKVIE",
		EmergencyContact:   "9876543210",
		AgreeToTerms:       true,
		AgreeToPhotography: true,
	}
}

func filledForm(rec hackathon.RegistrationRecord) *hackathon.FormState[hackathon.RegistrationRecord] {
	form := hackathon.NewRegistrationForm("", "")
	form.Update(func(r *hackathon.RegistrationRecord) { *r = rec })
	return form
}

func newTestSubmitter(store *fakeStore, mailer *fakeMailer) (*Submitter, *fakeNotifier) {
	n := &fakeNotifier{}
	counter := NewCounter(discardLogger(), store, &fakeLocal{values: map[string]int{}})
	return NewSubmitter(discardLogger(), store, counter, mailer, n), n
}

func TestSubmitSuccess(t *testing.T) {
	store := &fakeStore{recs: make([]hackathon.RegistrationRecord, 6)}
	mailer := &fakeMailer{ok: true}
	s, n := newTestSubmitter(store, mailer)
	form := filledForm(validRecord())

	out := s.Submit(context.Background(), form)

	if out.State != StateSucceeded {
		t.Fatalf("expected succeeded, got %s (%v)", out.State, out.Errors)
	}
	if out.Result.TeamNumber != 7 || out.Result.TeamID != "MHACK_007A" {
		t.Errorf("expected team 7 / MHACK_007A, got %d / %s", out.Result.TeamNumber, out.Result.TeamID)
	}
	if !out.Result.EmailSent {
		t.Error("expected emailSent true")
	}
	if mailer.teamID != "MHACK_007A" {
		t.Errorf("mailer got team id %q", mailer.teamID)
	}
	if got := store.recs[len(store.recs)-1]; got.TeamID != "MHACK_007A" || got.TeamNumber != 7 {
		t.Errorf("stored record missing team id/number: %+v", got)
	}
	if len(n.recs) != 1 {
		t.Errorf("expected 1 notification, got %d", len(n.recs))
	}
	if form.Value().TeamName != "" {
		t.Errorf("expected form reset, still has team name %q", form.Value().TeamName)
	}
}

func TestSubmitEmailFailureStillSucceeds(t *testing.T) {
	store := &fakeStore{}
	mailer := &fakeMailer{ok: false}
	s, _ := newTestSubmitter(store, mailer)

	out := s.Submit(context.Background(), filledForm(validRecord()))

	if out.State != StateSucceeded {
		t.Fatalf("expected succeeded, got %s", out.State)
	}
	if out.Result.EmailSent {
		t.Error("expected emailSent false")
	}
	if len(store.recs) != 1 {
		t.Errorf("expected 1 stored record, got %d", len(store.recs))
	}
}

func TestSubmitWriteFailure(t *testing.T) {
	store := &fakeStore{addErr: errors.New("unavailable")}
	mailer := &fakeMailer{ok: true}
	s, n := newTestSubmitter(store, mailer)
	form := filledForm(validRecord())

	out := s.Submit(context.Background(), form)

	if out.State != StateFailed {
		t.Fatalf("expected failed, got %s", out.State)
	}
	if out.Message != MsgWriteFailed {
		t.Errorf("expected %q, got %q", MsgWriteFailed, out.Message)
	}
	if mailer.calls != 0 || len(n.recs) != 0 {
		t.Error("expected no email or notification after failed write")
	}
	if form.Value().TeamName != "Ghosts" {
		t.Error("expected form values preserved")
	}
}

func TestSubmitInvalidNeverWrites(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*hackathon.RegistrationRecord)
		want   string
	}{
		{"missing team name", func(r *hackathon.RegistrationRecord) { r.TeamName = " " }, "Team name is required"},
		{"bad email", func(r *hackathon.RegistrationRecord) { r.TeamLeaderEmail = "nope" }, "Please enter a valid email address"},
		{"no terms", func(r *hackathon.RegistrationRecord) { r.AgreeToTerms = false }, "You must agree to the terms and conditions"},
		{"no photography", func(r *hackathon.RegistrationRecord) { r.AgreeToPhotography = false }, MsgPhotographyConsent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			s, _ := newTestSubmitter(store, &fakeMailer{ok: true})
			rec := validRecord()
			tt.mutate(&rec)
			form := filledForm(rec)

			out := s.Submit(context.Background(), form)

			if out.State != StateIdle {
				t.Fatalf("expected idle, got %s", out.State)
			}
			if len(out.Errors) != 1 || out.Errors[0] != tt.want {
				t.Errorf("expected [%q], got %v", tt.want, out.Errors)
			}
			if store.adds != 0 {
				t.Errorf("expected no writes, got %d", store.adds)
			}
			if form.Value() != rec {
				t.Error("expected form untouched")
			}
		})
	}
}

func TestSubmitManual(t *testing.T) {
	store := &fakeStore{}
	s, _ := newTestSubmitter(store, &fakeMailer{ok: true})

	form := hackathon.NewManualEntryForm()
	out := s.SubmitManual(context.Background(), form, "ops@mckvie.edu.in")
	if out.State != StateIdle || len(out.Errors) != 7 {
		t.Fatalf("expected 7 missing-field errors, got %s %v", out.State, out.Errors)
	}
	if out.Errors[0] != "Please fill in team name" {
		t.Errorf("unexpected first error %q", out.Errors[0])
	}

	rec := validRecord()
	rec.AgreeToPhotography = false
	form.Update(func(r *hackathon.RegistrationRecord) { *r = rec })
	out = s.SubmitManual(context.Background(), form, "ops@mckvie.edu.in")
	if out.State != StateSucceeded {
		t.Fatalf("expected succeeded, got %s %v", out.State, out.Errors)
	}
	stored := out.Record
	if stored.AddedBy != "ops@mckvie.edu.in" || stored.AddedAt == nil {
		t.Errorf("expected addedBy/addedAt, got %q %v", stored.AddedBy, stored.AddedAt)
	}
	if !stored.AgreeToPhotography || !stored.AgreeToTerms {
		t.Error("expected consents recorded for manual entry")
	}
	if form.Value().TeamSize != "2" {
		t.Errorf("expected form reset to defaults, got team size %q", form.Value().TeamSize)
	}
}

func TestSubmitConcurrentNumbersAreUnique(t *testing.T) {
	store := &fakeStore{}
	s, _ := newTestSubmitter(store, &fakeMailer{ok: true})

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Submit(context.Background(), filledForm(validRecord()))
		}()
	}
	wg.Wait()

	seen := map[string]bool{}
	for _, rec := range store.recs {
		if seen[rec.TeamID] {
			t.Fatalf("team id %s handed out twice", rec.TeamID)
		}
		seen[rec.TeamID] = true
	}
	if len(seen) != 20 {
		t.Errorf("expected 20 registrations, got %d", len(seen))
	}
}

func TestCounterFallbacks(t *testing.T) {
	ctx := context.Background()
	down := &fakeStore{countErr: errors.New("offline")}

	local := &fakeLocal{values: map[string]int{CounterKey: 4}}
	c := NewCounter(discardLogger(), down, local)
	if got := c.NextTeamNumber(ctx); got != 5 {
		t.Errorf("expected local counter 5, got %d", got)
	}
	if got := c.NextTeamNumber(ctx); got != 6 {
		t.Errorf("expected local counter 6, got %d", got)
	}

	if err := c.ResetFallback(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if got := c.NextTeamNumber(ctx); got != 1 {
		t.Errorf("expected 1 after reset, got %d", got)
	}

	broken := NewCounter(discardLogger(), down, &fakeLocal{err: errors.New("disk full")})
	for want := 1; want <= 2; want++ {
		if got := broken.NextTeamNumber(ctx); got != want {
			t.Errorf("expected in-memory %d, got %d", want, got)
		}
	}

	healthy := NewCounter(discardLogger(), &fakeStore{recs: make([]hackathon.RegistrationRecord, 41)}, nil)
	if got := healthy.NextTeamNumber(ctx); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
}
