// Package email builds and sends the hackathon's transactional mail: the
// registration confirmation and admin bulk announcements.
package email

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/mckvie/hackathon/internal/hackathon"
)

const (
	FromName      = "MCKVIE Halloween Hackathon Team"
	HackathonName = "MCKVIE Halloween Hackathon 2025"
	WhatsAppLink  = "https://chat.whatsapp.com/Ls9Zdw3nWNbCS55Q47c5kP?mode=ems_wa_c"
)

// requiredParams must be non-empty before a confirmation is handed to the
// provider.
var requiredParams = []string{"teamId", "teamLeaderName", "teamName", "teamLeaderEmail"}

var (
	ErrNoSubject    = errors.New("subject and message are required")
	ErrNoRecipients = errors.New("no recipients selected")
)

// Dispatcher renders messages and hands them to a Sender. A nil Sender
// means no provider is configured and nothing is sent.
type Dispatcher struct {
	logger       *slog.Logger
	sender       Sender
	contactEmail string
	pace         time.Duration
	sleep        func(ctx context.Context, d time.Duration) error
}

func NewDispatcher(logger *slog.Logger, sender Sender, contactEmail string, pace time.Duration) *Dispatcher {
	return &Dispatcher{
		logger:       logger,
		sender:       sender,
		contactEmail: contactEmail,
		pace:         pace,
		sleep:        sleepCtx,
	}
}

// Enabled reports whether a provider is configured.
func (d *Dispatcher) Enabled() bool { return d.sender != nil }

// RegistrationParams is the template payload of a confirmation email.
// Every key is present; optional blanks are empty strings.
func RegistrationParams(rec hackathon.RegistrationRecord, teamID string) Params {
	return Params{
		"to_email":            rec.TeamLeaderEmail,
		"from_name":           FromName,
		"reply_to":            rec.TeamLeaderEmail,
		"teamId":              teamID,
		"teamLeaderName":      rec.TeamLeaderName,
		"teamName":            rec.TeamName,
		"teamLeaderEmail":     rec.TeamLeaderEmail,
		"teamLeaderPhone":     rec.TeamLeaderPhone,
		"institution":         rec.Institution,
		"teamSize":            rec.TeamSize,
		"problemCategory":     hackathon.CategoryDisplay(rec.ProblemCategory),
		"experience":          hackathon.ExperienceDisplay(rec.Experience),
		"emergencyContact":    rec.EmergencyContact,
		"whatsappLink":        WhatsAppLink,
		"dietaryRequirements": strings.TrimSpace(rec.DietaryRequirements),
	}
}

// SendRegistrationEmail sends the confirmation for a stored registration.
// It reports whether the provider accepted the message and never fails
// the caller.
func (d *Dispatcher) SendRegistrationEmail(ctx context.Context, rec hackathon.RegistrationRecord, teamID string) bool {
	if d.sender == nil {
		d.logger.Warn("email provider not configured, skipping confirmation", "team_id", teamID)
		return false
	}

	p := RegistrationParams(rec, teamID)
	var missing []string
	for _, k := range requiredParams {
		if p[k] == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		d.logger.Error("confirmation email missing required fields", "team_id", teamID, "missing", missing)
		return false
	}

	html, err := renderConfirmation(p)
	if err != nil {
		d.logger.Error("confirmation email failed", "team_id", teamID, "error", err)
		return false
	}

	_, err = d.sender.Send(ctx, SendRequest{
		To:      []string{p["to_email"]},
		Subject: "Registration confirmed: " + teamID,
		HTML:    html,
		ReplyTo: p["reply_to"],
	})
	if err != nil {
		d.logger.Error("confirmation email failed", "team_id", teamID, "error", err, "params", map[string]string(p))
		return false
	}
	return true
}

// BulkMessage is an announcement written in the back office. Message is
// Markdown.
type BulkMessage struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// BulkResult tallies a bulk send. Sent+Failed always equals Total.
type BulkResult struct {
	Total            int      `json:"total"`
	Sent             int      `json:"sent"`
	Failed           int      `json:"failed"`
	FailedRecipients []string `json:"failedRecipients"`
}

// BulkParams is the template payload for one bulk recipient.
func (d *Dispatcher) BulkParams(rec hackathon.RegistrationRecord, msg BulkMessage) Params {
	return Params{
		"to_email":       rec.TeamLeaderEmail,
		"from_name":      FromName,
		"reply_to":       d.contactEmail,
		"teamLeaderName": rec.TeamLeaderName,
		"teamName":       rec.TeamName,
		"teamId":         rec.TeamID,
		"subject":        msg.Subject,
		"message":        msg.Message,
		"hackathonName":  HackathonName,
		"contactEmail":   d.contactEmail,
	}
}

// SendBulk mails msg to every recipient's team leader, one at a time with
// the configured pause between sends. A failed recipient does not stop
// the run. If ctx is cancelled the remaining recipients count as failed.
// Without a provider every recipient fails at once, with no pauses.
func (d *Dispatcher) SendBulk(ctx context.Context, recipients []hackathon.RegistrationRecord, msg BulkMessage) (BulkResult, error) {
	if strings.TrimSpace(msg.Subject) == "" || strings.TrimSpace(msg.Message) == "" {
		return BulkResult{}, ErrNoSubject
	}
	if len(recipients) == 0 {
		return BulkResult{}, ErrNoRecipients
	}

	res := BulkResult{Total: len(recipients), FailedRecipients: []string{}}
	fail := func(addr string) {
		res.Failed++
		res.FailedRecipients = append(res.FailedRecipients, addr)
	}

	if d.sender == nil {
		d.logger.Warn("email provider not configured, bulk email not sent", "total", res.Total)
		for _, rec := range recipients {
			fail(rec.TeamLeaderEmail)
		}
		return res, nil
	}

	for i, rec := range recipients {
		if i > 0 && d.pace > 0 {
			if err := d.sleep(ctx, d.pace); err != nil {
				for _, rest := range recipients[i:] {
					fail(rest.TeamLeaderEmail)
				}
				break
			}
		}

		if err := d.sendOne(ctx, d.BulkParams(rec, msg)); err != nil {
			d.logger.Error("bulk email failed", "to", rec.TeamLeaderEmail, "team_id", rec.TeamID, "error", err)
			fail(rec.TeamLeaderEmail)
			continue
		}
		res.Sent++
	}

	d.logger.Info("bulk email finished", "total", res.Total, "sent", res.Sent, "failed", res.Failed)
	return res, nil
}

var errNotConfigured = errors.New("email provider not configured")

func (d *Dispatcher) sendOne(ctx context.Context, p Params) error {
	if d.sender == nil {
		return errNotConfigured
	}
	html, err := renderBulk(p)
	if err != nil {
		return err
	}
	_, err = d.sender.Send(ctx, SendRequest{
		To:      []string{p["to_email"]},
		Subject: p["subject"],
		HTML:    html,
		ReplyTo: p["reply_to"],
	})
	return err
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// SelectRecipients picks the bulk audience: everyone, or the registrations
// whose team ID is in teamIDs.
func SelectRecipients(all []hackathon.RegistrationRecord, everyone bool, teamIDs []string) []hackathon.RegistrationRecord {
	if everyone {
		return all
	}
	want := make(map[string]bool, len(teamIDs))
	for _, id := range teamIDs {
		want[id] = true
	}
	var out []hackathon.RegistrationRecord
	for _, rec := range all {
		if want[rec.TeamID] {
			out = append(out, rec)
		}
	}
	return out
}
