package email

import (
	"context"
	"time"
)

// SendRequest is one outgoing message.
type SendRequest struct {
	To      []string
	From    string // e.g. "MCKVIE Halloween Hackathon Team <hackathon@mckvie.edu.in>"
	Subject string
	HTML    string
	ReplyTo string
}

// SendResult is what the provider returned for an accepted message.
type SendResult struct {
	MessageID string
	SentAt    time.Time
}

// Sender delivers messages through an external provider.
type Sender interface {
	Send(ctx context.Context, req SendRequest) (SendResult, error)
}
