package server

import (
	"context"

	"github.com/mckvie/hackathon/internal/hackathon"
)

// RegistrationStore is the registrations collection as the admin pages
// use it.
type RegistrationStore interface {
	List(ctx context.Context) ([]hackathon.RegistrationRecord, error)
	Get(ctx context.Context, id string) (hackathon.RegistrationRecord, error)
	Delete(ctx context.Context, id string) error
}

// SheetsExporter appends registrations to a spreadsheet.
type SheetsExporter interface {
	AppendRegistrations(ctx context.Context, recs []hackathon.RegistrationRecord) (int, error)
	SpreadsheetID() string
}
