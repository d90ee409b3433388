// Package sheets appends registrations to a Google Sheets spreadsheet.
package sheets

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"

	"github.com/mckvie/hackathon/internal/export"
	"github.com/mckvie/hackathon/internal/hackathon"
)

// SheetRegistrations is the tab exports are appended to.
const SheetRegistrations = "Registrations"

// valuesAPI is the slice of the Sheets API the exporter needs.
type valuesAPI interface {
	Get(ctx context.Context, spreadsheetID, rng string) ([][]interface{}, error)
	Append(ctx context.Context, spreadsheetID, rng string, rows [][]interface{}) error
}

type Client struct {
	api           valuesAPI
	spreadsheetID string
}

func New(ctx context.Context, serviceAccountJSONPath, spreadsheetID string) (*Client, error) {
	if _, err := os.Stat(serviceAccountJSONPath); err != nil {
		return nil, fmt.Errorf("service account json: %w", err)
	}
	srv, err := sheetsv4.NewService(ctx,
		option.WithCredentialsFile(serviceAccountJSONPath),
		option.WithScopes(sheetsv4.SpreadsheetsScope),
	)
	if err != nil {
		return nil, err
	}
	return &Client{api: sheetValues{srv: srv}, spreadsheetID: spreadsheetID}, nil
}

func (c *Client) SpreadsheetID() string { return c.spreadsheetID }

// AppendRegistrations appends the records not yet in the Registrations tab
// and returns how many were written. The header is written once, when the
// tab is empty; rows are matched on Team ID in column A.
func (c *Client) AppendRegistrations(ctx context.Context, recs []hackathon.RegistrationRecord) (int, error) {
	rng := SheetRegistrations + "!A:Z"
	existing, err := c.api.Get(ctx, c.spreadsheetID, rng)
	if err != nil {
		return 0, fmt.Errorf("reading sheet: %w", err)
	}

	// header row at index 0
	seen := make(map[string]bool, len(existing))
	for i := 1; i < len(existing); i++ {
		if len(existing[i]) > 0 {
			seen[fmt.Sprint(existing[i][0])] = true
		}
	}

	rows := make([][]interface{}, 0, len(recs)+1)
	if len(existing) == 0 {
		rows = append(rows, cells(export.Headers))
	}
	written := 0
	for _, rec := range recs {
		if seen[rec.TeamID] {
			continue
		}
		seen[rec.TeamID] = true
		rows = append(rows, cells(export.Row(rec)))
		written++
	}
	if len(rows) == 0 {
		return 0, nil
	}

	if err := c.api.Append(ctx, c.spreadsheetID, rng, rows); err != nil {
		return 0, fmt.Errorf("appending to sheet: %w", err)
	}
	return written, nil
}

func cells(row []string) []interface{} {
	out := make([]interface{}, len(row))
	for i, v := range row {
		out[i] = v
	}
	return out
}

type sheetValues struct {
	srv *sheetsv4.Service
}

func (v sheetValues) Get(ctx context.Context, spreadsheetID, rng string) ([][]interface{}, error) {
	resp, err := v.srv.Spreadsheets.Values.Get(spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Values, nil
}

func (v sheetValues) Append(ctx context.Context, spreadsheetID, rng string, rows [][]interface{}) error {
	vr := &sheetsv4.ValueRange{Values: rows}
	_, err := v.srv.Spreadsheets.Values.Append(spreadsheetID, rng, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	return err
}
