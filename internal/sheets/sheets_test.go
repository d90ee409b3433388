package sheets

import (
	"context"
	"errors"
	"testing"

	"github.com/mckvie/hackathon/internal/hackathon"
)

// fakeValues keeps the tab in memory.
type fakeValues struct {
	rng     string
	rows    [][]interface{}
	appends int
	getErr  error
	err     error
}

func (f *fakeValues) Get(_ context.Context, _, _ string) ([][]interface{}, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.rows, nil
}

func (f *fakeValues) Append(_ context.Context, _, rng string, rows [][]interface{}) error {
	if f.err != nil {
		return f.err
	}
	f.rng = rng
	f.appends++
	f.rows = append(f.rows, rows...)
	return nil
}

func TestAppendRegistrations(t *testing.T) {
	api := &fakeValues{}
	c := &Client{api: api, spreadsheetID: "sheet-1"}

	n, err := c.AppendRegistrations(context.Background(), []hackathon.RegistrationRecord{
		{TeamID: "MHACK_001W", TeamName: "Owls"},
		{TeamID: "MHACK_002A", TeamName: "Bats"},
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2, got %d", n)
	}
	if api.rng != "Registrations!A:Z" {
		t.Errorf("unexpected range %q", api.rng)
	}
	if len(api.rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(api.rows))
	}
	if api.rows[0][0] != "Team ID" || api.rows[2][1] != "Bats" {
		t.Errorf("unexpected rows: %v", api.rows)
	}
}

func TestAppendRegistrationsTwiceSkipsExisting(t *testing.T) {
	api := &fakeValues{}
	c := &Client{api: api, spreadsheetID: "sheet-1"}
	ctx := context.Background()

	first := []hackathon.RegistrationRecord{
		{TeamID: "MHACK_001W", TeamName: "Owls"},
	}
	if _, err := c.AppendRegistrations(ctx, first); err != nil {
		t.Fatalf("first export: %v", err)
	}

	n, err := c.AppendRegistrations(ctx, append(first, hackathon.RegistrationRecord{TeamID: "MHACK_002A", TeamName: "Bats"}))
	if err != nil {
		t.Fatalf("second export: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 new row, got %d", n)
	}
	if len(api.rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d: %v", len(api.rows), api.rows)
	}
	headers := 0
	for _, row := range api.rows {
		if row[0] == "Team ID" {
			headers++
		}
	}
	if headers != 1 {
		t.Errorf("expected one header row, got %d", headers)
	}

	n, err = c.AppendRegistrations(ctx, first)
	if err != nil {
		t.Fatalf("third export: %v", err)
	}
	if n != 0 || api.appends != 2 {
		t.Errorf("expected nothing appended, got n=%d appends=%d", n, api.appends)
	}
}

func TestAppendRegistrationsError(t *testing.T) {
	recs := []hackathon.RegistrationRecord{{TeamID: "MHACK_001W"}}

	c := &Client{api: &fakeValues{err: errors.New("quota")}, spreadsheetID: "sheet-1"}
	if _, err := c.AppendRegistrations(context.Background(), recs); err == nil {
		t.Error("expected append error")
	}

	c = &Client{api: &fakeValues{getErr: errors.New("forbidden")}, spreadsheetID: "sheet-1"}
	if _, err := c.AppendRegistrations(context.Background(), recs); err == nil {
		t.Error("expected read error")
	}
}

func TestNewMissingCredentials(t *testing.T) {
	if _, err := New(context.Background(), "/does/not/exist.json", "sheet-1"); err == nil {
		t.Error("expected error for missing credentials file")
	}
}
