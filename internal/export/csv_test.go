package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/mckvie/hackathon/internal/hackathon"
)

func TestWriteCSV(t *testing.T) {
	recs := []hackathon.RegistrationRecord{
		{
			TeamID:              "MHACK_001W",
			TeamName:            `The "Spooky", Team`,
			TeamLeaderName:      "Asha",
			DietaryRequirements: "no nuts,\nno dairy",
			SubmittedAt:         time.Date(2025, 10, 31, 9, 5, 0, 0, time.UTC),
		},
		{TeamID: "MHACK_002A", TeamName: "Plain"},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, recs); err != nil {
		t.Fatalf("write: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Team ID" || rows[0][15] != "Submitted At" || len(rows[0]) != 16 {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][1] != `The "Spooky", Team` {
		t.Errorf("expected quotes and comma preserved, got %q", rows[1][1])
	}
	if rows[1][13] != "no nuts,\nno dairy" {
		t.Errorf("expected multi-line field preserved, got %q", rows[1][13])
	}
	if rows[1][15] != "2025-10-31T09:05:00.000Z" {
		t.Errorf("unexpected timestamp %q", rows[1][15])
	}
	if rows[2][15] != "" {
		t.Errorf("expected empty timestamp, got %q", rows[2][15])
	}
}

func TestFilename(t *testing.T) {
	got := Filename(time.Date(2025, 10, 7, 23, 0, 0, 0, time.UTC))
	if got != "hackathon_registrations_2025-10-07.csv" {
		t.Errorf("unexpected filename %q", got)
	}
}
