// Package export lays registrations out as rows for spreadsheets: a CSV
// download and a Google Sheets append.
package export

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/mckvie/hackathon/internal/hackathon"
)

// Headers is the column order of every export.
var Headers = []string{
	"Team ID", "Team Name", "Leader Name", "Leader Email", "Leader Phone", "Leader Institution",
	"Teammate Name", "Teammate Email", "Teammate Phone", "Teammate Institution",
	"Team Size", "Problem Category", "Experience", "Dietary Requirements", "Emergency Contact", "Submitted At",
}

// Row returns rec's cells in Headers order. Submitted At is RFC 3339 UTC,
// empty when unknown.
func Row(rec hackathon.RegistrationRecord) []string {
	submitted := ""
	if !rec.SubmittedAt.IsZero() {
		submitted = rec.SubmittedAt.UTC().Format("2006-01-02T15:04:05.000Z")
	}
	return []string{
		rec.TeamID,
		rec.TeamName,
		rec.TeamLeaderName,
		rec.TeamLeaderEmail,
		rec.TeamLeaderPhone,
		rec.Institution,
		rec.TeammateName,
		rec.TeammateEmail,
		rec.TeammatePhone,
		rec.TeammateInstitution,
		rec.TeamSize,
		rec.ProblemCategory,
		rec.Experience,
		rec.DietaryRequirements,
		rec.EmergencyContact,
		submitted,
	}
}

// WriteCSV writes a header line followed by one line per record.
func WriteCSV(w io.Writer, recs []hackathon.RegistrationRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Headers); err != nil {
		return err
	}
	for _, rec := range recs {
		if err := cw.Write(Row(rec)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Filename is the download name for an export taken at now.
func Filename(now time.Time) string {
	return "hackathon_registrations_" + now.UTC().Format(time.DateOnly) + ".csv"
}
