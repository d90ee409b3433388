package hackathon

import (
	"strings"
	"time"
)

// Filter keeps the records matching a case-insensitive search over team
// name, leader name, leader email and team ID, and an exact category.
// Empty q or a category of "" or "all" disables that filter. Order is kept.
func Filter(recs []RegistrationRecord, q, category string) []RegistrationRecord {
	q = strings.ToLower(strings.TrimSpace(q))
	if category == "all" {
		category = ""
	}

	out := make([]RegistrationRecord, 0, len(recs))
	for _, r := range recs {
		if category != "" && r.ProblemCategory != category {
			continue
		}
		if q != "" && !matches(r, q) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matches(r RegistrationRecord, q string) bool {
	for _, s := range []string{r.TeamName, r.TeamLeaderName, r.TeamLeaderEmail, r.TeamID} {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

// Stats summarises registrations for the dashboard.
type Stats struct {
	TotalRegistrations int            `json:"totalRegistrations"`
	TodayRegistrations int            `json:"todayRegistrations"`
	ProblemStats       map[string]int `json:"problemStats"`
}

// ComputeStats counts registrations in total, on now's calendar day (in
// now's location), and per problem category.
func ComputeStats(recs []RegistrationRecord, now time.Time) Stats {
	s := Stats{TotalRegistrations: len(recs), ProblemStats: map[string]int{}}
	y, m, d := now.Date()
	for _, r := range recs {
		if r.ProblemCategory != "" {
			s.ProblemStats[r.ProblemCategory]++
		}
		if r.SubmittedAt.IsZero() {
			continue
		}
		ry, rm, rd := r.SubmittedAt.In(now.Location()).Date()
		if ry == y && rm == m && rd == d {
			s.TodayRegistrations++
		}
	}
	return s
}
