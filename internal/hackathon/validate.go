package hackathon

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]{10,}$`)
)

// Result is the outcome of validating a registration form.
type Result struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// ValidEmail reports whether s has a local@domain.tld shape.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidPhone accepts digits, spaces, hyphens and parentheses with an
// optional leading '+', at least ten characters after it.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// Validate checks a public registration. Every violated rule adds a
// message; the record itself is never modified.
func Validate(r RegistrationRecord) Result {
	var errs []string

	if blank(r.TeamName) {
		errs = append(errs, "Team name is required")
	}
	if blank(r.TeamLeaderName) {
		errs = append(errs, "Team leader name is required")
	}

	switch {
	case blank(r.TeamLeaderEmail):
		errs = append(errs, "Team leader email is required")
	case !ValidEmail(r.TeamLeaderEmail):
		errs = append(errs, "Please enter a valid email address")
	}

	switch {
	case blank(r.TeamLeaderPhone):
		errs = append(errs, "Team leader phone is required")
	case !ValidPhone(r.TeamLeaderPhone):
		errs = append(errs, "Please enter a valid phone number")
	}

	if blank(r.Institution) {
		errs = append(errs, "Institution is required")
	}
	if r.TeamSize == "" {
		errs = append(errs, "Team size is required")
	}
	if r.ProblemCategory == "" {
		errs = append(errs, "Problem category is required")
	}
	if !r.AgreeToTerms {
		errs = append(errs, "You must agree to the terms and conditions")
	}

	return result(errs)
}

// manualRequired lists the fields the back-office Add Team form insists on,
// in the order they are reported.
var manualRequired = []struct {
	field string
	get   func(RegistrationRecord) string
}{
	{"teamName", func(r RegistrationRecord) string { return r.TeamName }},
	{"teamLeaderName", func(r RegistrationRecord) string { return r.TeamLeaderName }},
	{"teamLeaderEmail", func(r RegistrationRecord) string { return r.TeamLeaderEmail }},
	{"teamLeaderPhone", func(r RegistrationRecord) string { return r.TeamLeaderPhone }},
	{"institution", func(r RegistrationRecord) string { return r.Institution }},
	{"problemCategory", func(r RegistrationRecord) string { return r.ProblemCategory }},
	{"emergencyContact", func(r RegistrationRecord) string { return r.EmergencyContact }},
}

// ValidateManualEntry checks a team typed in by an operator. Only presence
// is enforced; consents are implied by the operator.
func ValidateManualEntry(r RegistrationRecord) Result {
	var errs []string
	for _, f := range manualRequired {
		if blank(f.get(r)) {
			errs = append(errs, "Please fill in "+fieldWords(f.field))
		}
	}
	return result(errs)
}

func result(errs []string) Result {
	if errs == nil {
		errs = []string{}
	}
	return Result{IsValid: len(errs) == 0, Errors: errs}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// fieldWords turns a camelCase field name into lower-case words:
// "teamLeaderEmail" -> "team leader email".
func fieldWords(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
