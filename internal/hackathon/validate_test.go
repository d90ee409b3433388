package hackathon

import (
	"slices"
	"strings"
	"testing"
)

func validRecord() RegistrationRecord {
	return RegistrationRecord{
		TeamName:           "Ghost Coders",
		TeamSize:           "3",
		ProblemCategory:    "ai",
		Experience:         "intermediate",
		TeamLeaderName:     "Asha Roy",
		TeamLeaderEmail:    "asha@example.com",
		TeamLeaderPhone:    "+91 98765-43210",
		Institution:        "MCKV Institute of Engineering",
		EmergencyContact:   "+91 91234 56789",
		AgreeToTerms:       true,
		AgreeToPhotography: true,
	}
}

func TestValidateValid(t *testing.T) {
	res := Validate(validRecord())
	if !res.IsValid {
		t.Fatalf("expected valid, got errors %v", res.Errors)
	}
	if res.Errors == nil || len(res.Errors) != 0 {
		t.Errorf("expected empty non-nil errors, got %#v", res.Errors)
	}
}

func TestValidateMissingEmail(t *testing.T) {
	rec := validRecord()
	rec.TeamLeaderEmail = ""
	before := rec

	res := Validate(rec)
	if res.IsValid {
		t.Fatal("expected invalid")
	}
	if !slices.ContainsFunc(res.Errors, func(e string) bool { return strings.Contains(strings.ToLower(e), "email") }) {
		t.Errorf("expected an email message, got %v", res.Errors)
	}
	if rec != before {
		t.Error("record was modified")
	}
}

func TestValidateCollectsAll(t *testing.T) {
	res := Validate(RegistrationRecord{})
	want := []string{
		"Team name is required",
		"Team leader name is required",
		"Team leader email is required",
		"Team leader phone is required",
		"Institution is required",
		"Team size is required",
		"Problem category is required",
		"You must agree to the terms and conditions",
	}
	if !slices.Equal(res.Errors, want) {
		t.Errorf("errors = %v\nwant %v", res.Errors, want)
	}
}

func TestValidateShapes(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*RegistrationRecord)
		wantE string
	}{
		{"whitespace team name", func(r *RegistrationRecord) { r.TeamName = "   " }, "Team name is required"},
		{"bad email", func(r *RegistrationRecord) { r.TeamLeaderEmail = "asha@example" }, "Please enter a valid email address"},
		{"email with space", func(r *RegistrationRecord) { r.TeamLeaderEmail = "a sha@example.com" }, "Please enter a valid email address"},
		{"short phone", func(r *RegistrationRecord) { r.TeamLeaderPhone = "12345" }, "Please enter a valid phone number"},
		{"letters in phone", func(r *RegistrationRecord) { r.TeamLeaderPhone = "98765abc210" }, "Please enter a valid phone number"},
		{"terms unchecked", func(r *RegistrationRecord) { r.AgreeToTerms = false }, "You must agree to the terms and conditions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord()
			tt.edit(&rec)
			res := Validate(rec)
			if res.IsValid {
				t.Fatal("expected invalid")
			}
			if !slices.Equal(res.Errors, []string{tt.wantE}) {
				t.Errorf("errors = %v, want [%s]", res.Errors, tt.wantE)
			}
		})
	}
}

func TestValidPhone(t *testing.T) {
	for _, ok := range []string{"9876543210", "+91 98765 43210", "(033) 2654-1234"} {
		if !ValidPhone(ok) {
			t.Errorf("ValidPhone(%q) = false", ok)
		}
	}
	for _, bad := range []string{"", "+123", "++919876543210", "98765.43210"} {
		if ValidPhone(bad) {
			t.Errorf("ValidPhone(%q) = true", bad)
		}
	}
}

func TestValidateManualEntry(t *testing.T) {
	rec := validRecord()
	if res := ValidateManualEntry(rec); !res.IsValid {
		t.Fatalf("expected valid, got %v", res.Errors)
	}

	rec.Institution = ""
	rec.EmergencyContact = ""
	res := ValidateManualEntry(rec)
	want := []string{"Please fill in institution", "Please fill in emergency contact"}
	if !slices.Equal(res.Errors, want) {
		t.Errorf("errors = %v, want %v", res.Errors, want)
	}
}
