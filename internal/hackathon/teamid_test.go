package hackathon

import (
	"regexp"
	"testing"
)

func TestGenerateTeamID(t *testing.T) {
	tests := []struct {
		seq      int
		category string
		want     string
	}{
		{7, "ai", "MHACK_007A"},
		{1, "web", "MHACK_001W"},
		{42, "blockchain", "MHACK_042B"},
		{999, "mobile", "MHACK_999M"},
		{1000, "web", "MHACK_1000W"},
		{3, "quantum", "MHACK_003X"},
		{3, "", "MHACK_003X"},
	}

	for _, tt := range tests {
		if got := GenerateTeamID(tt.seq, tt.category); got != tt.want {
			t.Errorf("GenerateTeamID(%d, %q) = %q, want %q", tt.seq, tt.category, got, tt.want)
		}
	}
}

func TestGenerateTeamIDDeterministic(t *testing.T) {
	shape := regexp.MustCompile(`^MHACK_\d{3}[A-Z]$`)
	for seq := 1; seq < 1000; seq += 37 {
		for _, c := range append(Categories(), "unknown") {
			a := GenerateTeamID(seq, c)
			b := GenerateTeamID(seq, c)
			if a != b {
				t.Fatalf("GenerateTeamID(%d, %q) not deterministic: %q vs %q", seq, c, a, b)
			}
			if !shape.MatchString(a) {
				t.Errorf("GenerateTeamID(%d, %q) = %q, bad shape", seq, c, a)
			}
		}
	}
}

func TestCategoryDisplayFallback(t *testing.T) {
	if got := CategoryDisplay("ai"); got != "AI Phantom Challenge" {
		t.Errorf("CategoryDisplay(ai) = %q", got)
	}
	if got := CategoryDisplay("PSA"); got != "PSA" {
		t.Errorf("CategoryDisplay(PSA) = %q, want key back", got)
	}
	if got := ExperienceDisplay("advanced"); got != "Advanced" {
		t.Errorf("ExperienceDisplay(advanced) = %q", got)
	}
	if got := ExperienceDisplay(""); got != "" {
		t.Errorf("ExperienceDisplay(\"\") = %q, want empty", got)
	}
}

func TestRoleSatisfies(t *testing.T) {
	if !RoleSuperAdmin.Satisfies(RoleAdmin) {
		t.Error("super_admin should satisfy admin")
	}
	if RoleAdmin.Satisfies(RoleSuperAdmin) {
		t.Error("admin should not satisfy super_admin")
	}
	if Role("owner").Valid() {
		t.Error("unknown role reported valid")
	}
}
