package config

import (
	"strings"
	"testing"
	"time"

	"github.com/mckvie/hackathon/internal/hackathon"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ID", "hack-2025")
	t.Setenv("DOCSTORE_URL", "file::memory:")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.EmailPace != 100*time.Millisecond {
		t.Errorf("EmailPace = %v", cfg.EmailPace)
	}
	if cfg.AdminLoginDelay != time.Second {
		t.Errorf("AdminLoginDelay = %v", cfg.AdminLoginDelay)
	}
	if got, want := cfg.CollectionPath(), "artifacts/hack-2025/public/data/registrations"; got != want {
		t.Errorf("CollectionPath = %q, want %q", got, want)
	}
	if cfg.EmailEnabled() || cfg.SheetsEnabled() {
		t.Error("optional integrations should be disabled by default")
	}
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("APP_ID", "")
	t.Setenv("DOCSTORE_URL", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing document store config")
	}
	for _, name := range []string{"APP_ID", "DOCSTORE_URL"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not name %s", err, name)
		}
	}
}

func TestLoadAdminAccounts(t *testing.T) {
	t.Setenv("APP_ID", "hack-2025")
	t.Setenv("DOCSTORE_URL", "file::memory:")
	t.Setenv("ADMIN_ACCOUNTS",
		"Boss@Example.com|Hackathon Admin|super_admin|$2a$10$abc;helper@example.com|Helper|admin|$2a$10$def")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.AdminAccounts) != 2 {
		t.Fatalf("got %d accounts, want 2", len(cfg.AdminAccounts))
	}
	first := cfg.AdminAccounts[0]
	if first.Email != "boss@example.com" || first.Role != hackathon.RoleSuperAdmin || first.Name != "Hackathon Admin" {
		t.Errorf("first account = %+v", first)
	}
}

func TestAdminAccountRejectsBadRole(t *testing.T) {
	var a AdminAccount
	if err := a.UnmarshalText([]byte("x@example.com|X|owner|$2a$10$abc")); err == nil {
		t.Error("expected error for unknown role")
	}
	if err := a.UnmarshalText([]byte("x@example.com|X")); err == nil {
		t.Error("expected error for short entry")
	}
}
