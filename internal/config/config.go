package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/mckvie/hackathon/internal/hackathon"
)

type Config struct {
	HTTPAddr string     `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	SPADir   string     `env:"SPA_DIR" envDefault:"../web/dist"`

	// Document store. AppID names the collection path
	// artifacts/{AppID}/public/data/registrations.
	AppID          string `env:"APP_ID,required,notEmpty"`
	DocstoreURL    string `env:"DOCSTORE_URL,required,notEmpty"`
	DocstoreToken  string `env:"DOCSTORE_AUTH_TOKEN"`
	LocalStorePath string `env:"LOCAL_STORE_PATH" envDefault:"data/local.db"`

	ResendAPIKey string        `env:"RESEND_API_KEY"`
	EmailFrom    string        `env:"EMAIL_FROM" envDefault:"MCKVIE Halloween Hackathon Team <hackathon@mckvie.edu.in>"`
	EmailReplyTo string        `env:"EMAIL_REPLY_TO" envDefault:"mckvie.hackathon.2k25@gmail.com"`
	EmailPace    time.Duration `env:"EMAIL_PACE" envDefault:"100ms"`

	AdminAccounts   []AdminAccount `env:"ADMIN_ACCOUNTS" envSeparator:";"`
	AdminLoginDelay time.Duration  `env:"ADMIN_LOGIN_DELAY" envDefault:"1s"`

	SheetsCredentialsFile string `env:"GOOGLE_SERVICE_ACCOUNT_JSON"`
	SheetsSpreadsheetID   string `env:"GOOGLE_SHEETS_SPREADSHEET_ID"`

	TelegramToken      string  `env:"TELEGRAM_BOT_TOKEN"`
	TelegramAdminChats []int64 `env:"TELEGRAM_ADMIN_CHAT_IDS"`
}

// AdminAccount is one allow-list entry, written as
// "email|display name|role|bcrypt hash".
type AdminAccount struct {
	Email        string
	Name         string
	Role         hackathon.Role
	PasswordHash string
}

func (a *AdminAccount) UnmarshalText(text []byte) error {
	parts := strings.Split(strings.TrimSpace(string(text)), "|")
	if len(parts) != 4 {
		return fmt.Errorf("admin account %q: want email|name|role|hash", text)
	}
	a.Email = strings.ToLower(strings.TrimSpace(parts[0]))
	a.Name = strings.TrimSpace(parts[1])
	a.Role = hackathon.Role(strings.TrimSpace(parts[2]))
	a.PasswordHash = strings.TrimSpace(parts[3])

	if a.Email == "" || a.PasswordHash == "" {
		return fmt.Errorf("admin account %q: email and hash are required", text)
	}
	if !a.Role.Valid() {
		return fmt.Errorf("admin account %s: unknown role %q", a.Email, a.Role)
	}
	return nil
}

// EmailEnabled reports whether a provider key is configured.
func (c *Config) EmailEnabled() bool { return c.ResendAPIKey != "" }

// SheetsEnabled reports whether the Google Sheets export is configured.
func (c *Config) SheetsEnabled() bool {
	return c.SheetsCredentialsFile != "" && c.SheetsSpreadsheetID != ""
}

// CollectionPath is the document path of the registrations collection.
func (c *Config) CollectionPath() string {
	return "artifacts/" + c.AppID + "/public/data/registrations"
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
