// Package admin guards the back office: an allow-list of operator accounts,
// password login, and sessions kept in the local key/value store.
package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mckvie/hackathon/internal/hackathon"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrForbidden          = errors.New("access denied: super admin privileges required")
)

// SessionTTL is how long a login stays valid.
const SessionTTL = 7 * 24 * time.Hour

// sessionKeyPrefix namespaces sessions in the key/value store.
const sessionKeyPrefix = "admin_user:"

// Account is one allow-listed operator.
type Account struct {
	Email        string
	Name         string
	Role         hackathon.Role
	PasswordHash string
}

// SessionStore is the key/value store sessions live in.
type SessionStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type Guard struct {
	logger   *slog.Logger
	accounts map[string]Account
	sessions SessionStore
	delay    time.Duration
	sleep    func(ctx context.Context, d time.Duration) error
}

// NewGuard builds a guard over accounts. delay is added to every login
// attempt, successful or not.
func NewGuard(logger *slog.Logger, accounts []Account, sessions SessionStore, delay time.Duration) *Guard {
	byEmail := make(map[string]Account, len(accounts))
	for _, a := range accounts {
		a.Email = normalizeEmail(a.Email)
		byEmail[a.Email] = a
	}
	return &Guard{
		logger:   logger,
		accounts: byEmail,
		sessions: sessions,
		delay:    delay,
		sleep:    sleepCtx,
	}
}

// Login checks email and password against the allow-list and opens a
// session. Every failure is reported as ErrInvalidCredentials.
func (g *Guard) Login(ctx context.Context, email, password string) (string, hackathon.AdminIdentity, error) {
	if g.delay > 0 {
		if err := g.sleep(ctx, g.delay); err != nil {
			return "", hackathon.AdminIdentity{}, err
		}
	}

	acct, ok := g.accounts[normalizeEmail(email)]
	if !ok || password == "" {
		return "", hackathon.AdminIdentity{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return "", hackathon.AdminIdentity{}, ErrInvalidCredentials
	}

	id := hackathon.AdminIdentity{Email: acct.Email, Name: acct.Name, Role: acct.Role}
	data, err := json.Marshal(id)
	if err != nil {
		return "", hackathon.AdminIdentity{}, err
	}

	sessionID := uuid.NewString()
	if err := g.sessions.Set(ctx, sessionKeyPrefix+sessionID, string(data), SessionTTL); err != nil {
		return "", hackathon.AdminIdentity{}, fmt.Errorf("storing session: %w", err)
	}
	g.logger.Info("admin logged in", "email", id.Email, "role", id.Role)
	return sessionID, id, nil
}

// Logout forgets the session. Unknown sessions are not an error.
func (g *Guard) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return g.sessions.Delete(ctx, sessionKeyPrefix+sessionID)
}

// Current rehydrates the identity behind sessionID. A stored identity whose
// email has left the allow-list is discarded and ErrNotAuthenticated returned.
func (g *Guard) Current(ctx context.Context, sessionID string) (hackathon.AdminIdentity, error) {
	if sessionID == "" {
		return hackathon.AdminIdentity{}, ErrNotAuthenticated
	}
	raw, err := g.sessions.Get(ctx, sessionKeyPrefix+sessionID)
	if err != nil {
		return hackathon.AdminIdentity{}, ErrNotAuthenticated
	}

	var id hackathon.AdminIdentity
	if err := json.Unmarshal([]byte(raw), &id); err != nil {
		g.logger.Warn("discarding unreadable admin session", "error", err)
		_ = g.Logout(ctx, sessionID)
		return hackathon.AdminIdentity{}, ErrNotAuthenticated
	}

	acct, ok := g.accounts[normalizeEmail(id.Email)]
	if !ok {
		g.logger.Warn("admin no longer allow-listed, ending session", "email", id.Email)
		_ = g.Logout(ctx, sessionID)
		return hackathon.AdminIdentity{}, ErrNotAuthenticated
	}
	// The allow-list is the source of truth for name and role.
	return hackathon.AdminIdentity{Email: acct.Email, Name: acct.Name, Role: acct.Role}, nil
}

// Authorize reports whether id may use something that requires role.
func Authorize(id hackathon.AdminIdentity, role hackathon.Role) error {
	if id.Email == "" {
		return ErrNotAuthenticated
	}
	if !id.Role.Satisfies(role) {
		return ErrForbidden
	}
	return nil
}

// devPasswordHash is the bcrypt hash of "changeme".
const devPasswordHash = "$2a$10$trCdqP4npsbw0R1vQxVwXeT1HebzRmP01SXaNGPz1eSAZ7mpcL0Uu"

// DevAccount is the account used when no allow-list is configured.
func DevAccount() Account {
	return Account{
		Email:        "admin@mckvie.edu.in",
		Name:         "Hackathon Admin",
		Role:         hackathon.RoleSuperAdmin,
		PasswordHash: devPasswordHash,
	}
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
