package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/mckvie/hackathon/internal/admin"
	"github.com/mckvie/hackathon/internal/config"
	"github.com/mckvie/hackathon/internal/database"
	"github.com/mckvie/hackathon/internal/docstore"
	"github.com/mckvie/hackathon/internal/email"
	"github.com/mckvie/hackathon/internal/handler/health"
	"github.com/mckvie/hackathon/internal/localstore"
	"github.com/mckvie/hackathon/internal/notify"
	"github.com/mckvie/hackathon/internal/registration"
	"github.com/mckvie/hackathon/internal/server"
	"github.com/mckvie/hackathon/internal/sheets"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- Document store ---
	db, err := database.Open(ctx, cfg.DocstoreURL, cfg.DocstoreToken)
	if err != nil {
		return fmt.Errorf("connecting to document store: %w", err)
	}
	defer db.Close()

	docs, err := docstore.New(ctx, db)
	if err != nil {
		return fmt.Errorf("preparing document store: %w", err)
	}
	regs := docstore.NewRegistrations(docs, cfg.CollectionPath())
	logger.Info("connected to document store", "collection", cfg.CollectionPath())

	// --- Local store ---
	kv, err := localstore.Open(ctx, cfg.LocalStorePath)
	if err != nil {
		return fmt.Errorf("opening local store: %w", err)
	}
	defer kv.Close()
	logger.Info("opened local store", "path", cfg.LocalStorePath)

	// --- Email ---
	var sender email.Sender
	if cfg.EmailEnabled() {
		sender = email.NewResendSender(logger, cfg.ResendAPIKey, cfg.EmailFrom)
	} else {
		logger.Warn("RESEND_API_KEY not set, confirmation emails are disabled")
	}
	mailer := email.NewDispatcher(logger, sender, cfg.EmailReplyTo, cfg.EmailPace)

	// --- Admin ---
	guard := admin.NewGuard(logger, adminAccounts(logger, cfg.AdminAccounts), kv, cfg.AdminLoginDelay)

	// --- Registration ---
	var notifier registration.Notifier
	if cfg.TelegramToken != "" {
		tg, err := notify.NewTelegram(logger, cfg.TelegramToken, cfg.TelegramAdminChats)
		if err != nil {
			return fmt.Errorf("connecting to telegram: %w", err)
		}
		notifier = tg
	}
	counter := registration.NewCounter(logger, regs, kv)
	submitter := registration.NewSubmitter(logger, regs, counter, mailer, notifier)

	// --- Google Sheets ---
	var exporter server.SheetsExporter
	if cfg.SheetsEnabled() {
		sc, err := sheets.New(ctx, cfg.SheetsCredentialsFile, cfg.SheetsSpreadsheetID)
		if err != nil {
			return fmt.Errorf("connecting to google sheets: %w", err)
		}
		exporter = sc
	}

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, logger, server.Deps{
		Registrations: regs,
		Submitter:     submitter,
		Counter:       counter,
		Mailer:        mailer,
		Guard:         guard,
		Sheets:        exporter,
		Checks: map[string]health.Checker{
			"docstore":   docs,
			"localstore": kv,
		},
		SPADir: cfg.SPADir,
		Now:    time.Now,
	})

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}

// adminAccounts converts the configured allow-list. Without one, the
// development account is used so the back office stays reachable locally.
func adminAccounts(logger *slog.Logger, configured []config.AdminAccount) []admin.Account {
	if len(configured) == 0 {
		dev := admin.DevAccount()
		logger.Warn("ADMIN_ACCOUNTS not set, using development admin account", "email", dev.Email)
		return []admin.Account{dev}
	}

	accounts := make([]admin.Account, 0, len(configured))
	for _, a := range configured {
		accounts = append(accounts, admin.Account{
			Email:        a.Email,
			Name:         a.Name,
			Role:         a.Role,
			PasswordHash: a.PasswordHash,
		})
	}
	return accounts
}
