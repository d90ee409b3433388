package server

import (
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/mckvie/hackathon/internal/hackathon"
	"github.com/mckvie/hackathon/internal/handler/health"
)

func addRoutes(r chi.Router, logger *slog.Logger, d Deps) {
	now := d.Now
	if now == nil {
		now = time.Now
	}

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("MCKVIE Hackathon API", "/openapi.json", "/docs"))
	r.Mount("/healthz", health.NewHandler(logger, d.Checks).Routes())

	// Public pages.
	r.Get("/api/site", handleSite())
	r.Get("/api/schedule", handleSchedule())
	r.Get("/api/problems", handleProblems())
	r.Get("/api/gallery", handleGallery())
	r.Get("/api/team", handleTeam())
	r.Get("/api/contact", handleContact())
	r.Post("/api/intro/seen", handleIntroSeen())

	// Registration.
	r.Get("/api/register/form", handleRegisterForm())
	r.Post("/api/register", handleRegister(logger, d.Submitter))

	// Admin auth.
	r.Post("/api/admin/login", handleAdminLogin(logger, d.Guard))
	r.Post("/api/admin/logout", handleAdminLogout(logger, d.Guard))
	r.Get("/api/admin/me", handleAdminMe(d.Guard))

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(adminAuthMiddleware(d.Guard))

		r.Get("/stats", handleAdminStats(logger, d.Registrations, now))
		r.Get("/registrations", handleAdminListRegistrations(logger, d.Registrations))
		r.Get("/registrations.csv", handleAdminExportCSV(logger, d.Registrations, now))
		r.Post("/registrations/export/sheets", handleAdminExportSheets(logger, d.Registrations, d.Sheets))
		r.Get("/registrations/{id}", handleAdminGetRegistration(logger, d.Registrations))
		r.Post("/registrations/{id}/resend", handleAdminResendEmail(logger, d.Registrations, d.Mailer))
		r.Post("/teams", handleAdminAddTeam(logger, d.Submitter))

		r.Group(func(r chi.Router) {
			r.Use(requireRole(hackathon.RoleSuperAdmin))
			r.Delete("/registrations/{id}", handleAdminDeleteRegistration(logger, d.Registrations))
			r.Post("/emails/bulk", handleAdminBulkEmail(logger, d.Registrations, d.Mailer))
			r.Delete("/counter", handleAdminResetCounter(logger, d.Counter))
		})
	})

	if d.SPADir != "" {
		if info, err := os.Stat(d.SPADir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", d.SPADir)
			r.NotFound(handleSPA(d.SPADir))
		}
	}
}
