package server

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mckvie/hackathon/internal/docstore"
	"github.com/mckvie/hackathon/internal/email"
	"github.com/mckvie/hackathon/internal/export"
	"github.com/mckvie/hackathon/internal/hackathon"
	"github.com/mckvie/hackathon/internal/registration"
)

// RegistrationListResponse is the response for GET /api/admin/registrations.
type RegistrationListResponse struct {
	Registrations []hackathon.RegistrationRecord `json:"registrations"`
	Total         int                            `json:"total"`
}

type SheetsExportResponse struct {
	Exported      int    `json:"exported"`
	SpreadsheetID string `json:"spreadsheetId"`
}

type ResendResponse struct {
	TeamID    string `json:"teamId"`
	EmailSent bool   `json:"emailSent"`
}

// BulkEmailRequest is the request body for POST /api/admin/emails/bulk.
type BulkEmailRequest struct {
	Subject       string   `json:"subject"`
	Message       string   `json:"message"`
	RecipientType string   `json:"recipientType" enum:"all,selected"`
	SelectedTeams []string `json:"selectedTeams"`
}

func handleAdminStats(logger *slog.Logger, store RegistrationStore, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := store.List(r.Context())
		if err != nil {
			logger.Error("listing registrations", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, hackathon.ComputeStats(recs, now()))
	}
}

// filteredRegistrations loads the collection and applies the q and
// category query parameters.
func filteredRegistrations(r *http.Request, store RegistrationStore) ([]hackathon.RegistrationRecord, error) {
	recs, err := store.List(r.Context())
	if err != nil {
		return nil, err
	}
	q := r.URL.Query()
	return hackathon.Filter(recs, q.Get("q"), q.Get("category")), nil
}

func handleAdminListRegistrations(logger *slog.Logger, store RegistrationStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := filteredRegistrations(r, store)
		if err != nil {
			logger.Error("listing registrations", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, RegistrationListResponse{Registrations: recs, Total: len(recs)})
	}
}

func handleAdminExportCSV(logger *slog.Logger, store RegistrationStore, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := filteredRegistrations(r, store)
		if err != nil {
			logger.Error("listing registrations", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(now())+`"`)
		w.WriteHeader(http.StatusOK)
		if err := export.WriteCSV(w, recs); err != nil {
			logger.Error("writing csv export", "error", err)
		}
	}
}

func handleAdminExportSheets(logger *slog.Logger, store RegistrationStore, sheets SheetsExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sheets == nil {
			writeError(w, http.StatusServiceUnavailable, "google sheets export is not configured")
			return
		}
		recs, err := filteredRegistrations(r, store)
		if err != nil {
			logger.Error("listing registrations", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		n, err := sheets.AppendRegistrations(r.Context(), recs)
		if err != nil {
			logger.Error("sheets export failed", "error", err)
			writeError(w, http.StatusBadGateway, "google sheets export failed")
			return
		}
		logger.Info("exported registrations to sheets", "count", n, "by", adminFrom(r).Email)
		writeJSON(w, http.StatusOK, SheetsExportResponse{Exported: n, SpreadsheetID: sheets.SpreadsheetID()})
	}
}

func handleAdminGetRegistration(logger *slog.Logger, store RegistrationStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := store.Get(r.Context(), chi.URLParam(r, "id"))
		if errors.Is(err, docstore.ErrNotFound) {
			writeError(w, http.StatusNotFound, "registration not found")
			return
		}
		if err != nil {
			logger.Error("loading registration", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

func handleAdminDeleteRegistration(logger *slog.Logger, store RegistrationStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		err := store.Delete(r.Context(), id)
		if errors.Is(err, docstore.ErrNotFound) {
			writeError(w, http.StatusNotFound, "registration not found")
			return
		}
		if err != nil {
			logger.Error("deleting registration", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		logger.Info("registration deleted", "id", id, "by", adminFrom(r).Email)
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func handleAdminResendEmail(logger *slog.Logger, store RegistrationStore, mailer *email.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := store.Get(r.Context(), chi.URLParam(r, "id"))
		if errors.Is(err, docstore.ErrNotFound) {
			writeError(w, http.StatusNotFound, "registration not found")
			return
		}
		if err != nil {
			logger.Error("loading registration", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		sent := mailer.SendRegistrationEmail(r.Context(), rec, rec.TeamID)
		writeJSON(w, http.StatusOK, ResendResponse{TeamID: rec.TeamID, EmailSent: sent})
	}
}

func handleAdminAddTeam(logger *slog.Logger, sub *registration.Submitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := hackathon.NewManualEntryForm()
		if err := decodeForm(r, form); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		submitted := form.Value()
		out := sub.SubmitManual(r.Context(), form, adminFrom(r).Email)
		if out.State == registration.StateSucceeded {
			logger.Info("team added manually", "team_id", out.Result.TeamID, "by", adminFrom(r).Email)
		}
		writeOutcome(w, out, submitted)
	}
}

func handleAdminBulkEmail(logger *slog.Logger, store RegistrationStore, mailer *email.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BulkEmailRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.RecipientType == "" {
			req.RecipientType = "all"
		}
		if req.RecipientType != "all" && req.RecipientType != "selected" {
			writeError(w, http.StatusBadRequest, "recipientType must be all or selected")
			return
		}

		recs, err := store.List(r.Context())
		if err != nil {
			logger.Error("listing registrations", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		recipients := email.SelectRecipients(recs, req.RecipientType == "all", req.SelectedTeams)

		res, err := mailer.SendBulk(r.Context(), recipients, email.BulkMessage{Subject: req.Subject, Message: req.Message})
		switch {
		case errors.Is(err, email.ErrNoSubject):
			writeError(w, http.StatusBadRequest, "Please fill in both subject and message")
			return
		case errors.Is(err, email.ErrNoRecipients):
			writeError(w, http.StatusBadRequest, "No recipients selected")
			return
		case err != nil:
			logger.Error("bulk email failed", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		logger.Info("bulk email sent", "by", adminFrom(r).Email, "total", res.Total, "failed", res.Failed)
		writeJSON(w, http.StatusOK, res)
	}
}

func handleAdminResetCounter(logger *slog.Logger, counter *registration.Counter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := counter.ResetFallback(r.Context()); err != nil {
			logger.Error("resetting team counter", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		logger.Info("fallback team counter reset", "by", adminFrom(r).Email)
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
