package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mckvie/hackathon/internal/admin"
	"github.com/mckvie/hackathon/internal/hackathon"
)

// AdminLoginRequest is the request body for POST /api/admin/login.
type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminMeResponse is the response for GET /api/admin/me.
type AdminMeResponse struct {
	IsAuthenticated bool                     `json:"isAuthenticated"`
	CurrentUser     *hackathon.AdminIdentity `json:"currentUser"`
}

func handleAdminLogin(logger *slog.Logger, guard *admin.Guard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdminLoginRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		req.Email = strings.TrimSpace(strings.ToLower(req.Email))
		if req.Email == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "email and password are required")
			return
		}

		sid, id, err := guard.Login(r.Context(), req.Email, req.Password)
		if errors.Is(err, admin.ErrInvalidCredentials) {
			logger.Warn("admin login rejected", "email", req.Email)
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		if err != nil {
			logger.Error("admin login failed", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		setAdminCookie(w, sid)
		writeJSON(w, http.StatusOK, AdminMeResponse{IsAuthenticated: true, CurrentUser: &id})
	}
}

func handleAdminLogout(logger *slog.Logger, guard *admin.Guard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := guard.Logout(r.Context(), adminSessionID(r)); err != nil {
			logger.Error("admin logout failed", "error", err)
		}
		clearAdminCookie(w)
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// handleAdminMe never fails: an anonymous caller gets isAuthenticated=false.
func handleAdminMe(guard *admin.Guard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := guard.Current(r.Context(), adminSessionID(r))
		if err != nil {
			if adminSessionID(r) != "" {
				clearAdminCookie(w)
			}
			writeJSON(w, http.StatusOK, AdminMeResponse{})
			return
		}
		writeJSON(w, http.StatusOK, AdminMeResponse{IsAuthenticated: true, CurrentUser: &id})
	}
}

func setAdminCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     adminCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(admin.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearAdminCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     adminCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
