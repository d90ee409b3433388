package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/mckvie/hackathon/internal/admin"
	"github.com/mckvie/hackathon/internal/hackathon"
)

type ctxKey int

const (
	ctxKeyAdmin ctxKey = iota
)

const (
	adminCookieName = "admin_session"
	adminLoginPath  = "/admin/login"
)

// UnauthorizedResponse tells the back office where to send the user.
type UnauthorizedResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect"`
}

func writeUnauthorized(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, UnauthorizedResponse{
		Error:    "not authenticated",
		Redirect: adminLoginPath,
	})
}

func adminSessionID(r *http.Request) string {
	cookie, err := r.Cookie(adminCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func adminAuthMiddleware(guard *admin.Guard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sid := adminSessionID(r)
			if sid == "" {
				writeUnauthorized(w)
				return
			}

			id, err := guard.Current(r.Context(), sid)
			if err != nil {
				clearAdminCookie(w)
				writeUnauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyAdmin, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// requireRole must run after adminAuthMiddleware.
func requireRole(role hackathon.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			err := admin.Authorize(adminFrom(r), role)
			switch {
			case errors.Is(err, admin.ErrForbidden):
				writeError(w, http.StatusForbidden, err.Error())
				return
			case err != nil:
				writeUnauthorized(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func adminFrom(r *http.Request) hackathon.AdminIdentity {
	id, _ := r.Context().Value(ctxKeyAdmin).(hackathon.AdminIdentity)
	return id
}
