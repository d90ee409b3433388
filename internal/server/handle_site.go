package server

import (
	"net/http"

	"github.com/mckvie/hackathon/internal/site"
)

const introCookieName = "hasSeenVideoIntro"

func handleSite() http.HandlerFunc {
	info := site.SiteInfo()
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, info)
	}
}

func handleSchedule() http.HandlerFunc {
	phases := site.Schedule()
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, phases)
	}
}

func handleProblems() http.HandlerFunc {
	problems := site.Problems()
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, problems)
	}
}

func handleGallery() http.HandlerFunc {
	items := site.Gallery()
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, items)
	}
}

func handleTeam() http.HandlerFunc {
	members := site.Team()
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, members)
	}
}

func handleContact() http.HandlerFunc {
	contact := site.ContactPage()
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, contact)
	}
}

// handleIntroSeen records that the visitor watched (or skipped) the intro.
func handleIntroSeen() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     introCookieName,
			Value:    "true",
			Path:     "/",
			MaxAge:   365 * 24 * 60 * 60,
			SameSite: http.SameSiteLaxMode,
		})
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func hasSeenIntro(r *http.Request) bool {
	c, err := r.Cookie(introCookieName)
	return err == nil && c.Value == "true"
}
