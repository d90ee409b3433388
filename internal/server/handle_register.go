package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mckvie/hackathon/internal/hackathon"
	"github.com/mckvie/hackathon/internal/registration"
)

// ValidationErrorResponse is returned with 422 when a form is rejected.
// Form echoes the submitted values so nothing typed is lost.
type ValidationErrorResponse struct {
	Error  string                       `json:"error"`
	Errors []string                     `json:"errors"`
	Form   hackathon.RegistrationRecord `json:"form"`
}

// SubmitFailedResponse is returned with 502 when the registration could
// not be stored.
type SubmitFailedResponse struct {
	Error string                       `json:"error"`
	Form  hackathon.RegistrationRecord `json:"form"`
}

// serverFields are set by the service and rejected in submissions.
var serverFields = map[string]bool{
	"id": true, "teamId": true, "teamNumber": true,
	"submittedAt": true, "addedBy": true, "addedAt": true,
}

func handleRegisterForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		form := hackathon.NewRegistrationForm(q.Get("email"), q.Get("name"))
		writeJSON(w, http.StatusOK, form.Value())
	}
}

func handleRegister(logger *slog.Logger, sub *registration.Submitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := hackathon.NewRegistrationForm("", "")
		if err := decodeForm(r, form); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		submitted := form.Value()
		out := sub.Submit(r.Context(), form)
		writeOutcome(w, out, submitted)
	}
}

func writeOutcome(w http.ResponseWriter, out registration.Outcome, submitted hackathon.RegistrationRecord) {
	switch out.State {
	case registration.StateSucceeded:
		writeJSON(w, http.StatusCreated, out.Result)
	case registration.StateFailed:
		writeJSON(w, http.StatusBadGateway, SubmitFailedResponse{Error: out.Message, Form: submitted})
	default:
		writeJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
			Error:  "validation failed",
			Errors: out.Errors,
			Form:   submitted,
		})
	}
}

// decodeForm applies a JSON object or an urlencoded body to form, field
// by field.
func decodeForm(r *http.Request, form *hackathon.FormState[hackathon.RegistrationRecord]) error {
	fields := map[string]any{}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			return errors.New("invalid form body")
		}
		for name, vals := range r.PostForm {
			fields[name] = vals[len(vals)-1]
		}
	} else if err := readJSON(r, &fields); err != nil {
		return errors.New("invalid request body")
	}

	for name, v := range fields {
		if serverFields[name] {
			return fmt.Errorf("%s is assigned by the server", name)
		}
		if err := form.SetField(name, v); err != nil {
			return err
		}
	}
	return nil
}
