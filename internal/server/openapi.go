package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/mckvie/hackathon/internal/email"
	"github.com/mckvie/hackathon/internal/hackathon"
	"github.com/mckvie/hackathon/internal/handler/health"
	"github.com/mckvie/hackathon/internal/registration"
	"github.com/mckvie/hackathon/internal/site"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// registrationPath is the {id} path parameter of the registration routes.
type registrationPath struct {
	ID string `path:"id"`
}

// registrationQuery filters the registration list and its exports.
type registrationQuery struct {
	Q        string `query:"q"`
	Category string `query:"category"`
}

// HealthResponse maps each dependency to its check result.
type HealthResponse map[string]health.Status

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "MCKVIE Hackathon API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Registration and back-office API for the MCKVIE Halloween Hackathon.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of the document store and the local store.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	mustAddOperation(r, getHealthz)

	// GET /api/site
	getSite, _ := r.NewOperationContext(http.MethodGet, "/api/site")
	getSite.SetSummary("Event facts")
	getSite.SetDescription("Name, year, contact details, navigation and rulebook link.")
	getSite.AddRespStructure(site.Info{}, openapi.WithHTTPStatus(http.StatusOK))
	mustAddOperation(r, getSite)

	// GET /api/schedule
	getSchedule, _ := r.NewOperationContext(http.MethodGet, "/api/schedule")
	getSchedule.SetSummary("Event schedule")
	getSchedule.AddRespStructure([]site.Phase{}, openapi.WithHTTPStatus(http.StatusOK))
	mustAddOperation(r, getSchedule)

	// GET /api/problems
	getProblems, _ := r.NewOperationContext(http.MethodGet, "/api/problems")
	getProblems.SetSummary("Problem categories")
	getProblems.AddRespStructure([]site.Problem{}, openapi.WithHTTPStatus(http.StatusOK))
	mustAddOperation(r, getProblems)

	// GET /api/gallery
	getGallery, _ := r.NewOperationContext(http.MethodGet, "/api/gallery")
	getGallery.SetSummary("Gallery")
	getGallery.AddRespStructure([]site.GalleryItem{}, openapi.WithHTTPStatus(http.StatusOK))
	mustAddOperation(r, getGallery)

	// GET /api/team
	getTeam, _ := r.NewOperationContext(http.MethodGet, "/api/team")
	getTeam.SetSummary("Organising team")
	getTeam.AddRespStructure([]site.Member{}, openapi.WithHTTPStatus(http.StatusOK))
	mustAddOperation(r, getTeam)

	// GET /api/contact
	getContact, _ := r.NewOperationContext(http.MethodGet, "/api/contact")
	getContact.SetSummary("Contact page")
	getContact.AddRespStructure(site.Contact{}, openapi.WithHTTPStatus(http.StatusOK))
	mustAddOperation(r, getContact)

	// POST /api/intro/seen
	postIntro, _ := r.NewOperationContext(http.MethodPost, "/api/intro/seen")
	postIntro.SetSummary("Mark intro as seen")
	postIntro.SetDescription("Sets the hasSeenVideoIntro cookie so pages stop redirecting to /intro.")
	postIntro.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	mustAddOperation(r, postIntro)

	// GET /api/register/form
	getForm, _ := r.NewOperationContext(http.MethodGet, "/api/register/form")
	getForm.SetSummary("Initial registration form")
	getForm.SetDescription("Initial form values. The optional email and name query parameters pre-fill the team leader.")
	getForm.AddRespStructure(hackathon.RegistrationRecord{}, openapi.WithHTTPStatus(http.StatusOK))
	mustAddOperation(r, getForm)

	// POST /api/register
	postRegister, _ := r.NewOperationContext(http.MethodPost, "/api/register")
	postRegister.SetSummary("Register a team")
	postRegister.SetDescription("Validates and stores a registration, assigns the team ID and sends the confirmation email. Accepts JSON or urlencoded form bodies.")
	postRegister.AddReqStructure(hackathon.RegistrationRecord{})
	postRegister.AddRespStructure(registration.Result{}, openapi.WithHTTPStatus(http.StatusCreated))
	postRegister.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postRegister.AddRespStructure(ValidationErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnprocessableEntity))
	postRegister.AddRespStructure(SubmitFailedResponse{}, openapi.WithHTTPStatus(http.StatusBadGateway))
	mustAddOperation(r, postRegister)

	// POST /api/admin/login
	adminLogin, _ := r.NewOperationContext(http.MethodPost, "/api/admin/login")
	adminLogin.SetSummary("Admin login")
	adminLogin.SetDescription("Checks the allow-list and sets the admin_session cookie.")
	adminLogin.AddReqStructure(AdminLoginRequest{})
	adminLogin.AddRespStructure(AdminMeResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	adminLogin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	adminLogin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	mustAddOperation(r, adminLogin)

	// POST /api/admin/logout
	adminLogout, _ := r.NewOperationContext(http.MethodPost, "/api/admin/logout")
	adminLogout.SetSummary("Admin logout")
	adminLogout.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	mustAddOperation(r, adminLogout)

	// GET /api/admin/me
	adminMe, _ := r.NewOperationContext(http.MethodGet, "/api/admin/me")
	adminMe.SetSummary("Current admin")
	adminMe.SetDescription("Rehydrates the admin session from the admin_session cookie.")
	adminMe.AddRespStructure(AdminMeResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	mustAddOperation(r, adminMe)

	// GET /api/admin/stats
	adminStats, _ := r.NewOperationContext(http.MethodGet, "/api/admin/stats")
	adminStats.SetSummary("Dashboard stats")
	adminStats.SetDescription("Total, today's and per-category registration counts. Requires admin_session cookie.")
	adminStats.AddRespStructure(hackathon.Stats{}, openapi.WithHTTPStatus(http.StatusOK))
	adminStats.AddRespStructure(UnauthorizedResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	mustAddOperation(r, adminStats)

	// GET /api/admin/registrations
	listRegs, _ := r.NewOperationContext(http.MethodGet, "/api/admin/registrations")
	listRegs.AddReqStructure(registrationQuery{})
	listRegs.SetSummary("List registrations")
	listRegs.SetDescription("Newest first. q searches team name, leader name, leader email and team ID; category filters by problem category. Requires admin_session cookie.")
	listRegs.AddRespStructure(RegistrationListResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	listRegs.AddRespStructure(UnauthorizedResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	mustAddOperation(r, listRegs)

	// GET /api/admin/registrations.csv
	exportCSV, _ := r.NewOperationContext(http.MethodGet, "/api/admin/registrations.csv")
	exportCSV.AddReqStructure(registrationQuery{})
	exportCSV.SetSummary("Export CSV")
	exportCSV.SetDescription("Same filters as the list. Requires admin_session cookie.")
	exportCSV.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK), openapi.WithContentType("text/csv"))
	exportCSV.AddRespStructure(UnauthorizedResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	mustAddOperation(r, exportCSV)

	// POST /api/admin/registrations/export/sheets
	exportSheets, _ := r.NewOperationContext(http.MethodPost, "/api/admin/registrations/export/sheets")
	exportSheets.AddReqStructure(registrationQuery{})
	exportSheets.SetSummary("Export to Google Sheets")
	exportSheets.SetDescription("Appends the filtered registrations not already in the spreadsheet, matched on Team ID. Requires admin_session cookie.")
	exportSheets.AddRespStructure(SheetsExportResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	exportSheets.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadGateway))
	exportSheets.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	mustAddOperation(r, exportSheets)

	// GET /api/admin/registrations/{id}
	getReg, _ := r.NewOperationContext(http.MethodGet, "/api/admin/registrations/{id}")
	getReg.AddReqStructure(registrationPath{})
	getReg.SetSummary("Registration detail")
	getReg.AddRespStructure(hackathon.RegistrationRecord{}, openapi.WithHTTPStatus(http.StatusOK))
	getReg.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	getReg.AddRespStructure(UnauthorizedResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	mustAddOperation(r, getReg)

	// DELETE /api/admin/registrations/{id}
	deleteReg, _ := r.NewOperationContext(http.MethodDelete, "/api/admin/registrations/{id}")
	deleteReg.AddReqStructure(registrationPath{})
	deleteReg.SetSummary("Delete registration")
	deleteReg.SetDescription("Requires a super_admin session.")
	deleteReg.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	deleteReg.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusForbidden))
	deleteReg.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	mustAddOperation(r, deleteReg)

	// POST /api/admin/registrations/{id}/resend
	resend, _ := r.NewOperationContext(http.MethodPost, "/api/admin/registrations/{id}/resend")
	resend.AddReqStructure(registrationPath{})
	resend.SetSummary("Resend confirmation")
	resend.AddRespStructure(ResendResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	resend.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	mustAddOperation(r, resend)

	// POST /api/admin/teams
	addTeam, _ := r.NewOperationContext(http.MethodPost, "/api/admin/teams")
	addTeam.SetSummary("Add team manually")
	addTeam.SetDescription("Back-office entry; consents default to given and addedBy is the current admin.")
	addTeam.AddReqStructure(hackathon.RegistrationRecord{})
	addTeam.AddRespStructure(registration.Result{}, openapi.WithHTTPStatus(http.StatusCreated))
	addTeam.AddRespStructure(ValidationErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnprocessableEntity))
	addTeam.AddRespStructure(SubmitFailedResponse{}, openapi.WithHTTPStatus(http.StatusBadGateway))
	mustAddOperation(r, addTeam)

	// POST /api/admin/emails/bulk
	bulk, _ := r.NewOperationContext(http.MethodPost, "/api/admin/emails/bulk")
	bulk.SetSummary("Send bulk email")
	bulk.SetDescription("Sends a Markdown message to all or selected teams, one at a time. Requires a super_admin session.")
	bulk.AddReqStructure(BulkEmailRequest{})
	bulk.AddRespStructure(email.BulkResult{}, openapi.WithHTTPStatus(http.StatusOK))
	bulk.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	bulk.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusForbidden))
	mustAddOperation(r, bulk)

	// DELETE /api/admin/counter
	resetCounter, _ := r.NewOperationContext(http.MethodDelete, "/api/admin/counter")
	resetCounter.SetSummary("Reset fallback team counter")
	resetCounter.SetDescription("Clears the local counter used while the document store is unreachable. Requires a super_admin session.")
	resetCounter.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	resetCounter.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusForbidden))
	mustAddOperation(r, resetCounter)

	return r.Spec
}

// mustAddOperation panics when the reflector rejects an operation, so a
// route cannot silently drop out of the document.
func mustAddOperation(r *openapi3.Reflector, oc openapi.OperationContext) {
	if err := r.AddOperation(oc); err != nil {
		panic(fmt.Sprintf("openapi: %v", err))
	}
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
