package http

import (
	"net/http"

	"go-hospital-booking/internal/delivery/http/handler"
	"go-hospital-booking/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	facilityHandler     *handler.FacilityHandler
	providerHandler     *handler.ProviderHandler
	availabilityHandler *handler.AvailabilityHandler
	consultationHandler *handler.ConsultationHandler
	assignmentHandler   *handler.AssignmentHandler
	wizardHandler       *handler.WizardHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	facilityHandler *handler.FacilityHandler,
	providerHandler *handler.ProviderHandler,
	availabilityHandler *handler.AvailabilityHandler,
	consultationHandler *handler.ConsultationHandler,
	assignmentHandler *handler.AssignmentHandler,
	wizardHandler *handler.WizardHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		facilityHandler:     facilityHandler,
		providerHandler:     providerHandler,
		availabilityHandler: availabilityHandler,
		consultationHandler: consultationHandler,
		assignmentHandler:   assignmentHandler,
		wizardHandler:       wizardHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/register/admin", r.authHandler.RegisterAdmin).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Discovery routes (protected, any role)
	browse := api.PathPrefix("").Subrouter()
	browse.Use(r.authMiddleware.Authenticate)
	browse.HandleFunc("/facilities", r.facilityHandler.GetAllFacilities).Methods(http.MethodGet)
	browse.HandleFunc("/facilities/{id}", r.facilityHandler.GetFacility).Methods(http.MethodGet)
	browse.HandleFunc("/providers", r.providerHandler.GetAllProviders).Methods(http.MethodGet)
	browse.HandleFunc("/providers/{id}", r.providerHandler.GetProvider).Methods(http.MethodGet)
	browse.HandleFunc("/providers/{id}/availability", r.availabilityHandler.GetOpenSlots).Methods(http.MethodGet)

	// Patient routes (protected - patient only)
	patient := api.PathPrefix("").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)

	patient.HandleFunc("/consultations", r.consultationHandler.BookConsultation).Methods(http.MethodPost)
	patient.HandleFunc("/consultations", r.consultationHandler.GetMyConsultations).Methods(http.MethodGet)
	patient.HandleFunc("/consultations/{id}/cancel", r.consultationHandler.CancelConsultation).Methods(http.MethodPost)

	// Guided booking wizard (patient)
	patient.HandleFunc("/wizard", r.wizardHandler.Start).Methods(http.MethodPost)
	patient.HandleFunc("/wizard/{id}", r.wizardHandler.GetState).Methods(http.MethodGet)
	patient.HandleFunc("/wizard/{id}/provider", r.wizardHandler.SelectProvider).Methods(http.MethodPost)
	patient.HandleFunc("/wizard/{id}/date", r.wizardHandler.SelectDate).Methods(http.MethodPost)
	patient.HandleFunc("/wizard/{id}/slot", r.wizardHandler.SelectSlot).Methods(http.MethodPost)
	patient.HandleFunc("/wizard/{id}/confirm", r.wizardHandler.Confirm).Methods(http.MethodPost)
	patient.HandleFunc("/wizard/{id}/back", r.wizardHandler.Back).Methods(http.MethodPost)
	patient.HandleFunc("/wizard/{id}", r.wizardHandler.Cancel).Methods(http.MethodDelete)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Facility management (admin)
	admin.HandleFunc("/facilities", r.facilityHandler.CreateFacility).Methods(http.MethodPost)
	admin.HandleFunc("/facilities", r.facilityHandler.GetMyFacilities).Methods(http.MethodGet)
	admin.HandleFunc("/facilities/{id}", r.facilityHandler.UpdateFacility).Methods(http.MethodPut)
	admin.HandleFunc("/facilities/{id}", r.facilityHandler.DeleteFacility).Methods(http.MethodDelete)

	// Provider management (admin)
	admin.HandleFunc("/providers", r.providerHandler.CreateProvider).Methods(http.MethodPost)
	admin.HandleFunc("/providers/{id}", r.providerHandler.UpdateProvider).Methods(http.MethodPut)
	admin.HandleFunc("/providers/{id}", r.providerHandler.DeleteProvider).Methods(http.MethodDelete)

	// Slot assignment (admin)
	admin.HandleFunc("/slots/assign", r.assignmentHandler.AssignSlots).Methods(http.MethodPost)
	admin.HandleFunc("/slots/unassign", r.assignmentHandler.UnassignSlots).Methods(http.MethodPost)
	admin.HandleFunc("/slots/{id}/cancel", r.assignmentHandler.CancelSlot).Methods(http.MethodPost)
	admin.HandleFunc("/providers/{id}/slots", r.assignmentHandler.GetProviderSlots).Methods(http.MethodGet)

	// Audit trail (admin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
