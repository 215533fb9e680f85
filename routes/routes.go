package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Miraku17/PowerSystems-sub003/handlers"
	"github.com/Miraku17/PowerSystems-sub003/middleware"
	"github.com/Miraku17/PowerSystems-sub003/models"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	// =====================================================
	// Public Routes (no authentication)
	// =====================================================
	r.HandleFunc("/register", handlers.Register).Methods("POST")
	r.HandleFunc("/login", handlers.Login).Methods("POST")
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir("./uploads"))),
	)

	// =====================================================
	// Protected API Routes (require JWT authentication)
	// =====================================================
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.JWTMiddleware)

	api.HandleFunc("/profile", handlers.GetCurrentUser).Methods("GET")
	api.HandleFunc("/files/upload", handlers.UploadFileLocal).Methods("POST")

	registerMeasuringReportRoutes(api)
	registerMasterRoutes(api)

	// =====================================================
	// Admin Routes (admin/supervisor only)
	// =====================================================
	admin := api.PathPrefix("/admin").Subrouter()
	registerAdminRoutes(admin)

	return r
}

func registerMeasuringReportRoutes(api *mux.Router) {
	reports := api.PathPrefix("/measuring-reports").Subrouter()

	reports.HandleFunc("", handlers.GetAllMeasuringReports).Methods("GET")
	reports.HandleFunc("", handlers.CreateMeasuringReport).Methods("POST")
	reports.HandleFunc("/export/excel", handlers.ExportMeasuringReportsToExcel).Methods("GET")
	reports.HandleFunc("/{id}", handlers.GetMeasuringReport).Methods("GET")
	reports.HandleFunc("/{id}", handlers.UpdateMeasuringReport).Methods("PATCH")
	reports.HandleFunc("/{id}", handlers.DeleteMeasuringReport).Methods("DELETE")
}

func registerMasterRoutes(api *mux.Router) {
	companies := api.PathPrefix("/companies").Subrouter()
	companies.HandleFunc("", handlers.GetAllCompanies).Methods("GET")
	companies.HandleFunc("", handlers.CreateCompany).Methods("POST")
	companies.HandleFunc("/{id}", handlers.GetCompany).Methods("GET")
	companies.HandleFunc("/{id}", handlers.UpdateCompany).Methods("PUT")
	companies.HandleFunc("/{id}", handlers.DeleteCompany).Methods("DELETE")

	customers := api.PathPrefix("/customers").Subrouter()
	customers.HandleFunc("", handlers.GetAllCustomers).Methods("GET")
	customers.HandleFunc("", handlers.CreateCustomer).Methods("POST")
	customers.HandleFunc("/{id}", handlers.GetCustomer).Methods("GET")
	customers.HandleFunc("/{id}", handlers.UpdateCustomer).Methods("PUT")
	customers.HandleFunc("/{id}", handlers.DeleteCustomer).Methods("DELETE")

	engines := api.PathPrefix("/engines").Subrouter()
	engines.HandleFunc("", handlers.GetAllEngines).Methods("GET")
	engines.HandleFunc("", handlers.CreateEngine).Methods("POST")
	engines.HandleFunc("/{id}", handlers.GetEngine).Methods("GET")
	engines.HandleFunc("/{id}", handlers.UpdateEngine).Methods("PUT")
	engines.HandleFunc("/{id}", handlers.DeleteEngine).Methods("DELETE")

	pumps := api.PathPrefix("/pumps").Subrouter()
	pumps.HandleFunc("", handlers.GetAllPumps).Methods("GET")
	pumps.HandleFunc("", handlers.CreatePump).Methods("POST")
	pumps.HandleFunc("/{id}", handlers.GetPump).Methods("GET")
	pumps.HandleFunc("/{id}", handlers.UpdatePump).Methods("PUT")
	pumps.HandleFunc("/{id}", handlers.DeletePump).Methods("DELETE")
}

func registerAdminRoutes(admin *mux.Router) {
	adminRoles := []string{models.RoleAdmin, models.RoleSupervisor}

	admin.Handle("/users", middleware.RequireRole(adminRoles,
		http.HandlerFunc(handlers.GetAllUsers))).Methods("GET")
	admin.Handle("/users/{id}", middleware.RequireRole(adminRoles,
		http.HandlerFunc(handlers.GetUserByID))).Methods("GET")
	admin.Handle("/users/{id}", middleware.RequireRole(adminRoles,
		http.HandlerFunc(handlers.UpdateUser))).Methods("PUT")
	admin.Handle("/users/{id}", middleware.RequireRole(adminRoles,
		http.HandlerFunc(handlers.DeactivateUser))).Methods("DELETE")

	admin.Handle("/audit-logs/{recordId}", middleware.RequireRole(adminRoles,
		http.HandlerFunc(handlers.GetAuditLogs))).Methods("GET")
}
