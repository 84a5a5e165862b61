package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"plantmaint/handlers"
	"plantmaint/middleware"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(logger *zap.Logger) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(logger))

	// =====================================================
	// Public Routes (no authentication)
	// =====================================================
	r.HandleFunc("/auth/register", handlers.Register).Methods("POST")
	r.HandleFunc("/auth/login", handlers.Login).Methods("POST")
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir("./uploads"))),
	)

	// =====================================================
	// Session routes (require JWT, no resource policy)
	// =====================================================
	auth := r.PathPrefix("/auth").Subrouter()
	auth.Use(middleware.JWTMiddleware)
	auth.HandleFunc("/me", handlers.Me).Methods("GET")
	auth.HandleFunc("/logout", handlers.Logout).Methods("POST")
	auth.HandleFunc("/change-password", handlers.ChangePassword).Methods("POST")

	// =====================================================
	// Protected API Routes (require JWT authentication)
	// =====================================================
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.JWTMiddleware)

	registerResourceRoutes(api)
	registerWorkOrderChildRoutes(api)
	registerReportRoutes(api)

	api.Handle("/files/upload",
		middleware.RequirePolicy("work-orders", middleware.ActionUpdate)(
			http.HandlerFunc(handlers.UploadFileHandler))).Methods("POST")

	api.Handle("/users",
		middleware.RequirePolicy("users", middleware.ActionRead)(
			http.HandlerFunc(handlers.GetAllUsers))).Methods("GET")
	api.Handle("/users",
		middleware.RequirePolicy("users", middleware.ActionCreate)(
			http.HandlerFunc(handlers.CreateUser))).Methods("POST")

	return r
}

type crudHandlers struct {
	getAll func(http.ResponseWriter, *http.Request)
	create func(http.ResponseWriter, *http.Request)
	getOne func(http.ResponseWriter, *http.Request)
	update func(http.ResponseWriter, *http.Request)
	delete func(http.ResponseWriter, *http.Request)
}

// registerCRUDRoutes registers standard CRUD routes for a resource. The
// resource name doubles as the policy-table key.
func registerCRUDRoutes(router *mux.Router, resource string, h crudHandlers) {
	path := "/" + resource

	router.Handle(path, middleware.RequirePolicy(resource, middleware.ActionRead)(
		http.HandlerFunc(h.getAll))).Methods("GET")

	router.Handle(path, middleware.RequirePolicy(resource, middleware.ActionCreate)(
		http.HandlerFunc(h.create))).Methods("POST")

	router.Handle(path+"/{id}", middleware.RequirePolicy(resource, middleware.ActionRead)(
		http.HandlerFunc(h.getOne))).Methods("GET")

	router.Handle(path+"/{id}", middleware.RequirePolicy(resource, middleware.ActionUpdate)(
		http.HandlerFunc(h.update))).Methods("PUT")

	router.Handle(path+"/{id}", middleware.RequirePolicy(resource, middleware.ActionDelete)(
		http.HandlerFunc(h.delete))).Methods("DELETE")
}

func registerResourceRoutes(api *mux.Router) {
	registerCRUDRoutes(api, "plants", crudHandlers{
		getAll: handlers.GetAllPlants,
		create: handlers.CreatePlant,
		getOne: handlers.GetPlant,
		update: handlers.UpdatePlant,
		delete: handlers.DeletePlant,
	})
	api.Handle("/plants/{id}/contains",
		middleware.RequirePolicy("plants", middleware.ActionRead)(
			http.HandlerFunc(handlers.PlantContains))).Methods("GET")

	registerCRUDRoutes(api, "vendors", crudHandlers{
		getAll: handlers.GetAllVendors,
		create: handlers.CreateVendor,
		getOne: handlers.GetVendor,
		update: handlers.UpdateVendor,
		delete: handlers.DeleteVendor,
	})

	registerCRUDRoutes(api, "machines", crudHandlers{
		getAll: handlers.GetAllMachines,
		create: handlers.CreateMachine,
		getOne: handlers.GetMachine,
		update: handlers.UpdateMachine,
		delete: handlers.DeleteMachine,
	})

	registerCRUDRoutes(api, "inventory", crudHandlers{
		getAll: handlers.GetAllInventory,
		create: handlers.CreateInventory,
		getOne: handlers.GetInventory,
		update: handlers.UpdateInventory,
		delete: handlers.DeleteInventory,
	})

	registerCRUDRoutes(api, "work-orders", crudHandlers{
		getAll: handlers.GetAllWorkOrders,
		create: handlers.CreateWorkOrder,
		getOne: handlers.GetWorkOrder,
		update: handlers.UpdateWorkOrder,
		delete: handlers.DeleteWorkOrder,
	})

	registerCRUDRoutes(api, "maintenance-schedules", crudHandlers{
		getAll: handlers.GetAllMaintenanceSchedules,
		create: handlers.CreateMaintenanceSchedule,
		getOne: handlers.GetMaintenanceSchedule,
		update: handlers.UpdateMaintenanceSchedule,
		delete: handlers.DeleteMaintenanceSchedule,
	})
	api.Handle("/maintenance-schedules/{id}/complete",
		middleware.RequirePolicy("maintenance-schedules", middleware.ActionUpdate)(
			http.HandlerFunc(handlers.CompleteMaintenanceSchedule))).Methods("POST")

	registerCRUDRoutes(api, "calls", crudHandlers{
		getAll: handlers.GetAllCalls,
		create: handlers.CreateCall,
		getOne: handlers.GetCall,
		update: handlers.UpdateCall,
		delete: handlers.DeleteCall,
	})
}

// registerWorkOrderChildRoutes registers the part and labor ledgers. Creation
// is nested under the parent work order; item edits address the child row.
func registerWorkOrderChildRoutes(api *mux.Router) {
	api.Handle("/work-orders/{id}/parts",
		middleware.RequirePolicy("work-order-parts", middleware.ActionRead)(
			http.HandlerFunc(handlers.GetWorkOrderParts))).Methods("GET")
	api.Handle("/work-orders/{id}/parts",
		middleware.RequirePolicy("work-order-parts", middleware.ActionCreate)(
			http.HandlerFunc(handlers.CreateWorkOrderPart))).Methods("POST")
	api.Handle("/work-order-parts/{id}",
		middleware.RequirePolicy("work-order-parts", middleware.ActionUpdate)(
			http.HandlerFunc(handlers.UpdateWorkOrderPart))).Methods("PUT")
	api.Handle("/work-order-parts/{id}",
		middleware.RequirePolicy("work-order-parts", middleware.ActionDelete)(
			http.HandlerFunc(handlers.DeleteWorkOrderPart))).Methods("DELETE")

	api.Handle("/work-orders/{id}/labor",
		middleware.RequirePolicy("work-order-labor", middleware.ActionRead)(
			http.HandlerFunc(handlers.GetWorkOrderLabor))).Methods("GET")
	api.Handle("/work-orders/{id}/labor",
		middleware.RequirePolicy("work-order-labor", middleware.ActionCreate)(
			http.HandlerFunc(handlers.CreateWorkOrderLabor))).Methods("POST")
	api.Handle("/work-order-labor/{id}",
		middleware.RequirePolicy("work-order-labor", middleware.ActionUpdate)(
			http.HandlerFunc(handlers.UpdateWorkOrderLabor))).Methods("PUT")
	api.Handle("/work-order-labor/{id}",
		middleware.RequirePolicy("work-order-labor", middleware.ActionDelete)(
			http.HandlerFunc(handlers.DeleteWorkOrderLabor))).Methods("DELETE")
}

func registerReportRoutes(api *mux.Router) {
	read := middleware.RequirePolicy("reports", middleware.ActionRead)
	api.Handle("/reports/work-order-summary",
		read(http.HandlerFunc(handlers.WorkOrderSummary))).Methods("GET")
	api.Handle("/reports/low-stock",
		read(http.HandlerFunc(handlers.LowStock))).Methods("GET")
	api.Handle("/reports/overdue-maintenance",
		read(http.HandlerFunc(handlers.OverdueMaintenance))).Methods("GET")
	api.Handle("/reports/work-orders/export",
		read(http.HandlerFunc(handlers.ExportWorkOrders))).Methods("GET")
}
