package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/panaderia-api/internal/application/analytics"
	"github.com/tu-usuario/panaderia-api/internal/application/assignment"
	"github.com/tu-usuario/panaderia-api/internal/application/auth"
	"github.com/tu-usuario/panaderia-api/internal/application/rates"
	"github.com/tu-usuario/panaderia-api/internal/application/usecase"
	"github.com/tu-usuario/panaderia-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserUC       *usecase.UserUseCase
	ItemUC       *usecase.ItemUseCase
	ProductionUC *usecase.ProductionUseCase
	WorkingDayUC *usecase.WorkingDayUseCase
	RateUC       *rates.RateUseCase
	AssignmentUC *assignment.AssignmentUseCase
	DashboardUC  *analytics.DashboardUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (protegido; mutaciones solo admin)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	adminUsers := users.Group("/", RequireRole(entity.RoleAdmin))
	adminUsers.Post("/", userHandler.Create)
	adminUsers.Put("/:id", userHandler.Update)
	adminUsers.Delete("/:id", userHandler.Delete)

	// Items (protegido)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Sales rates (protegido; mutaciones admin o vendedor)
	ratesGroup := protected.Group("/sales-rates")
	rateHandler := NewRateHandler(deps.RateUC)
	ratesGroup.Get("/", rateHandler.List)
	ratesGroup.Get("/customer/:customerId", rateHandler.ListByCustomer)
	ratesGroup.Get("/item/:itemId", rateHandler.ListByItem)
	ratesGroup.Get("/:id", rateHandler.GetByID)
	rateWriters := ratesGroup.Group("/", RequireRole(entity.RoleAdmin, entity.RoleVendedor))
	rateWriters.Post("/", rateHandler.Create)
	rateWriters.Put("/:id", rateHandler.Update)
	rateWriters.Delete("/:id", rateHandler.Delete)

	// Stock assignments (protegido; mutaciones admin o vendedor)
	assignments := protected.Group("/stock-assignments")
	assignmentHandler := NewAssignmentHandler(deps.AssignmentUC)
	assignments.Get("/", assignmentHandler.List)
	assignments.Get("/customer/:customerId", assignmentHandler.ListByCustomer)
	assignments.Get("/item/:itemId", assignmentHandler.ListByItem)
	assignments.Get("/:id", assignmentHandler.GetByID)
	assignmentWriters := assignments.Group("/", RequireRole(entity.RoleAdmin, entity.RoleVendedor))
	assignmentWriters.Post("/", assignmentHandler.Create)
	assignmentWriters.Put("/:id", assignmentHandler.Update)
	assignmentWriters.Delete("/:id", assignmentHandler.Delete)

	// Production (protegido)
	production := protected.Group("/production")
	productionHandler := NewProductionHandler(deps.ProductionUC)
	production.Post("/", productionHandler.Create)
	production.Get("/", productionHandler.List)
	production.Get("/item/:itemId", productionHandler.ListByItem)
	production.Get("/:id", productionHandler.GetByID)
	production.Put("/:id", productionHandler.Update)
	production.Delete("/:id", productionHandler.Delete)

	// Working days (protegido)
	workingDays := protected.Group("/working-days")
	workingDayHandler := NewWorkingDayHandler(deps.WorkingDayUC)
	workingDays.Post("/", workingDayHandler.Create)
	workingDays.Get("/", workingDayHandler.List)
	workingDays.Get("/:id", workingDayHandler.GetByID)
	workingDays.Put("/:id", workingDayHandler.Update)
	workingDays.Delete("/:id", workingDayHandler.Delete)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
	dashboard.Get("/production", dashboardHandler.GetProductionSummary)
	dashboard.Get("/sales", dashboardHandler.GetSalesSummary)
	dashboard.Get("/stock", dashboardHandler.GetStockSummary)
}
