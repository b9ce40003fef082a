package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carry-ledger-api/internal/application/analytics"
	"github.com/jhoicas/carry-ledger-api/internal/application/auth"
	"github.com/jhoicas/carry-ledger-api/internal/application/customer"
	"github.com/jhoicas/carry-ledger-api/internal/application/inventory"
	"github.com/jhoicas/carry-ledger-api/internal/application/reporting"
	"github.com/jhoicas/carry-ledger-api/internal/application/usecase"
	"github.com/jhoicas/carry-ledger-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MovementUC  *inventory.MovementUseCase
	DashboardUC *analytics.DashboardUseCase
	CustomerUC  *customer.CustomerUseCase
	ProductUC   *usecase.ProductUseCase
	StatementUC *reporting.StatementUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	canManage := RequireRole(entity.RoleAdmin, entity.RoleManager)

	protected.Get("/auth/me", authHandler.Me)
	protected.Get("/users", RequireRole(entity.RoleAdmin), authHandler.Users)

	// Movimientos
	inventoryHandler := NewInventoryHandler(deps.MovementUC, deps.StatementUC)
	protected.Get("/categories", inventoryHandler.Categories)
	movements := protected.Group("/movements")
	movements.Get("/", inventoryHandler.History)
	movements.Get("/export", inventoryHandler.ExportHistory)
	movements.Post("/carry-in", inventoryHandler.CarryIn)
	movements.Post("/carry-out", inventoryHandler.CarryOut)
	movements.Get("/:id", inventoryHandler.GetByID)
	movements.Patch("/:id", inventoryHandler.Update)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)

	// Customers
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.StatementUC)
	customers := protected.Group("/customers")
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/directory", customerHandler.Directory)
	customers.Put("/:id", canManage, customerHandler.Rename)
	customers.Delete("/:id", canManage, customerHandler.Delete)
	customers.Get("/:id/ledger", customerHandler.Ledger)
	customers.Get("/:id/statement", customerHandler.Statement)

	// Products
	productHandler := NewProductHandler(deps.ProductUC)
	products := protected.Group("/products")
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)

	// Reports
	reportHandler := NewReportHandler(deps.StatementUC)
	reports := protected.Group("/reports")
	reports.Get("/", reportHandler.Preview)
	reports.Get("/export", reportHandler.Export)
}
