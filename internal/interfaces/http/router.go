package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcardenas/Almacen-api/internal/application/auth"
	"github.com/jcardenas/Almacen-api/internal/application/inventory"
	"github.com/jcardenas/Almacen-api/internal/application/usecase"
	"github.com/jcardenas/Almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Engine     *inventory.Engine
	Queries    *inventory.HistoryQueries
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	SupplierUC *usecase.SupplierUseCase
	LocationUC *usecase.LocationUseCase
	ReportUC   *usecase.ReportUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Todo excepto auth requiere Bearer
// Token; las mutaciones de inventario exigen además rol admin o bodeguero y
// las de catálogo rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	warehouseRoles := RequireRole(entity.RoleAdmin, entity.RoleBodeguero)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Mutaciones de inventario (protegido, admin o bodeguero)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Engine, deps.Queries)
	invGroup.Post("/add", warehouseRoles, inventoryHandler.Add)
	invGroup.Post("/remove", warehouseRoles, inventoryHandler.Remove)
	invGroup.Post("/adjust", warehouseRoles, inventoryHandler.Adjust)
	invGroup.Post("/transfer", warehouseRoles, inventoryHandler.Transfer)
	invGroup.Get("/stock", inventoryHandler.GetStock)

	// Historial (protegido, solo lectura)
	historyHandler := NewHistoryHandler(deps.Queries)
	transactions := protected.Group("/transactions")
	transactions.Get("/", historyHandler.ListMovements)
	transactions.Get("/:id", historyHandler.GetMovement)
	transfers := protected.Group("/transfers")
	transfers.Get("/", historyHandler.ListTransfers)
	transfers.Get("/:id", historyHandler.GetTransfer)

	// Reportes (protegido, solo lectura)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/stock-levels", reportHandler.StockLevels)
	reports.Get("/low-stock", reportHandler.LowStock)
	reports.Get("/total-value", reportHandler.TotalValue)

	// Catálogo (protegido; mutaciones solo admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", adminOnly, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", adminOnly, categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", adminOnly, categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", adminOnly, supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", adminOnly, supplierHandler.Update)
	suppliers.Delete("/:id", adminOnly, supplierHandler.Delete)

	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", adminOnly, locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Put("/:id", adminOnly, locationHandler.Update)
	locations.Delete("/:id", adminOnly, locationHandler.Delete)
}
