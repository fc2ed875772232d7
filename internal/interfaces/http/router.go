package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/superandes-api/internal/application/auth"
	"github.com/jhoicas/superandes-api/internal/application/catalog"
	"github.com/jhoicas/superandes-api/internal/application/invoices"
	"github.com/jhoicas/superandes-api/internal/application/replenishment"
	"github.com/jhoicas/superandes-api/internal/application/reports"
	"github.com/jhoicas/superandes-api/internal/application/sales"
	"github.com/jhoicas/superandes-api/internal/application/storage"
	"github.com/jhoicas/superandes-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC       *catalog.UseCase
	StorageUC       *storage.UseCase
	SalesUC         *sales.UseCase
	ReplenishmentUC *replenishment.UseCase
	ReportsUC       *reports.UseCase
	InvoicesUC      *invoices.UseCase
	AuthUC          *auth.UseCase
	JWTSecret       string
}

// Router registra las rutas de la API. Las consultas son públicas; las
// mutaciones requieren Bearer Token, y las que comprometen dinero o
// inventario exigen además rol admin o gerente.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	storageHandler := NewStorageHandler(deps.StorageUC)
	salesHandler := NewSalesHandler(deps.SalesUC)
	replenishmentHandler := NewReplenishmentHandler(deps.ReplenishmentUC)
	reportsHandler := NewReportsHandler(deps.ReportsUC)
	invoiceHandler := NewInvoiceHandler(deps.InvoicesUC)

	// Consultas (público)
	api.Get("/branches", catalogHandler.ListBranches)
	api.Get("/suppliers", catalogHandler.ListSuppliers)
	api.Get("/categories", catalogHandler.ListCategories)
	api.Get("/product-types", catalogHandler.ListProductTypes)
	api.Get("/products", catalogHandler.ListProducts)
	api.Get("/storage/capacity", storageHandler.Capacity)
	api.Get("/storage/occupied", storageHandler.Occupied)
	api.Get("/storage/on-hand", storageHandler.QuantityOnHand)
	api.Get("/sales-terms", salesHandler.GetTerm)
	api.Get("/orders", replenishmentHandler.ListOrders)
	api.Get("/orders/:id", replenishmentHandler.GetOrder)
	api.Get("/invoices/:id", invoiceHandler.GetByID)
	api.Get("/invoices/:id/pdf", invoiceHandler.DownloadPDF)
	api.Get("/reports/revenue", reportsHandler.RevenueByBranch)
	api.Get("/reports/customer-sales", reportsHandler.SalesByCustomer)
	api.Get("/reports/occupancy", reportsHandler.OccupancyIndex)

	// Mutaciones (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	manager := RequireRole(entity.RoleAdmin, entity.RoleManager)

	protected.Post("/branches", manager, catalogHandler.CreateBranch)
	protected.Post("/suppliers", manager, catalogHandler.CreateSupplier)
	protected.Post("/suppliers/:id/products", manager, catalogHandler.AddSupplierProduct)
	protected.Post("/categories", manager, catalogHandler.CreateCategory)
	protected.Post("/product-types", manager, catalogHandler.CreateProductType)
	protected.Post("/products", manager, catalogHandler.CreateProduct)
	protected.Post("/customers", catalogHandler.CreateCustomer)

	protected.Post("/storage-units", manager, storageHandler.CreateUnit)
	protected.Put("/sales-terms", manager, salesHandler.RegisterTerm)

	// Venta: cualquier usuario autenticado (cajeros incluidos)
	protected.Post("/sales", salesHandler.Sell)

	protected.Post("/orders", manager, replenishmentHandler.PlaceOrder)
	protected.Post("/orders/:id/arrival", manager, replenishmentHandler.RecordArrival)
}
