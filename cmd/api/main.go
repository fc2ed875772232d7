package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/superandes-api/internal/application/auth"
	"github.com/jhoicas/superandes-api/internal/application/catalog"
	"github.com/jhoicas/superandes-api/internal/application/invoices"
	"github.com/jhoicas/superandes-api/internal/application/replenishment"
	"github.com/jhoicas/superandes-api/internal/application/reports"
	"github.com/jhoicas/superandes-api/internal/application/sales"
	"github.com/jhoicas/superandes-api/internal/application/storage"
	infrapdf "github.com/jhoicas/superandes-api/internal/infrastructure/pdf"
	"github.com/jhoicas/superandes-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/superandes-api/internal/interfaces/http"
	"github.com/jhoicas/superandes-api/pkg/config"
	"github.com/jhoicas/superandes-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	seq := postgres.NewSequence(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	typeRepo := postgres.NewProductTypeRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	storageRepo := postgres.NewStorageRepository(pool)
	termRepo := postgres.NewSalesTermRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	catalogUC := catalog.NewUseCase(seq, branchRepo, supplierRepo, categoryRepo, typeRepo, productRepo, customerRepo)
	storageUC := storage.NewUseCase(txRunner, branchRepo, typeRepo, storageRepo)
	salesUC := sales.NewUseCase(txRunner, customerRepo, branchRepo, productRepo, termRepo, log)
	replenishmentUC := replenishment.NewUseCase(txRunner, branchRepo, supplierRepo, orderRepo, log)
	reportsUC := reports.NewUseCase(branchRepo, customerRepo, invoiceRepo, reportRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	invoicesUC := invoices.NewUseCase(invoiceRepo, branchRepo, customerRepo, productRepo, pdfGenerator)

	authUC := auth.NewUseCase(userRepo, seq, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:       catalogUC,
		StorageUC:       storageUC,
		SalesUC:         salesUC,
		ReplenishmentUC: replenishmentUC,
		ReportsUC:       reportsUC,
		InvoicesUC:      invoicesUC,
		AuthUC:          authUC,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
