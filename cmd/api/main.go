package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/vyapari/billing-api/internal/application/auth"
	"github.com/vyapari/billing-api/internal/application/billing"
	"github.com/vyapari/billing-api/internal/application/inventory"
	"github.com/vyapari/billing-api/internal/application/reports"
	"github.com/vyapari/billing-api/internal/application/usecase"
	infraexcel "github.com/vyapari/billing-api/internal/infrastructure/excel"
	infrapdf "github.com/vyapari/billing-api/internal/infrastructure/pdf"
	"github.com/vyapari/billing-api/internal/infrastructure/postgres"
	httpRouter "github.com/vyapari/billing-api/internal/interfaces/http"
	"github.com/vyapari/billing-api/pkg/config"
	"github.com/vyapari/billing-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	stockLogRepo := postgres.NewStockLogRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	seller := billing.SellerProfile{
		Name:        cfg.Company.Name,
		Address:     cfg.Company.Address,
		Phone:       cfg.Company.Phone,
		Email:       cfg.Company.Email,
		GSTIN:       cfg.Company.GSTIN,
		BankName:    cfg.Company.BankName,
		BankAccount: cfg.Company.BankAccount,
		BankIFSC:    cfg.Company.BankIFSC,
		UPIID:       cfg.Company.UPIID,
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Company.Branch)
	productUC := usecase.NewProductUseCase(productRepo, cfg.Company.Branch)
	stockUC := inventory.NewStockUseCase(txRunner, stockLogRepo)
	customerUC := billing.NewCustomerUseCase(customerRepo)
	invoiceUC := billing.NewInvoiceUseCase(txRunner, invoiceRepo, customerRepo, cfg.Company.Branch)

	pdfGenerator := infrapdf.NewMarotoInvoiceGenerator()
	invoicePDFUC := billing.NewPDFUseCase(invoiceRepo, customerRepo, pdfGenerator, seller)
	batchExportUC := billing.NewBatchExportUseCase(invoiceRepo, customerRepo, pdfGenerator, seller)

	excelGenerator := infraexcel.NewStockReportGenerator()
	reportUC := reports.NewReportUseCase(reportRepo, productRepo, stockLogRepo, excelGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Billing API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		CustomerUC:  customerUC,
		InvoiceUC:   invoiceUC,
		PDFUC:       invoicePDFUC,
		BatchExport: batchExportUC,
		StockUC:     stockUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
