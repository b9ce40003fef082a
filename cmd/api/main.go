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

	"github.com/jhoicas/carry-ledger-api/internal/application/analytics"
	"github.com/jhoicas/carry-ledger-api/internal/application/auth"
	"github.com/jhoicas/carry-ledger-api/internal/application/customer"
	"github.com/jhoicas/carry-ledger-api/internal/application/inventory"
	"github.com/jhoicas/carry-ledger-api/internal/application/reporting"
	"github.com/jhoicas/carry-ledger-api/internal/application/usecase"
	"github.com/jhoicas/carry-ledger-api/internal/infrastructure/excel"
	"github.com/jhoicas/carry-ledger-api/internal/infrastructure/kvstore"
	"github.com/jhoicas/carry-ledger-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/carry-ledger-api/internal/infrastructure/pdf"
	"github.com/jhoicas/carry-ledger-api/internal/infrastructure/scheduler"
	"github.com/jhoicas/carry-ledger-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/carry-ledger-api/internal/interfaces/http"
	"github.com/jhoicas/carry-ledger-api/pkg/config"
	"github.com/jhoicas/carry-ledger-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, closeStore, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer closeStore()

	repos := kvstore.NewRepositories(store, storage.Keyspace(cfg.Store), log)
	accountRepo, err := memory.NewAccountRepository(cfg.Auth)
	if err != nil {
		log.Fatal().Err(err).Msg("preparar cuentas")
	}

	loc := cfg.Report.Location()
	movementUC := inventory.NewMovementUseCase(repos.Movements, repos.Customers, nil)
	dashboardUC := analytics.NewDashboardUseCase(repos.Movements, repos.Customers, loc, nil)
	customerUC := customer.NewCustomerUseCase(repos.Customers, repos.Movements, loc, nil)
	productUC := usecase.NewProductUseCase(repos.Products)

	// Estados de cuenta: PDF (Maroto) y hoja de cálculo (excelize)
	statementUC := reporting.NewStatementUseCase(
		repos.Movements, repos.Customers,
		infrapdf.NewMarotoPDFGenerator(), excel.NewStatementSheet(),
		reporting.Options{OrgName: cfg.Report.OrgName, OrgTag: cfg.Report.OrgTag, Location: loc},
		nil,
	)
	authUC := auth.NewAuthUseCase(accountRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	sched := scheduler.NewScheduler(cfg.Archive, statementUC, loc, log)
	if err := sched.Start(); err != nil {
		log.Fatal().Err(err).Msg("programar archivado")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Carry Ledger API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MovementUC:  movementUC,
		DashboardUC: dashboardUC,
		CustomerUC:  customerUC,
		ProductUC:   productUC,
		StatementUC: statementUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
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
	sched.Stop()

	log.Info().Msg("aplicación detenida")
}
