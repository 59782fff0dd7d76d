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

	"github.com/credimovil/backoffice-api/internal/application/audit"
	"github.com/credimovil/backoffice-api/internal/application/auth"
	"github.com/credimovil/backoffice-api/internal/application/ledger"
	"github.com/credimovil/backoffice-api/internal/application/usecase"
	"github.com/credimovil/backoffice-api/internal/infrastructure/postgres"
	"github.com/credimovil/backoffice-api/internal/infrastructure/push"
	httpRouter "github.com/credimovil/backoffice-api/internal/interfaces/http"
	"github.com/credimovil/backoffice-api/pkg/config"
	"github.com/credimovil/backoffice-api/pkg/logger"
)

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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	balanceRepo := postgres.NewBalanceRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	deviceRepo := postgres.NewDeviceRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	auditSink := audit.NewSink(auditRepo, log)
	dispatcher := push.NewExpoDispatcher(cfg.Push.Endpoint, cfg.Push.Token)

	ledgerUC := ledger.NewUseCase(txRunner, balanceRepo, movementRepo, productRepo, auditSink)
	productUC := usecase.NewProductUseCase(productRepo, auditSink)
	storeUC := usecase.NewStoreUseCase(storeRepo, auditSink)
	deviceUC := usecase.NewDeviceUseCase(deviceRepo, dispatcher, auditSink, log)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
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

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Credimóvil Back-office API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		JWTSecret: cfg.JWT.Secret,
		Auth:      httpRouter.NewAuthHandler(authUC),
		Inventory: httpRouter.NewInventoryHandler(ledgerUC),
		Products:  httpRouter.NewProductHandler(productUC),
		Stores:    httpRouter.NewStoreHandler(storeUC),
		Devices:   httpRouter.NewDeviceHandler(deviceUC),
		Audit:     httpRouter.NewAuditHandler(auditSink),
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
