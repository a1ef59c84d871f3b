package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	_ "github.com/jhoicas/tank-inventory-api/docs"
	"github.com/jhoicas/tank-inventory-api/internal/application/inventory"
	"github.com/jhoicas/tank-inventory-api/internal/application/measurement"
	"github.com/jhoicas/tank-inventory-api/internal/application/report"
	"github.com/jhoicas/tank-inventory-api/internal/application/usecase"
	"github.com/jhoicas/tank-inventory-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/tank-inventory-api/internal/infrastructure/pdf"
	"github.com/jhoicas/tank-inventory-api/internal/infrastructure/postgres"
	"github.com/jhoicas/tank-inventory-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/tank-inventory-api/internal/interfaces/http"
	"github.com/jhoicas/tank-inventory-api/pkg/config"
	"github.com/jhoicas/tank-inventory-api/pkg/logger"
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

	if cfg.DB.Migrate {
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	tankRepo := postgres.NewTankRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	propertyRepo := postgres.NewPropertyRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	auditUC := usecase.NewAuditUseCase(auditRepo, log.Zerolog())
	tankUC := usecase.NewTankUseCase(tankRepo, auditUC)
	propertyUC := usecase.NewPropertyUseCase(propertyRepo, auditUC)
	userUC := usecase.NewUserUseCase(userRepo)
	movementUC := inventory.NewMovementUseCase(txRunner, movementRepo, auditUC)
	projectionUC := inventory.NewProjectionUseCase(tankRepo, movementRepo)

	// PDF: reporte de estado proyectado por tanque
	reportUC := report.NewTankReportUseCase(tankRepo, propertyRepo, projectionUC, infrapdf.NewMarotoReportGenerator())

	blobStore, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("almacenamiento de mediciones")
	}
	linkSecret := cfg.Upload.LinkSecret
	if linkSecret == "" {
		// Los enlaces firmados dejan de valer al reiniciar.
		linkSecret = uuid.NewString()
		log.Warn().Msg("UPLOAD_LINK_SECRET vacío: se usa un secreto aleatorio por proceso")
	}
	uploadUC := measurement.NewUploadUseCase(blobStore, measurement.Config{
		MaxBytes:   cfg.Upload.MaxBytes,
		LinkSecret: linkSecret,
		LinkTTL:    time.Duration(cfg.Upload.LinkTTLMinutes) * time.Minute,
	})

	var appMetrics *metrics.Metrics
	if cfg.Metrics.Enabled {
		appMetrics = metrics.New()
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    int(cfg.Upload.MaxBytes) + 1024*1024,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tank Inventory API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		TankUC:       tankUC,
		ProjectionUC: projectionUC,
		ReportUC:     reportUC,
		MovementUC:   movementUC,
		PropertyUC:   propertyUC,
		UserUC:       userUC,
		AuditUC:      auditUC,
		UploadUC:     uploadUC,
		Metrics:      appMetrics,
		CORSOrigins:  cfg.HTTP.CORSOrigins,
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
