package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/tank-inventory-api/internal/infrastructure/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TankUC       TankService
	ProjectionUC ProjectionService
	ReportUC     ReportService
	MovementUC   MovementService
	PropertyUC   PropertyService
	UserUC       UserService
	AuditUC      AuditService
	UploadUC     UploadService
	Metrics      *metrics.Metrics // nil = sin métricas
	CORSOrigins  string
}

// Router registra middlewares y rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(recover.New())
	if deps.CORSOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: strings.ReplaceAll(deps.CORSOrigins, " ", ""),
			AllowHeaders: "Origin, Content-Type, Accept, " + HeaderUserID,
			AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		}))
	}

	var recorder MovementRecorder
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
		app.Get("/metrics", deps.Metrics.Handler())
		recorder = deps.Metrics
	}

	api := app.Group("/api", UserMiddleware())

	// Tanks
	tanks := api.Group("/tanks")
	tankHandler := NewTankHandler(deps.TankUC, deps.ProjectionUC, deps.ReportUC)
	tanks.Get("/", tankHandler.List)
	tanks.Post("/", tankHandler.Create)
	tanks.Get("/:id", tankHandler.GetByID)
	tanks.Patch("/:id", tankHandler.Update)
	tanks.Post("/:id/reset", tankHandler.Reset)
	tanks.Get("/:id/projection", tankHandler.Projection)
	tanks.Get("/:id/timeline", tankHandler.Timeline)
	tanks.Get("/:id/report.pdf", tankHandler.Report)

	// Movements
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC, recorder)
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Create)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Patch("/:id", movementHandler.Update)
	movements.Delete("/:id", movementHandler.Delete)

	// Properties
	properties := api.Group("/properties")
	propertyHandler := NewPropertyHandler(deps.PropertyUC)
	properties.Get("/", propertyHandler.List)
	properties.Post("/", propertyHandler.Create)
	properties.Patch("/:id", propertyHandler.Update)
	properties.Delete("/:id", propertyHandler.Delete)

	api.Get("/users", NewUserHandler(deps.UserUC).List)
	api.Get("/audit-log", NewAuditHandler(deps.AuditUC).List)

	// Uploads
	uploads := api.Group("/uploads")
	uploadHandler := NewUploadHandler(deps.UploadUC)
	uploads.Post("/pdf", uploadHandler.Upload)
	uploads.Get("/:token", uploadHandler.Download)
}
