package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/labtrack/labstock-api/internal/application/alerts"
	"github.com/labtrack/labstock-api/internal/application/auth"
	"github.com/labtrack/labstock-api/internal/application/ledger"
	"github.com/labtrack/labstock-api/internal/application/reports"
	"github.com/labtrack/labstock-api/internal/domain/entity"
	"github.com/labtrack/labstock-api/internal/domain/stock"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ComponentUC *ledger.ComponentUseCase
	Engine      *ledger.Engine
	FeedUC      *alerts.FeedUseCase
	AuthUC      *auth.AuthUseCase
	DashboardUC *reports.DashboardUseCase
	ExportUC    *reports.ExportUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Components: lectura para todos los roles autenticados; el catálogo lo
	// escriben Admin y Lab Technician.
	components := protected.Group("/components")
	componentHandler := NewComponentHandler(deps.ComponentUC)
	canWriteCatalog := RequireRole(entity.RoleAdmin, entity.RoleLabTechnician)
	components.Get("/", componentHandler.List)
	components.Post("/", canWriteCatalog, componentHandler.Create)
	components.Get("/low-stock", componentHandler.ListLowStock)
	components.Get("/stale", componentHandler.ListStale)
	components.Get("/categories", componentHandler.Categories)
	components.Get("/locations", componentHandler.Locations)
	components.Get("/:id", componentHandler.GetByID)
	components.Put("/:id", canWriteCatalog, componentHandler.Update)
	components.Delete("/:id", RequireRole(entity.RoleAdmin), componentHandler.Delete)
	components.Get("/:id/logs", componentHandler.GetLogs)

	// Operaciones del ledger: el permiso sale de las capacidades del rol.
	inventoryHandler := NewInventoryHandler(deps.Engine)
	components.Post("/:id/inward",
		RequireCapability(func(cap stock.Capabilities) bool { return cap.CanInward }),
		inventoryHandler.Inward)
	components.Post("/:id/outward",
		RequireCapability(func(cap stock.Capabilities) bool { return cap.CanOutward }),
		inventoryHandler.Outward)
	components.Post("/:id/adjust",
		RequireCapability(func(cap stock.Capabilities) bool { return cap.CanAdjust }),
		inventoryHandler.Adjust)

	// Notifications (protegido)
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.FeedUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Get("/unread-count", notificationHandler.UnreadCount)
	notifications.Patch("/read-all", notificationHandler.MarkAllRead)
	notifications.Patch("/:id/read", notificationHandler.MarkRead)
	notifications.Delete("/:id", RequireRole(entity.RoleAdmin), notificationHandler.Delete)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.Stats)

	// Reports (protegido)
	reportsGroup := protected.Group("/reports")
	exportHandler := NewExportHandler(deps.ExportUC)
	reportsGroup.Get("/low-stock", exportHandler.LowStock)
	reportsGroup.Get("/stale", exportHandler.Stale)
}
