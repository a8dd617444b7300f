package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/labtrack/labstock-api/internal/application/alerts"
	"github.com/labtrack/labstock-api/internal/application/auth"
	"github.com/labtrack/labstock-api/internal/application/ledger"
	"github.com/labtrack/labstock-api/internal/application/reports"
	infrapdf "github.com/labtrack/labstock-api/internal/infrastructure/pdf"
	"github.com/labtrack/labstock-api/internal/infrastructure/postgres"
	httpRouter "github.com/labtrack/labstock-api/internal/interfaces/http"
	"github.com/labtrack/labstock-api/pkg/config"
	"github.com/labtrack/labstock-api/pkg/logger"

	_ "github.com/labtrack/labstock-api/docs"
)

// @title           LabStock API
// @version         1.0
// @description     Inventario de componentes de laboratorio con ledger de auditoría.
// @BasePath        /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	componentRepo := postgres.NewComponentRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	staleWindow := cfg.Stock.StaleWindow()
	trigger := alerts.NewTrigger(notificationRepo, log)
	engine := ledger.NewEngine(txRunner, trigger, log, staleWindow, cfg.Stock.RetryAttempts)
	componentUC := ledger.NewComponentUseCase(txRunner, componentRepo, ledgerRepo, trigger, staleWindow)
	feedUC := alerts.NewFeedUseCase(notificationRepo)
	dashboardUC := reports.NewDashboardUseCase(analyticsRepo, componentRepo, staleWindow)
	exportUC := reports.NewExportUseCase(componentRepo, infrapdf.NewMarotoReportGenerator(), staleWindow)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Barrido periódico: detecta transiciones de stock estancado sin esperar
	// a la siguiente mutación del componente.
	sweeper := alerts.NewStaleSweeper(componentRepo, trigger, log, staleWindow, cfg.Stock.SweepInterval)
	go sweeper.Run(ctx)

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
		Title:    "LabStock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ComponentUC: componentUC,
		Engine:      engine,
		FeedUC:      feedUC,
		AuthUC:      authUC,
		DashboardUC: dashboardUC,
		ExportUC:    exportUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	<-ctx.Done()
	stop()

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
