package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/stocktrackhq/stocktrack-api/docs"
	"github.com/stocktrackhq/stocktrack-api/internal/application/auth"
	"github.com/stocktrackhq/stocktrack-api/internal/application/inventory"
	"github.com/stocktrackhq/stocktrack-api/internal/application/invite"
	"github.com/stocktrackhq/stocktrack-api/internal/application/reports"
	"github.com/stocktrackhq/stocktrack-api/internal/application/usecase"
	infrapdf "github.com/stocktrackhq/stocktrack-api/internal/infrastructure/pdf"
	"github.com/stocktrackhq/stocktrack-api/internal/infrastructure/postgres"
	httpRouter "github.com/stocktrackhq/stocktrack-api/internal/interfaces/http"
	"github.com/stocktrackhq/stocktrack-api/pkg/config"
	"github.com/stocktrackhq/stocktrack-api/pkg/logger"
)

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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	inviteRepo := postgres.NewInviteRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	jwtCfg := auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}
	authUC := auth.NewAuthUseCase(txRunner, userRepo, companyRepo, jwtCfg)
	itemUC := inventory.NewItemUseCase(txRunner, itemRepo, userRepo, companyRepo)
	feedUC := inventory.NewActivityFeedUseCase(activityRepo, itemRepo)
	batchUC := inventory.NewBatchAdjustUseCase(txRunner, userRepo)
	inviteUC := invite.NewInviteUseCase(txRunner, inviteRepo, userRepo, companyRepo, cfg.App.BaseURL, jwtCfg)
	userUC := usecase.NewUserUseCase(txRunner, userRepo)
	companyUC := usecase.NewCompanyUseCase(txRunner, companyRepo, userRepo)
	statsUC := usecase.NewStatsUseCase(statsRepo)

	// PDF: reporte de inventario
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	reportUC := reports.NewReportUseCase(companyRepo, itemRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.LoggerMiddleware(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StockTrack API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		ItemUC:    itemUC,
		FeedUC:    feedUC,
		BatchUC:   batchUC,
		InviteUC:  inviteUC,
		UserUC:    userUC,
		CompanyUC: companyUC,
		StatsUC:   statsUC,
		ReportUC:  reportUC,
		JWTSecret: cfg.JWT.Secret,
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
