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
	appanalytics "github.com/tu-usuario/panaderia-api/internal/application/analytics"
	"github.com/tu-usuario/panaderia-api/internal/application/assignment"
	"github.com/tu-usuario/panaderia-api/internal/application/auth"
	"github.com/tu-usuario/panaderia-api/internal/application/rates"
	"github.com/tu-usuario/panaderia-api/internal/application/usecase"
	"github.com/tu-usuario/panaderia-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/panaderia-api/internal/interfaces/http"
	"github.com/tu-usuario/panaderia-api/pkg/config"
	"github.com/tu-usuario/panaderia-api/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	rateRepo := postgres.NewSalesRateRepository(pool)
	assignmentRepo := postgres.NewStockAssignmentRepository(pool)
	productionRepo := postgres.NewProductionRepository(pool)
	workingDayRepo := postgres.NewWorkingDayRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	userUC := usecase.NewUserUseCase(userRepo)
	itemUC := usecase.NewItemUseCase(itemRepo)
	productionUC := usecase.NewProductionUseCase(productionRepo, itemRepo)
	workingDayUC := usecase.NewWorkingDayUseCase(workingDayRepo)
	rateUC := rates.NewRateUseCase(txRunner, rateRepo, log)
	assignmentUC := assignment.NewAssignmentUseCase(txRunner, assignmentRepo, log)
	dashboardUC := appanalytics.NewDashboardUseCase(dashboardRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
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
		Title:    "Panadería API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		UserUC:       userUC,
		ItemUC:       itemUC,
		ProductionUC: productionUC,
		WorkingDayUC: workingDayUC,
		RateUC:       rateUC,
		AssignmentUC: assignmentUC,
		DashboardUC:  dashboardUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
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
