package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/survey-pro/internal/application/auth"
	"github.com/tu-usuario/survey-pro/internal/application/usecase"
	infrapdf "github.com/tu-usuario/survey-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/survey-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/survey-pro/internal/interfaces/http"
	"github.com/tu-usuario/survey-pro/pkg/config"
	"github.com/tu-usuario/survey-pro/pkg/logger"
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

	if cfg.UsingInsecureSecret() {
		log.Warn().Msg("JWT_SECRET no definido: usando secreto de desarrollo inseguro (solo development)")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}

	store := postgres.NewStore(pool)
	userRepo := postgres.NewUserRepository(store)
	companyRepo := postgres.NewCompanyRepository(store)
	employeeRepo := postgres.NewEmployeeRepository(store)
	categoryRepo := postgres.NewCategoryRepository(store)
	questionRepo := postgres.NewQuestionRepository(store)
	surveyRepo := postgres.NewSurveyRepository(store)
	analyticsRepo := postgres.NewAnalyticsRepository(store)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.Config{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
		BcryptCost: cfg.Auth.BcryptCost,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	questionUC := usecase.NewQuestionUseCase(questionRepo)
	surveyUC := usecase.NewSurveyUseCase(surveyRepo, txRunner)
	responseUC := usecase.NewResponseUseCase(surveyRepo, txRunner)
	analyticsUC := usecase.NewAnalyticsUseCase(analyticsRepo)
	reportGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := usecase.NewReportUseCase(surveyRepo, analyticsRepo, reportGenerator)

	// Admin inicial idempotente. Con el password por defecto se avisa fuerte.
	created, err := authUC.EnsureDefaultAdmin(cfg.Auth.AdminUsername, cfg.Auth.AdminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("aprovisionar admin inicial")
	}
	if created {
		log.Warn().
			Str("username", cfg.Auth.AdminUsername).
			Msg("admin inicial creado; cambie el password por defecto cuanto antes")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORS.AllowOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Survey Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CompanyUC:   companyUC,
		EmployeeUC:  employeeUC,
		CategoryUC:  categoryUC,
		QuestionUC:  questionUC,
		SurveyUC:    surveyUC,
		ResponseUC:  responseUC,
		AnalyticsUC: analyticsUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
		Dev:         cfg.App.IsDevelopment(),
	})

	// Apagado ordenado: se drenan las conexiones activas antes de salir.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info().Msg("señal de apagado recibida")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("apagado del servidor HTTP")
		}
	}()

	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
	if err := app.Listen(cfg.HTTP.Addr()); err != nil {
		log.Fatal().Err(err).Msg("servidor HTTP")
	}
	log.Info().Msg("aplicación detenida")
}
