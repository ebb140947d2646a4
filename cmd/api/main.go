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

	"github.com/economit/backoffice/internal/application/auth"
	"github.com/economit/backoffice/internal/application/directory"
	"github.com/economit/backoffice/internal/application/usecase"
	"github.com/economit/backoffice/internal/infrastructure/postgres"
	"github.com/economit/backoffice/internal/infrastructure/realtime"
	httpRouter "github.com/economit/backoffice/internal/interfaces/http"
	"github.com/economit/backoffice/internal/scheduler"
	"github.com/economit/backoffice/pkg/config"
	"github.com/economit/backoffice/pkg/logger"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	attRepo := postgres.NewTaskAttachmentRepository(pool)
	txnRepo := postgres.NewTransactionRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	chatRepo := postgres.NewChatRepository(pool)
	eventRepo := postgres.NewCompanyEventRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	hub := realtime.NewHub(log)
	dir := directory.New(userRepo, companyRepo)

	notificationUC := usecase.NewNotificationUseCase(notificationRepo, hub, log)
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo, cfg.Upload.MaxBytes)
	employeeUC := usecase.NewEmployeeUseCase(userRepo, companyRepo, cfg.Upload.MaxBytes)
	taskUC := usecase.NewTaskUseCase(txRunner, taskRepo, attRepo, userRepo, notificationUC, log, cfg.Upload.MaxBytes)
	transactionUC := usecase.NewTransactionUseCase(txnRepo, txRunner)
	payrollUC := usecase.NewPayrollUseCase(userRepo, txnRepo, notificationUC, log)
	chatUC := usecase.NewChatUseCase(chatRepo, hub)
	eventUC := usecase.NewEventUseCase(eventRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    int(cfg.Upload.MaxBytes) * 4, // multipart con varios adjuntos
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Back Office API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		CompanyUC:      companyUC,
		EmployeeUC:     employeeUC,
		TaskUC:         taskUC,
		TransactionUC:  transactionUC,
		PayrollUC:      payrollUC,
		NotificationUC: notificationUC,
		ChatUC:         chatUC,
		EventUC:        eventUC,
		Directory:      dir,
		Hub:            hub,
		JWTSecret:      cfg.JWT.Secret,
		Logger:         log,
	})

	if cfg.Payroll.Enabled {
		payrollScheduler := scheduler.NewPayrollScheduler(payrollUC, cfg.Payroll.Day, cfg.Payroll.Hour, log)
		go payrollScheduler.Start(ctx)
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	cancel() // detiene el scheduler de nómina

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
