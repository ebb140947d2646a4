package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/economit/backoffice/internal/application/auth"
	"github.com/economit/backoffice/internal/application/directory"
	"github.com/economit/backoffice/internal/application/usecase"
	"github.com/economit/backoffice/internal/domain/entity"
	"github.com/economit/backoffice/internal/infrastructure/realtime"
	"github.com/economit/backoffice/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	CompanyUC      *usecase.CompanyUseCase
	EmployeeUC     *usecase.EmployeeUseCase
	TaskUC         *usecase.TaskUseCase
	TransactionUC  *usecase.TransactionUseCase
	PayrollUC      *usecase.PayrollUseCase
	NotificationUC *usecase.NotificationUseCase
	ChatUC         *usecase.ChatUseCase
	EventUC        *usecase.EventUseCase
	Directory      *directory.Directory
	Hub            *realtime.Hub
	JWTSecret      string
	Logger         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Canal de tiempo real (autenticado por token en query, por el handshake)
	wsHandler := NewWSHandler(deps.Hub, deps.ChatUC, deps.JWTSecret, deps.Logger)
	app.Use("/ws", wsHandler.Upgrade())
	app.Get("/ws", wsHandler.Serve())

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Empresa (protegido)
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.Directory)
	company := protected.Group("/company")
	company.Get("/", companyHandler.GetProfile)
	company.Put("/", companyHandler.UpdateProfile)

	// Empleados y perfil propio (protegido)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, deps.Directory)
	employees := protected.Group("/employees")
	employees.Get("/", employeeHandler.List)
	employees.Post("/", RequireRole(entity.RoleCompanyAdmin), employeeHandler.Create)
	protected.Get("/users", employeeHandler.ListAll)
	protected.Get("/me", employeeHandler.GetMe)
	protected.Put("/me", employeeHandler.UpdateMe)

	// Tareas y adjuntos (protegido)
	taskHandler := NewTaskHandler(deps.TaskUC, deps.Directory)
	tasks := protected.Group("/tasks")
	tasks.Get("/", taskHandler.List)
	tasks.Post("/", RequireRole(entity.RoleCompanyAdmin), taskHandler.Create)
	tasks.Patch("/:id", taskHandler.Update)
	tasks.Delete("/:id", taskHandler.Delete)
	protected.Get("/attachments/:id", taskHandler.DownloadAttachment)

	// Transacciones y nómina (protegido)
	txnHandler := NewTransactionHandler(deps.TransactionUC, deps.PayrollUC, deps.Directory)
	transactions := protected.Group("/transactions")
	transactions.Get("/", txnHandler.Search)
	transactions.Post("/", txnHandler.Create)
	transactions.Post("/batch", txnHandler.CreateBatch)
	transactions.Patch("/:id/complete", txnHandler.MarkCompleted)
	transactions.Delete("/:id", txnHandler.Delete)
	protected.Post("/payroll/run", RequireRole(entity.RoleCompanyAdmin), txnHandler.RunPayroll)

	// Notificaciones (protegido)
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications := protected.Group("/notifications")
	notifications.Get("/", notificationHandler.ListMine)
	notifications.Patch("/:id/read", notificationHandler.MarkRead)

	// Chat: histórico por HTTP, envío por WebSocket
	chatHandler := NewChatHandler(deps.ChatUC)
	protected.Get("/chat/:email", chatHandler.History)

	// Calendario (protegido)
	eventHandler := NewEventHandler(deps.EventUC, deps.Directory)
	events := protected.Group("/events")
	events.Get("/", eventHandler.List)
	events.Post("/", RequireRole(entity.RoleCompanyAdmin), eventHandler.Create)
	events.Delete("/:id", RequireRole(entity.RoleCompanyAdmin), eventHandler.Delete)
}
