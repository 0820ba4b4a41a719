package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/survey-pro/internal/application/auth"
	"github.com/tu-usuario/survey-pro/internal/application/usecase"
	"github.com/tu-usuario/survey-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CompanyUC   *usecase.CompanyUseCase
	EmployeeUC  *usecase.EmployeeUseCase
	CategoryUC  *usecase.CategoryUseCase
	QuestionUC  *usecase.QuestionUseCase
	SurveyUC    *usecase.SurveyUseCase
	ResponseUC  *usecase.ResponseUseCase
	AnalyticsUC *usecase.AnalyticsUseCase
	ReportUC    *usecase.ReportUseCase
	JWTSecret   string
	Dev         bool
}

// Router registra las rutas de la API con su matriz de roles.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC, deps.Dev)
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.Dev)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, deps.Dev)
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Dev)
	questionHandler := NewQuestionHandler(deps.QuestionUC, deps.Dev)
	surveyHandler := NewSurveyHandler(deps.SurveyUC, deps.ResponseUC, deps.AnalyticsUC, deps.ReportUC, deps.Dev)

	// Auth (público). /api/login se mantiene como alias del cliente web.
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	api.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	adminOnly := RequireRole(entity.RoleAdmin)
	adminOrCreator := RequireRole(entity.RoleAdmin, entity.RoleCreator)
	anyRole := RequireRole(entity.RoleAdmin, entity.RoleCreator, entity.RoleRespondent)

	// Aprovisionamiento de usuarios (solo admin)
	protected.Post("/auth/register", adminOnly, authHandler.Register)
	protected.Get("/users", adminOnly, authHandler.ListUsers)

	// Companies
	companies := protected.Group("/companies")
	companies.Get("/", adminOrCreator, companyHandler.List)
	companies.Get("/:id", adminOrCreator, companyHandler.GetByID)
	companies.Post("/", adminOnly, companyHandler.Create)

	// Employees
	employees := protected.Group("/employees")
	employees.Get("/", adminOrCreator, employeeHandler.List)
	employees.Post("/", adminOnly, employeeHandler.Create)

	// Categories
	categories := protected.Group("/categories")
	categories.Get("/", anyRole, categoryHandler.List)
	categories.Post("/", adminOrCreator, categoryHandler.Create)

	// Questions
	questions := protected.Group("/questions")
	questions.Get("/", anyRole, questionHandler.List)
	questions.Post("/", adminOrCreator, questionHandler.Create)

	// Surveys, respuestas y reportes
	surveys := protected.Group("/surveys")
	surveys.Get("/", anyRole, surveyHandler.List)
	surveys.Post("/", adminOrCreator, surveyHandler.Create)
	surveys.Get("/:id", anyRole, surveyHandler.GetDetail)
	surveys.Post("/:id/response", anyRole, surveyHandler.SubmitResponse)
	surveys.Get("/:id/stats", adminOrCreator, surveyHandler.Stats)
	surveys.Get("/:id/report", adminOrCreator, surveyHandler.Report)
}
