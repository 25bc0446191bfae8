package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/sirh-molino/hr-api/docs"
	"github.com/sirh-molino/hr-api/internal/api/handler"
	"github.com/sirh-molino/hr-api/internal/api/middleware"
	"github.com/sirh-molino/hr-api/internal/core/service"
	mongodb "github.com/sirh-molino/hr-api/internal/infrastructure/db/mongo"
	redisdb "github.com/sirh-molino/hr-api/internal/infrastructure/db/redis"
	exportgen "github.com/sirh-molino/hr-api/internal/infrastructure/export"
	"github.com/sirh-molino/hr-api/internal/infrastructure/mail"
)

const tokenTTL = 24 * time.Hour

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hr"))

	// --- Dependencies ---
	employeeRepo := mongodb.NewEmployeeRepository(db)
	contractRepo := mongodb.NewContractRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb)

	employeeService := service.NewEmployeeService(employeeRepo, contractRepo, log)
	contractService := service.NewContractService(contractRepo, employeeRepo, log)
	reportService := service.NewReportService(employeeRepo, contractRepo, log)
	authService := service.NewAuthService(userRepo, sessionStore, mail.NewLogMailer(log), jwtSecret, tokenTTL, log)
	exportService := service.NewExportService(
		employeeService, contractService,
		exportgen.NewPDFGenerator(), exportgen.NewExcelGenerator(),
		log,
	)

	employeeHandler := handler.NewEmployeeHandler(employeeService)
	contractHandler := handler.NewContractHandler(contractService)
	reportHandler := handler.NewReportHandler(reportService)
	exportHandler := handler.NewExportHandler(exportService)
	authHandler := handler.NewAuthHandler(authService)

	authRequired := middleware.Auth(jwtSecret, sessionStore, log)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authRequired)
	e.POST("/auth/password-reset", authHandler.RequestPasswordReset)
	e.POST("/auth/password-reset/confirm", authHandler.ResetPassword)

	// --- Record routes (session required) ---
	v1 := e.Group("/v1", authRequired)

	v1.GET("/employees", employeeHandler.List)
	v1.POST("/employees", employeeHandler.Create)
	v1.GET("/employees/:id", employeeHandler.Get)
	v1.PUT("/employees/:id", employeeHandler.Update)
	v1.DELETE("/employees/:id", employeeHandler.Delete)

	v1.GET("/employees/:id/contracts", contractHandler.List)
	v1.POST("/employees/:id/contracts", contractHandler.Create)
	v1.PUT("/employees/:id/contracts/:contract_id", contractHandler.Update)
	v1.DELETE("/employees/:id/contracts/:contract_id", contractHandler.Delete)

	v1.GET("/reports/kpis", reportHandler.KPIs)

	v1.GET("/exports/employees", exportHandler.Employees)
	v1.GET("/exports/employees/:id/contracts", exportHandler.Contracts)

	v1.GET("/profile", authHandler.Profile)
	v1.PUT("/profile/avatar", authHandler.ChangeAvatar)
	v1.GET("/avatars", authHandler.Avatars)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
