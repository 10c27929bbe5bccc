package router

import (
	"time"

	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/config"
	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/handler"
	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/middleware"
	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/model"
	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/repository"
	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/security"
	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/service"
	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	employeeRepo := repository.NewEmployeeRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	issuer := security.NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.JWTExpirationHours)*time.Hour)
	dispatcher := worker.NewDispatcher(rdb)
	cache := service.NewSummaryCache(rdb)

	authSvc := service.NewAuthService(employeeRepo, issuer, dispatcher, cache)
	employeeSvc := service.NewEmployeeService(employeeRepo, dispatcher, cache)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	employeesH := handler.NewEmployeesHandler(employeeSvc)
	adminH := handler.NewAdminHandler(employeeSvc, auditRepo)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/register", authH.Register)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Self-service — per-record authorization happens in the policy layer
		v1.GET("/employees/:id", employeesH.Get)
		v1.PUT("/employees/:id", employeesH.UpdateProfile)
		v1.PUT("/employees/:id/image", employeesH.UpdateImage)
		v1.GET("/employees/:id/image", employeesH.GetImage)

		admin := v1.Group("/admin", middleware.RequireRole(model.RoleAdmin))
		{
			admin.GET("/employees", adminH.List)
			admin.PUT("/employees/:id", adminH.UpdateEmployee)
			admin.PUT("/employees/:id/status", adminH.UpdateStatus)
			admin.GET("/audit-events", adminH.ListAuditEvents)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
