package handler

import (
	"savings-ledger/internal/adapter/http/middleware"
	"savings-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AdminSvc       ports.AdminService
	AccountSvc     ports.AccountService
	PlanSvc        ports.PlanService
	GroupSvc       ports.GroupService
	MintSvc        ports.MintService
	TokenSvc       ports.TokenService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit
	r.Use(middleware.WriteSerializer())

	// Health check (deep, verifies the storage backend)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	v1 := r.Group("/api/v1")

	// --- Public routes ---
	authHandler := NewAuthHandler(deps.TokenSvc)
	v1.POST("/auth/token", authHandler.IssueToken)

	// The mint instruction authorizes itself through the admin signature.
	mintHandler := NewMintHandler(deps.MintSvc, deps.AccountSvc)
	mint := v1.Group("/mint")
	{
		mint.POST("", mintHandler.Mint)
		mint.POST("/verify", mintHandler.Verify)
	}

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	adminHandler := NewAdminHandler(deps.AdminSvc)
	admin := v1.Group("/admin", jwtAuth)
	{
		admin.POST("", adminHandler.Initialize)
		admin.GET("", adminHandler.GetAdmin)
		admin.GET("/initialized", adminHandler.IsInitialized)
		admin.PUT("", adminHandler.UpdateAdmin)
	}

	accountHandler := NewAccountHandler(deps.AccountSvc)
	users := v1.Group("/users", jwtAuth)
	{
		users.POST("", accountHandler.Register)
		users.GET("/:address", accountHandler.GetUser)
		users.GET("/:address/exists", accountHandler.UserExists)
		users.POST("/deposit", accountHandler.Deposit)
		users.POST("/withdraw", accountHandler.Withdraw)
	}

	planHandler := NewPlanHandler(deps.PlanSvc)
	plans := v1.Group("/plans", jwtAuth)
	{
		plans.POST("", planHandler.Create)
		plans.GET("", planHandler.List)
		plans.GET("/:id", planHandler.Get)
		plans.POST("/:id/deposit", planHandler.Deposit)
		plans.POST("/:id/withdraw", planHandler.Withdraw)
	}

	groupHandler := NewGroupHandler(deps.GroupSvc)
	groups := v1.Group("/groups", jwtAuth)
	{
		groups.POST("", groupHandler.Create)
		groups.GET("/:id", groupHandler.Get)
		groups.POST("/:id/join", groupHandler.Join)
		groups.POST("/:id/contribute", groupHandler.Contribute)
		groups.GET("/:id/members/:address", groupHandler.Membership)
		groups.GET("/:id/members/:address/contribution", groupHandler.MemberContribution)
	}

	return r
}
