package routing

import (
	"net/http"
	"os"
	"time"

	"expense-tracker/internal/config"
	"expense-tracker/internal/handlers"
	"expense-tracker/internal/managers"
	"expense-tracker/internal/middleware"
	"expense-tracker/internal/repositories"
	"expense-tracker/internal/schemas"
	"expense-tracker/internal/services"
	"expense-tracker/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitRouter(databaseMgr managers.DatabaseMgr, jwtMgr managers.JWTMgr, queueMgr managers.QueueMgr, cfg *config.Config) *gin.Engine {
	return InitRouterWithOptions(databaseMgr, jwtMgr, queueMgr, cfg, services.NewRegistrationOptions(cfg))
}

// InitRouterWithOptions builds the router with explicit registration options, e.g. a fixed clock.
func InitRouterWithOptions(databaseMgr managers.DatabaseMgr, jwtMgr managers.JWTMgr, queueMgr managers.QueueMgr,
	cfg *config.Config, options services.RegistrationOptions) *gin.Engine {
	// Initialize router with logging and recovery middleware
	router := gin.New()
	// Initialize middleware
	setupCommonMiddleware(router, cfg)

	repos := repositories.NewRepositories(databaseMgr.GetPool())
	svcs := services.NewServices(repos, databaseMgr, jwtMgr, queueMgr, options)
	// Setup routes
	setupRoutes(router, databaseMgr, jwtMgr, svcs)

	return router
}

func setupCommonMiddleware(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.InjectTrace())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.Server.AllowOrigins,
		AllowMethods:  []string{"GET", "PATCH", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Accept", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "Content-Type", "X-Correlation-ID"},
		MaxAge:        12 * time.Hour,
	}))
	router.Use(func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
	})
	router.Use(middleware.SanitizePath())
	router.Use(middleware.LogRequest())
}

func setupRoutes(router *gin.Engine, databaseMgr managers.DatabaseMgr, jwtMgr managers.JWTMgr, svcs *services.Services) {
	// Set up version route
	router.GET("/", func(c *gin.Context) {
		apiVersion := os.Getenv("API_VERSION")
		if apiVersion == "" {
			apiVersion = "main:latest"
		}
		metadata := &schemas.MetadataDTO{
			ApiVersion: apiVersion,
			ApiName:    "Expense Tracker",
		}
		utils.WriteAndLogResponse(c, metadata, http.StatusOK)
	})

	// Set up health route
	router.GET("/health", func(c *gin.Context) {
		if err := databaseMgr.GetPool().Ping(c.Request.Context()); err != nil {
			utils.LogMessageWithFieldsAndError(c.Request.Context(), "error", "Database not responding", err)
			c.String(http.StatusInternalServerError, "Database not responding")
			return
		}
		c.Status(http.StatusOK)
	})

	apiRouter := router.Group("/api/v1")
	{
		registrationRouter := apiRouter.Group("/registration")
		registrationHdl := handlers.NewRegistrationHandler(svcs.Registration)
		registrationRoutes(registrationRouter, registrationHdl)

		authRouter := apiRouter.Group("/auth")
		authHdl := handlers.NewAuthHandler(svcs.Auth)
		authRouter.POST("/login", middleware.ValidateAndSanitizeStruct(&schemas.LoginRequest{}), authHdl.Login)

		// Everything below requires an access token
		userRouter := apiRouter.Group("/users")
		userRouter.Use(jwtMgr.JWTMiddleware())
		userHdl := handlers.NewUserHandler(svcs.Users, svcs.Transactions)
		userRoutes(userRouter, userHdl)

		categoryRouter := apiRouter.Group("/categories")
		categoryRouter.Use(jwtMgr.JWTMiddleware())
		categoryHdl := handlers.NewCategoryHandler(svcs.Categories)
		categoryRoutes(categoryRouter, categoryHdl)

		transactionRouter := apiRouter.Group("/transactions")
		transactionRouter.Use(jwtMgr.JWTMiddleware())
		transactionHdl := handlers.NewTransactionHandler(svcs.Transactions)
		transactionRoutes(transactionRouter, transactionHdl)
	}
}

func registrationRoutes(registrationRouter *gin.RouterGroup, registrationHdl handlers.RegistrationHdl) {
	registrationRouter.POST("", middleware.ValidateAndSanitizeStruct(&schemas.RegistrationRequest{}), registrationHdl.Register)
	registrationRouter.GET("/confirm", registrationHdl.Confirm)
	registrationRouter.POST("/regenerate", middleware.ValidateAndSanitizeStruct(&schemas.RegenerateTokenRequest{}), registrationHdl.Regenerate)
}

func userRoutes(userRouter *gin.RouterGroup, userHdl handlers.UserHdl) {
	userRouter.GET("", userHdl.GetUsers)
	userRouter.GET("/:id", userHdl.GetUser)
	userRouter.PUT("/:id", middleware.ValidateAndSanitizeStruct(&schemas.UserUpdateRequest{}), userHdl.UpdateUser)
	userRouter.GET("/:id/transactions", userHdl.GetUserTransactions)
}

func categoryRoutes(categoryRouter *gin.RouterGroup, categoryHdl handlers.CategoryHdl) {
	categoryRouter.GET("", categoryHdl.GetCategories)
	categoryRouter.POST("", middleware.ValidateAndSanitizeStruct(&schemas.CategoryRequest{}), categoryHdl.CreateCategory)
	categoryRouter.GET("/:id", categoryHdl.GetCategory)
	categoryRouter.PUT("/:id", middleware.ValidateAndSanitizeStruct(&schemas.CategoryRequest{}), categoryHdl.UpdateCategory)
	categoryRouter.DELETE("/:id", categoryHdl.DeleteCategory)
}

func transactionRoutes(transactionRouter *gin.RouterGroup, transactionHdl handlers.TransactionHdl) {
	transactionRouter.GET("", transactionHdl.GetTransactions)
	transactionRouter.POST("", middleware.ValidateAndSanitizeStruct(&schemas.TransactionRequest{}), transactionHdl.CreateTransaction)
	transactionRouter.GET("/:id", transactionHdl.GetTransaction)
	transactionRouter.PUT("/:id", middleware.ValidateAndSanitizeStruct(&schemas.TransactionRequest{}), transactionHdl.UpdateTransaction)
	transactionRouter.DELETE("/:id", transactionHdl.DeleteTransaction)
}
