package routes

import (
	"worklink-backend/internal/api/handlers"
	"worklink-backend/internal/api/middleware"
	"worklink-backend/internal/auth"
	"worklink-backend/internal/config"
	"worklink-backend/internal/database/models"
	"worklink-backend/internal/repository"
	"worklink-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	workerRepo := repository.NewWorkerRepository(db)
	startupRepo := repository.NewStartupRepository(db)
	manufacturerRepo := repository.NewManufacturerRepository(db)
	gigRepo := repository.NewGigRepository(db)
	machineRepo := repository.NewMachineRepository(db)
	gigApplicationRepo := repository.NewGigApplicationRepository(db)
	machineApplicationRepo := repository.NewMachineApplicationRepository(db)

	// Initialize services
	gigService := service.NewGigService(gigRepo, validator)
	machineService := service.NewMachineService(machineRepo, validator)
	gigApplicationService := service.NewGigApplicationService(gigApplicationRepo, gigRepo, validator)
	machineApplicationService := service.NewMachineApplicationService(machineApplicationRepo, machineRepo, workerRepo, startupRepo, validator)
	profileService := service.NewProfileService(workerRepo, startupRepo, manufacturerRepo, validator)
	dashboardService := service.NewDashboardService(gigApplicationRepo, machineApplicationRepo, gigRepo, machineRepo)

	// Initialize auth
	authService := auth.NewAuthService(workerRepo, startupRepo, manufacturerRepo, cfg.JWTSecret)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	gigHandler := handlers.NewGigHandler(gigService)
	machineHandler := handlers.NewMachineHandler(machineService)
	gigApplicationHandler := handlers.NewGigApplicationHandler(gigApplicationService)
	machineApplicationHandler := handlers.NewMachineApplicationHandler(machineApplicationService)
	profileHandler := handlers.NewProfileHandler(profileService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		workers := authGroup.Group("/workers")
		{
			workers.POST("/register", authHandler.RegisterWorker)
			workers.POST("/login", authHandler.LoginWorker)
		}

		startups := authGroup.Group("/startups")
		{
			startups.POST("/register", authHandler.RegisterStartup)
			startups.POST("/login", authHandler.LoginStartup)
		}

		manufacturers := authGroup.Group("/manufacturers")
		{
			manufacturers.POST("/register", authHandler.RegisterManufacturer)
			manufacturers.POST("/login", authHandler.LoginManufacturer)
		}
	}

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Gig routes
		gigs := v1.Group("/gigs")
		{
			gigs.GET("", gigHandler.ListGigs)
			gigs.POST("", authMiddleware.RequireRole(models.RoleStartup), gigHandler.CreateGig)
			gigs.GET("/:id", gigHandler.GetGig)
			gigs.PUT("/:id", authMiddleware.RequireRole(models.RoleStartup), gigHandler.UpdateGig)
			gigs.DELETE("/:id", authMiddleware.RequireRole(models.RoleStartup), gigHandler.DeleteGig)
			gigs.POST("/:id/apply", gigApplicationHandler.Apply)
		}

		// Machine routes
		machines := v1.Group("/machines")
		{
			machines.GET("", machineHandler.ListMachines)
			machines.POST("", authMiddleware.RequireRole(models.RoleManufacturer), machineHandler.CreateMachine)
			machines.GET("/:id", machineHandler.GetMachine)
			machines.PUT("/:id", authMiddleware.RequireRole(models.RoleManufacturer), machineHandler.UpdateMachine)
			machines.DELETE("/:id", authMiddleware.RequireRole(models.RoleManufacturer), machineHandler.DeleteMachine)
			machines.POST("/:id/apply", machineApplicationHandler.Apply)
		}

		// Application routes
		applications := v1.Group("/applications")
		{
			gigApplications := applications.Group("/gigs")
			{
				gigApplications.GET("/mine", authMiddleware.RequireRole(models.RoleWorker), gigApplicationHandler.ListMine)
				gigApplications.GET("", authMiddleware.RequireRole(models.RoleStartup), gigApplicationHandler.ListReceived)
				gigApplications.PUT("/:id/status", authMiddleware.RequireRole(models.RoleStartup), gigApplicationHandler.Decide)
			}

			machineApplications := applications.Group("/machines")
			{
				machineApplications.GET("/mine", authMiddleware.RequireRole(models.RoleWorker, models.RoleStartup), machineApplicationHandler.ListMine)
				machineApplications.GET("", authMiddleware.RequireRole(models.RoleManufacturer), machineApplicationHandler.ListReceived)
				machineApplications.PUT("/:id/status", authMiddleware.RequireRole(models.RoleManufacturer), machineApplicationHandler.Decide)
			}
		}

		// Dashboard routes
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/worker", authMiddleware.RequireRole(models.RoleWorker), dashboardHandler.WorkerStats)
			dashboard.GET("/startup", authMiddleware.RequireRole(models.RoleStartup), dashboardHandler.StartupStats)
			dashboard.GET("/manufacturer", authMiddleware.RequireRole(models.RoleManufacturer), dashboardHandler.ManufacturerStats)
		}

		// Profile routes
		profile := v1.Group("/profile")
		{
			profile.GET("/me", profileHandler.GetMe)
			profile.PUT("/me", profileHandler.UpdateMe)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
