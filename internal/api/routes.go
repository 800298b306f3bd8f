package api

import (
	"mcc-scheduler/internal/api/handlers"
	"mcc-scheduler/internal/api/middleware"
	"mcc-scheduler/internal/config"
	"mcc-scheduler/internal/repository"
	"mcc-scheduler/internal/service"
	"mcc-scheduler/pkg/database"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every repository, service and handler and mounts them
// on router. cfg.Platform supplies the default platform constants applied
// to graphs that omit them.
func SetupRoutes(router *gin.Engine, cfg *config.Config) {
	db := database.GetDB()

	userRepo := repository.NewUserRepository(db)
	graphRepo := repository.NewGraphRepository(db)
	runRepo := repository.NewRunRepository(db)

	userService := service.NewUserService(userRepo)
	graphService := service.NewGraphService(graphRepo, cfg.Platform)
	schedulerService := service.NewSchedulerService(graphRepo, runRepo, graphService)
	monitorService := service.NewMonitorService()

	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	healthHandler := handlers.NewHealthHandler()
	metricsHandler := handlers.NewMetricsHandler(monitorService)
	graphHandler := handlers.NewGraphHandler(graphService)
	runHandler := handlers.NewRunHandler(schedulerService)

	router.Use(middleware.LoggingMiddleware())

	public := router.Group("/api/v1")
	{
		public.GET("/health", healthHandler.CheckHealth)

		auth := public.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
		}
	}

	protected := router.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/metrics", metricsHandler.GetMetrics)

		auth := protected.Group("/auth")
		{
			auth.GET("/me", authHandler.GetCurrentUser)
		}

		graphs := protected.Group("/graphs")
		{
			graphs.POST("", graphHandler.CreateGraph)
			graphs.GET("", graphHandler.ListGraphs)
			graphs.GET("/:id", graphHandler.GetGraph)
			graphs.DELETE("/:id", middleware.AdminMiddleware(), graphHandler.DeleteGraph)

			graphs.POST("/:id/runs", runHandler.CreateRun)
			graphs.GET("/:id/runs", runHandler.ListRuns)
		}

		runs := protected.Group("/runs")
		{
			runs.GET("/:id", runHandler.GetRun)
		}

		admin := protected.Group("/admin")
		admin.Use(middleware.AdminMiddleware())
		{
			adminUsers := admin.Group("/users")
			{
				adminUsers.GET("", userHandler.ListUsers)
				adminUsers.POST("", userHandler.CreateUser)
			}
		}

		users := protected.Group("/users")
		{
			users.GET("/:id", userHandler.GetUser)
		}
	}
}
