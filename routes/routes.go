package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"haverststudio-backend/config"
	"haverststudio-backend/controllers"
	"haverststudio-backend/utils"
)

func SetupRouter(ctrl *controllers.Controller) *gin.Engine {
	r := gin.Default()

	origins := config.AllowedOrigins()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/login", ctrl.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", ctrl.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Client routes
		clients := api.Group("/clients")
		{
			clients.POST("", ctrl.CreateClient)
			clients.GET("", ctrl.GetClients)
		}

		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.POST("", ctrl.CreateAppointment)
			appointments.GET("", ctrl.GetAppointments)
			appointments.GET("/week", ctrl.GetWeekSchedule)
			appointments.PUT("/:id", ctrl.UpdateAppointment)
			appointments.PUT("/:id/status", ctrl.SetAppointmentStatus)
		}

		// Service catalog routes
		services := api.Group("/services")
		{
			services.POST("", ctrl.CreateService)
			services.GET("", ctrl.GetServices)
			services.PUT("/:id", ctrl.UpdateService)
			services.PUT("/:id/active", ctrl.SetServiceActive)
		}

		// Transaction routes
		transactions := api.Group("/transactions")
		{
			transactions.POST("", ctrl.CreateTransaction)
			transactions.GET("", ctrl.GetTransactions)
		}

		// Inventory routes
		inventory := api.Group("/inventory")
		{
			inventory.POST("", ctrl.CreateInventoryItem)
			inventory.GET("", ctrl.GetInventory)
			inventory.GET("/low-stock", ctrl.GetLowStock)
			inventory.PUT("/:id", ctrl.UpdateInventoryItem)
		}

		// Notification routes
		notifications := api.Group("/notifications")
		{
			notifications.GET("", ctrl.GetNotifications)
			notifications.PUT("/read-all", ctrl.MarkAllNotificationsRead)
			notifications.PUT("/:id/read", ctrl.MarkNotificationRead)
		}

		// Dashboard route
		api.GET("/dashboard", ctrl.GetDashboardOverview)

		// Finance routes
		finances := api.Group("/finances")
		{
			finances.GET("/summary", ctrl.GetFinanceSummary)
			finances.GET("/trend", ctrl.GetFinanceTrend)
		}
	}

	return r
}
