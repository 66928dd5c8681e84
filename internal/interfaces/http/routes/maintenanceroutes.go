package routes

import (
	"github.com/gin-gonic/gin"

	maintenancehandlers "github.com/nuffylu-cyber/property-management-system/internal/interfaces/http/handlers/maintenance"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/authorization"
)

type MaintenanceRouteConfig struct {
	MaintenanceHandler *maintenancehandlers.MaintenanceHandler
}

func SetupMaintenanceRoutes(engine *gin.Engine, config *MaintenanceRouteConfig) {
	maintenance := engine.Group("/maintenance")
	{
		// Register specific paths before parameterized paths to avoid
		// route conflicts.

		maintenance.POST("", config.MaintenanceHandler.CreateTicket)
		maintenance.GET("", config.MaintenanceHandler.ListTickets)
		maintenance.GET("/stats", config.MaintenanceHandler.GetStats)

		// Lifecycle transitions are staff operations, except rating and
		// reopening which belong to the reporter.
		maintenance.POST("/:id/assign",
			authorization.RequireStaff(),
			config.MaintenanceHandler.AssignTicket)
		maintenance.POST("/:id/start",
			authorization.RequireStaff(),
			config.MaintenanceHandler.StartTicket)
		maintenance.POST("/:id/complete",
			authorization.RequireStaff(),
			config.MaintenanceHandler.CompleteTicket)
		maintenance.POST("/:id/close",
			config.MaintenanceHandler.CloseTicket)
		maintenance.POST("/:id/reopen",
			config.MaintenanceHandler.ReopenTicket)
		maintenance.POST("/:id/rate",
			config.MaintenanceHandler.RateTicket)
		maintenance.GET("/:id/logs",
			config.MaintenanceHandler.GetAuditTrail)

		// Permanent removal is administrative, outside the lifecycle.
		maintenance.DELETE("/:id",
			authorization.RequireAdmin(),
			config.MaintenanceHandler.DeleteTicket)

		maintenance.GET("/:id", config.MaintenanceHandler.GetTicket)
	}
}
