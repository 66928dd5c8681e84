// Package http wires the application together behind a gin engine.
package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/nuffylu-cyber/property-management-system/internal/application/maintenance/usecases"
	"github.com/nuffylu-cyber/property-management-system/internal/infrastructure/cache"
	"github.com/nuffylu-cyber/property-management-system/internal/infrastructure/config"
	"github.com/nuffylu-cyber/property-management-system/internal/infrastructure/notification"
	"github.com/nuffylu-cyber/property-management-system/internal/infrastructure/repository"
	"github.com/nuffylu-cyber/property-management-system/internal/interfaces/http/handlers/maintenance"
	"github.com/nuffylu-cyber/property-management-system/internal/interfaces/http/middleware"
	"github.com/nuffylu-cyber/property-management-system/internal/interfaces/http/routes"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/db"
	"github.com/nuffylu-cyber/property-management-system/internal/shared/logger"

	domain "github.com/nuffylu-cyber/property-management-system/internal/domain/maintenance"
)

const statsCacheTTL = 5 * time.Minute

// Router owns the gin engine and the wiring of handlers to it.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	logger logger.Interface
}

func NewRouter(cfg *config.Config, database *gorm.DB) *Router {
	gin.SetMode(cfg.Server.Mode)

	engine := gin.New()
	log := logger.NewLogger().Named("http")

	engine.Use(middleware.Logger(log))
	engine.Use(middleware.Recovery())
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(middleware.Identity())

	r := &Router{
		engine: engine,
		cfg:    cfg,
		logger: log,
	}

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.setupMaintenanceRoutes(database)

	return r
}

func (r *Router) setupMaintenanceRoutes(database *gorm.DB) {
	ticketRepo := repository.NewMaintenanceRepository(database)
	auditRepo := repository.NewAuditLogRepository(database)
	propertyRepo := repository.NewPropertyRepository(database)
	txManager := db.NewTransactionManager(database)
	numberGen := domain.NewDefaultNumberGenerator()

	notifier := r.buildNotifier()
	statsStore := r.buildStatsStore()

	ucLogger := logger.NewLogger().Named("maintenance")

	handler := maintenance.NewMaintenanceHandler(
		usecases.NewCreateTicketUseCase(ticketRepo, propertyRepo, numberGen, ucLogger),
		usecases.NewAssignTicketUseCase(ticketRepo, auditRepo, txManager, notifier, ucLogger),
		usecases.NewStartTicketUseCase(ticketRepo, auditRepo, txManager, notifier, ucLogger),
		usecases.NewCompleteTicketUseCase(ticketRepo, auditRepo, txManager, notifier, ucLogger),
		usecases.NewCloseTicketUseCase(ticketRepo, auditRepo, txManager, notifier, ucLogger),
		usecases.NewReopenTicketUseCase(ticketRepo, auditRepo, txManager, notifier, ucLogger),
		usecases.NewRateTicketUseCase(ticketRepo, ucLogger),
		usecases.NewDeleteTicketUseCase(ticketRepo, auditRepo, txManager, ucLogger),
		usecases.NewGetTicketUseCase(ticketRepo, ucLogger),
		usecases.NewListTicketsUseCase(ticketRepo, ucLogger),
		usecases.NewGetAuditTrailUseCase(ticketRepo, auditRepo, ucLogger),
		usecases.NewGetTicketStatsUseCase(ticketRepo, statsStore, ucLogger),
	)

	routes.SetupMaintenanceRoutes(r.engine, &routes.MaintenanceRouteConfig{
		MaintenanceHandler: handler,
	})
}

// buildNotifier assembles the notification dispatcher. The log channel is
// always on; email joins when SMTP is configured.
func (r *Router) buildNotifier() domain.Notifier {
	notifyLogger := logger.NewLogger().Named("notification")

	channels := []notification.Channel{
		notification.NewLogChannel(notifyLogger),
	}
	if r.cfg.Notification.SMTP.Enabled {
		channels = append(channels, notification.NewSMTPChannel(r.cfg.Notification.SMTP))
	}

	return notification.NewDispatcher(notifyLogger, channels...)
}

func (r *Router) buildStatsStore() usecases.StatsStore {
	if !r.cfg.Redis.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", r.cfg.Redis.Host, r.cfg.Redis.Port),
		Password: r.cfg.Redis.Password,
		DB:       r.cfg.Redis.DB,
	})

	return cache.NewStatsCache(client, "pms:stats:", statsCacheTTL)
}

// Engine exposes the underlying gin engine, mainly for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server and blocks.
func (r *Router) Run() error {
	addr := fmt.Sprintf("%s:%d", r.cfg.Server.Host, r.cfg.Server.Port)
	r.logger.Infow("starting HTTP server", "addr", addr)
	return r.engine.Run(addr)
}
