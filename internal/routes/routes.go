package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/agendaplus/salon-scheduler/internal/cache"
	"github.com/agendaplus/salon-scheduler/internal/config"
	"github.com/agendaplus/salon-scheduler/internal/handlers"
	infraRepo "github.com/agendaplus/salon-scheduler/internal/infra/repository"
	"github.com/agendaplus/salon-scheduler/internal/middleware"
	"github.com/agendaplus/salon-scheduler/internal/notification"
	ucAppointment "github.com/agendaplus/salon-scheduler/internal/usecase/appointment"
	ucCatalog "github.com/agendaplus/salon-scheduler/internal/usecase/catalog"
)

// RegisterRoutes é o composition root: repositórios → use cases →
// handlers → rotas, tudo montado explicitamente aqui.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
) *notification.Dispatcher {

	// ======================================================
	// INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)
	categoryRepo := infraRepo.NewCategoryGormRepository(db)
	serviceRepo := infraRepo.NewServiceGormRepository(db)
	assignmentRepo := infraRepo.NewStylistServiceGormRepository(db)

	availabilityCache := cache.NewAvailabilityCache(rdb, log)

	notificationStore := notification.NewStore(db)
	notifier := notification.NewDispatcher(notificationStore, log)

	// ======================================================
	// USE CASES
	// ======================================================
	createUC := ucAppointment.NewCreate(appointmentRepo, notifier, availabilityCache)
	getByIDUC := ucAppointment.NewGetByID(appointmentRepo)
	listByClientUC := ucAppointment.NewListByClient(appointmentRepo)
	changeStatusUC := ucAppointment.NewChangeStatus(appointmentRepo, notifier, availabilityCache)
	rescheduleUC := ucAppointment.NewReschedule(appointmentRepo, notifier, availabilityCache)
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, availabilityCache)

	categoryService := ucCatalog.NewCategoryService(categoryRepo)
	serviceManagement := ucCatalog.NewServiceManagement(serviceRepo, categoryRepo)
	stylistServiceService := ucCatalog.NewStylistServiceService(assignmentRepo, serviceRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createUC,
		getByIDUC,
		listByClientUC,
		changeStatusUC,
		rescheduleUC,
		availabilityUC,
	)

	categoryHandler := handlers.NewCategoryHandler(categoryService)
	serviceHandler := handlers.NewServiceHandler(serviceManagement)
	stylistServiceHandler := handlers.NewStylistServiceHandler(stylistServiceService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleRepo)
	clientHandler := handlers.NewClientHandler(db)
	stylistHandler := handlers.NewStylistHandler(db)
	notificationHandler := handlers.NewNotificationHandler(notificationStore)

	// ======================================================
	// ROTAS
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.ListByClient)
			secured.GET("/appointments/:id", appointmentHandler.GetByID)
			secured.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/appointments/:id/start", appointmentHandler.Start)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/no-show", appointmentHandler.NoShow)
			secured.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)

			secured.GET("/availability", appointmentHandler.Availability)

			// ------------------------------
			// CATALOG
			// ------------------------------
			secured.GET("/categories", categoryHandler.List)
			secured.POST("/categories", categoryHandler.Create)
			secured.GET("/categories/:id", categoryHandler.Get)
			secured.PATCH("/categories/:id", categoryHandler.Update)
			secured.DELETE("/categories/:id", categoryHandler.Deactivate)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.GET("/services/:id", serviceHandler.Get)
			secured.PATCH("/services/:id", serviceHandler.Update)

			// ------------------------------
			// STYLISTS + VÍNCULOS
			// ------------------------------
			secured.GET("/stylists", stylistHandler.List)
			secured.GET("/stylists/:id", stylistHandler.Get)
			secured.GET("/stylists/:id/services", stylistServiceHandler.List)
			secured.POST("/stylists/:id/services", stylistServiceHandler.Assign)
			secured.DELETE("/stylists/:id/services/:serviceId", stylistServiceHandler.Unassign)
			secured.GET("/stylists/:id/services/:serviceId/price", stylistServiceHandler.EffectivePrice)

			// ------------------------------
			// SCHEDULES
			// ------------------------------
			secured.GET("/schedules", scheduleHandler.List)
			secured.POST("/schedules", scheduleHandler.Create)
			secured.PATCH("/schedules/:id", scheduleHandler.Update)
			secured.DELETE("/schedules/:id", scheduleHandler.Delete)
			secured.GET("/schedules/:id/slots", scheduleHandler.Slots)

			// ------------------------------
			// CLIENTS
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients/:id", clientHandler.Get)

			// ------------------------------
			// NOTIFICATIONS
			// ------------------------------
			secured.GET("/notifications", notificationHandler.List)
			secured.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
		}
	}

	return notifier
}
