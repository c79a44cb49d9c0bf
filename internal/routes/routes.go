package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbermap/booking-api/internal/audit"
	"github.com/barbermap/booking-api/internal/cache"
	"github.com/barbermap/booking-api/internal/config"
	"github.com/barbermap/booking-api/internal/handlers"
	infraRepo "github.com/barbermap/booking-api/internal/infra/repository"
	"github.com/barbermap/booking-api/internal/middleware"
	ucAppointment "github.com/barbermap/booking-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, store cache.Cache) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		bookingRepo,
		auditDispatcher,
		store,
	)

	rescheduleAppointmentUC := ucAppointment.NewRescheduleAppointment(
		bookingRepo,
		auditDispatcher,
		store,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		bookingRepo,
		auditDispatcher,
		store,
	)

	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(
		bookingRepo,
		auditDispatcher,
		store,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		bookingRepo,
		auditDispatcher,
		store,
	)

	findAppointmentsUC := ucAppointment.NewFindAppointments(bookingRepo)

	availableSlotsUC := ucAppointment.NewGetAvailableSlots(
		bookingRepo,
		store,
		cfg.AvailabilityTTL,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	clientHandler := handlers.NewClientHandler(db)
	barberHandler := handlers.NewBarberHandler(db)
	barbershopHandler := handlers.NewBarbershopHandler(db)
	userHandler := handlers.NewUserHandler(db)
	validationHandler := handlers.NewValidationHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		rescheduleAppointmentUC,
		cancelAppointmentUC,
		confirmAppointmentUC,
		completeAppointmentUC,
		findAppointmentsUC,
		availableSlotsUC,
	)

	// ======================================================
	// ROTAS PÚBLICAS
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)

		api.POST("/clients/register", clientHandler.Register)

		api.POST("/validation/email", validationHandler.ValidateEmail)
		api.POST("/validation/cpf", validationHandler.ValidateCPF)

		api.GET("/barbershops", barbershopHandler.List)
		api.GET("/barbershops/:id", barbershopHandler.GetByID)
	}

	r.POST("/barbers/register", barberHandler.Register)
	r.GET("/barbers/:id", barberHandler.GetByID)

	// ======================================================
	// ROTAS AUTENTICADAS
	// ======================================================
	secured := api.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.POST("/barbershops", barbershopHandler.Create)
		secured.POST("/barbershops/:id/services", barbershopHandler.AddService)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		secured.POST("/appointments", appointmentHandler.Create)
		secured.GET("/appointments/available-slots", appointmentHandler.AvailableSlots)
		secured.GET("/appointments/:id", appointmentHandler.GetByID)
		secured.GET("/appointments/client/:clientId", appointmentHandler.ListByClient)
		secured.GET("/appointments/barbershop/:barbershopId", appointmentHandler.ListByBarbershop)
		secured.PUT("/appointments/:id/reschedule", appointmentHandler.Reschedule)
		secured.PUT("/appointments/:id/cancel", appointmentHandler.Cancel)
		secured.PUT("/appointments/:id/confirm", appointmentHandler.Confirm)
		secured.PUT("/appointments/:id/complete", appointmentHandler.Complete)

		// ------------------------------
		// USERS
		// ------------------------------
		secured.GET("/users", userHandler.List)
		secured.GET("/users/:id", userHandler.Get)
		secured.PUT("/users/:id", userHandler.Update)
		secured.DELETE("/users/:id", userHandler.Delete)
	}

	// Alias de compatibilidade fora do prefixo /api, como /barbers.
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware(cfg))
	{
		users.GET("", userHandler.List)
		users.GET("/:id", userHandler.Get)
		users.PUT("/:id", userHandler.Update)
		users.DELETE("/:id", userHandler.Delete)
	}
}
