package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NavalhaStudio/barbearia-api/internal/audit"
	"github.com/NavalhaStudio/barbearia-api/internal/config"
	"github.com/NavalhaStudio/barbearia-api/internal/handlers"
	infraRepo "github.com/NavalhaStudio/barbearia-api/internal/infra/repository"
	"github.com/NavalhaStudio/barbearia-api/internal/lock"
	"github.com/NavalhaStudio/barbearia-api/internal/middleware"
	"github.com/NavalhaStudio/barbearia-api/internal/models"
	ucAppointment "github.com/NavalhaStudio/barbearia-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, locker lock.Locker, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		locker,
		auditDispatcher,
	)

	changeStatusUC := ucAppointment.NewChangeStatus(
		appointmentRepo,
		auditDispatcher,
	)

	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)

	listByDateUC := ucAppointment.NewListAppointmentsByDate(appointmentRepo)
	listByMonthUC := ucAppointment.NewListAppointmentsByMonth(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	barberHandler := handlers.NewBarberHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(db)
	exceptionHandler := handlers.NewExceptionHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		changeStatusUC,
		listByDateUC,
		listByMonthUC,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICO
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", serviceHandler.List)
			publicAPI.GET("/availability", availabilityHandler.List)
		}

		// ------------------------------
		// AUTENTICADO
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)

			secured.GET("/barbers", barberHandler.List)
			secured.GET("/barbers/:id/schedules", scheduleHandler.ListForBarber)
			secured.GET("/barbers/:id/exceptions", exceptionHandler.ListForBarber)

			secured.GET("/services", serviceHandler.List)
			secured.GET("/availability", availabilityHandler.List)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PATCH("/appointments/:id/status", appointmentHandler.ChangeStatus)
			secured.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

			// ------------------------------
			// AGENDA (barbeiro ou admin)
			// ------------------------------
			agenda := secured.Group("/")
			agenda.Use(middleware.RequireRole(models.RoleBarber, models.RoleAdmin))
			{
				// a agenda expõe dados de outros clientes
				agenda.GET("/appointments", appointmentHandler.ListByDate)
				agenda.GET("/appointments/month", appointmentHandler.ListByMonth)

				agenda.POST("/barbers/:id/schedules", scheduleHandler.CreateForBarber)
				agenda.PATCH("/schedules/:id", scheduleHandler.Update)
				agenda.DELETE("/schedules/:id", scheduleHandler.Delete)

				agenda.POST("/barbers/:id/exceptions", exceptionHandler.CreateForBarber)
				agenda.PATCH("/exceptions/:id", exceptionHandler.Update)
				agenda.DELETE("/exceptions/:id", exceptionHandler.Delete)
			}

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.POST("/barbers", barberHandler.Create)
				admin.PATCH("/barbers/:id", barberHandler.Update)
				admin.DELETE("/barbers/:id", barberHandler.Delete)

				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)
				admin.DELETE("/services/:id", serviceHandler.Delete)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
