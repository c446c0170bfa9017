package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/arogyahub/docbook/internal/audit"
	"github.com/arogyahub/docbook/internal/cache"
	"github.com/arogyahub/docbook/internal/config"
	"github.com/arogyahub/docbook/internal/handlers"
	infraRepo "github.com/arogyahub/docbook/internal/infra/repository"
	"github.com/arogyahub/docbook/internal/middleware"
	"github.com/arogyahub/docbook/internal/models"
	"github.com/arogyahub/docbook/internal/monitoring"
	ucAppointment "github.com/arogyahub/docbook/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	cacheClient *cache.Client,
	log *zap.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	accountRepo := infraRepo.NewAccountGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(appointmentRepo, auditDispatcher)
	cancelUC := ucAppointment.NewCancelAppointment(appointmentRepo, auditDispatcher)
	statusUC := ucAppointment.NewUpdateStatus(appointmentRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(accountRepo, cfg, cacheClient, auditDispatcher)
	profileHandler := handlers.NewProfileHandler(db, cacheClient, auditDispatcher)
	doctorHandler := handlers.NewDoctorHandler(db, cacheClient, log)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentRepo, bookUC, cancelUC, statusUC)
	activityHandler := handlers.NewActivityHandler(db)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "docbook",
			"docs":    "/api",
		})
	})

	r.GET("/metrics", gin.WrapH(monitoring.Handler()))

	// ======================================================
	// API
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, cacheClient))
		{
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/me", profileHandler.GetMe)
			secured.PATCH("/me", profileHandler.UpdateMe)
			secured.DELETE("/me", profileHandler.DeleteMe)
			secured.GET("/me/activity", activityHandler.List)

			secured.GET("/doctors", doctorHandler.List)

			// Both roles may cancel; ownership is enforced per-operation.
			secured.POST("/appointments/:id/cancel", appointmentHandler.Cancel)

			patient := secured.Group("/")
			patient.Use(middleware.RequireRole(models.RolePatient))
			{
				patient.GET("/patient/appointments", appointmentHandler.ListForPatient)
				patient.POST("/doctors/:id/appointments", appointmentHandler.Book)
			}

			doctor := secured.Group("/")
			doctor.Use(middleware.RequireRole(models.RoleDoctor))
			{
				doctor.GET("/doctor/appointments", appointmentHandler.ListForDoctor)
				doctor.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
			}
		}
	}
}
