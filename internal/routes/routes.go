package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vitalcare/clinic-api/internal/audit"
	"github.com/vitalcare/clinic-api/internal/cache"
	"github.com/vitalcare/clinic-api/internal/config"
	"github.com/vitalcare/clinic-api/internal/handlers"
	infraRepo "github.com/vitalcare/clinic-api/internal/infra/repository"
	"github.com/vitalcare/clinic-api/internal/middleware"
	"github.com/vitalcare/clinic-api/internal/navarra"
	ucAppointment "github.com/vitalcare/clinic-api/internal/usecase/appointment"
	ucCenter "github.com/vitalcare/clinic-api/internal/usecase/center"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cch *cache.Cache, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	centerRepo := infraRepo.NewCenterGormRepository(db)
	feedClient := navarra.NewClient()

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	seedCentersUC := ucCenter.NewSeedCenters(
		feedClient,
		centerRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, auditDispatcher)
	profileHandler := handlers.NewProfileHandler(db)
	userHandler := handlers.NewUserHandler(db)

	patientHandler := handlers.NewPatientHandler(db, auditDispatcher)
	doctorHandler := handlers.NewDoctorHandler(db, auditDispatcher)
	centerHandler := handlers.NewCenterHandler(db, cch, seedCentersUC, cfg)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		cancelAppointmentUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// RUTAS
	// ======================================================

	// legado
	r.GET("/user", userHandler.GetUser)

	// pacientes
	r.GET("/patients", patientHandler.List)
	r.POST("/register/patient", authHandler.RegisterPatient)
	r.POST("/login/patient", authHandler.LoginPatient)
	r.PUT("/patient/:id", patientHandler.Update)
	r.PUT("/patient/:id/inactive_patient", patientHandler.SetInactive)
	r.GET("/PatientDashboard/:id", patientHandler.Dashboard)

	// médicos
	r.GET("/doctors", doctorHandler.List)
	r.POST("/register/doctor", authHandler.RegisterDoctor)
	r.POST("/login/doctor", authHandler.LoginDoctor)
	r.PUT("/doctor/:id", doctorHandler.Update)

	// centros
	r.GET("/centers", centerHandler.List)
	r.POST("/center_register", centerHandler.Create)
	r.POST("/centers/seed/navarra", centerHandler.SeedNavarra)

	// citas
	r.POST("/appointment", appointmentHandler.Create)
	r.PUT("/appointment/:id", appointmentHandler.Update)
	r.PUT("/appointment/:id/cancel", appointmentHandler.Cancel)

	// rutas protegidas por token
	protected := r.Group("/protected")
	{
		protected.GET(
			"/doctor",
			middleware.AuthMiddleware(cfg, middleware.RoleDoctor),
			profileHandler.GetDoctor,
		)
		protected.GET(
			"/patient",
			middleware.AuthMiddleware(cfg, middleware.RolePatient),
			profileHandler.GetPatient,
		)
	}

	// operación
	r.GET(
		"/audit-logs",
		middleware.AuthMiddleware(cfg, middleware.RoleDoctor),
		auditLogsHandler.List,
	)
}
