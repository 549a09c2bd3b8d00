package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/v322/healthsync/internal/audit"
	"github.com/v322/healthsync/internal/cache"
	"github.com/v322/healthsync/internal/config"
	domain "github.com/v322/healthsync/internal/domain/schedule"
	"github.com/v322/healthsync/internal/handlers"
	infraRepo "github.com/v322/healthsync/internal/infra/repository"
	"github.com/v322/healthsync/internal/middleware"
	"github.com/v322/healthsync/internal/models"
	ucschedule "github.com/v322/healthsync/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, rdb *redis.Client) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleStore := infraRepo.NewScheduleGormStore(db)
	slotCache := cache.NewSlotCache(rdb)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	policy := domain.ConflictAllStatuses
	if cfg.ConflictActiveOnly {
		policy = domain.ConflictActiveOnly
	}

	// ======================================================
	// USE CASES — SCHEDULING
	// ======================================================
	bookUC := ucschedule.NewBookAppointment(scheduleStore, policy, auditDispatcher, slotCache)
	slotsUC := ucschedule.NewGetAvailableSlots(scheduleStore, policy, slotCache)
	cancelUC := ucschedule.NewCancelAppointment(scheduleStore, auditDispatcher, slotCache)
	consultUC := ucschedule.NewConductConsultation(scheduleStore, auditDispatcher, slotCache)
	updateUC := ucschedule.NewUpdateAppointment(scheduleStore, auditDispatcher, slotCache)
	getUC := ucschedule.NewGetAppointment(scheduleStore)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		bookUC,
		slotsUC,
		cancelUC,
		consultUC,
		updateUC,
		getUC,
	)
	doctorHandler := handlers.NewDoctorHandler(db, slotCache)
	patientHandler := handlers.NewPatientHandler(db)
	departmentHandler := handlers.NewDepartmentHandler(db)
	bedHandler := handlers.NewBedHandler(db, auditDispatcher)
	billHandler := handlers.NewBillHandler(db)
	medicationHandler := handlers.NewMedicationHandler(db)
	prescriptionHandler := handlers.NewPrescriptionHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/auth/me", authHandler.Me)
			secured.POST("/auth/change-password", authHandler.ChangePassword)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			appointments := secured.Group("/appointments")
			{
				appointments.POST("", appointmentHandler.Book)
				appointments.GET("/available-slots", appointmentHandler.AvailableSlots)
				appointments.GET("/:id", appointmentHandler.Get)
				appointments.PUT("/:id", appointmentHandler.Update)
				appointments.PUT("/:id/cancel", appointmentHandler.Cancel)
				appointments.PUT("/:id/consultation", appointmentHandler.Consultation)
				appointments.GET("/patient/:patientId", appointmentHandler.ListByPatient)
				appointments.GET("/doctor/:doctorId", appointmentHandler.ListByDoctor)
				appointments.GET("/date/:date", appointmentHandler.ListByDate)
				appointments.GET("/status/:status", appointmentHandler.ListByStatus)
			}

			// ------------------------------
			// DOCTORS + AVAILABILITY
			// ------------------------------
			doctors := secured.Group("/doctors")
			{
				doctors.POST("", doctorHandler.Create)
				doctors.GET("", doctorHandler.List)
				doctors.GET("/search", doctorHandler.Search)
				doctors.GET("/specialization/:specialization", doctorHandler.ListBySpecialization)
				doctors.GET("/department/:departmentId", doctorHandler.ListByDepartment)
				doctors.GET("/:id", doctorHandler.Get)
				doctors.PUT("/:id", doctorHandler.Update)
				doctors.PUT("/:id/consultation-fee", doctorHandler.UpdateConsultationFee)
				doctors.DELETE("/:id", doctorHandler.Delete)

				doctors.POST("/:id/availability", doctorHandler.AddAvailability)
				doctors.GET("/:id/availability", doctorHandler.ListAvailability)
				doctors.GET("/:id/availability/:dayOfWeek", doctorHandler.ListAvailabilityByDay)
				doctors.PUT("/availability/:slotId", doctorHandler.UpdateAvailability)
				doctors.DELETE("/availability/:slotId", doctorHandler.DeleteAvailability)
			}

			// ------------------------------
			// PATIENTS
			// ------------------------------
			patients := secured.Group("/patients")
			{
				patients.POST("", patientHandler.Create)
				patients.GET("", patientHandler.List)
				patients.GET("/search", patientHandler.Search)
				patients.GET("/email/:email", patientHandler.GetByEmail)
				patients.GET("/:id", patientHandler.Get)
				patients.PUT("/:id", patientHandler.Update)
				patients.DELETE("/:id", patientHandler.Delete)
			}

			// ------------------------------
			// DEPARTMENTS
			// ------------------------------
			departments := secured.Group("/departments")
			{
				departments.POST("", departmentHandler.Create)
				departments.GET("", departmentHandler.List)
				departments.GET("/name/:name", departmentHandler.GetByName)
				departments.GET("/:id", departmentHandler.Get)
				departments.PUT("/:id", departmentHandler.Update)
				departments.DELETE("/:id", departmentHandler.Delete)
			}

			// ------------------------------
			// BEDS
			// ------------------------------
			beds := secured.Group("/beds")
			{
				beds.POST("", bedHandler.Create)
				beds.GET("", bedHandler.List)
				beds.GET("/available", bedHandler.ListAvailable)
				beds.GET("/occupied", bedHandler.ListOccupied)
				beds.GET("/department/:departmentId", bedHandler.ListByDepartment)
				beds.GET("/available/count/department/:departmentId", bedHandler.AvailableCountByDepartment)
				beds.GET("/patient/:patientId", bedHandler.GetByPatient)
				beds.GET("/:id", bedHandler.Get)
				beds.POST("/:id/assign", bedHandler.Assign)
				beds.POST("/:id/release", bedHandler.Release)
				beds.POST("/patient/:patientId/release", bedHandler.ReleaseByPatient)
				beds.DELETE("/:id", bedHandler.Delete)
			}

			// ------------------------------
			// BILLS
			// ------------------------------
			bills := secured.Group("/bills")
			{
				bills.POST("", billHandler.Create)
				bills.GET("/unpaid", billHandler.ListUnpaid)
				bills.GET("/patient/:patientId", billHandler.ListByPatient)
				bills.GET("/status/:status", billHandler.ListByStatus)
				bills.GET("/total/patient/:patientId", billHandler.PatientTotal)
				bills.GET("/:id", billHandler.Get)
				bills.GET("/:id/items", billHandler.Items)
				bills.POST("/:id/items", billHandler.AddItem)
				bills.POST("/:id/payment", billHandler.RecordPayment)
			}

			// ------------------------------
			// MEDICATIONS
			// ------------------------------
			medications := secured.Group("/medications")
			{
				medications.POST("", medicationHandler.Create)
				medications.GET("", medicationHandler.List)
				medications.GET("/search", medicationHandler.Search)
				medications.GET("/:id", medicationHandler.Get)
				medications.PUT("/:id", medicationHandler.Update)
				medications.DELETE("/:id", medicationHandler.Delete)
			}

			// ------------------------------
			// PRESCRIPTIONS
			// ------------------------------
			prescriptions := secured.Group("/prescriptions")
			{
				prescriptions.POST("", prescriptionHandler.Create)
				prescriptions.GET("/patient/:patientId", prescriptionHandler.ListByPatient)
				prescriptions.GET("/doctor/:doctorId", prescriptionHandler.ListByDoctor)
				prescriptions.GET("/status/:status", prescriptionHandler.ListByStatus)
				prescriptions.GET("/date-range", prescriptionHandler.ListByDateRange)
				prescriptions.GET("/:id", prescriptionHandler.Get)
				prescriptions.GET("/:id/items", prescriptionHandler.Items)
				prescriptions.POST("/:id/items", prescriptionHandler.AddItem)
				prescriptions.PUT("/:id/status", prescriptionHandler.UpdateStatus)
				prescriptions.PUT("/:id", prescriptionHandler.Update)
				prescriptions.DELETE("/:id", prescriptionHandler.Delete)
				prescriptions.DELETE("/items/:itemId", prescriptionHandler.DeleteItem)
			}

			secured.GET("/audit-logs", middleware.RequireRole(models.RoleAdmin), auditLogsHandler.List)
		}
	}
}
