package routes

import (
	"net/http"

	"sarthi-backend/internal/handlers"
	"sarthi-backend/internal/middleware"
	"sarthi-backend/internal/models"
	"sarthi-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler, active middleware.ActiveSession, limiter *middleware.IPRateLimiter) {
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware(limiter))

	r.GET("/ping", func(c *gin.Context) {
		utils.APIResponse(c, http.StatusOK, true, "Server OK!", nil)
	})

	// Grouping API dengan Versi (v1)
	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.Login)
			auth.POST("/signup", h.Signup)
			auth.GET("/session", h.GetSession)
		}

		// PROTECTED ROUTES (harus punya token session aktif)
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware(active))
		{
			protected.POST("/auth/logout", h.Logout)
			protected.GET("/doctors", h.SearchDoctors)
			protected.GET("/doctors/:id", h.GetDoctor)
			protected.GET("/notifications", h.GetNotifications)

			// Pasien
			patient := protected.Group("/")
			patient.Use(middleware.RoleOnly(models.RolePatient))
			{
				patient.POST("/onboarding", h.CompleteOnboarding)

				patient.GET("/profile", h.GetProfile)
				patient.PUT("/profile", h.UpdateProfile)
				patient.POST("/profile/medications", h.AddMedication)
				patient.DELETE("/profile/medications/:id", h.RemoveMedication)
				patient.POST("/medications/:id/taken", h.MarkMedicationTaken)
				patient.POST("/profile/allergies", h.AddAllergy)
				patient.DELETE("/profile/allergies/:index", h.RemoveAllergy)
				patient.POST("/profile/events", h.AddMedicalEvent)
				patient.DELETE("/profile/events/:id", h.RemoveMedicalEvent)
				patient.POST("/profile/reports", h.UploadReport)
				patient.GET("/profile/summary", h.HealthSummary)
				patient.GET("/profile/tip", h.HealthTip)

				patient.GET("/triage", h.GetTriage)
				patient.POST("/triage/messages", h.SendTriageMessage)
				patient.POST("/triage/reset", h.ResetTriage)
				patient.GET("/triage/specialists", h.FindSpecialists)

				patient.GET("/appointments", h.GetAppointments)
				patient.POST("/appointments", h.BookAppointment)
				patient.POST("/appointments/:id/rate", h.RateAppointment)
				patient.POST("/appointments/:id/checkout", h.Checkout)
			}

			// Group khusus dokter
			doctor := protected.Group("/doctor")
			doctor.Use(middleware.RoleOnly(models.RoleDoctor))
			{
				doctor.GET("/dashboard", h.Dashboard)
				doctor.POST("/appointments/:id/accept", h.AcceptAppointment)
				doctor.POST("/appointments/:id/decline", h.DeclineAppointment)
				doctor.POST("/appointments/:id/complete", h.CompleteConsultation)
				doctor.POST("/prescriptions/scan", h.ScanPrescription)
				doctor.GET("/profile", h.GetDoctorProfile)
				doctor.PUT("/profile", h.UpdateDoctorProfile)
			}
		}
	}
}
