package routes

import (
	"net/http"
	"time"

	"clinicore/handlers"
	"clinicore/middleware"
	"clinicore/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterScheduleRoutes registers the availability template endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedules")
	{
		// Reading a schedule or its derived slots needs no authentication;
		// booking flows fetch them before the patient signs in.
		api.GET("/:doctorId", hb.Schedule.GetScheduleHandler)
		api.GET("/:doctorId/available-slots", hb.Schedule.AvailableSlotsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.PUT("/:doctorId", middleware.RequireRoles(models.RoleAdmin, models.RoleDoctor), hb.Schedule.ReplaceScheduleHandler)
		protected.PUT("/:doctorId/working-hours", middleware.RequireRoles(models.RoleAdmin, models.RoleDoctor), hb.Schedule.SetWorkingHoursHandler)
		protected.PUT("/:doctorId/days/:day/slots", middleware.RequireRoles(models.RoleDoctor), hb.Schedule.SetDaySlotsHandler)
	}
}

// RegisterAppointmentRoutes registers the booking ledger endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", middleware.RequireRoles(models.RolePatient), hb.Appointment.CreateAppointmentHandler)
		api.GET("/my", middleware.RequireRoles(models.RolePatient), hb.Appointment.MyAppointmentsHandler)
		api.GET("/doctor/:bucket", middleware.RequireRoles(models.RoleDoctor), hb.Appointment.DoctorAppointmentsHandler)
		api.GET("/:id", hb.Appointment.GetAppointmentHandler)
		api.PATCH("/:id/status", middleware.RequireRoles(models.RoleAdmin, models.RoleDoctor), hb.Appointment.UpdateStatusHandler)
		api.PATCH("/:id/reschedule", middleware.RequireRoles(models.RoleAdmin, models.RoleDoctor), hb.Appointment.RescheduleHandler)
		api.PATCH("/:id/patient-reschedule", middleware.RequireRoles(models.RolePatient), hb.Appointment.RescheduleHandler)
		api.PATCH("/:id/cancel", middleware.RequireRoles(models.RolePatient, models.RoleDoctor, models.RoleAdmin), hb.Appointment.CancelAppointmentHandler)
		api.PATCH("/:id/notes", middleware.RequireRoles(models.RoleAdmin, models.RoleDoctor), hb.Appointment.UpdateNotesHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "clinicore"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterScheduleRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
}
