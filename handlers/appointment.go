package handlers

import (
	"net/http"

	"clinicore/models"
	"clinicore/services/scheduling"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler exposes the booking ledger.
type AppointmentHandler struct {
	Service scheduling.AppointmentService
}

// NewAppointmentHandler constructs an AppointmentHandler.
func NewAppointmentHandler(svc scheduling.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// CreateAppointmentHandler handles POST /api/appointments. Patient only; the
// patient id comes from the authenticated context, never the body.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	var input struct {
		Doctor   string `json:"doctor" binding:"required"`
		Date     string `json:"date" binding:"required"`
		Time     string `json:"time" binding:"required"`
		Duration string `json:"duration" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	patientID, _ := requester(c)
	appt, err := h.Service.Create(input.Doctor, patientID, input.Date, input.Time, input.Duration)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "appointment": appt})
}

// MyAppointmentsHandler handles GET /api/appointments/my for patients.
func (h *AppointmentHandler) MyAppointmentsHandler(c *gin.Context) {
	patientID, _ := requester(c)
	appts, err := h.Service.ListForPatient(patientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "appointments": appts})
}

// DoctorAppointmentsHandler handles GET /api/appointments/doctor/:bucket
// with bucket one of today, upcoming, or past.
func (h *AppointmentHandler) DoctorAppointmentsHandler(c *gin.Context) {
	doctorID, _ := requester(c)
	appts, err := h.Service.ListForDoctor(doctorID, c.Param("bucket"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "appointments": appts})
}

// GetAppointmentHandler handles GET /api/appointments/:id.
func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	id, role := requester(c)
	appt, err := h.Service.GetByID(c.Param("id"), role, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "appointment": appt})
}

// UpdateStatusHandler handles PATCH /api/appointments/:id/status.
func (h *AppointmentHandler) UpdateStatusHandler(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	id, role := requester(c)
	appt, err := h.Service.UpdateStatus(c.Param("id"), models.AppointmentStatus(input.Status), role, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "appointment": appt})
}

// RescheduleHandler handles PATCH /api/appointments/:id/reschedule and
// PATCH /api/appointments/:id/patient-reschedule; the role checks live in the
// service, keyed off the authenticated requester.
func (h *AppointmentHandler) RescheduleHandler(c *gin.Context) {
	var input struct {
		Date     string `json:"date" binding:"required"`
		Time     string `json:"time" binding:"required"`
		Duration string `json:"duration" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	id, role := requester(c)
	appt, err := h.Service.Reschedule(c.Param("id"), input.Date, input.Time, input.Duration, role, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "appointment": appt})
}

// CancelAppointmentHandler handles PATCH /api/appointments/:id/cancel.
func (h *AppointmentHandler) CancelAppointmentHandler(c *gin.Context) {
	id, role := requester(c)
	appt, err := h.Service.Cancel(c.Param("id"), role, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "appointment": appt})
}

// UpdateNotesHandler handles PATCH /api/appointments/:id/notes.
func (h *AppointmentHandler) UpdateNotesHandler(c *gin.Context) {
	var input struct {
		Notes string `json:"notes" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	id, role := requester(c)
	appt, err := h.Service.UpdateNotes(c.Param("id"), input.Notes, role, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "appointment": appt})
}
