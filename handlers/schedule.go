package handlers

import (
	"net/http"

	"clinicore/models"
	"clinicore/services/scheduling"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler exposes the availability template store and slot resolver.
type ScheduleHandler struct {
	Service scheduling.ScheduleService
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(svc scheduling.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// GetScheduleHandler handles GET /api/schedules/:doctorId.
func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	schedule, err := h.Service.GetTemplate(c.Param("doctorId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": schedule})
}

// ReplaceScheduleHandler handles PUT /api/schedules/:doctorId.
func (h *ScheduleHandler) ReplaceScheduleHandler(c *gin.Context) {
	var input struct {
		WeeklySchedule []models.DaySchedule `json:"weeklySchedule" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	id, role := requester(c)
	schedule, err := h.Service.ReplaceTemplate(c.Param("doctorId"), input.WeeklySchedule, role, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": schedule})
}

// SetWorkingHoursHandler handles PUT /api/schedules/:doctorId/working-hours,
// accepting the flat {day,startTime,endTime} shape.
func (h *ScheduleHandler) SetWorkingHoursHandler(c *gin.Context) {
	var input struct {
		Schedule []models.WorkingHours `json:"schedule" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	id, role := requester(c)
	schedule, err := h.Service.SetWorkingHours(c.Param("doctorId"), input.Schedule, role, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": schedule})
}

// SetDaySlotsHandler handles PUT /api/schedules/:doctorId/days/:day/slots.
func (h *ScheduleHandler) SetDaySlotsHandler(c *gin.Context) {
	var input struct {
		TimeSlots []models.TimeSlot `json:"timeSlots" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	id, _ := requester(c)
	day, err := h.Service.SetDaySlots(c.Param("doctorId"), c.Param("day"), input.TimeSlots, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": day})
}

// AvailableSlotsHandler handles
// GET /api/schedules/:doctorId/available-slots?date=YYYY-MM-DD.
func (h *ScheduleHandler) AvailableSlotsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	slots, err := h.Service.ResolveAvailableSlots(c.Param("doctorId"), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "availableSlots": slots})
}
