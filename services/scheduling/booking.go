package scheduling

import (
	"errors"
	"time"

	appointmentRepo "clinicore/database/repository/appointment"
	"clinicore/models"
	"clinicore/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create books a slot for a patient. Preconditions, in order: the date's
// weekday must be a working day, the slot must be legitimately offered by the
// template, and the atomic insert must win the (doctor, date, time) claim.
// A lost race surfaces as a slot conflict; nothing is persisted on any
// failure.
func (s *DefaultAppointmentService) Create(doctorID, patientID, date, startTime, endTime string) (*models.Appointment, error) {
	if doctorID == "" || patientID == "" {
		return nil, newError(CodeValidation, "doctor and patient ids are required")
	}
	if err := validateSlotInput(date, startTime, endTime); err != nil {
		return nil, err
	}

	if err := s.checkSlotOffered(doctorID, date, startTime, endTime); err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		ID:        uuid.New().String(),
		DoctorID:  doctorID,
		PatientID: patientID,
		Date:      date,
		Time:      startTime,
		Duration:  endTime,
		Status:    models.StatusScheduled,
		CreatedAt: time.Now(),
	}

	if err := s.Repo.Create(appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			return nil, newError(CodeSlotConflict, "slot %s on %s is already booked", startTime, date)
		}
		return nil, err
	}

	utils.GetLogger().Info("appointment created",
		zap.String("appointmentID", appt.ID),
		zap.String("doctorID", doctorID),
		zap.String("date", date),
		zap.String("time", startTime))
	return appt, nil
}

// checkSlotOffered verifies preconditions (a) and (b): the weekday is a
// working day and (startTime, endTime) is a configured, still-offered slot.
// Occupancy is deliberately not checked here; the storage claim decides it.
func (s *DefaultAppointmentService) checkSlotOffered(doctorID, date, startTime, endTime string) error {
	weekday, err := weekdayOf(date)
	if err != nil {
		return err
	}
	schedule, err := s.Schedules.GetTemplate(doctorID)
	if err != nil {
		return err
	}
	day := schedule.DayFor(weekday)
	if day == nil || !day.IsWorkingDay {
		return newError(CodeNotAWorkingDay, "%s is not a working day for this doctor", weekday)
	}
	for _, slot := range day.TimeSlots {
		if slot.StartTime == startTime && slot.EndTime == endTime {
			if !slot.IsAvailable {
				return newError(CodeSlotUnavailable, "slot %s-%s has been withdrawn", startTime, endTime)
			}
			return nil
		}
	}
	return newError(CodeSlotUnavailable, "slot %s-%s is not offered on %s", startTime, endTime, weekday)
}

// validateSlotInput checks the date and slot-bound encodings shared by the
// create and reschedule paths.
func validateSlotInput(date, startTime, endTime string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return newError(CodeValidation, "invalid date %q, expected YYYY-MM-DD", date)
	}
	slot := models.TimeSlot{StartTime: startTime, EndTime: endTime}
	if err := slot.Validate(); err != nil {
		return newError(CodeValidation, "%v", err)
	}
	return nil
}

// isPastDate reports whether the "YYYY-MM-DD" date is strictly before today.
func isPastDate(date string, now time.Time) bool {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return parsed.Before(today)
}
