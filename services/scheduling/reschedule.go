package scheduling

import (
	"errors"
	"time"

	appointmentRepo "clinicore/database/repository/appointment"
	"clinicore/models"
	"clinicore/utils"

	"go.uber.org/zap"
)

// Reschedule moves an appointment to a new slot, re-validating it exactly as
// a fresh booking while excluding the appointment itself from the conflict
// check. On success the appointment carries the new date, time, and duration
// with status rescheduled; on a lost race the original is left untouched.
func (s *DefaultAppointmentService) Reschedule(id, newDate, newStartTime, newEndTime, requesterRole, requesterID string) (*models.Appointment, error) {
	appt, err := s.getExisting(id)
	if err != nil {
		return nil, err
	}

	switch requesterRole {
	case models.RoleAdmin:
	case models.RoleDoctor:
		if appt.DoctorID != requesterID {
			return nil, newError(CodeUnauthorized, "not authorized to reschedule this appointment")
		}
	case models.RolePatient:
		if appt.PatientID != requesterID {
			return nil, newError(CodeUnauthorized, "not authorized to reschedule this appointment")
		}
		if isPastDate(appt.Date, time.Now()) {
			return nil, newError(CodePastDate, "cannot reschedule an appointment dated in the past")
		}
	default:
		return nil, newError(CodeUnauthorized, "unknown requester role %q", requesterRole)
	}

	if !CanTransition(appt.Status, models.StatusRescheduled) {
		return nil, newError(CodeInvalidTransition, "cannot reschedule a %s appointment", appt.Status)
	}

	if err := validateSlotInput(newDate, newStartTime, newEndTime); err != nil {
		return nil, err
	}
	if err := s.checkSlotOffered(appt.DoctorID, newDate, newStartTime, newEndTime); err != nil {
		return nil, err
	}

	// The unique index only matches other slot-holding appointments, so
	// moving onto the appointment's own current slot is a no-op rather than
	// a conflict.
	if err := s.Repo.Move(id, newDate, newStartTime, newEndTime, models.StatusRescheduled); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			return nil, newError(CodeSlotConflict, "slot %s on %s is already booked", newStartTime, newDate)
		}
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, newError(CodeNotFound, "appointment %s not found", id)
		}
		return nil, err
	}

	appt.Date = newDate
	appt.Time = newStartTime
	appt.Duration = newEndTime
	appt.Status = models.StatusRescheduled
	appt.SlotHeld = true

	utils.GetLogger().Info("appointment rescheduled",
		zap.String("appointmentID", id),
		zap.String("newDate", newDate),
		zap.String("newTime", newStartTime),
		zap.String("requesterRole", requesterRole))
	return appt, nil
}
