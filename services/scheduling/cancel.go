package scheduling

import (
	"time"

	"clinicore/models"
	"clinicore/utils"

	"go.uber.org/zap"
)

// Cancel terminates an appointment and releases its slot immediately for
// future availability resolution. Patients may cancel only their own, not yet
// past appointments; doctors their assigned ones; administrators any.
func (s *DefaultAppointmentService) Cancel(id, requesterRole, requesterID string) (*models.Appointment, error) {
	appt, err := s.getExisting(id)
	if err != nil {
		return nil, err
	}

	switch requesterRole {
	case models.RoleAdmin:
	case models.RoleDoctor:
		if appt.DoctorID != requesterID {
			return nil, newError(CodeUnauthorized, "not authorized to cancel this appointment")
		}
	case models.RolePatient:
		if appt.PatientID != requesterID {
			return nil, newError(CodeUnauthorized, "not authorized to cancel this appointment")
		}
		if isPastDate(appt.Date, time.Now()) {
			return nil, newError(CodePastDate, "cannot cancel an appointment dated in the past")
		}
	default:
		return nil, newError(CodeUnauthorized, "unknown requester role %q", requesterRole)
	}

	if !CanTransition(appt.Status, models.StatusCancelled) {
		return nil, newError(CodeInvalidTransition, "cannot cancel a %s appointment", appt.Status)
	}

	if err := s.Repo.SetStatus(id, models.StatusCancelled, false); err != nil {
		return nil, err
	}
	appt.Status = models.StatusCancelled
	appt.SlotHeld = false

	utils.GetLogger().Info("appointment cancelled",
		zap.String("appointmentID", id),
		zap.String("requesterRole", requesterRole))
	return appt, nil
}
