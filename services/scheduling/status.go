package scheduling

import (
	"clinicore/models"
	"clinicore/utils"

	"go.uber.org/zap"
)

// UpdateStatus applies an administrative status change, validated against the
// lifecycle state machine. Administrator or the assigned doctor only.
func (s *DefaultAppointmentService) UpdateStatus(id string, newStatus models.AppointmentStatus, requesterRole, requesterID string) (*models.Appointment, error) {
	if _, ok := models.ParseAppointmentStatus(string(newStatus)); !ok {
		return nil, newError(CodeValidation, "unknown status %q", newStatus)
	}

	appt, err := s.getExisting(id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeClinical(appt, requesterRole, requesterID); err != nil {
		return nil, err
	}

	if !CanTransition(appt.Status, newStatus) {
		return nil, newError(CodeInvalidTransition, "cannot transition from %s to %s", appt.Status, newStatus)
	}

	slotHeld := newStatus != models.StatusCancelled
	if err := s.Repo.SetStatus(id, newStatus, slotHeld); err != nil {
		return nil, err
	}
	appt.Status = newStatus
	appt.SlotHeld = slotHeld

	utils.GetLogger().Info("appointment status updated",
		zap.String("appointmentID", id),
		zap.String("status", string(newStatus)))
	return appt, nil
}

// UpdateNotes replaces the appointment's free-text notes. No lifecycle
// constraint applies.
func (s *DefaultAppointmentService) UpdateNotes(id, notes, requesterRole, requesterID string) (*models.Appointment, error) {
	if len(notes) > models.MaxNotesLength {
		return nil, newError(CodeValidation, "notes exceed %d characters", models.MaxNotesLength)
	}

	appt, err := s.getExisting(id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeClinical(appt, requesterRole, requesterID); err != nil {
		return nil, err
	}

	if err := s.Repo.SetNotes(id, notes); err != nil {
		return nil, err
	}
	appt.Notes = notes
	return appt, nil
}

// authorizeClinical admits administrators and the assigned doctor.
func (s *DefaultAppointmentService) authorizeClinical(appt *models.Appointment, requesterRole, requesterID string) error {
	if requesterRole == models.RoleAdmin {
		return nil
	}
	if requesterRole == models.RoleDoctor && appt.DoctorID == requesterID {
		return nil
	}
	return newError(CodeUnauthorized, "not authorized to modify this appointment")
}
