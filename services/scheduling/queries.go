package scheduling

import (
	"errors"
	"time"

	appointmentRepo "clinicore/database/repository/appointment"
	"clinicore/models"
)

// Doctor listing buckets.
const (
	BucketToday    = "today"
	BucketUpcoming = "upcoming"
	BucketPast     = "past"
)

// getExisting fetches an appointment, translating the repository's not-found
// sentinel into the engine taxonomy.
func (s *DefaultAppointmentService) getExisting(id string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, newError(CodeNotFound, "appointment %s not found", id)
		}
		return nil, err
	}
	return appt, nil
}

// GetByID returns an appointment visible to the requester: administrators see
// any, doctors their assigned ones, patients their own.
func (s *DefaultAppointmentService) GetByID(id, requesterRole, requesterID string) (*models.Appointment, error) {
	appt, err := s.getExisting(id)
	if err != nil {
		return nil, err
	}
	switch requesterRole {
	case models.RoleAdmin:
	case models.RoleDoctor:
		if appt.DoctorID != requesterID {
			return nil, newError(CodeUnauthorized, "not authorized to view this appointment")
		}
	case models.RolePatient:
		if appt.PatientID != requesterID {
			return nil, newError(CodeUnauthorized, "not authorized to view this appointment")
		}
	default:
		return nil, newError(CodeUnauthorized, "unknown requester role %q", requesterRole)
	}
	return appt, nil
}

// ListForPatient returns a patient's appointments ordered by date and time.
func (s *DefaultAppointmentService) ListForPatient(patientID string) ([]models.Appointment, error) {
	return s.Repo.ListByPatient(patientID)
}

// ListForDoctor returns a doctor's appointments in one of the today,
// upcoming, or past buckets.
func (s *DefaultAppointmentService) ListForDoctor(doctorID, bucket string) ([]models.Appointment, error) {
	now := time.Now()
	today := now.Format("2006-01-02")
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")

	switch bucket {
	case BucketToday:
		return s.Repo.ListByDoctorInRange(doctorID, today, tomorrow)
	case BucketUpcoming:
		return s.Repo.ListByDoctorInRange(doctorID, tomorrow, "")
	case BucketPast:
		return s.Repo.ListByDoctorInRange(doctorID, "", today)
	default:
		return nil, newError(CodeValidation, "unknown appointment bucket %q", bucket)
	}
}
