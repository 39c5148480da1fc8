package scheduleRepo

import (
	"errors"

	"clinicore/models"
)

// ErrNotFound is returned when a doctor has no persisted schedule.
var ErrNotFound = errors.New("schedule not found")

// ScheduleRepository defines data access for doctors' weekly availability
// templates. The template store service is the only writer.
type ScheduleRepository interface {
	// GetByDoctorID retrieves the schedule owned by the given doctor, or
	// ErrNotFound if none has been persisted.
	GetByDoctorID(doctorID string) (*models.Schedule, error)
	// Upsert writes the full schedule document for its doctor, creating it
	// if absent.
	Upsert(schedule *models.Schedule) error
	// Delete removes a doctor's schedule; used only when the doctor is
	// removed.
	Delete(doctorID string) error
}
