package appointmentRepo

import (
	"errors"

	"clinicore/models"
)

var (
	// ErrNotFound is returned when no appointment matches the given id.
	ErrNotFound = errors.New("appointment not found")
	// ErrSlotTaken is returned when an insert or move loses the race for a
	// (doctor, date, time) tuple to another slot-holding appointment. It is
	// raised by the storage layer's uniqueness constraint, never by a
	// read-then-write check.
	ErrSlotTaken = errors.New("slot already taken")
)

// AppointmentRepository defines data access for the booking ledger. Create
// and Move are the atomic claim primitives: each performs the existence check
// and the write as one indivisible storage operation and reports a lost race
// as ErrSlotTaken.
type AppointmentRepository interface {
	Create(appt *models.Appointment) error
	GetByID(id string) (*models.Appointment, error)
	// Move atomically re-points an appointment at a new (date, time,
	// duration) tuple and records the new status.
	Move(id, date, timeOfDay, duration string, status models.AppointmentStatus) error
	// SetStatus writes the status and the derived slotHeld flag together.
	SetStatus(id string, status models.AppointmentStatus, slotHeld bool) error
	SetNotes(id, notes string) error

	// FindHeldByDoctorAndDate returns the appointments holding slots
	// (status != cancelled) for a doctor on a calendar date.
	FindHeldByDoctorAndDate(doctorID, date string) ([]models.Appointment, error)
	ListByPatient(patientID string) ([]models.Appointment, error)
	// ListByDoctorInRange returns a doctor's appointments with
	// fromDate <= date < toDate; an empty bound is unbounded on that side.
	ListByDoctorInRange(doctorID, fromDate, toDate string) ([]models.Appointment, error)
}
