package models

import "time"

// AppointmentStatus enumerates the appointment lifecycle states.
type AppointmentStatus string

const (
	StatusScheduled   AppointmentStatus = "scheduled"
	StatusUpcoming    AppointmentStatus = "upcoming"
	StatusRescheduled AppointmentStatus = "rescheduled"
	StatusCompleted   AppointmentStatus = "completed"
	StatusCancelled   AppointmentStatus = "cancelled"
)

// ParseAppointmentStatus validates a raw status string.
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case StatusScheduled, StatusUpcoming, StatusRescheduled, StatusCompleted, StatusCancelled:
		return AppointmentStatus(s), true
	}
	return "", false
}

// IsActive reports whether the status counts toward the slot conflict
// invariant.
func (s AppointmentStatus) IsActive() bool {
	switch s {
	case StatusScheduled, StatusUpcoming, StatusRescheduled:
		return true
	}
	return false
}

// IsTerminal reports whether the status permits no further transitions.
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// MaxNotesLength bounds the free-text notes on an appointment.
const MaxNotesLength = 500

// Appointment is a booked slot on a doctor's calendar. Doctor and patient ids
// are opaque references owned by the identity service. Time is the slot start
// and Duration the slot end, both "HH:MM", matching the schedule's slot
// encoding.
type Appointment struct {
	ID        string            `bson:"id" json:"id"`
	DoctorID  string            `bson:"doctorId" json:"doctorId"`
	PatientID string            `bson:"patientId" json:"patientId"`
	Date      string            `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time      string            `bson:"time" json:"time"`
	Duration  string            `bson:"duration" json:"duration"`
	Status    AppointmentStatus `bson:"status" json:"status"`
	Notes     string            `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time         `bson:"createdAt" json:"createdAt"`

	// SlotHeld mirrors Status != cancelled and backs the partial unique
	// index that prevents double booking. Only the ledger writes it.
	SlotHeld bool `bson:"slotHeld" json:"-"`
}

// DateValue parses the appointment's calendar date.
func (a *Appointment) DateValue() (time.Time, error) {
	return time.Parse("2006-01-02", a.Date)
}
