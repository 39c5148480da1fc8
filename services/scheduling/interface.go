package scheduling

import (
	appointmentRepo "clinicore/database/repository/appointment"
	scheduleRepo "clinicore/database/repository/schedule"
	"clinicore/models"
)

// ScheduleService manages doctors' weekly availability templates and resolves
// them into bookable slots for concrete dates.
type ScheduleService interface {
	// GetTemplate returns the doctor's template, falling back to the
	// unpersisted system default when none has been configured.
	GetTemplate(doctorID string) (*models.Schedule, error)
	// ReplaceTemplate swaps the weekly day-schedule sequence. Slot lists of
	// days that remain working days are preserved from the previous
	// template.
	ReplaceTemplate(doctorID string, days []models.DaySchedule, requesterRole, requesterID string) (*models.Schedule, error)
	// SetDaySlots replaces the slot list of a single weekday; owning doctor
	// only.
	SetDaySlots(doctorID, day string, slots []models.TimeSlot, requesterID string) (*models.DaySchedule, error)
	// SetWorkingHours accepts the flat {day,startTime,endTime} form and
	// normalizes it into a full weekly template with generated slots.
	SetWorkingHours(doctorID string, entries []models.WorkingHours, requesterRole, requesterID string) (*models.Schedule, error)

	// ResolveAvailableSlots derives the slots a caller may legally book for
	// the doctor on the given date. Recomputed on every call.
	ResolveAvailableSlots(doctorID, date string) ([]models.TimeSlot, error)
	// IsSlotBookable is membership of (start,end) in ResolveAvailableSlots.
	IsSlotBookable(doctorID, date, startTime, endTime string) (bool, error)
}

// AppointmentService is the booking ledger: it claims slots atomically and
// drives the appointment lifecycle. Every mutating call carries the
// already-authorized requester role and id.
type AppointmentService interface {
	Create(doctorID, patientID, date, startTime, endTime string) (*models.Appointment, error)
	Reschedule(id, newDate, newStartTime, newEndTime, requesterRole, requesterID string) (*models.Appointment, error)
	Cancel(id, requesterRole, requesterID string) (*models.Appointment, error)
	UpdateStatus(id string, newStatus models.AppointmentStatus, requesterRole, requesterID string) (*models.Appointment, error)
	UpdateNotes(id, notes, requesterRole, requesterID string) (*models.Appointment, error)

	GetByID(id, requesterRole, requesterID string) (*models.Appointment, error)
	ListForPatient(patientID string) ([]models.Appointment, error)
	ListForDoctor(doctorID, bucket string) ([]models.Appointment, error)
}

// DefaultScheduleService implements ScheduleService on top of the schedule
// and appointment repositories.
type DefaultScheduleService struct {
	Repo         scheduleRepo.ScheduleRepository
	Appointments appointmentRepo.AppointmentRepository
}

// DefaultAppointmentService implements AppointmentService. Slot legitimacy is
// checked against the schedule service; the atomic claim is delegated to the
// repository's uniqueness constraint.
type DefaultAppointmentService struct {
	Repo      appointmentRepo.AppointmentRepository
	Schedules ScheduleService
}
