package scheduling

import "clinicore/models"

// CanTransition reports whether an appointment may move from one status to
// another. Active appointments (scheduled, upcoming, rescheduled) may be
// completed, cancelled, rescheduled, or administratively corrected to any
// other active status. Completed and cancelled are terminal.
func CanTransition(from, to models.AppointmentStatus) bool {
	if from.IsTerminal() {
		return false
	}
	switch to {
	case models.StatusCompleted, models.StatusCancelled:
		return from.IsActive()
	case models.StatusScheduled, models.StatusUpcoming, models.StatusRescheduled:
		return from.IsActive()
	}
	return false
}
