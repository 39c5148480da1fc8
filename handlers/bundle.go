package handlers

// HandlerBundle aggregates the handlers wired in main and consumed by the
// route registrar.
type HandlerBundle struct {
	Schedule    *ScheduleHandler
	Appointment *AppointmentHandler
}
