package scheduling

import (
	"time"

	"clinicore/models"
)

// ResolveAvailableSlots derives the exact set of slots a caller may legally
// book for the doctor on the given date: the configured slots of that
// weekday, filtered to offered ones, minus slots consumed by appointments
// still holding them. The result is recomputed on every call because
// bookings race; an empty result is a normal outcome, not an error.
func (s *DefaultScheduleService) ResolveAvailableSlots(doctorID, date string) ([]models.TimeSlot, error) {
	weekday, err := weekdayOf(date)
	if err != nil {
		return nil, err
	}

	schedule, err := s.GetTemplate(doctorID)
	if err != nil {
		return nil, err
	}
	day := schedule.DayFor(weekday)
	if day == nil || !day.IsWorkingDay {
		return []models.TimeSlot{}, nil
	}

	held, err := s.Appointments.FindHeldByDoctorAndDate(doctorID, date)
	if err != nil {
		return nil, err
	}
	taken := make(map[[2]string]bool, len(held))
	for _, appt := range held {
		taken[[2]string{appt.Time, appt.Duration}] = true
	}

	available := []models.TimeSlot{}
	for _, slot := range day.TimeSlots {
		if !slot.IsAvailable {
			continue
		}
		if taken[[2]string{slot.StartTime, slot.EndTime}] {
			continue
		}
		available = append(available, slot)
	}
	return available, nil
}

// IsSlotBookable tests membership of (startTime, endTime) in
// ResolveAvailableSlots.
func (s *DefaultScheduleService) IsSlotBookable(doctorID, date, startTime, endTime string) (bool, error) {
	slots, err := s.ResolveAvailableSlots(doctorID, date)
	if err != nil {
		return false, err
	}
	for _, slot := range slots {
		if slot.StartTime == startTime && slot.EndTime == endTime {
			return true, nil
		}
	}
	return false, nil
}

// weekdayOf maps a "YYYY-MM-DD" date to its weekday name.
func weekdayOf(date string) (string, error) {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", newError(CodeValidation, "invalid date %q, expected YYYY-MM-DD", date)
	}
	return parsed.Weekday().String(), nil
}
