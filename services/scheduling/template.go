package scheduling

import (
	"errors"
	"sort"
	"time"

	scheduleRepo "clinicore/database/repository/schedule"
	"clinicore/models"
	"clinicore/utils"

	"go.uber.org/zap"
)

// GetTemplate returns the doctor's weekly template. When none has been
// persisted it falls back to the system default so read paths never fail for
// an unconfigured doctor; the default is not written back.
func (s *DefaultScheduleService) GetTemplate(doctorID string) (*models.Schedule, error) {
	schedule, err := s.Repo.GetByDoctorID(doctorID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrNotFound) {
			return defaultTemplate(doctorID), nil
		}
		return nil, err
	}
	return schedule, nil
}

// ReplaceTemplate swaps the doctor's day-schedule sequence wholesale. Days
// that remain working days keep their previously curated slot lists; only the
// structural fields are taken from the request. A day newly flipped to
// working without slots gets slots generated from the template defaults.
func (s *DefaultScheduleService) ReplaceTemplate(doctorID string, days []models.DaySchedule, requesterRole, requesterID string) (*models.Schedule, error) {
	if requesterRole != models.RoleAdmin && !(requesterRole == models.RoleDoctor && requesterID == doctorID) {
		return nil, newError(CodeUnauthorized, "not authorized to update this schedule")
	}
	if err := validateDays(days); err != nil {
		return nil, err
	}

	previous, err := s.GetTemplate(doctorID)
	if err != nil {
		return nil, err
	}

	updated := make([]models.DaySchedule, 0, len(days))
	for _, day := range days {
		next := models.DaySchedule{Day: day.Day, IsWorkingDay: day.IsWorkingDay, TimeSlots: []models.TimeSlot{}}
		if day.IsWorkingDay {
			prev := previous.DayFor(day.Day)
			switch {
			case prev != nil && prev.IsWorkingDay && len(prev.TimeSlots) > 0:
				next.TimeSlots = prev.TimeSlots
			case len(day.TimeSlots) > 0:
				next.TimeSlots = day.TimeSlots
			default:
				next.TimeSlots = generateSlots(defaultDayStart, defaultDayEnd, previous.DefaultSlotDuration, previous.BreakTime)
			}
		}
		updated = append(updated, next)
	}

	previous.DoctorID = doctorID
	previous.WeeklySchedule = updated
	previous.UpdatedAt = time.Now()

	if err := s.Repo.Upsert(previous); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("weekly schedule replaced",
		zap.String("doctorID", doctorID),
		zap.String("requesterRole", requesterRole))
	return previous, nil
}

// SetDaySlots replaces the slot list for a single weekday. Only the owning
// doctor may curate their own slots.
func (s *DefaultScheduleService) SetDaySlots(doctorID, day string, slots []models.TimeSlot, requesterID string) (*models.DaySchedule, error) {
	if requesterID != doctorID {
		return nil, newError(CodeUnauthorized, "only the owning doctor may update day slots")
	}
	if !models.IsWeekday(day) {
		return nil, newError(CodeValidation, "unknown weekday %q", day)
	}
	for _, slot := range slots {
		if err := slot.Validate(); err != nil {
			return nil, newError(CodeValidation, "invalid slot: %v", err)
		}
	}
	sorted := make([]models.TimeSlot, len(slots))
	copy(sorted, slots)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].StartTime < sorted[j].StartTime })

	schedule, err := s.GetTemplate(doctorID)
	if err != nil {
		return nil, err
	}

	ds := schedule.DayFor(day)
	if ds == nil {
		schedule.WeeklySchedule = append(schedule.WeeklySchedule, models.DaySchedule{Day: day})
		ds = &schedule.WeeklySchedule[len(schedule.WeeklySchedule)-1]
	}
	ds.IsWorkingDay = true
	ds.TimeSlots = sorted
	schedule.UpdatedAt = time.Now()

	if err := s.Repo.Upsert(schedule); err != nil {
		return nil, err
	}
	return ds, nil
}

// SetWorkingHours normalizes the flat {day,startTime,endTime} form into the
// unified weekly template: each listed day becomes a working day with slots
// generated from its window, every other day becomes non-working.
func (s *DefaultScheduleService) SetWorkingHours(doctorID string, entries []models.WorkingHours, requesterRole, requesterID string) (*models.Schedule, error) {
	if requesterRole != models.RoleAdmin && !(requesterRole == models.RoleDoctor && requesterID == doctorID) {
		return nil, newError(CodeUnauthorized, "not authorized to update this schedule")
	}

	windows := make(map[string]models.WorkingHours, len(entries))
	for _, entry := range entries {
		if !models.IsWeekday(entry.Day) {
			return nil, newError(CodeValidation, "unknown weekday %q", entry.Day)
		}
		slot := models.TimeSlot{StartTime: entry.StartTime, EndTime: entry.EndTime}
		if err := slot.Validate(); err != nil {
			return nil, newError(CodeValidation, "invalid working hours for %s: %v", entry.Day, err)
		}
		if _, dup := windows[entry.Day]; dup {
			return nil, newError(CodeValidation, "duplicate entry for %s", entry.Day)
		}
		windows[entry.Day] = entry
	}

	schedule, err := s.GetTemplate(doctorID)
	if err != nil {
		return nil, err
	}

	weekly := make([]models.DaySchedule, 0, len(models.Weekdays))
	for _, day := range models.Weekdays {
		ds := models.DaySchedule{Day: day, TimeSlots: []models.TimeSlot{}}
		if window, ok := windows[day]; ok {
			ds.IsWorkingDay = true
			ds.TimeSlots = generateSlots(window.StartTime, window.EndTime, schedule.DefaultSlotDuration, schedule.BreakTime)
		}
		weekly = append(weekly, ds)
	}

	schedule.DoctorID = doctorID
	schedule.WeeklySchedule = weekly
	schedule.UpdatedAt = time.Now()

	if err := s.Repo.Upsert(schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// validateDays checks weekday names, duplicates, and slot invariants for a
// replacement day-schedule sequence.
func validateDays(days []models.DaySchedule) error {
	seen := make(map[string]bool, len(days))
	for _, day := range days {
		if !models.IsWeekday(day.Day) {
			return newError(CodeValidation, "unknown weekday %q", day.Day)
		}
		if seen[day.Day] {
			return newError(CodeValidation, "duplicate day schedule for %s", day.Day)
		}
		seen[day.Day] = true
		for _, slot := range day.TimeSlots {
			if err := slot.Validate(); err != nil {
				return newError(CodeValidation, "invalid slot on %s: %v", day.Day, err)
			}
		}
	}
	return nil
}
