package scheduling

import (
	"time"

	"clinicore/models"
)

// System defaults applied when a doctor has never configured a template.
const (
	defaultSlotDuration = 30
	defaultDayStart     = "09:00"
	defaultDayEnd       = "17:00"
	defaultFridayEnd    = "15:00"
	defaultBreakStart   = "13:00"
	defaultBreakEnd     = "14:00"
)

// defaultTemplate builds the Monday-Friday business-hours template returned
// for doctors without a persisted schedule. It is never persisted by read
// paths.
func defaultTemplate(doctorID string) *models.Schedule {
	now := time.Now()
	schedule := &models.Schedule{
		DoctorID:            doctorID,
		DefaultSlotDuration: defaultSlotDuration,
		BreakTime:           models.BreakWindow{Start: defaultBreakStart, End: defaultBreakEnd},
		EffectiveFrom:       now,
		UpdatedAt:           now,
	}
	for _, day := range models.Weekdays {
		ds := models.DaySchedule{Day: day, TimeSlots: []models.TimeSlot{}}
		switch day {
		case "Saturday", "Sunday":
			// not working days
		case "Friday":
			ds.IsWorkingDay = true
			ds.TimeSlots = generateSlots(defaultDayStart, defaultFridayEnd, defaultSlotDuration, schedule.BreakTime)
		default:
			ds.IsWorkingDay = true
			ds.TimeSlots = generateSlots(defaultDayStart, defaultDayEnd, defaultSlotDuration, schedule.BreakTime)
		}
		schedule.WeeklySchedule = append(schedule.WeeklySchedule, ds)
	}
	return schedule
}

// generateSlots carves the window [start, end) into consecutive slots of the
// given duration, skipping any slot that overlaps the break window. Invalid
// bounds yield no slots.
func generateSlots(start, end string, duration int, brk models.BreakWindow) []models.TimeSlot {
	startMin, err := models.ParseClock(start)
	if err != nil {
		return nil
	}
	endMin, err := models.ParseClock(end)
	if err != nil {
		return nil
	}
	if duration < 5 {
		duration = defaultSlotDuration
	}

	breakStart, err := models.ParseClock(brk.Start)
	if err != nil {
		breakStart = -1
	}
	breakEnd, err := models.ParseClock(brk.End)
	if err != nil {
		breakEnd = -1
	}

	var slots []models.TimeSlot
	for cur := startMin; cur+duration <= endMin; cur += duration {
		slotEnd := cur + duration
		if breakStart >= 0 && breakEnd > breakStart && cur < breakEnd && slotEnd > breakStart {
			continue
		}
		slots = append(slots, models.TimeSlot{
			StartTime:   models.FormatClock(cur),
			EndTime:     models.FormatClock(slotEnd),
			IsAvailable: true,
		})
	}
	return slots
}
