package models

import (
	"fmt"
	"time"
)

// Weekdays lists the seven weekday names in calendar order, matching the
// values stored in DaySchedule.Day.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// TimeSlot represents a single bookable window on a working day.
// Times are wall-clock values in 24-hour "HH:MM" form.
type TimeSlot struct {
	StartTime   string `bson:"startTime" json:"startTime"`
	EndTime     string `bson:"endTime" json:"endTime"`
	IsAvailable bool   `bson:"isAvailable" json:"isAvailable"` // offered-but-withdrawn slots stay stored with false
}

// Validate checks the HH:MM encoding of both bounds and that the slot has
// positive length.
func (ts TimeSlot) Validate() error {
	start, err := ParseClock(ts.StartTime)
	if err != nil {
		return fmt.Errorf("invalid startTime %q: %w", ts.StartTime, err)
	}
	end, err := ParseClock(ts.EndTime)
	if err != nil {
		return fmt.Errorf("invalid endTime %q: %w", ts.EndTime, err)
	}
	if start >= end {
		return fmt.Errorf("startTime %s must be before endTime %s", ts.StartTime, ts.EndTime)
	}
	return nil
}

// DaySchedule holds the slot sequence for a single weekday within a doctor's
// weekly template. A non-working day may retain stale slots in storage but
// must never surface them.
type DaySchedule struct {
	Day          string     `bson:"day" json:"day"`
	IsWorkingDay bool       `bson:"isWorkingDay" json:"isWorkingDay"`
	TimeSlots    []TimeSlot `bson:"timeSlots" json:"timeSlots"`
}

// BreakWindow is the daily break during which no slots are generated.
type BreakWindow struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// Schedule is a doctor's recurring weekly availability template. It is owned
// by exactly one doctor and replaced wholesale on edits.
type Schedule struct {
	DoctorID            string        `bson:"doctorId" json:"doctorId"`
	WeeklySchedule      []DaySchedule `bson:"weeklySchedule" json:"weeklySchedule"`
	DefaultSlotDuration int           `bson:"defaultSlotDuration" json:"defaultSlotDuration"` // minutes
	BreakTime           BreakWindow   `bson:"breakTime" json:"breakTime"`
	EffectiveFrom       time.Time     `bson:"effectiveFrom" json:"effectiveFrom"`
	UpdatedAt           time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// DayFor returns the schedule entry for the named weekday, or nil if the
// template has no entry for it.
func (s *Schedule) DayFor(day string) *DaySchedule {
	for i := range s.WeeklySchedule {
		if s.WeeklySchedule[i].Day == day {
			return &s.WeeklySchedule[i]
		}
	}
	return nil
}

// WorkingHours is the flat {day,startTime,endTime} shape used by the
// doctor-facing schedule update flow. It is normalized into a DaySchedule at
// the template store boundary.
type WorkingHours struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// IsWeekday reports whether day is one of the seven weekday names.
func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// ParseClock converts a strict "HH:MM" string (hour 00-23, minute 00-59) to
// minutes from midnight.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("expected HH:MM")
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("expected HH:MM")
		}
	}
	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	minute := int(s[3]-'0')*10 + int(s[4]-'0')
	if hour > 23 {
		return 0, fmt.Errorf("hour out of range")
	}
	if minute > 59 {
		return 0, fmt.Errorf("minute out of range")
	}
	return hour*60 + minute, nil
}

// FormatClock renders minutes from midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
