package scheduling

import (
	"sort"
	"sync"
	"time"

	appointmentRepo "clinicore/database/repository/appointment"
	scheduleRepo "clinicore/database/repository/schedule"
	"clinicore/models"
)

// fakeScheduleRepo is an in-memory ScheduleRepository.
type fakeScheduleRepo struct {
	mu        sync.Mutex
	schedules map[string]*models.Schedule
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: make(map[string]*models.Schedule)}
}

func (f *fakeScheduleRepo) GetByDoctorID(doctorID string) (*models.Schedule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.schedules[doctorID]
	if !ok {
		return nil, scheduleRepo.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeScheduleRepo) Upsert(schedule *models.Schedule) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *schedule
	f.schedules[schedule.DoctorID] = &cp
	return nil
}

func (f *fakeScheduleRepo) Delete(doctorID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.schedules, doctorID)
	return nil
}

// fakeAppointmentRepo is an in-memory AppointmentRepository. Create and Move
// enforce the same single-holder constraint as the storage index, under one
// mutex, so concurrent claims race the way they do against the database.
type fakeAppointmentRepo struct {
	mu    sync.Mutex
	appts map[string]*models.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appts: make(map[string]*models.Appointment)}
}

// slotHeldBy reports whether an appointment other than excludeID holds the
// (doctor, date, time) tuple.
func (f *fakeAppointmentRepo) slotHeldBy(excludeID, doctorID, date, timeOfDay string) bool {
	for _, a := range f.appts {
		if a.ID == excludeID {
			continue
		}
		if a.SlotHeld && a.DoctorID == doctorID && a.Date == date && a.Time == timeOfDay {
			return true
		}
	}
	return false
}

func (f *fakeAppointmentRepo) Create(appt *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	appt.SlotHeld = appt.Status != models.StatusCancelled
	if appt.CreatedAt.IsZero() {
		appt.CreatedAt = time.Now()
	}
	if appt.SlotHeld && f.slotHeldBy(appt.ID, appt.DoctorID, appt.Date, appt.Time) {
		return appointmentRepo.ErrSlotTaken
	}
	cp := *appt
	f.appts[appt.ID] = &cp
	return nil
}

func (f *fakeAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.appts[id]
	if !ok {
		return nil, appointmentRepo.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAppointmentRepo) Move(id, date, timeOfDay, duration string, status models.AppointmentStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.appts[id]
	if !ok {
		return appointmentRepo.ErrNotFound
	}
	if f.slotHeldBy(id, a.DoctorID, date, timeOfDay) {
		return appointmentRepo.ErrSlotTaken
	}
	a.Date = date
	a.Time = timeOfDay
	a.Duration = duration
	a.Status = status
	a.SlotHeld = status != models.StatusCancelled
	return nil
}

func (f *fakeAppointmentRepo) SetStatus(id string, status models.AppointmentStatus, slotHeld bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.appts[id]
	if !ok {
		return appointmentRepo.ErrNotFound
	}
	a.Status = status
	a.SlotHeld = slotHeld
	return nil
}

func (f *fakeAppointmentRepo) SetNotes(id, notes string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.appts[id]
	if !ok {
		return appointmentRepo.ErrNotFound
	}
	a.Notes = notes
	return nil
}

func (f *fakeAppointmentRepo) FindHeldByDoctorAndDate(doctorID, date string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.appts {
		if a.SlotHeld && a.DoctorID == doctorID && a.Date == date {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out, nil
}

func (f *fakeAppointmentRepo) ListByPatient(patientID string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.appts {
		if a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

func (f *fakeAppointmentRepo) ListByDoctorInRange(doctorID, fromDate, toDate string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.appts {
		if a.DoctorID != doctorID {
			continue
		}
		if fromDate != "" && a.Date < fromDate {
			continue
		}
		if toDate != "" && a.Date >= toDate {
			continue
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

// newTestServices wires the engine onto fresh in-memory repositories.
func newTestServices() (*DefaultScheduleService, *DefaultAppointmentService, *fakeScheduleRepo, *fakeAppointmentRepo) {
	sRepo := newFakeScheduleRepo()
	aRepo := newFakeAppointmentRepo()
	scheduleSvc := &DefaultScheduleService{Repo: sRepo, Appointments: aRepo}
	appointmentSvc := &DefaultAppointmentService{Repo: aRepo, Schedules: scheduleSvc}
	return scheduleSvc, appointmentSvc, sRepo, aRepo
}

// upcomingDate returns the first date strictly after today that falls on the
// given weekday, in "YYYY-MM-DD" form.
func upcomingDate(day time.Weekday) string {
	d := time.Now().AddDate(0, 0, 1)
	for d.Weekday() != day {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

// pastDate returns the most recent date strictly before today that falls on
// the given weekday.
func pastDate(day time.Weekday) string {
	d := time.Now().AddDate(0, 0, -1)
	for d.Weekday() != day {
		d = d.AddDate(0, 0, -1)
	}
	return d.Format("2006-01-02")
}
