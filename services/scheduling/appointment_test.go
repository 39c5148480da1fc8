package scheduling

import (
	"strings"
	"testing"
	"time"

	"clinicore/models"
)

func seedAppointment(t *testing.T, repo *fakeAppointmentRepo, appt models.Appointment) *models.Appointment {
	t.Helper()
	if err := repo.Create(&appt); err != nil {
		t.Fatalf("seed appointment: %v", err)
	}
	return &appt
}

func TestRescheduleMovesAppointment(t *testing.T) {
	_, svc, _, aRepo := newTestServices()
	date := upcomingDate(time.Monday)

	appt, err := svc.Create("doc-1", "pat-1", date, "09:00", "09:30")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	moved, err := svc.Reschedule(appt.ID, date, "10:00", "10:30", models.RolePatient, "pat-1")
	if err != nil {
		t.Fatalf("Reschedule: %v", err)
	}
	if moved.Time != "10:00" || moved.Duration != "10:30" {
		t.Errorf("slot not moved: %+v", moved)
	}
	if moved.Status != models.StatusRescheduled {
		t.Errorf("status = %s, want rescheduled", moved.Status)
	}

	stored, _ := aRepo.GetByID(appt.ID)
	if stored.Time != "10:00" || stored.Status != models.StatusRescheduled || !stored.SlotHeld {
		t.Errorf("persisted state mismatch: %+v", stored)
	}
}

func TestRescheduleConflictLeavesOriginalUntouched(t *testing.T) {
	_, svc, _, aRepo := newTestServices()
	date := upcomingDate(time.Monday)

	if _, err := svc.Create("doc-1", "pat-1", date, "09:00", "09:30"); err != nil {
		t.Fatalf("Create first: %v", err)
	}
	second, err := svc.Create("doc-1", "pat-2", date, "10:00", "10:30")
	if err != nil {
		t.Fatalf("Create second: %v", err)
	}

	_, err = svc.Reschedule(second.ID, date, "09:00", "09:30", models.RolePatient, "pat-2")
	if CodeOf(err) != CodeSlotConflict {
		t.Fatalf("expected slotConflict, got %v", err)
	}

	stored, _ := aRepo.GetByID(second.ID)
	if stored.Time != "10:00" || stored.Status != models.StatusScheduled {
		t.Errorf("losing reschedule must leave the original untouched: %+v", stored)
	}
}

func TestRescheduleOntoOwnSlot(t *testing.T) {
	_, svc, _, _ := newTestServices()
	date := upcomingDate(time.Monday)

	appt, err := svc.Create("doc-1", "pat-1", date, "09:00", "09:30")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	// The appointment does not conflict with itself.
	if _, err := svc.Reschedule(appt.ID, date, "09:00", "09:30", models.RolePatient, "pat-1"); err != nil {
		t.Errorf("rescheduling onto own slot: %v", err)
	}
}

func TestRescheduleAuthorization(t *testing.T) {
	_, svc, _, _ := newTestServices()
	date := upcomingDate(time.Monday)

	appt, err := svc.Create("doc-1", "pat-1", date, "09:00", "09:30")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	tests := []struct {
		name     string
		role     string
		id       string
		wantCode string
	}{
		{"other patient", models.RolePatient, "pat-2", CodeUnauthorized},
		{"other doctor", models.RoleDoctor, "doc-2", CodeUnauthorized},
		{"unknown role", "auditor", "x", CodeUnauthorized},
		{"assigned doctor", models.RoleDoctor, "doc-1", ""},
		{"admin", models.RoleAdmin, "admin-1", ""},
	}
	for _, tt := range tests {
		_, err := svc.Reschedule(appt.ID, date, "10:00", "10:30", tt.role, tt.id)
		if got := CodeOf(err); got != tt.wantCode {
			t.Errorf("%s: code = %q, want %q (err: %v)", tt.name, got, tt.wantCode, err)
		}
	}
}

func TestReschedulePastAppointmentByPatient(t *testing.T) {
	_, svc, _, aRepo := newTestServices()

	appt := seedAppointment(t, aRepo, models.Appointment{
		ID:        "appt-past",
		DoctorID:  "doc-1",
		PatientID: "pat-1",
		Date:      pastDate(time.Monday),
		Time:      "09:00",
		Duration:  "09:30",
		Status:    models.StatusScheduled,
	})

	_, err := svc.Reschedule(appt.ID, upcomingDate(time.Monday), "09:00", "09:30", models.RolePatient, "pat-1")
	if CodeOf(err) != CodePastDate {
		t.Errorf("patient moving a past appointment: expected pastDate, got %v", err)
	}

	// Administrators are not bound by the past-date guard.
	if _, err := svc.Reschedule(appt.ID, upcomingDate(time.Monday), "09:00", "09:30", models.RoleAdmin, "admin-1"); err != nil {
		t.Errorf("admin moving a past appointment: %v", err)
	}
}

func TestRescheduleTerminalAppointment(t *testing.T) {
	_, svc, _, _ := newTestServices()
	date := upcomingDate(time.Monday)

	appt, err := svc.Create("doc-1", "pat-1", date, "09:00", "09:30")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Cancel(appt.ID, models.RolePatient, "pat-1"); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	_, err = svc.Reschedule(appt.ID, date, "10:00", "10:30", models.RolePatient, "pat-1")
	if CodeOf(err) != CodeInvalidTransition {
		t.Errorf("expected invalidTransition, got %v", err)
	}
}

func TestCancelReleasesSlot(t *testing.T) {
	_, svc, _, aRepo := newTestServices()
	date := upcomingDate(time.Monday)

	appt, err := svc.Create("doc-1", "pat-1", date, "09:00", "09:30")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	cancelled, err := svc.Cancel(appt.ID, models.RolePatient, "pat-1")
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if cancelled.Status != models.StatusCancelled {
		t.Errorf("status = %s, want cancelled", cancelled.Status)
	}
	stored, _ := aRepo.GetByID(appt.ID)
	if stored.SlotHeld {
		t.Error("cancelled appointment must not hold its slot")
	}

	// Cancelling again is an invalid transition.
	if _, err := svc.Cancel(appt.ID, models.RolePatient, "pat-1"); CodeOf(err) != CodeInvalidTransition {
		t.Errorf("double cancel: expected invalidTransition, got %v", err)
	}
}

func TestCancelPastAppointmentByPatient(t *testing.T) {
	_, svc, _, aRepo := newTestServices()

	appt := seedAppointment(t, aRepo, models.Appointment{
		ID:        "appt-past",
		DoctorID:  "doc-1",
		PatientID: "pat-1",
		Date:      pastDate(time.Tuesday),
		Time:      "09:00",
		Duration:  "09:30",
		Status:    models.StatusScheduled,
	})

	if _, err := svc.Cancel(appt.ID, models.RolePatient, "pat-1"); CodeOf(err) != CodePastDate {
		t.Errorf("expected pastDate, got %v", err)
	}
	if _, err := svc.Cancel(appt.ID, models.RoleDoctor, "doc-1"); err != nil {
		t.Errorf("doctor cancelling a past appointment: %v", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	_, svc, _, aRepo := newTestServices()
	date := upcomingDate(time.Monday)

	appt, err := svc.Create("doc-1", "pat-1", date, "09:00", "09:30")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.UpdateStatus(appt.ID, "booked", models.RoleDoctor, "doc-1"); CodeOf(err) != CodeValidation {
		t.Errorf("unknown status: expected validation error, got %v", err)
	}
	if _, err := svc.UpdateStatus(appt.ID, models.StatusCompleted, models.RolePatient, "pat-1"); CodeOf(err) != CodeUnauthorized {
		t.Errorf("patient: expected unauthorized, got %v", err)
	}

	updated, err := svc.UpdateStatus(appt.ID, models.StatusCompleted, models.RoleDoctor, "doc-1")
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != models.StatusCompleted || !updated.SlotHeld {
		t.Errorf("completed appointment: %+v", updated)
	}

	if _, err := svc.UpdateStatus(appt.ID, models.StatusScheduled, models.RoleAdmin, "admin-1"); CodeOf(err) != CodeInvalidTransition {
		t.Errorf("reviving a completed appointment: expected invalidTransition, got %v", err)
	}

	stored, _ := aRepo.GetByID(appt.ID)
	if stored.Status != models.StatusCompleted {
		t.Errorf("persisted status = %s", stored.Status)
	}
}

func TestUpdateNotes(t *testing.T) {
	_, svc, _, _ := newTestServices()
	date := upcomingDate(time.Monday)

	appt, err := svc.Create("doc-1", "pat-1", date, "09:00", "09:30")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.UpdateNotes(appt.ID, "follow-up in two weeks", models.RoleDoctor, "doc-1")
	if err != nil {
		t.Fatalf("UpdateNotes: %v", err)
	}
	if updated.Notes != "follow-up in two weeks" {
		t.Errorf("notes = %q", updated.Notes)
	}

	long := strings.Repeat("x", models.MaxNotesLength+1)
	if _, err := svc.UpdateNotes(appt.ID, long, models.RoleDoctor, "doc-1"); CodeOf(err) != CodeValidation {
		t.Errorf("oversized notes: expected validation error, got %v", err)
	}
	if _, err := svc.UpdateNotes(appt.ID, "n", models.RolePatient, "pat-1"); CodeOf(err) != CodeUnauthorized {
		t.Errorf("patient notes: expected unauthorized, got %v", err)
	}
}

func TestGetByIDVisibility(t *testing.T) {
	_, svc, _, _ := newTestServices()
	date := upcomingDate(time.Monday)

	appt, err := svc.Create("doc-1", "pat-1", date, "09:00", "09:30")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	tests := []struct {
		name     string
		role     string
		id       string
		wantCode string
	}{
		{"admin", models.RoleAdmin, "admin-1", ""},
		{"assigned doctor", models.RoleDoctor, "doc-1", ""},
		{"owning patient", models.RolePatient, "pat-1", ""},
		{"other doctor", models.RoleDoctor, "doc-2", CodeUnauthorized},
		{"other patient", models.RolePatient, "pat-2", CodeUnauthorized},
	}
	for _, tt := range tests {
		_, err := svc.GetByID(appt.ID, tt.role, tt.id)
		if got := CodeOf(err); got != tt.wantCode {
			t.Errorf("%s: code = %q, want %q", tt.name, got, tt.wantCode)
		}
	}

	if _, err := svc.GetByID("missing", models.RoleAdmin, "admin-1"); CodeOf(err) != CodeNotFound {
		t.Errorf("missing id: expected notFound, got %v", err)
	}
}

func TestListForDoctorBuckets(t *testing.T) {
	_, svc, _, aRepo := newTestServices()

	now := time.Now()
	today := now.Format("2006-01-02")
	future := now.AddDate(0, 0, 7).Format("2006-01-02")
	past := now.AddDate(0, 0, -7).Format("2006-01-02")

	seedAppointment(t, aRepo, models.Appointment{ID: "a-today", DoctorID: "doc-1", PatientID: "pat-1", Date: today, Time: "09:00", Duration: "09:30", Status: models.StatusScheduled})
	seedAppointment(t, aRepo, models.Appointment{ID: "a-future", DoctorID: "doc-1", PatientID: "pat-1", Date: future, Time: "09:00", Duration: "09:30", Status: models.StatusScheduled})
	seedAppointment(t, aRepo, models.Appointment{ID: "a-past", DoctorID: "doc-1", PatientID: "pat-2", Date: past, Time: "09:00", Duration: "09:30", Status: models.StatusCompleted})
	seedAppointment(t, aRepo, models.Appointment{ID: "a-other", DoctorID: "doc-2", PatientID: "pat-1", Date: today, Time: "09:00", Duration: "09:30", Status: models.StatusScheduled})

	tests := []struct {
		bucket string
		wantID string
	}{
		{BucketToday, "a-today"},
		{BucketUpcoming, "a-future"},
		{BucketPast, "a-past"},
	}
	for _, tt := range tests {
		got, err := svc.ListForDoctor("doc-1", tt.bucket)
		if err != nil {
			t.Fatalf("ListForDoctor(%s): %v", tt.bucket, err)
		}
		if len(got) != 1 || got[0].ID != tt.wantID {
			t.Errorf("bucket %s: got %+v, want single %s", tt.bucket, got, tt.wantID)
		}
	}

	if _, err := svc.ListForDoctor("doc-1", "someday"); CodeOf(err) != CodeValidation {
		t.Errorf("unknown bucket: expected validation error, got %v", err)
	}
}

func TestListForPatient(t *testing.T) {
	_, svc, _, aRepo := newTestServices()
	date := upcomingDate(time.Thursday)

	seedAppointment(t, aRepo, models.Appointment{ID: "b", DoctorID: "doc-1", PatientID: "pat-1", Date: date, Time: "11:00", Duration: "11:30", Status: models.StatusScheduled})
	seedAppointment(t, aRepo, models.Appointment{ID: "a", DoctorID: "doc-2", PatientID: "pat-1", Date: date, Time: "09:00", Duration: "09:30", Status: models.StatusScheduled})
	seedAppointment(t, aRepo, models.Appointment{ID: "c", DoctorID: "doc-1", PatientID: "pat-2", Date: date, Time: "10:00", Duration: "10:30", Status: models.StatusScheduled})

	got, err := svc.ListForPatient("pat-1")
	if err != nil {
		t.Fatalf("ListForPatient: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("expected [a b] ordered by time, got %+v", got)
	}
}
