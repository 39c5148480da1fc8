package appointmentRepo

import (
	"fmt"
	"time"

	"clinicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindHeldByDoctorAndDate returns the appointments still holding their slots
// for a doctor on a calendar date, ordered by start time.
func (r *MongoAppointmentRepo) FindHeldByDoctorAndDate(doctorID, date string) ([]models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"doctorId": doctorID, "date": date, "slotHeld": true}
	opts := options.Find().SetSort(bson.D{{Key: "time", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find held appointments for doctor %s on %s: %w", doctorID, date, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

// ListByPatient returns all of a patient's appointments ordered by date and
// start time.
func (r *MongoAppointmentRepo) ListByPatient(patientID string) ([]models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"patientId": patientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments for patient %s: %w", patientID, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

// ListByDoctorInRange returns a doctor's appointments with
// fromDate <= date < toDate. Dates are "YYYY-MM-DD" strings, so lexicographic
// comparison matches chronological order. An empty bound is unbounded.
func (r *MongoAppointmentRepo) ListByDoctorInRange(doctorID, fromDate, toDate string) ([]models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"doctorId": doctorID}
	dateCond := bson.M{}
	if fromDate != "" {
		dateCond["$gte"] = fromDate
	}
	if toDate != "" {
		dateCond["$lt"] = toDate
	}
	if len(dateCond) > 0 {
		filter["date"] = dateCond
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments for doctor %s: %w", doctorID, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}
