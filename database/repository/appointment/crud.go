package appointmentRepo

import (
	"errors"
	"fmt"
	"time"

	"clinicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new appointment document. The partial unique index on
// (doctorId, date, time) makes the insert an atomic claim: a racing duplicate
// is rejected by the server and surfaced as ErrSlotTaken. Nothing is written
// on failure.
func (r *MongoAppointmentRepo) Create(appt *models.Appointment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if appt.CreatedAt.IsZero() {
		appt.CreatedAt = time.Now()
	}
	appt.SlotHeld = appt.Status != models.StatusCancelled

	_, err := r.coll.InsertOne(ctx, appt)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

// GetByID retrieves an appointment by its unique ID.
func (r *MongoAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch appointment with id %s: %w", id, err)
	}
	return &appt, nil
}

// Move re-points an appointment at a new slot tuple. The same partial unique
// index that guards Create rejects the update when another slot-holding
// appointment already occupies the target, so a lost race leaves the
// document untouched and returns ErrSlotTaken.
func (r *MongoAppointmentRepo) Move(id, date, timeOfDay, duration string, status models.AppointmentStatus) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{
		"date":     date,
		"time":     timeOfDay,
		"duration": duration,
		"status":   status,
		"slotHeld": status != models.StatusCancelled,
	}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("failed to move appointment %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetStatus writes the status together with the derived slotHeld flag so the
// conflict invariant and the visible status never disagree.
func (r *MongoAppointmentRepo) SetStatus(id string, status models.AppointmentStatus, slotHeld bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"status": status, "slotHeld": slotHeld}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update status of appointment %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetNotes updates the free-text notes on an appointment.
func (r *MongoAppointmentRepo) SetNotes(id, notes string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"notes": notes}})
	if err != nil {
		return fmt.Errorf("failed to update notes of appointment %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
