package scheduleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinicore/database"
	"clinicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoScheduleRepo implements ScheduleRepository using MongoDB.
type MongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo creates a new instance of ScheduleRepository using MongoDB.
func NewMongoScheduleRepo() ScheduleRepository {
	coll := database.MongoClient.Database("clinicore").Collection("schedules")
	repo := &MongoScheduleRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create schedule indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes enforces one schedule document per doctor.
func (r *MongoScheduleRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "doctorId", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByDoctorID retrieves the schedule owned by the given doctor.
func (r *MongoScheduleRepo) GetByDoctorID(doctorID string) (*models.Schedule, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var schedule models.Schedule
	if err := r.coll.FindOne(ctx, bson.M{"doctorId": doctorID}).Decode(&schedule); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch schedule for doctor %s: %w", doctorID, err)
	}
	return &schedule, nil
}

// Upsert writes the full schedule document for its doctor.
func (r *MongoScheduleRepo) Upsert(schedule *models.Schedule) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	schedule.UpdatedAt = time.Now()
	filter := bson.M{"doctorId": schedule.DoctorID}
	update := bson.M{"$set": schedule}

	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert schedule for doctor %s: %w", schedule.DoctorID, err)
	}
	return nil
}

// Delete removes a doctor's schedule document.
func (r *MongoScheduleRepo) Delete(doctorID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"doctorId": doctorID})
	if err != nil {
		return fmt.Errorf("failed to delete schedule for doctor %s: %w", doctorID, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
