package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dias221467/HealthHabit/internal/models"
	"github.com/Dias221467/HealthHabit/pkg/logger"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore persists habits in the "habits" collection, one document per habit.
type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{collection: db.Collection("habits")}
}

// Load verifies the server is reachable; documents are read on demand.
func (r *MongoStore) Load(ctx context.Context) error {
	if err := r.collection.Database().Client().Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to reach MongoDB: %w", err)
	}
	return nil
}

func (r *MongoStore) List(ctx context.Context) ([]models.Habit, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch habits")
		return nil, fmt.Errorf("failed to fetch habits: %w", err)
	}
	defer cursor.Close(ctx)

	habits := []models.Habit{}
	if err := cursor.All(ctx, &habits); err != nil {
		return nil, fmt.Errorf("failed to decode habits: %w", err)
	}
	return habits, nil
}

func (r *MongoStore) Get(ctx context.Context, id uuid.UUID) (*models.Habit, error) {
	var habit models.Habit
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&habit)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrHabitNotFound
	}
	if err != nil {
		logger.Log.WithError(err).WithField("habit_id", id.String()).Error("Failed to find habit by ID")
		return nil, fmt.Errorf("failed to get habit: %w", err)
	}
	return &habit, nil
}

func (r *MongoStore) Save(ctx context.Context, habit models.Habit) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": habit.ID}, habit, opts); err != nil {
		logger.Log.WithError(err).WithField("habit_id", habit.ID.String()).Error("Failed to save habit")
		return fmt.Errorf("failed to save habit: %w", err)
	}
	return nil
}

func (r *MongoStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logger.Log.WithError(err).WithField("habit_id", id.String()).Error("Failed to delete habit")
		return false, fmt.Errorf("failed to delete habit: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoStore) Close() error {
	return r.collection.Database().Client().Disconnect(context.Background())
}
