// FILE: database/repository/schedule/indexes.go
package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes on the timetable and rooms collections.
func (r *MongoScheduleRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	timetableIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "room", Value: 1}, {Key: "day", Value: 1}},
			Options: options.Index().SetName("room_day_idx"),
		},
	}
	if _, err := r.timetable.Indexes().CreateMany(ctx, timetableIndexes); err != nil {
		return fmt.Errorf("failed to create timetable indexes: %w", err)
	}

	roomIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "room", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_room"),
		},
	}
	if _, err := r.rooms.Indexes().CreateMany(ctx, roomIndexes); err != nil {
		return fmt.Errorf("failed to create rooms indexes: %w", err)
	}
	return nil
}
