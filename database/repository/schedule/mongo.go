package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"roomfinder/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoScheduleRepo reads the timetable and rooms from MongoDB.
type MongoScheduleRepo struct {
	timetable *mongo.Collection
	rooms     *mongo.Collection
}

// NewMongoScheduleRepo constructs a ScheduleRepository backed by the "timetable" and "rooms" collections.
func NewMongoScheduleRepo(db *mongo.Database) *MongoScheduleRepo {
	return &MongoScheduleRepo{
		timetable: db.Collection("timetable"),
		rooms:     db.Collection("rooms"),
	}
}

func (r *MongoScheduleRepo) LoadSchedule(ctx context.Context) ([]models.ScheduleRow, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "room", Value: 1}, {Key: "day", Value: 1}})
	cursor, err := r.timetable.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch timetable: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []models.ScheduleRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding timetable: %w", err)
	}
	return rows, nil
}

func (r *MongoScheduleRepo) LoadRooms(ctx context.Context) ([]models.RoomRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.rooms.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.RoomRecord
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("error decoding rooms: %w", err)
	}
	if len(rooms) == 0 {
		return nil, fmt.Errorf("rooms: %w", ErrEmptySource)
	}
	return rooms, nil
}

// ReplaceAll swaps the stored timetable and rooms for the given rows in one
// transaction, so a failed insert leaves the previous data in place. Used by the
// seeder; transactions need a replica set.
func (r *MongoScheduleRepo) ReplaceAll(ctx context.Context, rows []models.ScheduleRow, rooms []models.RoomRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	client := r.timetable.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.timetable.DeleteMany(sc, bson.M{}); err != nil {
			return fmt.Errorf("failed to clear timetable: %w", err)
		}
		if _, err := r.rooms.DeleteMany(sc, bson.M{}); err != nil {
			return fmt.Errorf("failed to clear rooms: %w", err)
		}

		if len(rows) > 0 {
			docs := make([]interface{}, len(rows))
			for i, row := range rows {
				docs[i] = row
			}
			if _, err := r.timetable.InsertMany(sc, docs); err != nil {
				return fmt.Errorf("failed to insert timetable: %w", err)
			}
		}
		if len(rooms) > 0 {
			docs := make([]interface{}, len(rooms))
			for i, room := range rooms {
				docs[i] = room
			}
			if _, err := r.rooms.InsertMany(sc, docs); err != nil {
				return fmt.Errorf("failed to insert rooms: %w", err)
			}
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return fmt.Errorf("replace transaction failed: %w", err)
	}
	return nil
}
