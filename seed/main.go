// Command seed copies the CSV timetable and room list into MongoDB so the
// server can run with DATA_SOURCE=mongo.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"roomfinder/config"
	"roomfinder/database"
	scheduleRepo "roomfinder/database/repository/schedule"
	"roomfinder/services/schedule"
)

func main() {
	config.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	source := scheduleRepo.NewCSVScheduleRepo(config.AppConfig.TimetableFile, config.AppConfig.RoomsFile)
	rows, err := source.LoadSchedule(ctx)
	if err != nil {
		log.Fatalf("Failed to read timetable: %v", err)
	}
	rooms, err := source.LoadRooms(ctx)
	if err != nil {
		log.Fatalf("Failed to read rooms: %v", err)
	}

	// Report rows the server would skip, but seed them anyway so the data stays faithful to its source.
	for i, row := range rows {
		if _, err := schedule.ParseEntry(row); err != nil {
			log.Printf("row %d will be skipped at load: %v", i+2, err)
		}
	}

	// Initialize the database connection.
	database.InitDB()
	defer database.Disconnect(context.Background())

	// Indexes first: they create both collections outside the transaction.
	target := scheduleRepo.NewMongoScheduleRepo(database.Database())
	if err := target.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}
	if err := target.ReplaceAll(ctx, rows, rooms); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Printf("Seeded %d timetable rows and %d rooms into %s\n", len(rows), len(rooms), config.AppConfig.DatabaseName)
}
