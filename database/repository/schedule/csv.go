package scheduleRepo

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"roomfinder/models"
)

type csvScheduleRepo struct {
	timetableFile string
	roomsFile     string
}

// NewCSVScheduleRepo reads the timetable ("room,day,time") and the room list ("room") from CSV files.
func NewCSVScheduleRepo(timetableFile, roomsFile string) ScheduleRepository {
	return &csvScheduleRepo{timetableFile: timetableFile, roomsFile: roomsFile}
}

func (r *csvScheduleRepo) LoadSchedule(ctx context.Context) ([]models.ScheduleRow, error) {
	records, err := readCSVFile(ctx, r.timetableFile)
	if err != nil {
		return nil, err
	}
	return ScheduleRowsFromRecords(records)
}

func (r *csvScheduleRepo) LoadRooms(ctx context.Context) ([]models.RoomRecord, error) {
	records, err := readCSVFile(ctx, r.roomsFile)
	if err != nil {
		return nil, err
	}
	return RoomRecordsFromRecords(records)
}

func readCSVFile(ctx context.Context, path string) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer f.Close()

	records, err := readCSV(f)
	if err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", path, err)
	}
	return records, nil
}

func readCSV(src io.Reader) ([][]string, error) {
	reader := csv.NewReader(src)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

// ScheduleRowsFromRecords maps CSV records with a header row onto schedule rows.
func ScheduleRowsFromRecords(records [][]string) ([]models.ScheduleRow, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("timetable: %w", ErrEmptySource)
	}
	header := headerIndex(records[0])
	roomIdx, okRoom := header["room"]
	dayIdx, okDay := header["day"]
	timeIdx, okTime := header["time"]
	if !okRoom || !okDay || !okTime {
		return nil, fmt.Errorf("timetable: header must contain room, day and time columns, got %v", records[0])
	}

	rows := make([]models.ScheduleRow, 0, len(records)-1)
	for i, record := range records[1:] {
		if isBlank(record) {
			continue
		}
		if len(record) <= maxOf(roomIdx, dayIdx, timeIdx) {
			return nil, fmt.Errorf("timetable: line %d has %d fields", i+2, len(record))
		}
		rows = append(rows, models.ScheduleRow{
			Room: strings.TrimSpace(record[roomIdx]),
			Day:  strings.TrimSpace(record[dayIdx]),
			Time: strings.TrimSpace(record[timeIdx]),
		})
	}
	return rows, nil
}

// RoomRecordsFromRecords maps CSV records with a "room" header onto room records.
// Blank and repeated names are dropped.
func RoomRecordsFromRecords(records [][]string) ([]models.RoomRecord, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("rooms: %w", ErrEmptySource)
	}
	roomIdx, ok := headerIndex(records[0])["room"]
	if !ok {
		return nil, fmt.Errorf("rooms: header must contain a room column, got %v", records[0])
	}

	rooms := make([]models.RoomRecord, 0, len(records)-1)
	seen := make(map[string]bool, len(records))
	for i, record := range records[1:] {
		if isBlank(record) {
			continue
		}
		if len(record) <= roomIdx {
			return nil, fmt.Errorf("rooms: line %d has %d fields", i+2, len(record))
		}
		name := strings.TrimSpace(record[roomIdx])
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		rooms = append(rooms, models.RoomRecord{Name: name})
	}
	if len(rooms) == 0 {
		return nil, fmt.Errorf("rooms: %w", ErrEmptySource)
	}
	return rooms, nil
}

func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return index
}

func isBlank(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

func maxOf(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
