package roomfinder

import (
	"context"
	"errors"
	"testing"
	"time"

	"roomfinder/models"
	"roomfinder/services/locator"
	"roomfinder/services/pathfinder"
	"roomfinder/services/schedule"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRows = []models.ScheduleRow{
	{Room: "ICT 202", Day: "Monday", Time: "8:00 AM - 9:00 AM"},
	{Room: "ICT 203", Day: "Monday", Time: "9:00 AM - 11:00 AM"},
	{Room: "ICT 307", Day: "Saturday", Time: "8:00 AM - 11:00 AM"},
}

var testMap = models.LocatorConfig{
	GridSize: 40,
	Origin:   "START",
	Rooms: []models.RoomLocation{
		{Name: "START", X: 5, Y: 13},
		{Name: "ICT 202", X: 4, Y: 6},
		{Name: "ICT 203", X: 6, Y: 13},
		{Name: "ICT 307", X: 19, Y: 6},
	},
}

type fakeRepo struct {
	rows     []models.ScheduleRow
	rooms    []models.RoomRecord
	rowsErr  error
	roomsErr error
}

func (f *fakeRepo) LoadSchedule(context.Context) ([]models.ScheduleRow, error) { return f.rows, f.rowsErr }
func (f *fakeRepo) LoadRooms(context.Context) ([]models.RoomRecord, error)     { return f.rooms, f.roomsErr }

func newRepo() *fakeRepo {
	return &fakeRepo{
		rows:  testRows,
		rooms: []models.RoomRecord{{Name: "ICT 202"}, {Name: "ICT 203"}, {Name: "ICT 307"}},
	}
}

func newService(t *testing.T) *DefaultRoomFinderService {
	t.Helper()
	catalog, err := LoadCatalog(context.Background(), newRepo(), testMap, schedule.OrderingCanonical, nil)
	require.NoError(t, err)
	return NewDefaultRoomFinderService(catalog.Filter, catalog.Locator, nil, nil)
}

func TestAvailableRooms(t *testing.T) {
	svc := newService(t)

	rooms, err := svc.AvailableRooms(context.Background(), "monday", schedule.ClockAt(8*60+30))

	require.NoError(t, err)
	assert.Equal(t, []string{"ICT 203", "ICT 307"}, rooms.Sorted())
}

func TestAvailableRoomsNoneFree(t *testing.T) {
	repo := newRepo()
	repo.rows = append(repo.rows, models.ScheduleRow{Room: "ICT 307", Day: "Monday", Time: "7:00 AM - 7:00 PM"})
	catalog, err := LoadCatalog(context.Background(), repo, testMap, schedule.OrderingCanonical, nil)
	require.NoError(t, err)
	svc := NewDefaultRoomFinderService(catalog.Filter, catalog.Locator, nil, nil)

	rooms, err := svc.AvailableRooms(context.Background(), "Monday", schedule.ClockAt(9*60))

	require.NoError(t, err)
	require.NotNil(t, rooms)
	assert.Empty(t, rooms)
}

func TestAvailableRoomsRejectsUnknownDay(t *testing.T) {
	svc := newService(t)

	_, err := svc.AvailableRooms(context.Background(), "Funday", schedule.ClockAt(600))

	assert.ErrorIs(t, err, ErrInvalidDay)
}

func TestAvailableRoomsFallsBackWhenCacheUnavailable(t *testing.T) {
	svc := newService(t)
	svc.Cache = redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer svc.Cache.Close()

	rooms, err := svc.AvailableRooms(context.Background(), "Monday", schedule.ClockAt(8*60+30))

	require.NoError(t, err)
	assert.Equal(t, []string{"ICT 203", "ICT 307"}, rooms.Sorted())
}

func TestFindPath(t *testing.T) {
	svc := newService(t)

	res, err := svc.FindPath(context.Background(), "ICT 203")

	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, models.Coordinate{X: 5, Y: 13}, res.Start)
	assert.Equal(t, models.Coordinate{X: 6, Y: 13}, res.Goal)
	assert.Equal(t, models.Path{{X: 5, Y: 13}, {X: 6, Y: 13}}, res.Path)

	res, err = svc.FindPath(context.Background(), "ICT 307")
	require.NoError(t, err)
	assert.Len(t, res.Path, pathfinder.Manhattan(res.Start, res.Goal)+1)
}

func TestFindPathUnknownRoom(t *testing.T) {
	svc := newService(t)

	_, err := svc.FindPath(context.Background(), "UNKNOWN ROOM")

	assert.ErrorIs(t, err, locator.ErrRoomNotFound)
}

func TestFindPathUnreachableIsNotRoomNotFound(t *testing.T) {
	svc := newService(t)
	svc.Grid = pathfinder.NewGrid(5)

	res, err := svc.FindPath(context.Background(), "ICT 307")

	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Empty(t, res.Path)
}

func TestFindPathTimeout(t *testing.T) {
	svc := newService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.FindPath(ctx, "ICT 307")

	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, errors.Is(err, locator.ErrRoomNotFound))
}

func TestMapAndRooms(t *testing.T) {
	svc := newService(t)

	m := svc.Map()
	assert.Equal(t, 40, m.GridSize)
	assert.Equal(t, models.Coordinate{X: 5, Y: 13}, m.Origin)
	assert.Len(t, m.Rooms, 4)
	assert.Equal(t, []string{"ICT 202", "ICT 203", "ICT 307"}, svc.Rooms())
}

func TestQueryOptions(t *testing.T) {
	opts := DefaultQueryOptions()

	assert.Equal(t, []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}, opts.Days)
	require.Len(t, opts.Times, 13)
	assert.Equal(t, "7:00 AM", opts.Times[0])
	assert.Equal(t, "12:00 PM", opts.Times[5])
	assert.Equal(t, "7:00 PM", opts.Times[12])
}

func TestNormalizeDay(t *testing.T) {
	day, ok := NormalizeDay("  wednesday ")
	assert.True(t, ok)
	assert.Equal(t, "Wednesday", day)

	_, ok = NormalizeDay("Wed")
	assert.False(t, ok)
}

func TestAvailabilityCacheKey(t *testing.T) {
	at := schedule.ClockAt(510)

	assert.Equal(t, "rooms:available:abc:monday:510:canonical", AvailabilityCacheKey("abc", "Monday", at, schedule.OrderingCanonical))
	assert.Equal(t, "rooms:available:abc:monday:8:30 AM:lexical", AvailabilityCacheKey("abc", "Monday", at, schedule.OrderingLexical))
}

func TestLoadCatalogFailures(t *testing.T) {
	repo := newRepo()
	repo.rowsErr = errors.New("disk on fire")
	catalog, err := LoadCatalog(context.Background(), repo, testMap, schedule.OrderingCanonical, nil)
	assert.Nil(t, catalog)
	assert.ErrorContains(t, err, "failed to load timetable")

	repo = newRepo()
	repo.roomsErr = errors.New("missing")
	catalog, err = LoadCatalog(context.Background(), repo, testMap, schedule.OrderingCanonical, nil)
	assert.Nil(t, catalog)
	assert.ErrorContains(t, err, "failed to load rooms")

	noOrigin := testMap
	noOrigin.Rooms = testMap.Rooms[1:]
	catalog, err = LoadCatalog(context.Background(), newRepo(), noOrigin, schedule.OrderingCanonical, nil)
	assert.Nil(t, catalog)
	assert.ErrorIs(t, err, locator.ErrMissingOrigin)
}

func newCachedService(t *testing.T, mr *miniredis.Miniredis, repo *fakeRepo) *DefaultRoomFinderService {
	t.Helper()
	catalog, err := LoadCatalog(context.Background(), repo, testMap, schedule.OrderingCanonical, nil)
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewDefaultRoomFinderService(catalog.Filter, catalog.Locator, client, nil)
}

func TestAvailableRoomsCacheHit(t *testing.T) {
	mr := miniredis.RunT(t)
	svc := newCachedService(t, mr, newRepo())
	at := schedule.ClockAt(8*60 + 30)
	key := AvailabilityCacheKey(svc.Filter.Fingerprint(), "Monday", at, schedule.OrderingCanonical)

	rooms, err := svc.AvailableRooms(context.Background(), "Monday", at)
	require.NoError(t, err)
	assert.Equal(t, []string{"ICT 203", "ICT 307"}, rooms.Sorted())

	stored, err := mr.Get(key)
	require.NoError(t, err)
	assert.JSONEq(t, `["ICT 203","ICT 307"]`, stored)
	assert.Equal(t, 5*time.Minute, mr.TTL(key))

	// Served from the cache, limited to the current room list.
	require.NoError(t, mr.Set(key, `["ICT 203","ICT 999"]`))
	rooms, err = svc.AvailableRooms(context.Background(), "monday", at)
	require.NoError(t, err)
	assert.Equal(t, []string{"ICT 203"}, rooms.Sorted())
}

func TestAvailableRoomsCacheIgnoresEntriesFromAnotherCatalog(t *testing.T) {
	mr := miniredis.RunT(t)
	at := schedule.ClockAt(8*60 + 30)

	before := newCachedService(t, mr, newRepo())
	rooms, err := before.AvailableRooms(context.Background(), "Monday", at)
	require.NoError(t, err)
	require.Equal(t, []string{"ICT 203", "ICT 307"}, rooms.Sorted())

	// Restart with a smaller room list in which the only room is occupied.
	edited := newRepo()
	edited.rooms = []models.RoomRecord{{Name: "ICT 202"}}
	after := newCachedService(t, mr, edited)
	require.NotEqual(t, before.Filter.Fingerprint(), after.Filter.Fingerprint())

	rooms, err = after.AvailableRooms(context.Background(), "Monday", at)
	require.NoError(t, err)
	require.NotNil(t, rooms)
	assert.Empty(t, rooms)
	for _, name := range rooms.Sorted() {
		assert.Contains(t, after.Rooms(), name)
	}
}

func TestAvailableRoomsCorruptCacheEntryIsRecomputed(t *testing.T) {
	mr := miniredis.RunT(t)
	svc := newCachedService(t, mr, newRepo())
	at := schedule.ClockAt(8*60 + 30)
	key := AvailabilityCacheKey(svc.Filter.Fingerprint(), "Monday", at, schedule.OrderingCanonical)
	require.NoError(t, mr.Set(key, "not json"))

	rooms, err := svc.AvailableRooms(context.Background(), "Monday", at)

	require.NoError(t, err)
	assert.Equal(t, []string{"ICT 203", "ICT 307"}, rooms.Sorted())
}
