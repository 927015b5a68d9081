package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"roomfinder/handlers"
	"roomfinder/models"
	"roomfinder/routes"
	"roomfinder/services/roomfinder"
	"roomfinder/services/schedule"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct{}

func (fakeRepo) LoadSchedule(context.Context) ([]models.ScheduleRow, error) {
	return []models.ScheduleRow{
		{Room: "ICT 202", Day: "Monday", Time: "8:00 AM - 9:00 AM"},
		{Room: "ICT 203", Day: "Monday", Time: "8:00 AM - 11:00 AM"},
	}, nil
}

func (fakeRepo) LoadRooms(context.Context) ([]models.RoomRecord, error) {
	return []models.RoomRecord{{Name: "ICT 202"}, {Name: "ICT 203"}}, nil
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog, err := roomfinder.LoadCatalog(context.Background(), fakeRepo{}, models.LocatorConfig{
		GridSize: 40,
		Origin:   "START",
		Rooms: []models.RoomLocation{
			{Name: "START", X: 5, Y: 13},
			{Name: "ICT 202", X: 4, Y: 6},
			{Name: "ICT 203", X: 6, Y: 13},
		},
	}, schedule.OrderingCanonical, nil)
	require.NoError(t, err)

	svc := roomfinder.NewDefaultRoomFinderService(catalog.Filter, catalog.Locator, nil, nil)
	rh := handlers.NewRoomHandler(svc)
	r := gin.New()
	routes.RegisterRoutes(r, &handlers.HandlerBundle{
		ListRoomsHandler:      rh.ListRoomsHandler,
		AvailableRoomsHandler: rh.AvailableRoomsHandler,
		QueryOptionsHandler:   rh.QueryOptionsHandler,
		FindPathHandler:       rh.FindPathHandler,
		MapHandler:            rh.MapHandler,
		HealthHandler:         handlers.HealthHandler,
	})
	return r
}

func get(t *testing.T, r *gin.Engine, path string, query url.Values) *httptest.ResponseRecorder {
	t.Helper()
	target := path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestAvailableRoomsHandler(t *testing.T) {
	r := newRouter(t)

	w := get(t, r, "/api/rooms/available", url.Values{"day": {"Monday"}, "time": {"9:30 AM"}})

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.AvailableRoomsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"ICT 202"}, resp.Rooms)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "9:30 AM", resp.Time)
	assert.Empty(t, resp.Message)
}

func TestAvailableRoomsHandlerEmpty(t *testing.T) {
	r := newRouter(t)

	w := get(t, r, "/api/rooms/available", url.Values{"day": {"monday"}, "time": {"8:30 AM"}})

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.AvailableRoomsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Count)
	assert.NotNil(t, resp.Rooms)
	assert.NotEmpty(t, resp.Message)
}

func TestAvailableRoomsHandlerBadRequests(t *testing.T) {
	r := newRouter(t)

	cases := map[string]url.Values{
		"missing time": {"day": {"Monday"}},
		"missing day":  {"time": {"8:00 AM"}},
		"bad time":     {"day": {"Monday"}, "time": {"quarter past"}},
		"bad day":      {"day": {"Someday"}, "time": {"8:00 AM"}},
	}
	for name, query := range cases {
		t.Run(name, func(t *testing.T) {
			w := get(t, r, "/api/rooms/available", query)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestFindPathHandler(t *testing.T) {
	r := newRouter(t)

	w := get(t, r, "/api/rooms/path", url.Values{"room": {"ICT 203"}})

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.PathResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Reachable)
	assert.Equal(t, 2, resp.Length)
	assert.Equal(t, []models.Coordinate{{X: 5, Y: 13}, {X: 6, Y: 13}}, resp.Path)
}

func TestFindPathHandlerErrors(t *testing.T) {
	r := newRouter(t)

	w := get(t, r, "/api/rooms/path", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = get(t, r, "/api/rooms/path", url.Values{"room": {"ict 203"}})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListRoomsAndOptions(t *testing.T) {
	r := newRouter(t)

	w := get(t, r, "/api/rooms", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rooms struct {
		Rooms []string `json:"rooms"`
		Count int      `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	assert.Equal(t, []string{"ICT 202", "ICT 203"}, rooms.Rooms)
	assert.Equal(t, 2, rooms.Count)

	w = get(t, r, "/api/rooms/options", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var opts models.QueryOptions
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &opts))
	assert.Len(t, opts.Days, 6)
	assert.Len(t, opts.Times, 13)
}

func TestMapAndHealth(t *testing.T) {
	r := newRouter(t)

	w := get(t, r, "/api/map", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var m models.MapResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	assert.Equal(t, 40, m.GridSize)
	assert.Equal(t, models.Coordinate{X: 5, Y: 13}, m.Origin)
	assert.Len(t, m.Rooms, 3)

	w = get(t, r, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
