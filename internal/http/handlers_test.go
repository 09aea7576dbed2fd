package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"roomwatch/internal/domain"
	"roomwatch/internal/repository"
	"roomwatch/internal/service"
	"roomwatch/internal/validate"
)

// fakeAuthService resolves credentials from an in-memory table.
type fakeAuthService struct {
	users map[string]*domain.User // username -> user, password equals "secret-"+username
}

func (f *fakeAuthService) Authenticate(_ context.Context, username, password string) (*domain.User, error) {
	u, ok := f.users[username]
	if !ok || password != "secret-"+username {
		return nil, service.ErrInvalidCredentials
	}
	return u, nil
}

// fakeSensorService records calls and replays canned results.
type fakeSensorService struct {
	rows []domain.SensorRow

	listErr   error
	createErr error
	updateErr error
	deleteErr error

	created *validate.SensorPayload
	updated *validate.SensorPayload
	deleted string
}

func (f *fakeSensorService) ListSensors(_ context.Context) ([]domain.SensorRow, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.rows, nil
}

func (f *fakeSensorService) CreateSensor(_ context.Context, p validate.SensorPayload) (*domain.Sensor, error) {
	if errs := validate.Sensor(p, false); len(errs) > 0 {
		return nil, &service.ValidationError{Messages: errs}
	}
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = &p
	s := &domain.Sensor{ID: *p.ID, X: *p.X, Y: *p.Y, Status: domain.StatusAvailable}
	if p.Status != nil {
		s.Status = *p.Status
	}
	s.CreatedAt = time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	s.UpdatedAt = s.CreatedAt
	return s, nil
}

func (f *fakeSensorService) UpdateSensor(_ context.Context, id string, p validate.SensorPayload) (*domain.Sensor, error) {
	p.ID = nil
	if p.Empty() {
		return nil, service.ErrNoFields
	}
	if errs := validate.Sensor(p, true); len(errs) > 0 {
		return nil, &service.ValidationError{Messages: errs}
	}
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updated = &p
	s := &domain.Sensor{ID: id, X: 100, Y: 100, Status: domain.StatusAvailable}
	if p.X != nil {
		s.X = *p.X
	}
	if p.Y != nil {
		s.Y = *p.Y
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	s.UpdatedAt = time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC)
	return s, nil
}

func (f *fakeSensorService) DeleteSensor(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = id
	return nil
}

func (f *fakeSensorService) SetStatus(ctx context.Context, id, status string) (*domain.Sensor, error) {
	return f.UpdateSensor(ctx, id, validate.SensorPayload{Status: &status})
}

// fakeRoomsRepo is an in-memory RoomsRepository.
type fakeRoomsRepo struct {
	rooms   []domain.RoomView
	listErr error

	createErr error
	deleteErr error
	created   *domain.Room
	deleted   string
}

func (f *fakeRoomsRepo) ListRooms(_ context.Context) ([]domain.RoomView, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.rooms, nil
}

func (f *fakeRoomsRepo) CreateRoom(_ context.Context, room *domain.Room) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = room
	return nil
}

func (f *fakeRoomsRepo) DeleteRoom(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = id
	return nil
}

// fakeAreasRepo is an in-memory AreasRepository.
type fakeAreasRepo struct {
	areas []domain.Area

	createErr error
	updateErr error
	created   *domain.Area
	updated   *domain.Area
}

func (f *fakeAreasRepo) ListAreas(_ context.Context) ([]domain.Area, error) {
	return f.areas, nil
}

func (f *fakeAreasRepo) CreateArea(_ context.Context, area *domain.Area) (int, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = area
	return 7, nil
}

func (f *fakeAreasRepo) UpdateArea(_ context.Context, area *domain.Area) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = area
	return nil
}

var _ repository.RoomsRepository = (*fakeRoomsRepo)(nil)
var _ repository.AreasRepository = (*fakeAreasRepo)(nil)
var _ service.SensorService = (*fakeSensorService)(nil)
var _ service.AuthService = (*fakeAuthService)(nil)

type testEnv struct {
	router  *Router
	sensors *fakeSensorService
	rooms   *fakeRoomsRepo
	areas   *fakeAreasRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := zap.NewNop()
	auth := &fakeAuthService{users: map[string]*domain.User{
		"admin": {ID: 1, Username: "admin", Role: domain.RoleAdmin},
		"bob":   {ID: 2, Username: "bob", Role: domain.RoleUser},
	}}
	sensors := &fakeSensorService{}
	rooms := &fakeRoomsRepo{}
	areas := &fakeAreasRepo{}

	gate := NewAuthGate(auth, logger)
	router := NewRouter(logger)
	router.RegisterHealthRoutes(NewHealthHandler(nil, logger))
	router.RegisterAuthRoutes(NewAuthHandler(auth, logger))
	router.RegisterRoomRoutes(NewRoomHandler(rooms, logger))
	router.RegisterAreaRoutes(NewAreaHandler(areas, logger))
	router.RegisterSensorRoutes(NewSensorHandler(sensors, logger), NewMapHandler(sensors, logger), gate)

	return &testEnv{router: router, sensors: sensors, rooms: rooms, areas: areas}
}

// do runs a request through the full router stack. user "" sends no
// credential headers; otherwise the matching "secret-<user>" password is set.
func (e *testEnv) do(t *testing.T, method, path, user string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != "" {
		req.Header.Set("username", user)
		req.Header.Set("password", "secret-"+user)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// newRawRequest builds a request with a literal body, for malformed JSON cases.
func newRawRequest(t *testing.T, method, path, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(e *testEnv, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}
