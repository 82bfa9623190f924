package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dinebook/constants"
	"dinebook/database"
	"dinebook/handler"
	"dinebook/helper"
	"dinebook/model"
	"dinebook/repository"
	"dinebook/service"
	"dinebook/slotlock"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("router-secret")

const monday = "2030-01-07"

type apiFixture struct {
	app        *fiber.App
	restaurant *model.Restaurant
	customer   string
	other      string
	owner      string
}

type failingLocker struct{}

func (failingLocker) Acquire(context.Context, string) (func(), error) {
	return nil, slotlock.ErrTimeout
}

func newAPI(t *testing.T, locker slotlock.Locker) *apiFixture {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	ctx := context.Background()
	restaurants := repository.NewRestaurantRepository(db)
	users := repository.NewUserRepository(db)

	evening := &model.DayHours{Open: "17:00", Close: "22:00"}
	restaurant := &model.Restaurant{
		Name:     "Evening Bistro",
		Capacity: 10,
		IsActive: true,
		OpeningHours: model.OpeningHours{
			Monday: evening, Tuesday: evening, Wednesday: evening,
			Thursday: evening, Friday: evening, Saturday: evening,
		},
	}
	require.NoError(t, restaurants.Create(ctx, restaurant))

	accounts := map[string]*model.User{
		"customer": {Name: "Casey", Email: "casey@example.com", PasswordHash: "x", Role: constants.ROLE_CUSTOMER},
		"other":    {Name: "Robin", Email: "robin@example.com", PasswordHash: "x", Role: constants.ROLE_CUSTOMER},
		"owner":    {Name: "Olive", Email: "olive@example.com", PasswordHash: "x", Role: constants.ROLE_OWNER},
	}
	tokens := map[string]string{}
	for key, u := range accounts {
		require.NoError(t, users.Create(ctx, u))
		tok, err := helper.GenerateAccessToken(model.TokenClaim{UserId: u.ID, Role: u.Role}, testSecret, time.Hour)
		require.NoError(t, err)
		tokens[key] = tok
	}

	svc := service.NewBookingService(restaurants, users, repository.NewBookingRepository(db), locker, nil, nil, service.Options{
		LockTimeout: time.Second,
		Location:    time.UTC,
		Now:         func() time.Time { return time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC) },
	})
	t.Cleanup(svc.Wait)

	app := fiber.New()
	SetupRoutes(app, Deps{Handler: handler.New(svc), JWTSecret: testSecret, DisableLogger: true})

	return &apiFixture{
		app:        app,
		restaurant: restaurant,
		customer:   tokens["customer"],
		other:      tokens["other"],
		owner:      tokens["owner"],
	}
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Error   any             `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func (f *apiFixture) do(t *testing.T, method, path, token string, body any) (int, envelope, http.Header) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		if raw, ok := body.(string); ok {
			reader = bytes.NewBufferString(raw)
		} else {
			b, err := json.Marshal(body)
			require.NoError(t, err)
			reader = bytes.NewReader(b)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), fiber.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env, resp.Header
}

func (f *apiFixture) create(t *testing.T, clock string, guests int) model.BookingResponse {
	t.Helper()
	status, env, _ := f.do(t, "POST", "/api/v1/bookings", f.customer, fiber.Map{
		"restaurantId": f.restaurant.ID,
		"date":         monday,
		"time":         clock,
		"guests":       guests,
	})
	require.Equal(t, fiber.StatusCreated, status, env.Message)
	var b model.BookingResponse
	require.NoError(t, json.Unmarshal(env.Data, &b))
	return b
}

func TestHealth(t *testing.T) {
	f := newAPI(t, nil)
	status, _, _ := f.do(t, "GET", "/health", "", nil)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestAvailabilityEndpoint(t *testing.T) {
	f := newAPI(t, nil)
	f.create(t, "19:00", 4)

	status, env, _ := f.do(t, "GET", "/api/v1/bookings/availability?restaurantId="+f.restaurant.ID+"&date="+monday, "", nil)
	require.Equal(t, fiber.StatusOK, status)
	var got model.Availability
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Len(t, got.Slots, 10)
	for _, slot := range got.Slots {
		if slot.Time == "19:00" {
			assert.Equal(t, 6, slot.AvailableCapacity)
		}
	}

	status, env, _ = f.do(t, "GET", "/api/v1/bookings/availability?restaurantId="+f.restaurant.ID+"&date=2030-01-06", "", nil)
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.True(t, got.Closed)
	assert.Empty(t, got.Slots)

	status, _, _ = f.do(t, "GET", "/api/v1/bookings/availability?restaurantId="+f.restaurant.ID, "", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _, _ = f.do(t, "GET", "/api/v1/bookings/availability?restaurantId=missing&date="+monday, "", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestCreateBookingEndpoint(t *testing.T) {
	f := newAPI(t, nil)
	body := func(clock string, guests int) fiber.Map {
		return fiber.Map{"restaurantId": f.restaurant.ID, "date": monday, "time": clock, "guests": guests}
	}

	status, _, _ := f.do(t, "POST", "/api/v1/bookings", "", body("19:00", 2))
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _, _ = f.do(t, "POST", "/api/v1/bookings", f.owner, body("19:00", 2))
	assert.Equal(t, fiber.StatusForbidden, status)

	status, env, _ := f.do(t, "POST", "/api/v1/bookings", f.customer, body("19:00", 21))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Guests must be between 1 and 20", env.Message)

	status, _, _ = f.do(t, "POST", "/api/v1/bookings", f.customer, body("22:00", 2))
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _, _ = f.do(t, "POST", "/api/v1/bookings", f.customer, `{"restaurantId": `)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _, _ = f.do(t, "POST", "/api/v1/bookings", f.customer,
		fiber.Map{"restaurantId": "missing", "date": monday, "time": "19:00", "guests": 2})
	assert.Equal(t, fiber.StatusNotFound, status)

	status, env, _ = f.do(t, "POST", "/api/v1/bookings", f.customer, body("19:00", 8))
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, constants.BOOKING_CREATED, env.Message)
	var created model.BookingResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, model.BookingConfirmed, created.Status)
	assert.Equal(t, "Evening Bistro", created.RestaurantName)

	status, env, _ = f.do(t, "POST", "/api/v1/bookings", f.customer, body("19:00", 3))
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "This time slot is fully booked. Available capacity: 2, Requested: 3", env.Message)
}

func TestCreateBookingEndpoint_Transient(t *testing.T) {
	f := newAPI(t, failingLocker{})

	status, env, header := f.do(t, "POST", "/api/v1/bookings", f.customer,
		fiber.Map{"restaurantId": f.restaurant.ID, "date": monday, "time": "19:00", "guests": 2})
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Equal(t, constants.ERROR_TRANSIENT, env.Message)
	assert.Equal(t, "1", header.Get("Retry-After"))
}

func TestBookingByIdEndpoints(t *testing.T) {
	f := newAPI(t, nil)
	b := f.create(t, "19:00", 2)
	path := "/api/v1/bookings/" + b.ID

	status, _, _ := f.do(t, "GET", path, f.customer, nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, _, _ = f.do(t, "GET", path, f.other, nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _, _ = f.do(t, "DELETE", path, f.other, nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, env, _ := f.do(t, "DELETE", path, f.customer, nil)
	require.Equal(t, fiber.StatusOK, status)
	var cancelled model.BookingResponse
	require.NoError(t, json.Unmarshal(env.Data, &cancelled))
	assert.Equal(t, model.BookingCancelled, cancelled.Status)

	status, env, _ = f.do(t, "DELETE", path, f.customer, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, constants.BOOKING_ALREADY_CANCELLED, env.Message)
}

func TestListAndStatsEndpoints(t *testing.T) {
	f := newAPI(t, nil)
	f.create(t, "19:00", 2)
	f.create(t, "20:00", 2)

	status, env, _ := f.do(t, "GET", "/api/v1/bookings?status=confirmed&dateFrom="+monday+"&dateTo="+monday, f.customer, nil)
	require.Equal(t, fiber.StatusOK, status)
	var list struct {
		Bookings []model.BookingResponse `json:"bookings"`
		Total    int                     `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 2, list.Total)
	assert.Len(t, list.Bookings, 2)

	status, env, _ = f.do(t, "GET", "/api/v1/bookings", f.other, nil)
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 0, list.Total)
	assert.NotNil(t, list.Bookings)

	status, _, _ = f.do(t, "GET", "/api/v1/bookings?status=lost", f.customer, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _, _ = f.do(t, "GET", "/api/v1/bookings?dateFrom=2030-01-09&dateTo=2030-01-01", f.customer, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, env, _ = f.do(t, "GET", "/api/v1/bookings/stats", f.customer, nil)
	require.Equal(t, fiber.StatusOK, status)
	var stats model.BookingStats
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, int64(2), stats.TotalBookings)
	assert.Equal(t, int64(2), stats.UpcomingBookings)

	status, _, _ = f.do(t, "GET", "/api/v1/bookings", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestRestaurantEndpoint(t *testing.T) {
	f := newAPI(t, nil)

	status, env, _ := f.do(t, "GET", "/api/v1/restaurants/"+f.restaurant.ID, "", nil)
	require.Equal(t, fiber.StatusOK, status)
	var got model.RestaurantResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "evening-bistro", got.Slug)
	assert.Equal(t, 10, got.Capacity)
	require.NotNil(t, got.OpeningHours.Monday)
	assert.Nil(t, got.OpeningHours.Sunday)

	status, _, _ = f.do(t, "GET", "/api/v1/restaurants/missing", "", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestWebsocketRouteRequiresUpgrade(t *testing.T) {
	f := newAPI(t, nil)
	status, _, _ := f.do(t, "GET", "/ws/availability/"+f.restaurant.ID+"/"+monday, "", nil)
	assert.Equal(t, fiber.StatusUpgradeRequired, status)
}
