package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"dinebook/constants"
	"dinebook/database"
	"dinebook/feed"
	"dinebook/model"
	"dinebook/repository"
	"dinebook/slotlock"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) SendBookingConfirmation(ctx context.Context, email string, details model.BookingDetails) error {
	args := m.Called(ctx, email, details)
	return args.Error(0)
}

type fixture struct {
	db       *gorm.DB
	svc      *BookingService
	feed     *feed.MemoryFeed
	clock    *fakeClock
	bistro   *model.Restaurant
	brunch   *model.Restaurant
	inactive *model.Restaurant
	customer *model.User
	other    *model.User
}

type fixtureOption func(*fixtureConfig)

type fixtureConfig struct {
	notifier Notifier
	locker   slotlock.Locker
}

func withNotifier(n Notifier) fixtureOption {
	return func(c *fixtureConfig) { c.notifier = n }
}

func withLocker(l slotlock.Locker) fixtureOption {
	return func(c *fixtureConfig) { c.locker = l }
}

// Tuesday 2030-01-01 10:00 UTC.
var fixtureNow = time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)

const (
	monday = "2030-01-07"
	sunday = "2030-01-06"
)

func newFixture(t *testing.T, opts ...fixtureOption) *fixture {
	t.Helper()
	cfg := fixtureConfig{notifier: LogNotifier{}, locker: slotlock.NewMemoryLocker()}
	for _, opt := range opts {
		opt(&cfg)
	}

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
	bistro := &model.Restaurant{
		Name:     "Evening Bistro",
		Capacity: 10,
		IsActive: true,
		OpeningHours: model.OpeningHours{
			Monday: evening, Tuesday: evening, Wednesday: evening,
			Thursday: evening, Friday: evening, Saturday: evening,
		},
	}
	morning := &model.DayHours{Open: "09:00", Close: "15:00"}
	brunch := &model.Restaurant{
		Name:     "Brunch Club",
		Capacity: 40,
		IsActive: true,
		OpeningHours: model.OpeningHours{
			Monday: morning, Tuesday: morning, Sunday: morning,
		},
	}
	inactive := &model.Restaurant{
		Name:         "Shuttered",
		Capacity:     10,
		IsActive:     false,
		OpeningHours: model.OpeningHours{Monday: evening},
	}
	for _, r := range []*model.Restaurant{bistro, brunch, inactive} {
		require.NoError(t, restaurants.Create(ctx, r))
	}

	customer := &model.User{Name: "Casey", Email: "casey@example.com", PasswordHash: "x", Role: constants.ROLE_CUSTOMER}
	other := &model.User{Name: "Robin", Email: "robin@example.com", PasswordHash: "x", Role: constants.ROLE_CUSTOMER}
	require.NoError(t, users.Create(ctx, customer))
	require.NoError(t, users.Create(ctx, other))

	clock := &fakeClock{now: fixtureNow}
	changes := feed.NewMemoryFeed()
	svc := NewBookingService(restaurants, users, repository.NewBookingRepository(db), cfg.locker, changes, cfg.notifier, Options{
		LockTimeout:   2 * time.Second,
		NotifyTimeout: time.Second,
		Location:      time.UTC,
		Now:           clock.Now,
	})
	t.Cleanup(svc.Wait)

	return &fixture{
		db:       db,
		svc:      svc,
		feed:     changes,
		clock:    clock,
		bistro:   bistro,
		brunch:   brunch,
		inactive: inactive,
		customer: customer,
		other:    other,
	}
}

func (f *fixture) input(restaurant *model.Restaurant, date, clock string, guests int) model.CreateBookingInput {
	return model.CreateBookingInput{
		CustomerID:   f.customer.ID,
		RestaurantID: restaurant.ID,
		Date:         date,
		Time:         clock,
		Guests:       guests,
	}
}

func (f *fixture) book(t *testing.T, restaurant *model.Restaurant, date, clock string, guests int) *model.Booking {
	t.Helper()
	b, err := f.svc.CreateBooking(context.Background(), f.input(restaurant, date, clock, guests))
	require.NoError(t, err)
	return b
}
