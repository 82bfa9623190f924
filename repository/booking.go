package repository

import (
	"context"
	"fmt"
	"time"

	"dinebook/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CapacityError reports that a slot cannot hold the requested party.
type CapacityError struct {
	Available int
	Requested int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("slot capacity exceeded: available %d, requested %d", e.Available, e.Requested)
}

type ListFilter struct {
	Status   model.BookingStatus
	DateFrom string
	DateTo   string
}

// BookingRepository is the ledger. Capacity is always derived from its rows.
type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func activeStatuses() []string {
	out := make([]string, 0, len(model.ActiveStatuses))
	for _, s := range model.ActiveStatuses {
		out = append(out, string(s))
	}
	return out
}

// Reserve sums the active guests of the booking's slot and inserts it as confirmed
// only when the remainder covers the party, all inside one transaction holding the slot row lock.
// It returns *CapacityError when the slot is too full.
func (r *BookingRepository) Reserve(ctx context.Context, booking *model.Booking, capacity int, lockTimeout time.Duration) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := lockSlot(tx, booking, lockTimeout); err != nil {
		tx.Rollback()
		return err
	}

	var booked int
	if err := tx.Model(&model.Booking{}).
		Select("COALESCE(SUM(guests), 0)").
		Where("restaurant_id = ? AND slot_date = ? AND slot_time = ? AND status IN ?",
			booking.RestaurantID, booking.Date, booking.Time, activeStatuses()).
		Scan(&booked).Error; err != nil {
		tx.Rollback()
		return err
	}

	available := capacity - booked
	if available < booking.Guests {
		tx.Rollback()
		return &CapacityError{Available: available, Requested: booking.Guests}
	}

	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	booking.Status = model.BookingConfirmed
	if err := tx.Create(booking).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// lockSlot makes sure the partition row exists and, on postgres, holds it FOR UPDATE
// until the transaction ends. Waiting longer than timeout fails the statement.
func lockSlot(tx *gorm.DB, booking *model.Booking, timeout time.Duration) error {
	postgres := isPostgres(tx)
	if postgres && timeout > 0 {
		if err := tx.Exec(fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", timeout.Milliseconds())).Error; err != nil {
			return err
		}
	}

	row := model.SlotLock{RestaurantID: booking.RestaurantID, Date: booking.Date, Time: booking.Time}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
		return err
	}
	if !postgres {
		return nil
	}

	var locked model.SlotLock
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("restaurant_id = ? AND slot_date = ? AND slot_time = ?", booking.RestaurantID, booking.Date, booking.Time).
		Take(&locked).Error
}

func (r *BookingRepository) FindForCustomer(ctx context.Context, id, customerID string) (*model.Booking, error) {
	var booking model.Booking
	if err := r.db.WithContext(ctx).
		Preload("Restaurant").
		Where("id = ? AND customer_id = ?", id, customerID).
		First(&booking).Error; err != nil {
		return nil, notFound(err)
	}
	return &booking, nil
}

// ListByCustomer returns the customer's bookings, newest first. Date bounds are inclusive.
func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID string, filter ListFilter) ([]model.Booking, error) {
	query := r.db.WithContext(ctx).Preload("Restaurant").Where("customer_id = ?", customerID)
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.DateFrom != "" {
		query = query.Where("slot_date >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		query = query.Where("slot_date <= ?", filter.DateTo)
	}

	bookings := []model.Booking{}
	if err := query.Order("created_at DESC").Order("id DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// CancelIfActive flips an active booking to cancelled. Zero rows means it was not active.
func (r *BookingRepository) CancelIfActive(ctx context.Context, id, customerID string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Booking{}).
		Where("id = ? AND customer_id = ? AND status IN ?", id, customerID, activeStatuses()).
		Update("status", string(model.BookingCancelled))
	return result.RowsAffected, result.Error
}

// SlotGuestTotals maps slot time to active guests booked at that time for one restaurant day.
func (r *BookingRepository) SlotGuestTotals(ctx context.Context, restaurantID, date string) (map[string]int, error) {
	var rows []struct {
		SlotTime string
		Guests   int
	}
	if err := r.db.WithContext(ctx).Model(&model.Booking{}).
		Select("slot_time, COALESCE(SUM(guests), 0) AS guests").
		Where("restaurant_id = ? AND slot_date = ? AND status IN ?", restaurantID, date, activeStatuses()).
		Group("slot_time").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	totals := make(map[string]int, len(rows))
	for _, row := range rows {
		totals[row.SlotTime] = row.Guests
	}
	return totals, nil
}

// Stats counts a customer's bookings. Upcoming means confirmed with a slot after today/clock.
func (r *BookingRepository) Stats(ctx context.Context, customerID, today, clock string) (model.BookingStats, error) {
	var stats model.BookingStats
	err := r.db.WithContext(ctx).Model(&model.Booking{}).
		Select(`COUNT(*) AS total_bookings,
			COALESCE(SUM(CASE WHEN status = ? AND (slot_date > ? OR (slot_date = ? AND slot_time > ?)) THEN 1 ELSE 0 END), 0) AS upcoming_bookings,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS completed_bookings,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS cancelled_bookings`,
			string(model.BookingConfirmed), today, today, clock,
			string(model.BookingCompleted),
			string(model.BookingCancelled)).
		Where("customer_id = ?", customerID).
		Scan(&stats).Error
	return stats, err
}

// CompletePast marks confirmed bookings dated before today as completed.
func (r *BookingRepository) CompletePast(ctx context.Context, today string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Booking{}).
		Where("status = ? AND slot_date < ?", string(model.BookingConfirmed), today).
		Update("status", string(model.BookingCompleted))
	return result.RowsAffected, result.Error
}

// PurgeSlotLocks drops partition rows for days that can no longer be booked.
func (r *BookingRepository) PurgeSlotLocks(ctx context.Context, today string) (int64, error) {
	result := r.db.WithContext(ctx).Where("slot_date < ?", today).Delete(&model.SlotLock{})
	return result.RowsAffected, result.Error
}
