package repository

import (
	"context"
	"errors"

	"emptyleg-marketplace/models/booking"
	"emptyleg-marketplace/types"

	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	GetByID(ctx context.Context, id uint) (*booking.Booking, error)
	ListByCustomer(ctx context.Context, customerID uint, offset, limit int) ([]booking.Booking, int64, error)
	ListByOperator(ctx context.Context, operatorID uint, offset, limit int) ([]booking.Booking, int64, error)
	ListAll(ctx context.Context, offset, limit int) ([]booking.Booking, int64, error)
	// Cancel flips a confirmed booking to cancelled in a single guarded
	// update. Returns false when the row was no longer confirmed.
	Cancel(ctx context.Context, id uint) (bool, error)
}

type GormBookingRepository struct {
	db *gorm.DB
}

func (r *GormBookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *GormBookingRepository) GetByID(ctx context.Context, id uint) (*booking.Booking, error) {
	var b booking.Booking
	err := r.db.WithContext(ctx).
		Preload("Flight").Preload("Customer").Preload("Passengers").
		First(&b, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *GormBookingRepository) list(ctx context.Context, scope func(*gorm.DB) *gorm.DB, offset, limit int) ([]booking.Booking, int64, error) {
	q := scope(r.db.WithContext(ctx).Model(&booking.Booking{}))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}

	bookings := make([]booking.Booking, 0)
	if err := q.Preload("Flight").Preload("Customer").Preload("Passengers").Find(&bookings).Error; err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *GormBookingRepository) ListByCustomer(ctx context.Context, customerID uint, offset, limit int) ([]booking.Booking, int64, error) {
	return r.list(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("customer_id = ?", customerID)
	}, offset, limit)
}

func (r *GormBookingRepository) ListByOperator(ctx context.Context, operatorID uint, offset, limit int) ([]booking.Booking, int64, error) {
	return r.list(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Joins("JOIN flights ON flights.id = bookings.flight_id").
			Where("flights.operator_id = ?", operatorID)
	}, offset, limit)
}

func (r *GormBookingRepository) ListAll(ctx context.Context, offset, limit int) ([]booking.Booking, int64, error) {
	return r.list(ctx, func(q *gorm.DB) *gorm.DB { return q }, offset, limit)
}

func (r *GormBookingRepository) Cancel(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Model(&booking.Booking{}).
		Where("id = ? AND status = ?", id, booking.BookingStatusConfirmed).
		Update("status", booking.BookingStatusCancelled)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

var _ BookingRepository = (*GormBookingRepository)(nil)
