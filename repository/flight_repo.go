package repository

import (
	"context"
	"errors"
	"time"

	"emptyleg-marketplace/models/flight"
	"emptyleg-marketplace/types"

	"gorm.io/gorm"
)

// FlightFilter describes one flight list query after the visibility policy
// has been applied. Zero values mean "no constraint".
type FlightFilter struct {
	Statuses        []flight.FlightStatus
	OperatorID      *uint
	DepartureAfter  *time.Time
	DepartureFrom   *time.Time
	DepartureTo     *time.Time
	OriginCity      string
	DestinationCity string
	MinSeats        int
	Offset          int
	Limit           int
}

type FlightRepository interface {
	Create(ctx context.Context, f *flight.Flight) error
	GetByID(ctx context.Context, id uint) (*flight.Flight, error)
	List(ctx context.Context, filter FlightFilter) ([]flight.Flight, int64, error)
	// TransitionStatus flips a flight from one status to another in a single
	// guarded update. Returns false when the row was no longer in the
	// expected prior status.
	TransitionStatus(ctx context.Context, id uint, from, to flight.FlightStatus, reviewerID *uint) (bool, error)
	// ReserveSeats decrements available seats only if enough remain.
	// Returns false when the guard failed.
	ReserveSeats(ctx context.Context, id uint, count int) (bool, error)
	ReleaseSeats(ctx context.Context, id uint, count int) error
	// MarkBookedIfFull flips an approved flight to booked once its seats hit
	// zero. No-op otherwise.
	MarkBookedIfFull(ctx context.Context, id uint) error
	// ReopenIfBooked flips a booked, not-yet-departed flight back to approved
	// after seats were released. No-op otherwise.
	ReopenIfBooked(ctx context.Context, id uint) error
	// MarkDeparted completes every approved or booked flight whose departure
	// has passed and zeroes its seats. Idempotent; returns the rows touched.
	MarkDeparted(ctx context.Context, cutoff time.Time) (int64, error)
	AppendStatusEvent(ctx context.Context, ev *flight.FlightStatusEvent) error
}

type GormFlightRepository struct {
	db *gorm.DB
}

func (r *GormFlightRepository) Create(ctx context.Context, f *flight.Flight) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *GormFlightRepository) GetByID(ctx context.Context, id uint) (*flight.Flight, error) {
	var f flight.Flight
	if err := r.db.WithContext(ctx).Preload("Operator").First(&f, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *GormFlightRepository) List(ctx context.Context, filter FlightFilter) ([]flight.Flight, int64, error) {
	q := r.db.WithContext(ctx).Model(&flight.Flight{})

	if len(filter.Statuses) > 0 {
		q = q.Where("status IN ?", filter.Statuses)
	}
	if filter.OperatorID != nil {
		q = q.Where("operator_id = ?", *filter.OperatorID)
	}
	if filter.DepartureAfter != nil {
		q = q.Where("departure_datetime > ?", *filter.DepartureAfter)
	}
	if filter.DepartureFrom != nil {
		q = q.Where("departure_datetime >= ?", *filter.DepartureFrom)
	}
	if filter.DepartureTo != nil {
		q = q.Where("departure_datetime <= ?", *filter.DepartureTo)
	}
	if filter.OriginCity != "" {
		q = q.Where("LOWER(origin_city) = LOWER(?)", filter.OriginCity)
	}
	if filter.DestinationCity != "" {
		q = q.Where("LOWER(destination_city) = LOWER(?)", filter.DestinationCity)
	}
	if filter.MinSeats > 0 {
		q = q.Where("available_seats >= ?", filter.MinSeats)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Secondary sort on id keeps repeated pages deterministic when
	// departure times collide.
	q = q.Order("departure_datetime ASC").Order("id ASC")
	if filter.Limit > 0 {
		q = q.Offset(filter.Offset).Limit(filter.Limit)
	}

	flights := make([]flight.Flight, 0)
	if err := q.Preload("Operator").Find(&flights).Error; err != nil {
		return nil, 0, err
	}
	return flights, total, nil
}

func (r *GormFlightRepository) TransitionStatus(ctx context.Context, id uint, from, to flight.FlightStatus, reviewerID *uint) (bool, error) {
	updates := map[string]interface{}{"status": to}
	if reviewerID != nil {
		updates["reviewed_by_id"] = *reviewerID
		updates["reviewed_at"] = time.Now()
	}
	res := r.db.WithContext(ctx).Model(&flight.Flight{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *GormFlightRepository) ReserveSeats(ctx context.Context, id uint, count int) (bool, error) {
	res := r.db.WithContext(ctx).Model(&flight.Flight{}).
		Where("id = ? AND available_seats >= ? AND status = ?", id, count, flight.FlightStatusApproved).
		UpdateColumn("available_seats", gorm.Expr("available_seats - ?", count))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *GormFlightRepository) ReleaseSeats(ctx context.Context, id uint, count int) error {
	return r.db.WithContext(ctx).Model(&flight.Flight{}).
		Where("id = ?", id).
		UpdateColumn("available_seats", gorm.Expr("LEAST(available_seats + ?, total_seats)", count)).Error
}

func (r *GormFlightRepository) MarkBookedIfFull(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&flight.Flight{}).
		Where("id = ? AND available_seats = 0 AND status = ?", id, flight.FlightStatusApproved).
		Update("status", flight.FlightStatusBooked).Error
}

func (r *GormFlightRepository) ReopenIfBooked(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&flight.Flight{}).
		Where("id = ? AND available_seats > 0 AND status = ? AND departure_datetime > ?",
			id, flight.FlightStatusBooked, time.Now()).
		Update("status", flight.FlightStatusApproved).Error
}

func (r *GormFlightRepository) MarkDeparted(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&flight.Flight{}).
		Where("status IN ? AND departure_datetime < ?",
			[]flight.FlightStatus{flight.FlightStatusApproved, flight.FlightStatusBooked}, cutoff).
		Updates(map[string]interface{}{
			"status":          flight.FlightStatusCompleted,
			"available_seats": 0,
		})
	return res.RowsAffected, res.Error
}

func (r *GormFlightRepository) AppendStatusEvent(ctx context.Context, ev *flight.FlightStatusEvent) error {
	return r.db.WithContext(ctx).Create(ev).Error
}

var _ FlightRepository = (*GormFlightRepository)(nil)
