package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store bundles the per-aggregate repositories and lets services span them
// inside one database transaction.
type Store interface {
	Users() UserRepository
	Customers() CustomerRepository
	Operators() OperatorRepository
	Flights() FlightRepository
	Airports() AirportRepository
	Bookings() BookingRepository
	Notifications() NotificationRepository
	RefreshTokens() RefreshTokenRepository

	// Tx runs fn against a Store bound to a single transaction. Any error
	// rolls the whole transaction back.
	Tx(ctx context.Context, fn func(Store) error) error
}

type GormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Users() UserRepository                 { return &GormUserRepository{db: s.db} }
func (s *GormStore) Customers() CustomerRepository         { return &GormCustomerRepository{db: s.db} }
func (s *GormStore) Operators() OperatorRepository         { return &GormOperatorRepository{db: s.db} }
func (s *GormStore) Flights() FlightRepository             { return &GormFlightRepository{db: s.db} }
func (s *GormStore) Airports() AirportRepository           { return &GormAirportRepository{db: s.db} }
func (s *GormStore) Bookings() BookingRepository           { return &GormBookingRepository{db: s.db} }
func (s *GormStore) Notifications() NotificationRepository { return &GormNotificationRepository{db: s.db} }
func (s *GormStore) RefreshTokens() RefreshTokenRepository {
	return &GormRefreshTokenRepository{db: s.db}
}

func (s *GormStore) Tx(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

var _ Store = (*GormStore)(nil)
