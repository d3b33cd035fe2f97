// Package mocks provides testify mocks of the repository interfaces for
// service tests.
package mocks

import (
	"context"
	"time"

	"emptyleg-marketplace/models/airport"
	"emptyleg-marketplace/models/booking"
	"emptyleg-marketplace/models/customer"
	"emptyleg-marketplace/models/flight"
	"emptyleg-marketplace/models/notification"
	"emptyleg-marketplace/models/operator"
	"emptyleg-marketplace/models/user"
	"emptyleg-marketplace/repository"

	"github.com/stretchr/testify/mock"
)

// Store wires the repository mocks together. Tx runs the callback against
// the same store, so expectations set on the mocks cover transactional calls
// too.
type Store struct {
	UserRepo         UserRepository
	CustomerRepo     CustomerRepository
	OperatorRepo     OperatorRepository
	FlightRepo       FlightRepository
	AirportRepo      AirportRepository
	BookingRepo      BookingRepository
	NotificationRepo NotificationRepository
	RefreshTokenRepo RefreshTokenRepository
}

func NewStore() *Store { return &Store{} }

func (s *Store) Users() repository.UserRepository                 { return &s.UserRepo }
func (s *Store) Customers() repository.CustomerRepository         { return &s.CustomerRepo }
func (s *Store) Operators() repository.OperatorRepository         { return &s.OperatorRepo }
func (s *Store) Flights() repository.FlightRepository             { return &s.FlightRepo }
func (s *Store) Airports() repository.AirportRepository           { return &s.AirportRepo }
func (s *Store) Bookings() repository.BookingRepository           { return &s.BookingRepo }
func (s *Store) Notifications() repository.NotificationRepository { return &s.NotificationRepo }
func (s *Store) RefreshTokens() repository.RefreshTokenRepository { return &s.RefreshTokenRepo }

func (s *Store) Tx(ctx context.Context, fn func(repository.Store) error) error {
	return fn(s)
}

var _ repository.Store = (*Store)(nil)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type CustomerRepository struct {
	mock.Mock
}

func (m *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CustomerRepository) GetByUserID(ctx context.Context, userID uint) (*customer.Customer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

type OperatorRepository struct {
	mock.Mock
}

func (m *OperatorRepository) Create(ctx context.Context, o *operator.Operator) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *OperatorRepository) GetByID(ctx context.Context, id uint) (*operator.Operator, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operator.Operator), args.Error(1)
}

func (m *OperatorRepository) GetByUserID(ctx context.Context, userID uint) (*operator.Operator, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*operator.Operator), args.Error(1)
}

func (m *OperatorRepository) IncrementFlightCount(ctx context.Context, id uint, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func (m *OperatorRepository) RecountFlights(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type FlightRepository struct {
	mock.Mock
}

func (m *FlightRepository) Create(ctx context.Context, f *flight.Flight) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *FlightRepository) GetByID(ctx context.Context, id uint) (*flight.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*flight.Flight), args.Error(1)
}

func (m *FlightRepository) List(ctx context.Context, filter repository.FlightFilter) ([]flight.Flight, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]flight.Flight), args.Get(1).(int64), args.Error(2)
}

func (m *FlightRepository) TransitionStatus(ctx context.Context, id uint, from, to flight.FlightStatus, reviewerID *uint) (bool, error) {
	args := m.Called(ctx, id, from, to, reviewerID)
	return args.Bool(0), args.Error(1)
}

func (m *FlightRepository) ReserveSeats(ctx context.Context, id uint, count int) (bool, error) {
	args := m.Called(ctx, id, count)
	return args.Bool(0), args.Error(1)
}

func (m *FlightRepository) ReleaseSeats(ctx context.Context, id uint, count int) error {
	args := m.Called(ctx, id, count)
	return args.Error(0)
}

func (m *FlightRepository) MarkBookedIfFull(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *FlightRepository) ReopenIfBooked(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *FlightRepository) MarkDeparted(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func (m *FlightRepository) AppendStatusEvent(ctx context.Context, ev *flight.FlightStatusEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

type AirportRepository struct {
	mock.Mock
}

func (m *AirportRepository) Create(ctx context.Context, a *airport.Airport) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *AirportRepository) GetByID(ctx context.Context, id uint) (*airport.Airport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*airport.Airport), args.Error(1)
}

func (m *AirportRepository) ApprovedCodeExists(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *AirportRepository) SearchApproved(ctx context.Context, query string, limit int) ([]airport.Airport, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]airport.Airport), args.Error(1)
}

func (m *AirportRepository) ListByStatus(ctx context.Context, status airport.AirportStatus) ([]airport.Airport, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]airport.Airport), args.Error(1)
}

func (m *AirportRepository) ListByCreator(ctx context.Context, userID uint) ([]airport.Airport, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]airport.Airport), args.Error(1)
}

func (m *AirportRepository) Review(ctx context.Context, id uint, to airport.AirportStatus, reviewerID uint, lat, lng *float64) (bool, error) {
	args := m.Called(ctx, id, to, reviewerID, lat, lng)
	return args.Bool(0), args.Error(1)
}

type BookingRepository struct {
	mock.Mock
}

func (m *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *BookingRepository) GetByID(ctx context.Context, id uint) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *BookingRepository) ListByCustomer(ctx context.Context, customerID uint, offset, limit int) ([]booking.Booking, int64, error) {
	args := m.Called(ctx, customerID, offset, limit)
	return args.Get(0).([]booking.Booking), args.Get(1).(int64), args.Error(2)
}

func (m *BookingRepository) ListByOperator(ctx context.Context, operatorID uint, offset, limit int) ([]booking.Booking, int64, error) {
	args := m.Called(ctx, operatorID, offset, limit)
	return args.Get(0).([]booking.Booking), args.Get(1).(int64), args.Error(2)
}

func (m *BookingRepository) ListAll(ctx context.Context, offset, limit int) ([]booking.Booking, int64, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]booking.Booking), args.Get(1).(int64), args.Error(2)
}

func (m *BookingRepository) Cancel(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type NotificationRepository struct {
	mock.Mock
}

func (m *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *NotificationRepository) ListByUser(ctx context.Context, userID uint, unreadOnly bool, offset, limit int) ([]notification.Notification, int64, error) {
	args := m.Called(ctx, userID, unreadOnly, offset, limit)
	return args.Get(0).([]notification.Notification), args.Get(1).(int64), args.Error(2)
}

func (m *NotificationRepository) MarkRead(ctx context.Context, id, userID uint) (bool, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Error(1)
}

func (m *NotificationRepository) MarkAllRead(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type RefreshTokenRepository struct {
	mock.Mock
}

func (m *RefreshTokenRepository) Create(ctx context.Context, rt *user.RefreshToken) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}

func (m *RefreshTokenRepository) GetByHash(ctx context.Context, hash string) (*user.RefreshToken, error) {
	args := m.Called(ctx, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.RefreshToken), args.Error(1)
}

func (m *RefreshTokenRepository) Revoke(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *RefreshTokenRepository) RevokeAllForUser(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
