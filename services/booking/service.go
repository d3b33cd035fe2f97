// Package booking reserves seats on approved flights. The seat decrement is
// a single guarded update so concurrent bookings cannot oversell a flight.
package booking

import (
	"context"
	"fmt"
	"time"

	bookingModel "emptyleg-marketplace/models/booking"
	flightModel "emptyleg-marketplace/models/flight"
	"emptyleg-marketplace/models/notification"
	"emptyleg-marketplace/repository"
	"emptyleg-marketplace/types"
	bookingTypes "emptyleg-marketplace/types/booking"

	"github.com/google/uuid"
)

type UseCase interface {
	Create(ctx context.Context, caller *types.AuthUser, req bookingTypes.BookingCreateRequest) (*bookingModel.Booking, error)
	Cancel(ctx context.Context, caller *types.AuthUser, bookingID uint) error
	List(ctx context.Context, caller *types.AuthUser, page, limit int) ([]bookingModel.Booking, types.Pagination, error)
}

type Service struct {
	store repository.Store
}

func NewService(store repository.Store) *Service {
	return &Service{store: store}
}

// Create books seats for a customer on an approved, not-yet-departed
// flight. Booking row, passenger rows, the seat decrement and the
// confirmation notification commit together or not at all.
func (s *Service) Create(ctx context.Context, caller *types.AuthUser, req bookingTypes.BookingCreateRequest) (*bookingModel.Booking, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cust, err := s.store.Customers().GetByUserID(ctx, caller.UserID)
	if err != nil {
		if err == types.ErrNotFound {
			return nil, types.NewAuthorizationError("caller has no customer profile")
		}
		return nil, err
	}

	f, err := s.store.Flights().GetByID(ctx, req.FlightID)
	if err != nil {
		return nil, err
	}
	if !f.Status.IsBookable() {
		return nil, &types.InvalidStateTransition{Entity: "flight", From: f.Status.String(), Action: "book"}
	}
	// A departed flight keeps status approved until the sweep runs, so the
	// status check alone is not enough.
	if !f.DepartureDatetime.After(time.Now()) {
		return nil, types.NewValidationError("flight %d has already departed", f.ID)
	}

	b := &bookingModel.Booking{
		Reference:      uuid.NewString(),
		FlightID:       f.ID,
		CustomerID:     cust.ID,
		PassengerCount: req.PassengerCount,
		TotalAmount:    float64(req.PassengerCount) * f.EmptyLegPrice,
		PaymentStatus:  bookingModel.PaymentStatusPending,
		Status:         bookingModel.BookingStatusConfirmed,
	}
	for _, p := range req.Passengers {
		b.Passengers = append(b.Passengers, bookingModel.Passenger{
			FullName:       p.FullName,
			DocumentType:   p.DocumentType,
			DocumentNumber: p.DocumentNumber,
		})
	}

	err = s.store.Tx(ctx, func(tx repository.Store) error {
		// The WHERE guard on the decrement is what prevents overselling;
		// zero rows affected means someone else took the seats first.
		ok, err := tx.Flights().ReserveSeats(ctx, f.ID, req.PassengerCount)
		if err != nil {
			return err
		}
		if !ok {
			return types.NewConflictError("not enough available seats on flight %d", f.ID)
		}
		if err := tx.Flights().MarkBookedIfFull(ctx, f.ID); err != nil {
			return err
		}
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return err
		}
		return tx.Notifications().Create(ctx, &notification.Notification{
			UserID:   caller.UserID,
			FlightID: &f.ID,
			Type:     notification.TypeBookingConfirmed,
			Title:    "Booking confirmed",
			Message: fmt.Sprintf("Booking %s confirmed: %d seat(s) on %s → %s.",
				b.Reference, b.PassengerCount, f.OriginCode, f.DestinationCode),
		})
	})
	if err != nil {
		return nil, err
	}

	return s.store.Bookings().GetByID(ctx, b.ID)
}

// Cancel voids a confirmed booking and returns its seats to the flight. A
// full flight that was flipped to booked reopens if departure has not
// passed.
func (s *Service) Cancel(ctx context.Context, caller *types.AuthUser, bookingID uint) error {
	b, err := s.store.Bookings().GetByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if !caller.IsAdmin() {
		cust, err := s.store.Customers().GetByUserID(ctx, caller.UserID)
		if err != nil || cust.ID != b.CustomerID {
			return types.NewAuthorizationError("only the booking owner or an admin may cancel a booking")
		}
	}

	if !b.Status.CanBeCancelled() {
		return &types.InvalidStateTransition{Entity: "booking", From: b.Status.String(), Action: "cancel"}
	}

	return s.store.Tx(ctx, func(tx repository.Store) error {
		ok, err := tx.Bookings().Cancel(ctx, b.ID)
		if err != nil {
			return err
		}
		if !ok {
			return &types.InvalidStateTransition{Entity: "booking", From: b.Status.String(), Action: "cancel"}
		}
		// Seats only go back onto a flight that can still sell them. A
		// departed flight is left for the sweep to complete.
		if b.Flight.DepartureDatetime.After(time.Now()) {
			if err := tx.Flights().ReleaseSeats(ctx, b.FlightID, b.PassengerCount); err != nil {
				return err
			}
			if b.Flight.Status == flightModel.FlightStatusBooked {
				if err := tx.Flights().ReopenIfBooked(ctx, b.FlightID); err != nil {
					return err
				}
			}
		}
		return tx.Notifications().Create(ctx, &notification.Notification{
			UserID:   b.Customer.UserID,
			FlightID: &b.FlightID,
			Type:     notification.TypeBookingCancelled,
			Title:    "Booking cancelled",
			Message:  fmt.Sprintf("Booking %s was cancelled and its seats released.", b.Reference),
		})
	})
}

// List pages the bookings the caller may see: customers their own,
// operators those against their flights, admins everything.
func (s *Service) List(ctx context.Context, caller *types.AuthUser, page, limit int) ([]bookingModel.Booking, types.Pagination, error) {
	if caller == nil {
		return nil, types.Pagination{}, types.ErrUnauthenticated
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := (page - 1) * limit

	var (
		bookings []bookingModel.Booking
		total    int64
		err      error
	)
	switch {
	case caller.IsAdmin():
		bookings, total, err = s.store.Bookings().ListAll(ctx, offset, limit)
	case caller.IsOperator():
		op, opErr := s.store.Operators().GetByUserID(ctx, caller.UserID)
		if opErr != nil {
			return nil, types.Pagination{}, types.NewAuthorizationError("caller has no operator profile")
		}
		bookings, total, err = s.store.Bookings().ListByOperator(ctx, op.ID, offset, limit)
	default:
		cust, custErr := s.store.Customers().GetByUserID(ctx, caller.UserID)
		if custErr != nil {
			return nil, types.Pagination{}, types.NewAuthorizationError("caller has no customer profile")
		}
		bookings, total, err = s.store.Bookings().ListByCustomer(ctx, cust.ID, offset, limit)
	}
	if err != nil {
		return nil, types.Pagination{}, err
	}

	return bookings, types.Pagination{Total: total, Page: page, Limit: limit}, nil
}

var _ UseCase = (*Service)(nil)
