// Package flight owns the flight lifecycle state machine: creation into
// pending, admin review, cancellation, the departure sweep, and the
// role-filtered listing built on the visibility policies.
package flight

import (
	"context"
	"fmt"
	"time"

	flightModel "emptyleg-marketplace/models/flight"
	"emptyleg-marketplace/models/notification"
	"emptyleg-marketplace/repository"
	"emptyleg-marketplace/services/visibility"
	"emptyleg-marketplace/types"
	flightTypes "emptyleg-marketplace/types/flight"

	"github.com/jinzhu/now"
)

type UseCase interface {
	Create(ctx context.Context, operatorUserID uint, req flightTypes.FlightCreateRequest) (*flightModel.Flight, error)
	List(ctx context.Context, caller *types.AuthUser, q flightTypes.FlightListQuery) ([]flightModel.Flight, types.Pagination, error)
	Get(ctx context.Context, caller *types.AuthUser, id uint) (*flightModel.Flight, error)
	Review(ctx context.Context, admin *types.AuthUser, flightID uint, req flightTypes.FlightReviewRequest) (*flightModel.Flight, error)
	Cancel(ctx context.Context, caller *types.AuthUser, flightID uint) error
	MarkDeparted(ctx context.Context) (int64, error)
}

// Service is the flight status engine.
type Service struct {
	store repository.Store
}

func NewService(store repository.Store) *Service {
	return &Service{store: store}
}

// Create validates the listing, persists it in status pending, bumps the
// operator's flight counter and emits the flight_submitted notification,
// all inside one transaction.
func (s *Service) Create(ctx context.Context, operatorUserID uint, req flightTypes.FlightCreateRequest) (*flightModel.Flight, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	op, err := s.store.Operators().GetByUserID(ctx, operatorUserID)
	if err != nil {
		if err == types.ErrNotFound {
			return nil, types.NewAuthorizationError("caller has no operator profile")
		}
		return nil, err
	}

	f := &flightModel.Flight{
		OperatorID:         op.ID,
		AircraftModel:      req.AircraftModel,
		OriginCode:         req.OriginCode,
		OriginName:         req.OriginName,
		OriginCity:         req.OriginCity,
		OriginCountry:      req.OriginCountry,
		DestinationCode:    req.DestinationCode,
		DestinationName:    req.DestinationName,
		DestinationCity:    req.DestinationCity,
		DestinationCountry: req.DestinationCountry,
		DepartureDatetime:  req.DepartureDatetime,
		ArrivalDatetime:    req.ArrivalDatetime,
		MarketPrice:        req.MarketPrice,
		EmptyLegPrice:      req.EmptyLegPrice,
		TotalSeats:         req.TotalSeats,
		AvailableSeats:     req.AvailableSeats,
		Status:             flightModel.FlightStatusPending,
		Description:        req.Description,
		Images:             flightModel.StringSlice(req.Images),
	}

	err = s.store.Tx(ctx, func(tx repository.Store) error {
		if err := tx.Flights().Create(ctx, f); err != nil {
			return err
		}
		if err := tx.Operators().IncrementFlightCount(ctx, op.ID, 1); err != nil {
			return err
		}
		actorID := operatorUserID
		if err := tx.Flights().AppendStatusEvent(ctx, &flightModel.FlightStatusEvent{
			FlightID: f.ID,
			Status:   flightModel.FlightStatusPending,
			ActorID:  &actorID,
		}); err != nil {
			return err
		}
		return tx.Notifications().Create(ctx, &notification.Notification{
			UserID:   op.UserID,
			FlightID: &f.ID,
			Type:     notification.TypeFlightSubmitted,
			Title:    "Flight submitted",
			Message: fmt.Sprintf("Your flight %s → %s on %s was submitted for review.",
				f.OriginCode, f.DestinationCode, f.DepartureDatetime.Format("2006-01-02")),
		})
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// List applies the caller's visibility policy on top of the optional
// narrowing filters and returns one page, departure time ascending.
func (s *Service) List(ctx context.Context, caller *types.AuthUser, q flightTypes.FlightListQuery) ([]flightModel.Flight, types.Pagination, error) {
	filter, err := s.buildFilter(q)
	if err != nil {
		return nil, types.Pagination{}, err
	}

	policy, err := s.policyFor(ctx, caller)
	if err != nil {
		return nil, types.Pagination{}, err
	}
	filter = policy.Apply(filter)

	flights, total, err := s.store.Flights().List(ctx, filter)
	if err != nil {
		return nil, types.Pagination{}, err
	}

	page := 1
	if filter.Limit > 0 {
		page = filter.Offset/filter.Limit + 1
	}
	return flights, types.Pagination{Total: total, Page: page, Limit: filter.Limit}, nil
}

// Get returns one flight subject to the same visibility rules as List.
// Flights outside the caller's visibility read as not found rather than
// forbidden, so their existence is not revealed.
func (s *Service) Get(ctx context.Context, caller *types.AuthUser, id uint) (*flightModel.Flight, error) {
	f, err := s.store.Flights().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	policy, err := s.policyFor(ctx, caller)
	if err != nil {
		return nil, err
	}
	if !policy.CanView(f) {
		return nil, types.ErrNotFound
	}
	return f, nil
}

// Review applies an admin approve/reject decision to a pending flight.
func (s *Service) Review(ctx context.Context, admin *types.AuthUser, flightID uint, req flightTypes.FlightReviewRequest) (*flightModel.Flight, error) {
	if !admin.IsAdmin() {
		return nil, types.NewAuthorizationError("only admins may review flights")
	}

	decision, err := req.Decision()
	if err != nil {
		return nil, err
	}

	f, err := s.store.Flights().GetByID(ctx, flightID)
	if err != nil {
		return nil, err
	}
	if !f.Status.CanBeReviewed() {
		return nil, &types.InvalidStateTransition{Entity: "flight", From: f.Status.String(), Action: "review"}
	}

	notifType := notification.TypeFlightApproved
	notifTitle := "Flight approved"
	notifMessage := fmt.Sprintf("Your flight %s → %s was approved and is now listed.", f.OriginCode, f.DestinationCode)
	if decision == flightModel.FlightStatusRejected {
		notifType = notification.TypeFlightDenied
		notifTitle = "Flight rejected"
		notifMessage = fmt.Sprintf("Your flight %s → %s was rejected.", f.OriginCode, f.DestinationCode)
	}

	err = s.store.Tx(ctx, func(tx repository.Store) error {
		reviewerID := admin.UserID
		ok, err := tx.Flights().TransitionStatus(ctx, f.ID, flightModel.FlightStatusPending, decision, &reviewerID)
		if err != nil {
			return err
		}
		if !ok {
			return &types.InvalidStateTransition{Entity: "flight", From: f.Status.String(), Action: "review"}
		}
		if err := tx.Flights().AppendStatusEvent(ctx, &flightModel.FlightStatusEvent{
			FlightID: f.ID,
			Status:   decision,
			ActorID:  &reviewerID,
		}); err != nil {
			return err
		}
		return tx.Notifications().Create(ctx, &notification.Notification{
			UserID:   f.Operator.UserID,
			FlightID: &f.ID,
			Type:     notifType,
			Title:    notifTitle,
			Message:  notifMessage,
		})
	})
	if err != nil {
		return nil, err
	}

	return s.store.Flights().GetByID(ctx, flightID)
}

// Cancel moves a flight to cancelled. Allowed for the owning operator and
// for admins, from any non-terminal status.
func (s *Service) Cancel(ctx context.Context, caller *types.AuthUser, flightID uint) error {
	f, err := s.store.Flights().GetByID(ctx, flightID)
	if err != nil {
		return err
	}

	if !caller.IsAdmin() {
		op, err := s.store.Operators().GetByUserID(ctx, caller.UserID)
		if err != nil || op.ID != f.OperatorID {
			return types.NewAuthorizationError("only the owning operator or an admin may cancel a flight")
		}
	}

	if !f.Status.CanBeCancelled() {
		return &types.InvalidStateTransition{Entity: "flight", From: f.Status.String(), Action: "cancel"}
	}

	return s.store.Tx(ctx, func(tx repository.Store) error {
		ok, err := tx.Flights().TransitionStatus(ctx, f.ID, f.Status, flightModel.FlightStatusCancelled, nil)
		if err != nil {
			return err
		}
		if !ok {
			return &types.InvalidStateTransition{Entity: "flight", From: f.Status.String(), Action: "cancel"}
		}
		actorID := caller.UserID
		if err := tx.Flights().AppendStatusEvent(ctx, &flightModel.FlightStatusEvent{
			FlightID: f.ID,
			Status:   flightModel.FlightStatusCancelled,
			ActorID:  &actorID,
		}); err != nil {
			return err
		}
		return tx.Notifications().Create(ctx, &notification.Notification{
			UserID:   f.Operator.UserID,
			FlightID: &f.ID,
			Type:     notification.TypeFlightCancelled,
			Title:    "Flight cancelled",
			Message:  fmt.Sprintf("Flight %s → %s was cancelled.", f.OriginCode, f.DestinationCode),
		})
	})
}

// MarkDeparted is the periodic sweep completing flights whose departure has
// passed. A single bulk update, safe to run repeatedly.
func (s *Service) MarkDeparted(ctx context.Context) (int64, error) {
	return s.store.Flights().MarkDeparted(ctx, time.Now())
}

func (s *Service) policyFor(ctx context.Context, caller *types.AuthUser) (visibility.Policy, error) {
	var operatorID uint
	if caller.IsOperator() {
		op, err := s.store.Operators().GetByUserID(ctx, caller.UserID)
		if err != nil {
			if err == types.ErrNotFound {
				return nil, types.NewAuthorizationError("caller has no operator profile")
			}
			return nil, err
		}
		operatorID = op.ID
	}
	return visibility.PolicyFor(caller, operatorID), nil
}

func (s *Service) buildFilter(q flightTypes.FlightListQuery) (repository.FlightFilter, error) {
	filter := repository.FlightFilter{
		OriginCity:      q.OriginCity,
		DestinationCity: q.DestinationCity,
		MinSeats:        q.Passengers,
	}

	if q.Status != "" {
		status, err := flightModel.ParseFlightStatus(q.Status)
		if err != nil {
			return filter, types.NewValidationError("%v", err)
		}
		filter.Statuses = []flightModel.FlightStatus{status}
	}

	if q.Date != "" {
		day, err := time.Parse("2006-01-02", q.Date)
		if err != nil {
			return filter, types.NewValidationError("date must be formatted as YYYY-MM-DD")
		}
		from := now.With(day).BeginningOfDay()
		to := now.With(day).EndOfDay()
		filter.DepartureFrom = &from
		filter.DepartureTo = &to
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	filter.Offset = (page - 1) * limit
	filter.Limit = limit

	return filter, nil
}

var _ UseCase = (*Service)(nil)
