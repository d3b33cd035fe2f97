// Package airport owns the airport moderation workflow and the approved-set
// search backing the origin/destination autocomplete.
package airport

import (
	"context"
	"strings"

	airportModel "emptyleg-marketplace/models/airport"
	"emptyleg-marketplace/repository"
	"emptyleg-marketplace/types"
	airportTypes "emptyleg-marketplace/types/airport"
)

// SearchPageSize caps autocomplete results.
const SearchPageSize = 50

// SearchCache is the read-through cache in front of the approved-airport
// search. A nil cache disables caching.
type SearchCache interface {
	GetSearch(ctx context.Context, query string) ([]airportModel.Airport, error)
	SetSearch(ctx context.Context, query string, airports []airportModel.Airport) error
	// Flush drops every cached search result. Called when the approved set
	// changes.
	Flush(ctx context.Context) error
}

type UseCase interface {
	Submit(ctx context.Context, creator *types.AuthUser, req airportTypes.AirportSubmitRequest) (*airportModel.Airport, error)
	Review(ctx context.Context, admin *types.AuthUser, airportID uint, decision airportModel.AirportStatus, req airportTypes.AirportReviewRequest) (*airportModel.Airport, error)
	SearchApproved(ctx context.Context, query string) ([]airportModel.Airport, error)
	PendingList(ctx context.Context, admin *types.AuthUser) ([]airportModel.Airport, error)
	ListMine(ctx context.Context, caller *types.AuthUser) ([]airportModel.Airport, error)
}

type Service struct {
	store repository.Store
	cache SearchCache
}

func NewService(store repository.Store, cache SearchCache) *Service {
	return &Service{store: store, cache: cache}
}

// Submit files a custom airport as pending. The code is uppercased and only
// collides against approved rows, so a rejected code can be resubmitted.
func (s *Service) Submit(ctx context.Context, creator *types.AuthUser, req airportTypes.AirportSubmitRequest) (*airportModel.Airport, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))

	exists, err := s.store.Airports().ApprovedCodeExists(ctx, code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, types.NewConflictError("airport code %s is already in use", code)
	}

	a := &airportModel.Airport{
		Code:      code,
		Name:      req.Name,
		City:      req.City,
		Country:   req.Country,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Status:    airportModel.AirportStatusPending,
	}
	if creator != nil {
		creatorID := creator.UserID
		a.CreatedByID = &creatorID
	}

	if err := s.store.Airports().Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Review resolves a pending airport. Approval requires coordinates, taken
// from the submission or from the admin's payload.
func (s *Service) Review(ctx context.Context, admin *types.AuthUser, airportID uint, decision airportModel.AirportStatus, req airportTypes.AirportReviewRequest) (*airportModel.Airport, error) {
	if !admin.IsAdmin() {
		return nil, types.NewAuthorizationError("only admins may review airports")
	}
	if decision != airportModel.AirportStatusApproved && decision != airportModel.AirportStatusRejected {
		return nil, types.NewValidationError("decision must be approved or rejected")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.store.Airports().GetByID(ctx, airportID)
	if err != nil {
		return nil, err
	}
	if !a.Status.CanBeReviewed() {
		return nil, &types.InvalidStateTransition{Entity: "airport", From: a.Status.String(), Action: "review"}
	}

	lat, lng := req.Latitude, req.Longitude
	if lat == nil {
		lat = a.Latitude
	}
	if lng == nil {
		lng = a.Longitude
	}
	if decision == airportModel.AirportStatusApproved && (lat == nil || lng == nil) {
		return nil, types.NewValidationError("latitude and longitude are required to approve an airport")
	}

	ok, err := s.store.Airports().Review(ctx, a.ID, decision, admin.UserID, lat, lng)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &types.InvalidStateTransition{Entity: "airport", From: a.Status.String(), Action: "review"}
	}

	// A changed approved set invalidates cached searches.
	if s.cache != nil && decision == airportModel.AirportStatusApproved {
		_ = s.cache.Flush(ctx)
	}

	return s.store.Airports().GetByID(ctx, airportID)
}

// SearchApproved serves the autocomplete: case-insensitive substring match
// over the approved set, read-through cached per normalized query.
func (s *Service) SearchApproved(ctx context.Context, query string) ([]airportModel.Airport, error) {
	normalized := strings.ToLower(strings.TrimSpace(query))

	if s.cache != nil {
		if cached, err := s.cache.GetSearch(ctx, normalized); err == nil && cached != nil {
			return cached, nil
		}
	}

	airports, err := s.store.Airports().SearchApproved(ctx, normalized, SearchPageSize)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetSearch(ctx, normalized, airports)
	}
	return airports, nil
}

// PendingList is the admin moderation queue.
func (s *Service) PendingList(ctx context.Context, admin *types.AuthUser) ([]airportModel.Airport, error) {
	if !admin.IsAdmin() {
		return nil, types.NewAuthorizationError("only admins may list pending airports")
	}
	return s.store.Airports().ListByStatus(ctx, airportModel.AirportStatusPending)
}

// ListMine returns the caller's own submissions in every status.
func (s *Service) ListMine(ctx context.Context, caller *types.AuthUser) ([]airportModel.Airport, error) {
	if caller == nil {
		return nil, types.ErrUnauthenticated
	}
	return s.store.Airports().ListByCreator(ctx, caller.UserID)
}

var _ UseCase = (*Service)(nil)
