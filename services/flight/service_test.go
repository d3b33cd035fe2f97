package flight

import (
	"context"
	"testing"
	"time"

	"emptyleg-marketplace/constants"
	flightModel "emptyleg-marketplace/models/flight"
	"emptyleg-marketplace/models/operator"
	"emptyleg-marketplace/repository"
	"emptyleg-marketplace/repository/mocks"
	"emptyleg-marketplace/types"
	flightTypes "emptyleg-marketplace/types/flight"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validCreateRequest() flightTypes.FlightCreateRequest {
	departure := time.Now().Add(48 * time.Hour)
	return flightTypes.FlightCreateRequest{
		AircraftModel:      "Gulfstream G650",
		OriginCode:         "TEB",
		OriginName:         "Teterboro Airport",
		OriginCity:         "Teterboro",
		OriginCountry:      "United States",
		DestinationCode:    "PBI",
		DestinationName:    "Palm Beach International Airport",
		DestinationCity:    "West Palm Beach",
		DestinationCountry: "United States",
		DepartureDatetime:  departure,
		ArrivalDatetime:    departure.Add(3 * time.Hour),
		MarketPrice:        42000,
		EmptyLegPrice:      9500,
		TotalSeats:         12,
		AvailableSeats:     12,
	}
}

func TestFlightService_Create_Success(t *testing.T) {
	store := mocks.NewStore()
	service := NewService(store)
	ctx := context.Background()

	op := &operator.Operator{ID: 5, UserID: 10, CompanyName: "JetRight"}
	store.OperatorRepo.On("GetByUserID", ctx, uint(10)).Return(op, nil).Once()
	store.FlightRepo.On("Create", ctx, mock.AnythingOfType("*flight.Flight")).Return(nil).Once()
	store.OperatorRepo.On("IncrementFlightCount", ctx, uint(5), 1).Return(nil).Once()
	store.FlightRepo.On("AppendStatusEvent", ctx, mock.AnythingOfType("*flight.FlightStatusEvent")).Return(nil).Once()
	store.NotificationRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

	f, err := service.Create(ctx, 10, validCreateRequest())

	assert.NoError(t, err)
	assert.NotNil(t, f)
	assert.Equal(t, flightModel.FlightStatusPending, f.Status)
	assert.Equal(t, uint(5), f.OperatorID)

	store.OperatorRepo.AssertExpectations(t)
	store.FlightRepo.AssertExpectations(t)
	store.NotificationRepo.AssertExpectations(t)
}

func TestFlightService_Create_PriceAboveMarket(t *testing.T) {
	store := mocks.NewStore()
	service := NewService(store)

	req := validCreateRequest()
	req.EmptyLegPrice = req.MarketPrice + 1

	f, err := service.Create(context.Background(), 10, req)

	assert.Error(t, err)
	assert.Nil(t, f)
	var validationErr *types.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	store.FlightRepo.AssertNotCalled(t, "Create")
}

func TestFlightService_Create_SeatsAboveTotal(t *testing.T) {
	store := mocks.NewStore()
	service := NewService(store)

	req := validCreateRequest()
	req.AvailableSeats = req.TotalSeats + 1

	_, err := service.Create(context.Background(), 10, req)

	var validationErr *types.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestFlightService_Create_NoOperatorProfile(t *testing.T) {
	store := mocks.NewStore()
	service := NewService(store)
	ctx := context.Background()

	store.OperatorRepo.On("GetByUserID", ctx, uint(10)).Return(nil, types.ErrNotFound).Once()

	_, err := service.Create(ctx, 10, validCreateRequest())

	var authzErr *types.AuthorizationError
	assert.ErrorAs(t, err, &authzErr)
	store.FlightRepo.AssertNotCalled(t, "Create")
}

func TestFlightService_List_CustomerStatusFilterIsOverridden(t *testing.T) {
	store := mocks.NewStore()
	service := NewService(store)
	ctx := context.Background()
	caller := &types.AuthUser{UserID: 3, Role: constants.RoleCustomer}

	store.FlightRepo.On("List", ctx, mock.MatchedBy(func(f repository.FlightFilter) bool {
		return len(f.Statuses) == 1 &&
			f.Statuses[0] == flightModel.FlightStatusApproved &&
			f.DepartureAfter != nil
	})).Return([]flightModel.Flight{}, int64(0), nil).Once()

	_, page, err := service.List(ctx, caller, flightTypes.FlightListQuery{Status: "pending"})

	assert.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.Limit)
	store.FlightRepo.AssertExpectations(t)
}

func TestFlightService_List_AcceptsAvailableAlias(t *testing.T) {
	store := mocks.NewStore()
	service := NewService(store)
	ctx := context.Background()
	caller := &types.AuthUser{UserID: 1, Role: constants.RoleAdmin}

	store.FlightRepo.On("List", ctx, mock.MatchedBy(func(f repository.FlightFilter) bool {
		return len(f.Statuses) == 1 && f.Statuses[0] == flightModel.FlightStatusApproved
	})).Return([]flightModel.Flight{}, int64(0), nil).Once()

	_, _, err := service.List(ctx, caller, flightTypes.FlightListQuery{Status: "available"})

	assert.NoError(t, err)
	store.FlightRepo.AssertExpectations(t)
}

func TestFlightService_List_RejectsUnknownStatus(t *testing.T) {
	store := mocks.NewStore()
	service := NewService(store)

	_, _, err := service.List(context.Background(), &types.AuthUser{UserID: 1, Role: constants.RoleAdmin},
		flightTypes.FlightListQuery{Status: "teleported"})

	var validationErr *types.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	store.FlightRepo.AssertNotCalled(t, "List")
}

func TestFlightService_Get_HiddenFlightReadsAsNotFound(t *testing.T) {
	store := mocks.NewStore()
	service := NewService(store)
	ctx := context.Background()

	pending := &flightModel.Flight{
		ID:                1,
		OperatorID:        5,
		Status:            flightModel.FlightStatusPending,
		DepartureDatetime: time.Now().Add(24 * time.Hour),
	}
	store.FlightRepo.On("GetByID", ctx, uint(1)).Return(pending, nil).Once()

	f, err := service.Get(ctx, &types.AuthUser{UserID: 3, Role: constants.RoleCustomer}, 1)

	assert.Nil(t, f)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestFlightService_Review_Approve(t *testing.T) {
	store := mocks.NewStore()
	service := NewService(store)
	ctx := context.Background()
	admin := &types.AuthUser{UserID: 99, Role: constants.RoleAdmin}

	pending := &flightModel.Flight{
		ID:         1,
		OperatorID: 5,
		Operator:   operator.Operator{ID: 5, UserID: 10},
		Status:     flightModel.FlightStatusPending,
		OriginCode: "TEB", DestinationCode: "PBI",
	}
	approved := &flightModel.Flight{ID: 1, OperatorID: 5, Status: flightModel.FlightStatusApproved}

	store.FlightRepo.On("GetByID", ctx, uint(1)).Return(pending, nil).Once()
	store.FlightRepo.On("TransitionStatus", ctx, uint(1),
		flightModel.FlightStatusPending, flightModel.FlightStatusApproved, mock.Anything).Return(true, nil).Once()
	store.FlightRepo.On("AppendStatusEvent", ctx, mock.Anything).Return(nil).Once()
	store.NotificationRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
	store.FlightRepo.On("GetByID", ctx, uint(1)).Return(approved, nil).Once()

	f, err := service.Review(ctx, admin, 1, flightTypes.FlightReviewRequest{Status: "approved"})

	assert.NoError(t, err)
	assert.Equal(t, flightModel.FlightStatusApproved, f.Status)
	store.FlightRepo.AssertExpectations(t)
	store.NotificationRepo.AssertExpectations(t)
}

func TestFlightService_Review_NonPending(t *testing.T) {
	store := mocks.NewStore()
	service := NewService(store)
	ctx := context.Background()
	admin := &types.AuthUser{UserID: 99, Role: constants.RoleAdmin}

	cancelled := &flightModel.Flight{ID: 2, Status: flightModel.FlightStatusCancelled}
	store.FlightRepo.On("GetByID", ctx, uint(2)).Return(cancelled, nil).Once()

	_, err := service.Review(ctx, admin, 2, flightTypes.FlightReviewRequest{Status: "approved"})

	var stateErr *types.InvalidStateTransition
	assert.ErrorAs(t, err, &stateErr)
	store.FlightRepo.AssertNotCalled(t, "TransitionStatus")
}

func TestFlightService_Review_NonAdmin(t *testing.T) {
	store := mocks.NewStore()
	service := NewService(store)

	_, err := service.Review(context.Background(),
		&types.AuthUser{UserID: 10, Role: constants.RoleOperator}, 1,
		flightTypes.FlightReviewRequest{Status: "approved"})

	var authzErr *types.AuthorizationError
	assert.ErrorAs(t, err, &authzErr)
	store.FlightRepo.AssertNotCalled(t, "GetByID")
}

func TestFlightService_Review_RejectsNonDecisionStatus(t *testing.T) {
	store := mocks.NewStore()
	service := NewService(store)
	admin := &types.AuthUser{UserID: 99, Role: constants.RoleAdmin}

	_, err := service.Review(context.Background(), admin, 1,
		flightTypes.FlightReviewRequest{Status: "booked"})

	var validationErr *types.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestFlightService_Cancel_ByOwner(t *testing.T) {
	store := mocks.NewStore()
	service := NewService(store)
	ctx := context.Background()
	caller := &types.AuthUser{UserID: 10, Role: constants.RoleOperator}

	f := &flightModel.Flight{
		ID:         1,
		OperatorID: 5,
		Operator:   operator.Operator{ID: 5, UserID: 10},
		Status:     flightModel.FlightStatusApproved,
	}
	store.FlightRepo.On("GetByID", ctx, uint(1)).Return(f, nil).Once()
	store.OperatorRepo.On("GetByUserID", ctx, uint(10)).Return(&operator.Operator{ID: 5, UserID: 10}, nil).Once()
	store.FlightRepo.On("TransitionStatus", ctx, uint(1),
		flightModel.FlightStatusApproved, flightModel.FlightStatusCancelled, (*uint)(nil)).Return(true, nil).Once()
	store.FlightRepo.On("AppendStatusEvent", ctx, mock.Anything).Return(nil).Once()
	store.NotificationRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

	err := service.Cancel(ctx, caller, 1)

	assert.NoError(t, err)
	store.FlightRepo.AssertExpectations(t)
}

func TestFlightService_Cancel_ByStrangerOperator(t *testing.T) {
	store := mocks.NewStore()
	service := NewService(store)
	ctx := context.Background()
	caller := &types.AuthUser{UserID: 77, Role: constants.RoleOperator}

	f := &flightModel.Flight{ID: 1, OperatorID: 5, Status: flightModel.FlightStatusApproved}
	store.FlightRepo.On("GetByID", ctx, uint(1)).Return(f, nil).Once()
	store.OperatorRepo.On("GetByUserID", ctx, uint(77)).Return(&operator.Operator{ID: 9, UserID: 77}, nil).Once()

	err := service.Cancel(ctx, caller, 1)

	var authzErr *types.AuthorizationError
	assert.ErrorAs(t, err, &authzErr)
	store.FlightRepo.AssertNotCalled(t, "TransitionStatus")
}

func TestFlightService_Cancel_TerminalStatus(t *testing.T) {
	store := mocks.NewStore()
	service := NewService(store)
	ctx := context.Background()
	admin := &types.AuthUser{UserID: 99, Role: constants.RoleAdmin}

	f := &flightModel.Flight{ID: 1, OperatorID: 5, Status: flightModel.FlightStatusCompleted}
	store.FlightRepo.On("GetByID", ctx, uint(1)).Return(f, nil).Once()

	err := service.Cancel(ctx, admin, 1)

	var stateErr *types.InvalidStateTransition
	assert.ErrorAs(t, err, &stateErr)
}

func TestFlightService_MarkDeparted(t *testing.T) {
	store := mocks.NewStore()
	service := NewService(store)
	ctx := context.Background()

	store.FlightRepo.On("MarkDeparted", ctx, mock.AnythingOfType("time.Time")).Return(int64(3), nil).Once()

	n, err := service.MarkDeparted(ctx)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)
	store.FlightRepo.AssertExpectations(t)
}
