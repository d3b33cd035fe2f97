package airport

import (
	"context"
	"testing"

	"emptyleg-marketplace/constants"
	airportModel "emptyleg-marketplace/models/airport"
	"emptyleg-marketplace/repository/mocks"
	"emptyleg-marketplace/types"
	airportTypes "emptyleg-marketplace/types/airport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockSearchCache struct {
	mock.Mock
}

func (m *mockSearchCache) GetSearch(ctx context.Context, query string) ([]airportModel.Airport, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]airportModel.Airport), args.Error(1)
}

func (m *mockSearchCache) SetSearch(ctx context.Context, query string, airports []airportModel.Airport) error {
	args := m.Called(ctx, query, airports)
	return args.Error(0)
}

func (m *mockSearchCache) Flush(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func floatPtr(v float64) *float64 { return &v }

func TestAirportService_Submit_Success(t *testing.T) {
	store := mocks.NewStore()
	service := NewService(store, nil)
	ctx := context.Background()
	creator := &types.AuthUser{UserID: 10, Role: constants.RoleOperator}

	store.AirportRepo.On("ApprovedCodeExists", ctx, "XYZ").Return(false, nil).Once()
	store.AirportRepo.On("Create", ctx, mock.AnythingOfType("*airport.Airport")).Return(nil).Once()

	a, err := service.Submit(ctx, creator, airportTypes.AirportSubmitRequest{
		Code:    "xyz",
		Name:    "Example Field",
		City:    "Exampleville",
		Country: "Nowhere",
	})

	assert.NoError(t, err)
	assert.Equal(t, "XYZ", a.Code)
	assert.Equal(t, airportModel.AirportStatusPending, a.Status)
	assert.NotNil(t, a.CreatedByID)
	assert.Equal(t, uint(10), *a.CreatedByID)
	store.AirportRepo.AssertExpectations(t)
}

func TestAirportService_Submit_ApprovedCodeCollision(t *testing.T) {
	store := mocks.NewStore()
	service := NewService(store, nil)
	ctx := context.Background()

	store.AirportRepo.On("ApprovedCodeExists", ctx, "TEB").Return(true, nil).Once()

	_, err := service.Submit(ctx, &types.AuthUser{UserID: 10, Role: constants.RoleOperator},
		airportTypes.AirportSubmitRequest{Code: "teb", Name: "Dup", City: "X", Country: "Y"})

	var conflictErr *types.ConflictError
	assert.ErrorAs(t, err, &conflictErr)
	store.AirportRepo.AssertNotCalled(t, "Create")
}

func TestAirportService_Review_ApproveRequiresCoordinates(t *testing.T) {
	store := mocks.NewStore()
	service := NewService(store, nil)
	ctx := context.Background()
	admin := &types.AuthUser{UserID: 99, Role: constants.RoleAdmin}

	pending := &airportModel.Airport{ID: 1, Code: "XYZ", Status: airportModel.AirportStatusPending}
	store.AirportRepo.On("GetByID", ctx, uint(1)).Return(pending, nil).Once()

	_, err := service.Review(ctx, admin, 1, airportModel.AirportStatusApproved, airportTypes.AirportReviewRequest{})

	var validationErr *types.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	store.AirportRepo.AssertNotCalled(t, "Review")
}

func TestAirportService_Review_ApproveWithAdminCoordinates(t *testing.T) {
	store := mocks.NewStore()
	cache := &mockSearchCache{}
	service := NewService(store, cache)
	ctx := context.Background()
	admin := &types.AuthUser{UserID: 99, Role: constants.RoleAdmin}

	pending := &airportModel.Airport{ID: 1, Code: "XYZ", Status: airportModel.AirportStatusPending}
	approved := &airportModel.Airport{ID: 1, Code: "XYZ", Status: airportModel.AirportStatusApproved}

	store.AirportRepo.On("GetByID", ctx, uint(1)).Return(pending, nil).Once()
	store.AirportRepo.On("Review", ctx, uint(1), airportModel.AirportStatusApproved, uint(99),
		mock.Anything, mock.Anything).Return(true, nil).Once()
	cache.On("Flush", ctx).Return(nil).Once()
	store.AirportRepo.On("GetByID", ctx, uint(1)).Return(approved, nil).Once()

	a, err := service.Review(ctx, admin, 1, airportModel.AirportStatusApproved, airportTypes.AirportReviewRequest{
		Latitude:  floatPtr(51.5),
		Longitude: floatPtr(-0.12),
	})

	assert.NoError(t, err)
	assert.Equal(t, airportModel.AirportStatusApproved, a.Status)
	store.AirportRepo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestAirportService_Review_RejectNeedsNoCoordinates(t *testing.T) {
	store := mocks.NewStore()
	cache := &mockSearchCache{}
	service := NewService(store, cache)
	ctx := context.Background()
	admin := &types.AuthUser{UserID: 99, Role: constants.RoleAdmin}

	pending := &airportModel.Airport{ID: 1, Code: "XYZ", Status: airportModel.AirportStatusPending}
	rejected := &airportModel.Airport{ID: 1, Code: "XYZ", Status: airportModel.AirportStatusRejected}

	store.AirportRepo.On("GetByID", ctx, uint(1)).Return(pending, nil).Once()
	store.AirportRepo.On("Review", ctx, uint(1), airportModel.AirportStatusRejected, uint(99),
		mock.Anything, mock.Anything).Return(true, nil).Once()
	store.AirportRepo.On("GetByID", ctx, uint(1)).Return(rejected, nil).Once()

	a, err := service.Review(ctx, admin, 1, airportModel.AirportStatusRejected, airportTypes.AirportReviewRequest{})

	assert.NoError(t, err)
	assert.Equal(t, airportModel.AirportStatusRejected, a.Status)
	// Rejections leave the approved set unchanged, so no cache flush.
	cache.AssertNotCalled(t, "Flush")
}

func TestAirportService_Review_NonAdmin(t *testing.T) {
	store := mocks.NewStore()
	service := NewService(store, nil)

	_, err := service.Review(context.Background(),
		&types.AuthUser{UserID: 10, Role: constants.RoleOperator},
		1, airportModel.AirportStatusApproved, airportTypes.AirportReviewRequest{})

	var authzErr *types.AuthorizationError
	assert.ErrorAs(t, err, &authzErr)
	store.AirportRepo.AssertNotCalled(t, "GetByID")
}

func TestAirportService_Review_AlreadyResolved(t *testing.T) {
	store := mocks.NewStore()
	service := NewService(store, nil)
	ctx := context.Background()
	admin := &types.AuthUser{UserID: 99, Role: constants.RoleAdmin}

	resolved := &airportModel.Airport{
		ID: 1, Code: "XYZ",
		Status:    airportModel.AirportStatusApproved,
		Latitude:  floatPtr(1),
		Longitude: floatPtr(2),
	}
	store.AirportRepo.On("GetByID", ctx, uint(1)).Return(resolved, nil).Once()

	_, err := service.Review(ctx, admin, 1, airportModel.AirportStatusApproved, airportTypes.AirportReviewRequest{})

	var stateErr *types.InvalidStateTransition
	assert.ErrorAs(t, err, &stateErr)
	store.AirportRepo.AssertNotCalled(t, "Review")
}

func TestAirportService_SearchApproved_CacheMissThenFill(t *testing.T) {
	store := mocks.NewStore()
	cache := &mockSearchCache{}
	service := NewService(store, cache)
	ctx := context.Background()

	results := []airportModel.Airport{{ID: 1, Code: "GVA", Status: airportModel.AirportStatusApproved}}

	cache.On("GetSearch", ctx, "gen").Return(nil, nil).Once()
	store.AirportRepo.On("SearchApproved", ctx, "gen", SearchPageSize).Return(results, nil).Once()
	cache.On("SetSearch", ctx, "gen", results).Return(nil).Once()

	got, err := service.SearchApproved(ctx, "  Gen ")

	assert.NoError(t, err)
	assert.Equal(t, results, got)
	cache.AssertExpectations(t)
	store.AirportRepo.AssertExpectations(t)
}

func TestAirportService_SearchApproved_CacheHit(t *testing.T) {
	store := mocks.NewStore()
	cache := &mockSearchCache{}
	service := NewService(store, cache)
	ctx := context.Background()

	cached := []airportModel.Airport{{ID: 1, Code: "GVA"}}
	cache.On("GetSearch", ctx, "gva").Return(cached, nil).Once()

	got, err := service.SearchApproved(ctx, "GVA")

	assert.NoError(t, err)
	assert.Equal(t, cached, got)
	store.AirportRepo.AssertNotCalled(t, "SearchApproved")
}

func TestAirportService_PendingList_NonAdmin(t *testing.T) {
	store := mocks.NewStore()
	service := NewService(store, nil)

	_, err := service.PendingList(context.Background(),
		&types.AuthUser{UserID: 3, Role: constants.RoleCustomer})

	var authzErr *types.AuthorizationError
	assert.ErrorAs(t, err, &authzErr)
}
