package auth

import (
	"context"
	"testing"
	"time"

	"emptyleg-marketplace/constants"
	customerModel "emptyleg-marketplace/models/customer"
	userModel "emptyleg-marketplace/models/user"
	"emptyleg-marketplace/repository/mocks"
	"emptyleg-marketplace/types"
	authTypes "emptyleg-marketplace/types/auth"
	"emptyleg-marketplace/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testSecret = "test-secret"

func newTestService(store *mocks.Store) *Service {
	return NewService(store, testSecret, 15*time.Minute, 720*time.Hour)
}

func TestAuthService_Register_Customer(t *testing.T) {
	store := mocks.NewStore()
	service := newTestService(store)
	ctx := context.Background()

	store.UserRepo.On("EmailExists", ctx, "ada@example.com").Return(false, nil).Once()
	store.UserRepo.On("Create", ctx, mock.AnythingOfType("*user.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*userModel.User).ID = 7
		}).Return(nil).Once()
	store.CustomerRepo.On("Create", ctx, mock.MatchedBy(func(c *customerModel.Customer) bool {
		return c.UserID == 7 && c.FirstName == "Ada"
	})).Return(nil).Once()
	store.RefreshTokenRepo.On("Create", ctx, mock.AnythingOfType("*user.RefreshToken")).Return(nil).Once()

	resp, err := service.Register(ctx, authTypes.RegisterRequest{
		Email:     "ada@example.com",
		Password:  "correct-horse",
		Role:      constants.RoleCustomer,
		FirstName: "Ada",
		LastName:  "Lovelace",
	})

	assert.NoError(t, err)
	assert.Equal(t, uint(7), resp.User.ID)
	assert.NotEmpty(t, resp.Tokens.AccessToken)
	assert.NotEmpty(t, resp.Tokens.RefreshToken)
	// Password never stored in the clear.
	assert.NotEqual(t, "correct-horse", resp.User.PasswordHash)
	assert.True(t, utils.CheckPassword(resp.User.PasswordHash, "correct-horse"))

	// The access token carries the role claim verifiable with the secret.
	token, err := jwt.Parse(resp.Tokens.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	assert.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, constants.RoleCustomer, claims["role"])
	assert.Equal(t, "access", claims["type"])

	store.UserRepo.AssertExpectations(t)
	store.CustomerRepo.AssertExpectations(t)
	store.RefreshTokenRepo.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	store := mocks.NewStore()
	service := newTestService(store)
	ctx := context.Background()

	store.UserRepo.On("EmailExists", ctx, "dup@example.com").Return(true, nil).Once()

	_, err := service.Register(ctx, authTypes.RegisterRequest{
		Email:     "dup@example.com",
		Password:  "correct-horse",
		Role:      constants.RoleCustomer,
		FirstName: "A",
		LastName:  "B",
	})

	var conflictErr *types.ConflictError
	assert.ErrorAs(t, err, &conflictErr)
	store.UserRepo.AssertNotCalled(t, "Create")
}

func TestAuthService_Register_AdminRoleRejected(t *testing.T) {
	store := mocks.NewStore()
	service := newTestService(store)

	_, err := service.Register(context.Background(), authTypes.RegisterRequest{
		Email:    "root@example.com",
		Password: "correct-horse",
		Role:     constants.RoleAdmin,
	})

	var validationErr *types.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	store.UserRepo.AssertNotCalled(t, "EmailExists")
}

func TestAuthService_Register_OperatorNeedsCompanyName(t *testing.T) {
	store := mocks.NewStore()
	service := newTestService(store)

	_, err := service.Register(context.Background(), authTypes.RegisterRequest{
		Email:    "op@example.com",
		Password: "correct-horse",
		Role:     constants.RoleOperator,
	})

	var validationErr *types.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	store := mocks.NewStore()
	service := newTestService(store)
	ctx := context.Background()

	hash, err := utils.HashPassword("right-password")
	assert.NoError(t, err)

	store.UserRepo.On("GetByEmail", ctx, "ada@example.com").Return(&userModel.User{
		ID:           7,
		Email:        "ada@example.com",
		PasswordHash: hash,
		Role:         constants.RoleCustomer,
	}, nil).Once()

	_, err = service.Login(ctx, authTypes.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, types.ErrUnauthenticated)
	store.RefreshTokenRepo.AssertNotCalled(t, "Create")
}

func TestAuthService_Login_UnknownEmailIndistinguishable(t *testing.T) {
	store := mocks.NewStore()
	service := newTestService(store)
	ctx := context.Background()

	store.UserRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, types.ErrNotFound).Once()

	_, err := service.Login(ctx, authTypes.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever1",
	})

	assert.ErrorIs(t, err, types.ErrUnauthenticated)
}

func TestAuthService_Login_Success(t *testing.T) {
	store := mocks.NewStore()
	service := newTestService(store)
	ctx := context.Background()

	hash, err := utils.HashPassword("right-password")
	assert.NoError(t, err)

	store.UserRepo.On("GetByEmail", ctx, "ada@example.com").Return(&userModel.User{
		ID:           7,
		Email:        "ada@example.com",
		PasswordHash: hash,
		Role:         constants.RoleCustomer,
	}, nil).Once()
	store.RefreshTokenRepo.On("Create", ctx, mock.AnythingOfType("*user.RefreshToken")).Return(nil).Once()

	resp, err := service.Login(ctx, authTypes.LoginRequest{
		Email:    "ada@example.com",
		Password: "right-password",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Tokens.AccessToken)
	store.RefreshTokenRepo.AssertExpectations(t)
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	store := mocks.NewStore()
	service := newTestService(store)
	ctx := context.Background()

	presented := "0123456789abcdef0123456789abcdef"
	stored := &userModel.RefreshToken{
		ID:        42,
		UserID:    7,
		TokenHash: hashToken(presented),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	store.RefreshTokenRepo.On("GetByHash", ctx, hashToken(presented)).Return(stored, nil).Once()
	store.UserRepo.On("GetByID", ctx, uint(7)).Return(&userModel.User{
		ID: 7, Role: constants.RoleCustomer,
	}, nil).Once()
	store.RefreshTokenRepo.On("Revoke", ctx, uint(42)).Return(nil).Once()
	store.RefreshTokenRepo.On("Create", ctx, mock.AnythingOfType("*user.RefreshToken")).Return(nil).Once()

	pair, err := service.Refresh(ctx, authTypes.RefreshRequest{RefreshToken: presented})

	assert.NoError(t, err)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, presented, pair.RefreshToken)
	store.RefreshTokenRepo.AssertExpectations(t)
}

func TestAuthService_Refresh_RevokedToken(t *testing.T) {
	store := mocks.NewStore()
	service := newTestService(store)
	ctx := context.Background()

	revokedAt := time.Now().Add(-time.Minute)
	presented := "deadbeefdeadbeefdeadbeefdeadbeef"
	stored := &userModel.RefreshToken{
		ID:        42,
		UserID:    7,
		TokenHash: hashToken(presented),
		ExpiresAt: time.Now().Add(time.Hour),
		RevokedAt: &revokedAt,
	}
	store.RefreshTokenRepo.On("GetByHash", ctx, hashToken(presented)).Return(stored, nil).Once()

	_, err := service.Refresh(ctx, authTypes.RefreshRequest{RefreshToken: presented})

	assert.ErrorIs(t, err, types.ErrUnauthenticated)
	store.RefreshTokenRepo.AssertNotCalled(t, "Revoke")
}

func TestAuthService_Refresh_UnknownToken(t *testing.T) {
	store := mocks.NewStore()
	service := newTestService(store)
	ctx := context.Background()

	store.RefreshTokenRepo.On("GetByHash", ctx, mock.Anything).Return(nil, types.ErrNotFound).Once()

	_, err := service.Refresh(ctx, authTypes.RefreshRequest{RefreshToken: "nope"})

	assert.ErrorIs(t, err, types.ErrUnauthenticated)
}

func TestAuthService_Logout(t *testing.T) {
	store := mocks.NewStore()
	service := newTestService(store)
	ctx := context.Background()

	store.RefreshTokenRepo.On("RevokeAllForUser", ctx, uint(7)).Return(nil).Once()

	assert.NoError(t, service.Logout(ctx, 7))
	store.RefreshTokenRepo.AssertExpectations(t)
}
