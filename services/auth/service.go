// Package auth issues and verifies the credential pair: a short-lived
// HMAC-signed JWT access token and an opaque refresh token stored hashed.
package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"emptyleg-marketplace/constants"
	customerModel "emptyleg-marketplace/models/customer"
	operatorModel "emptyleg-marketplace/models/operator"
	userModel "emptyleg-marketplace/models/user"
	"emptyleg-marketplace/repository"
	"emptyleg-marketplace/types"
	authTypes "emptyleg-marketplace/types/auth"
	"emptyleg-marketplace/utils"

	"github.com/golang-jwt/jwt/v5"
)

type UseCase interface {
	Register(ctx context.Context, req authTypes.RegisterRequest) (*authTypes.AuthResponse, error)
	Login(ctx context.Context, req authTypes.LoginRequest) (*authTypes.AuthResponse, error)
	Refresh(ctx context.Context, req authTypes.RefreshRequest) (*authTypes.TokenPair, error)
	Logout(ctx context.Context, userID uint) error
	Profile(ctx context.Context, userID uint) (*userModel.User, error)
}

type Service struct {
	store      repository.Store
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewService(store repository.Store, secret string, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		store:      store,
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Register creates the user and its role profile in one transaction and
// returns a fresh token pair. Only customer and operator roles are open for
// self-registration.
func (s *Service) Register(ctx context.Context, req authTypes.RegisterRequest) (*authTypes.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.store.Users().EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, types.NewConflictError("email %s is already registered", req.Email)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &userModel.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
	}

	err = s.store.Tx(ctx, func(tx repository.Store) error {
		if err := tx.Users().Create(ctx, u); err != nil {
			return err
		}
		switch req.Role {
		case constants.RoleCustomer:
			return tx.Customers().Create(ctx, &customerModel.Customer{
				UserID:    u.ID,
				FirstName: req.FirstName,
				LastName:  req.LastName,
				Phone:     req.Phone,
			})
		case constants.RoleOperator:
			return tx.Operators().Create(ctx, &operatorModel.Operator{
				UserID:      u.ID,
				CompanyName: req.CompanyName,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	tokens, err := s.issueTokens(ctx, u)
	if err != nil {
		return nil, err
	}
	return &authTypes.AuthResponse{User: *u, Tokens: tokens}, nil
}

// Login verifies credentials and returns a fresh token pair. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req authTypes.LoginRequest) (*authTypes.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.store.Users().GetByEmail(ctx, req.Email)
	if err != nil {
		if err == types.ErrNotFound {
			return nil, types.ErrUnauthenticated
		}
		return nil, err
	}
	if !utils.CheckPassword(u.PasswordHash, req.Password) {
		return nil, types.ErrUnauthenticated
	}

	tokens, err := s.issueTokens(ctx, u)
	if err != nil {
		return nil, err
	}
	return &authTypes.AuthResponse{User: *u, Tokens: tokens}, nil
}

// Refresh rotates the refresh token: the presented one is revoked and a new
// pair is issued.
func (s *Service) Refresh(ctx context.Context, req authTypes.RefreshRequest) (*authTypes.TokenPair, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rt, err := s.store.RefreshTokens().GetByHash(ctx, hashToken(req.RefreshToken))
	if err != nil {
		if err == types.ErrNotFound {
			return nil, types.ErrUnauthenticated
		}
		return nil, err
	}
	if !rt.IsActive() {
		return nil, types.ErrUnauthenticated
	}

	u, err := s.store.Users().GetByID(ctx, rt.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.store.RefreshTokens().Revoke(ctx, rt.ID); err != nil {
		return nil, err
	}

	tokens, err := s.issueTokens(ctx, u)
	if err != nil {
		return nil, err
	}
	return &tokens, nil
}

// Logout revokes every outstanding refresh token for the user. Access
// tokens simply age out.
func (s *Service) Logout(ctx context.Context, userID uint) error {
	return s.store.RefreshTokens().RevokeAllForUser(ctx, userID)
}

// Profile returns the caller's own user row.
func (s *Service) Profile(ctx context.Context, userID uint) (*userModel.User, error) {
	return s.store.Users().GetByID(ctx, userID)
}

func (s *Service) issueTokens(ctx context.Context, u *userModel.User) (authTypes.TokenPair, error) {
	accessExpiry := time.Now().Add(s.accessTTL)
	claims := jwt.MapClaims{
		"sub":  fmt.Sprintf("%d", u.ID),
		"uid":  u.ID,
		"role": u.Role,
		"type": "access",
		"iat":  time.Now().Unix(),
		"exp":  accessExpiry.Unix(),
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return authTypes.TokenPair{}, err
	}

	refresh, err := randomToken()
	if err != nil {
		return authTypes.TokenPair{}, err
	}
	refreshExpiry := time.Now().Add(s.refreshTTL)
	if err := s.store.RefreshTokens().Create(ctx, &userModel.RefreshToken{
		UserID:    u.ID,
		TokenHash: hashToken(refresh),
		ExpiresAt: refreshExpiry,
	}); err != nil {
		return authTypes.TokenPair{}, err
	}

	return authTypes.TokenPair{
		AccessToken:      access,
		AccessExpiresAt:  accessExpiry,
		RefreshToken:     refresh,
		RefreshExpiresAt: refreshExpiry,
	}, nil
}

func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

var _ UseCase = (*Service)(nil)
