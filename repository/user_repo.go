package repository

import (
	"context"
	"errors"
	"time"

	"emptyleg-marketplace/models/user"
	"emptyleg-marketplace/types"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	GetByID(ctx context.Context, id uint) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type GormUserRepository struct {
	db *gorm.DB
}

func (r *GormUserRepository) Create(ctx context.Context, u *user.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *GormUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var u user.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *GormUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&user.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

var _ UserRepository = (*GormUserRepository)(nil)

type RefreshTokenRepository interface {
	Create(ctx context.Context, rt *user.RefreshToken) error
	GetByHash(ctx context.Context, hash string) (*user.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeAllForUser(ctx context.Context, userID uint) error
}

type GormRefreshTokenRepository struct {
	db *gorm.DB
}

func (r *GormRefreshTokenRepository) Create(ctx context.Context, rt *user.RefreshToken) error {
	return r.db.WithContext(ctx).Create(rt).Error
}

func (r *GormRefreshTokenRepository) GetByHash(ctx context.Context, hash string) (*user.RefreshToken, error) {
	var rt user.RefreshToken
	if err := r.db.WithContext(ctx).Where("token_hash = ?", hash).First(&rt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	return &rt, nil
}

func (r *GormRefreshTokenRepository) Revoke(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&user.RefreshToken{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", time.Now()).Error
}

func (r *GormRefreshTokenRepository) RevokeAllForUser(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Model(&user.RefreshToken{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", time.Now()).Error
}

var _ RefreshTokenRepository = (*GormRefreshTokenRepository)(nil)
