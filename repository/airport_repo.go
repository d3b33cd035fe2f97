package repository

import (
	"context"
	"errors"
	"time"

	"emptyleg-marketplace/models/airport"
	"emptyleg-marketplace/types"

	"gorm.io/gorm"
)

type AirportRepository interface {
	Create(ctx context.Context, a *airport.Airport) error
	GetByID(ctx context.Context, id uint) (*airport.Airport, error)
	ApprovedCodeExists(ctx context.Context, code string) (bool, error)
	// SearchApproved does a case-insensitive substring match over
	// code/name/city/country, approved rows only, capped at limit.
	SearchApproved(ctx context.Context, query string, limit int) ([]airport.Airport, error)
	ListByStatus(ctx context.Context, status airport.AirportStatus) ([]airport.Airport, error)
	ListByCreator(ctx context.Context, userID uint) ([]airport.Airport, error)
	// Review resolves a pending airport in a single guarded update. Returns
	// false when the row was no longer pending.
	Review(ctx context.Context, id uint, to airport.AirportStatus, reviewerID uint, lat, lng *float64) (bool, error)
}

type GormAirportRepository struct {
	db *gorm.DB
}

func (r *GormAirportRepository) Create(ctx context.Context, a *airport.Airport) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *GormAirportRepository) GetByID(ctx context.Context, id uint) (*airport.Airport, error) {
	var a airport.Airport
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *GormAirportRepository) ApprovedCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&airport.Airport{}).
		Where("code = ? AND status = ?", code, airport.AirportStatusApproved).
		Count(&count).Error
	return count > 0, err
}

func (r *GormAirportRepository) SearchApproved(ctx context.Context, query string, limit int) ([]airport.Airport, error) {
	pattern := "%" + query + "%"
	airports := make([]airport.Airport, 0)
	err := r.db.WithContext(ctx).
		Where("status = ?", airport.AirportStatusApproved).
		Where("code ILIKE ? OR name ILIKE ? OR city ILIKE ? OR country ILIKE ?",
			pattern, pattern, pattern, pattern).
		Order("code ASC").
		Limit(limit).
		Find(&airports).Error
	return airports, err
}

func (r *GormAirportRepository) ListByStatus(ctx context.Context, status airport.AirportStatus) ([]airport.Airport, error) {
	airports := make([]airport.Airport, 0)
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&airports).Error
	return airports, err
}

func (r *GormAirportRepository) ListByCreator(ctx context.Context, userID uint) ([]airport.Airport, error) {
	airports := make([]airport.Airport, 0)
	err := r.db.WithContext(ctx).
		Where("created_by_id = ?", userID).
		Order("created_at DESC").
		Find(&airports).Error
	return airports, err
}

func (r *GormAirportRepository) Review(ctx context.Context, id uint, to airport.AirportStatus, reviewerID uint, lat, lng *float64) (bool, error) {
	updates := map[string]interface{}{
		"status":         to,
		"reviewed_by_id": reviewerID,
		"reviewed_at":    time.Now(),
	}
	if lat != nil {
		updates["latitude"] = *lat
	}
	if lng != nil {
		updates["longitude"] = *lng
	}
	res := r.db.WithContext(ctx).Model(&airport.Airport{}).
		Where("id = ? AND status = ?", id, airport.AirportStatusPending).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

var _ AirportRepository = (*GormAirportRepository)(nil)
