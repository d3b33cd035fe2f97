package repository

import (
	"context"
	"errors"

	"emptyleg-marketplace/models/customer"
	"emptyleg-marketplace/models/operator"
	"emptyleg-marketplace/types"

	"gorm.io/gorm"
)

type OperatorRepository interface {
	Create(ctx context.Context, o *operator.Operator) error
	GetByID(ctx context.Context, id uint) (*operator.Operator, error)
	GetByUserID(ctx context.Context, userID uint) (*operator.Operator, error)
	IncrementFlightCount(ctx context.Context, id uint, delta int) error
	RecountFlights(ctx context.Context) error
}

type GormOperatorRepository struct {
	db *gorm.DB
}

func (r *GormOperatorRepository) Create(ctx context.Context, o *operator.Operator) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *GormOperatorRepository) GetByID(ctx context.Context, id uint) (*operator.Operator, error) {
	var o operator.Operator
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *GormOperatorRepository) GetByUserID(ctx context.Context, userID uint) (*operator.Operator, error) {
	var o operator.Operator
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *GormOperatorRepository) IncrementFlightCount(ctx context.Context, id uint, delta int) error {
	return r.db.WithContext(ctx).Model(&operator.Operator{}).
		Where("id = ?", id).
		UpdateColumn("total_flights", gorm.Expr("total_flights + ?", delta)).Error
}

// RecountFlights rebuilds every operator's total_flights from the flights
// table. Used by the admin tool to repair drift from before counters moved
// into the create transaction.
func (r *GormOperatorRepository) RecountFlights(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec(
		`UPDATE operators SET total_flights = (SELECT COUNT(*) FROM flights WHERE flights.operator_id = operators.id)`,
	).Error
}

var _ OperatorRepository = (*GormOperatorRepository)(nil)

type CustomerRepository interface {
	Create(ctx context.Context, c *customer.Customer) error
	GetByUserID(ctx context.Context, userID uint) (*customer.Customer, error)
}

type GormCustomerRepository struct {
	db *gorm.DB
}

func (r *GormCustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *GormCustomerRepository) GetByUserID(ctx context.Context, userID uint) (*customer.Customer, error) {
	var c customer.Customer
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

var _ CustomerRepository = (*GormCustomerRepository)(nil)
