package repository

import (
	"context"

	"emptyleg-marketplace/models/notification"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *notification.Notification) error
	ListByUser(ctx context.Context, userID uint, unreadOnly bool, offset, limit int) ([]notification.Notification, int64, error)
	// MarkRead marks one notification read, scoped to its owner. Returns
	// false when the id does not belong to the user or does not exist.
	MarkRead(ctx context.Context, id, userID uint) (bool, error)
	MarkAllRead(ctx context.Context, userID uint) error
}

type GormNotificationRepository struct {
	db *gorm.DB
}

func (r *GormNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *GormNotificationRepository) ListByUser(ctx context.Context, userID uint, unreadOnly bool, offset, limit int) ([]notification.Notification, int64, error) {
	q := r.db.WithContext(ctx).Model(&notification.Notification{}).Where("user_id = ?", userID)
	if unreadOnly {
		q = q.Where("is_read = false")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}

	notifications := make([]notification.Notification, 0)
	if err := q.Find(&notifications).Error; err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

func (r *GormNotificationRepository) MarkRead(ctx context.Context, id, userID uint) (bool, error) {
	res := r.db.WithContext(ctx).Model(&notification.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *GormNotificationRepository) MarkAllRead(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Model(&notification.Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Update("is_read", true).Error
}

var _ NotificationRepository = (*GormNotificationRepository)(nil)
