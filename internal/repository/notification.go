package repository

import (
	"slices"
	"time"

	"nexodus-admin-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NotificationRepository handles database operations for the notification feed
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create stores a new notification
func (r *NotificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// ClaimPending marks the undelivered notifications of a user as delivered at the given
// time and returns them, oldest first. Rows claimed by a concurrent call are not returned.
func (r *NotificationRepository) ClaimPending(userID uuid.UUID, at time.Time) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Model(&notifications).
		Clauses(clause.Returning{}).
		Where("user_id = ? AND delivered_at IS NULL", userID).
		Update("delivered_at", at).Error
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(notifications, func(a, b models.Notification) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return notifications, nil
}

// DeleteDeliveredBefore removes notifications delivered before cutoff and returns how many were removed
func (r *NotificationRepository) DeleteDeliveredBefore(cutoff time.Time) (int64, error) {
	res := r.db.
		Where("delivered_at IS NOT NULL AND delivered_at < ?", cutoff).
		Delete(&models.Notification{})
	return res.RowsAffected, res.Error
}
