package repository

import (
	"time"

	"nexodus-admin-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// NotificationRepositoryInterface defines the interface for notification feed storage
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	ClaimPending(userID uuid.UUID, at time.Time) ([]models.Notification, error)
	DeleteDeliveredBefore(cutoff time.Time) (int64, error)
}

var _ NotificationRepositoryInterface = (*NotificationRepository)(nil)
