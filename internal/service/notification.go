package service

import (
	"context"
	"fmt"
	"time"

	dbmodels "nexodus-admin-backend/internal/database/models"
	"nexodus-admin-backend/internal/logger"
	"nexodus-admin-backend/internal/models"
	"nexodus-admin-backend/internal/repository"

	"github.com/google/uuid"
)

// NotificationService keeps the per-user notification feed. Notices are stored until
// the user's console drains them; each is delivered once.
type NotificationService struct {
	repo      repository.NotificationRepositoryInterface
	retention time.Duration
	now       func() time.Time
}

// NewNotificationService creates a new notification service. Delivered notifications
// older than retention are swept on drain.
func NewNotificationService(repo repository.NotificationRepositoryInterface, retention time.Duration) *NotificationService {
	return &NotificationService{
		repo:      repo,
		retention: retention,
		now:       time.Now,
	}
}

// Notify stores notice for recipient. Without a recipient there is no feed to deliver
// to and the notice is only logged.
func (s *NotificationService) Notify(ctx context.Context, recipient *models.Identity, notice Notice) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"notification_type": notice.Type,
		"message":           notice.Message,
	})

	if recipient == nil {
		log.Debug("Dropping notification without recipient")
		return
	}

	err := s.repo.Create(&dbmodels.Notification{
		UserID:  recipient.ID,
		Type:    notice.Type,
		Message: notice.Message,
	})
	if err != nil {
		log.WithError(err).Warn("Failed to store notification")
	}
}

// Drain claims the pending notifications of userID and returns them, oldest first.
// Concurrent drains of the same user never return the same notification twice.
func (s *NotificationService) Drain(ctx context.Context, userID uuid.UUID) ([]NotificationResponse, error) {
	now := s.now()
	claimed, err := s.repo.ClaimPending(userID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to claim notifications: %w", err)
	}

	responses := make([]NotificationResponse, 0, len(claimed))
	for _, n := range claimed {
		responses = append(responses, NotificationResponse{
			ID:        n.ID,
			Type:      n.Type,
			Message:   n.Message,
			CreatedAt: n.CreatedAt,
		})
	}

	if s.retention > 0 {
		removed, err := s.repo.DeleteDeliveredBefore(now.Add(-s.retention))
		if err != nil {
			logger.WithContext(ctx).WithError(err).Warn("Failed to sweep delivered notifications")
		} else if removed > 0 {
			logger.WithContext(ctx).Debugf("Swept %d delivered notifications", removed)
		}
	}

	return responses, nil
}

var _ NotificationServiceInterface = (*NotificationService)(nil)
