package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType is the severity of a notification
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
)

// Notification is a transient user-facing message. It is held until the recipient's
// admin console drains its feed.
type Notification struct {
	BaseModel
	UserID      uuid.UUID        `json:"user_id" gorm:"type:uuid;index;not null"`
	Type        NotificationType `json:"type" gorm:"size:16;not null"`
	Message     string           `json:"message" gorm:"type:text;not null"`
	DeliveredAt *time.Time       `json:"delivered_at,omitempty" gorm:"index"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
