package domain

import (
	"time"
)

// NotificationType representa a categoria de uma notificação
type NotificationType string

const (
	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeWarning NotificationType = "warning"
	NotificationTypeTask    NotificationType = "task_due"
)

// IsValidNotificationType verifica se o tipo informado é conhecido
func IsValidNotificationType(t NotificationType) bool {
	switch t {
	case NotificationTypeInfo, NotificationTypeWarning, NotificationTypeTask:
		return true
	}
	return false
}

// Notification representa uma notificação exibida no centro de notificações
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}
