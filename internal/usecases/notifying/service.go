package notifying

import (
	"errors"

	"github.com/vcampos/marketing-hub-api/infrastructure/repository"
	"github.com/vcampos/marketing-hub-api/internal/domain"
)

var (
	ErrMissingTitle = errors.New("título da notificação é obrigatório")
	ErrInvalidType  = errors.New("tipo de notificação inválido")
)

type NotificationService interface {
	Notify(userID, title, message string, notificationType domain.NotificationType) (*domain.Notification, error)
	ListNotifications(userID string) ([]*domain.Notification, error)
	MarkAsRead(notificationID, userID string) error
	MarkAllAsRead(userID string) error
}

type Service struct {
	notificationRepo repository.NotificationRepository
}

func NewService(notificationRepo repository.NotificationRepository) NotificationService {
	return &Service{
		notificationRepo: notificationRepo,
	}
}

// Notify cria uma notificação não lida para o usuário informado.
func (s *Service) Notify(userID, title, message string, notificationType domain.NotificationType) (*domain.Notification, error) {
	if title == "" {
		return nil, ErrMissingTitle
	}
	if !domain.IsValidNotificationType(notificationType) {
		return nil, ErrInvalidType
	}

	notification := &domain.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    notificationType,
	}

	return s.notificationRepo.CreateNotification(notification)
}

func (s *Service) ListNotifications(userID string) ([]*domain.Notification, error) {
	return s.notificationRepo.ListByUserID(userID)
}

// MarkAsRead marca a notificação como lida. A notificação precisa pertencer
// ao usuário informado; marcar notificação de outro usuário não tem efeito.
func (s *Service) MarkAsRead(notificationID, userID string) error {
	return s.notificationRepo.MarkAsRead(notificationID, userID)
}

func (s *Service) MarkAllAsRead(userID string) error {
	return s.notificationRepo.MarkAllAsRead(userID)
}
