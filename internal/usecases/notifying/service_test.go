package notifying

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vcampos/marketing-hub-api/infrastructure/repository/mocks"
	"github.com/vcampos/marketing-hub-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_Notify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockNotificationRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("Notificação válida é criada não lida", func(t *testing.T) {
		mockRepo.EXPECT().
			CreateNotification(gomock.Any()).
			DoAndReturn(func(notification *domain.Notification) (*domain.Notification, error) {
				assert.Equal(t, "user-1", notification.UserID)
				assert.False(t, notification.Read)
				notification.ID = "notif-1"
				return notification, nil
			})

		result, err := service.Notify("user-1", "Prazo próximo", "A tarefa vence amanhã.", domain.NotificationTypeTask)
		assert.NoError(t, err)
		assert.Equal(t, domain.NotificationTypeTask, result.Type)
	})

	t.Run("Título vazio é rejeitado", func(t *testing.T) {
		result, err := service.Notify("user-1", "", "mensagem", domain.NotificationTypeInfo)
		assert.ErrorIs(t, err, ErrMissingTitle)
		assert.Nil(t, result)
	})

	t.Run("Tipo desconhecido é rejeitado", func(t *testing.T) {
		result, err := service.Notify("user-1", "Título", "mensagem", domain.NotificationType("urgentíssima"))
		assert.ErrorIs(t, err, ErrInvalidType)
		assert.Nil(t, result)
	})
}

func TestService_MarkAsRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockNotificationRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("Marca a notificação do próprio usuário", func(t *testing.T) {
		mockRepo.EXPECT().MarkAsRead("notif-1", "user-1").Return(nil)

		err := service.MarkAsRead("notif-1", "user-1")
		assert.NoError(t, err)
	})

	t.Run("Marca todas as notificações do usuário", func(t *testing.T) {
		mockRepo.EXPECT().MarkAllAsRead("user-1").Return(nil)

		err := service.MarkAllAsRead("user-1")
		assert.NoError(t, err)
	})
}
