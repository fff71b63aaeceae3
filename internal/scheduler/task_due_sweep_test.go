package scheduler

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vcampos/marketing-hub-api/infrastructure/repository/mocks"
	"github.com/vcampos/marketing-hub-api/internal/domain"
	notifyingmocks "github.com/vcampos/marketing-hub-api/internal/usecases/notifying/mocks"
	"go.uber.org/mock/gomock"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestTaskDueSweepService_SweepDueTasks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Mocks
	mockTaskRepo := mocks.NewMockTaskRepository(ctrl)
	mockNotificationService := notifyingmocks.NewMockNotificationService(ctrl)

	// Service
	service := &TaskDueSweepService{
		taskRepo:            mockTaskRepo,
		notificationService: mockNotificationService,
		config: TaskDueSweepConfig{
			LookaheadDays: 3,
		},
	}

	dueDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		setup       func()
		expectedErr bool
	}{
		{
			name: "Cada tarefa com prazo próximo gera uma notificação para o dono",
			setup: func() {
				mockTaskRepo.EXPECT().
					ListTasksDueBefore(gomock.Any()).
					DoAndReturn(func(deadline time.Time) ([]*domain.Task, error) {
						// A janela de antecedência configurada é respeitada
						assert.WithinDuration(t, time.Now().AddDate(0, 0, 3), deadline, time.Minute)

						return []*domain.Task{
							{ID: "task-1", UserID: "user-1", Title: "Publicar post", DueDate: timePtr(dueDate)},
							{ID: "task-2", UserID: "user-2", Title: "Revisar ebook", DueDate: timePtr(dueDate)},
						}, nil
					})

				mockNotificationService.EXPECT().
					Notify("user-1", "Tarefa com prazo próximo", gomock.Any(), domain.NotificationTypeTask).
					DoAndReturn(func(_, _, message string, _ domain.NotificationType) (*domain.Notification, error) {
						assert.Contains(t, message, "Publicar post")
						assert.Contains(t, message, "10/03/2026")
						return &domain.Notification{ID: "notif-1"}, nil
					})

				mockNotificationService.EXPECT().
					Notify("user-2", "Tarefa com prazo próximo", gomock.Any(), domain.NotificationTypeTask).
					Return(&domain.Notification{ID: "notif-2"}, nil)
			},
		},
		{
			name: "Sem tarefas com prazo próximo nenhuma notificação é gerada",
			setup: func() {
				mockTaskRepo.EXPECT().
					ListTasksDueBefore(gomock.Any()).
					Return([]*domain.Task{}, nil)
			},
		},
		{
			name: "Falha ao notificar uma tarefa não interrompe a varredura",
			setup: func() {
				mockTaskRepo.EXPECT().
					ListTasksDueBefore(gomock.Any()).
					Return([]*domain.Task{
						{ID: "task-1", UserID: "user-1", Title: "Publicar post", DueDate: timePtr(dueDate)},
						{ID: "task-2", UserID: "user-2", Title: "Revisar ebook", DueDate: timePtr(dueDate)},
					}, nil)

				mockNotificationService.EXPECT().
					Notify("user-1", gomock.Any(), gomock.Any(), domain.NotificationTypeTask).
					Return(nil, errors.New("erro ao criar notificação"))

				mockNotificationService.EXPECT().
					Notify("user-2", gomock.Any(), gomock.Any(), domain.NotificationTypeTask).
					Return(&domain.Notification{ID: "notif-2"}, nil)
			},
		},
		{
			name: "Erro na busca de tarefas é propagado",
			setup: func() {
				mockTaskRepo.EXPECT().
					ListTasksDueBefore(gomock.Any()).
					Return(nil, errors.New("erro de banco"))
			},
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			err := service.SweepDueTasks()

			if tt.expectedErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTaskDueSweepService_SweepDueTasks_JaEmExecucao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTaskRepo := mocks.NewMockTaskRepository(ctrl)
	mockNotificationService := notifyingmocks.NewMockNotificationService(ctrl)

	service := &TaskDueSweepService{
		taskRepo:            mockTaskRepo,
		notificationService: mockNotificationService,
		config:              TaskDueSweepConfig{LookaheadDays: 3},
		sweepRunning:        true,
	}

	// Nenhuma chamada ao repositório é esperada
	err := service.SweepDueTasks()

	assert.NoError(t, err)
}
