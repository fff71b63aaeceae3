package tasking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vcampos/marketing-hub-api/infrastructure/repository/mocks"
	"github.com/vcampos/marketing-hub-api/internal/domain"
	"github.com/vcampos/marketing-hub-api/internal/usecases/authorizing"
	"go.uber.org/mock/gomock"
)

func TestService_CreateTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTaskRepository(ctrl)
	service := NewService(mockRepo, authorizing.NewEvaluator(nil))

	t.Run("Tarefa nova sem status entra na coluna ideas", func(t *testing.T) {
		mockRepo.EXPECT().
			CreateTask(gomock.Any()).
			DoAndReturn(func(task *domain.Task) (*domain.Task, error) {
				task.ID = "task-1"
				return task, nil
			})

		result, err := service.CreateTask("user-1", &domain.Task{Title: "Escrever post"})
		assert.NoError(t, err)
		assert.Equal(t, domain.TaskStatusIdeas, result.Status)
		assert.Equal(t, "user-1", result.UserID)
	})

	t.Run("Tarefa sem título é rejeitada", func(t *testing.T) {
		result, err := service.CreateTask("user-1", &domain.Task{})
		assert.ErrorIs(t, err, ErrMissingTitle)
		assert.Nil(t, result)
	})

	t.Run("Status desconhecido é rejeitado", func(t *testing.T) {
		result, err := service.CreateTask("user-1", &domain.Task{
			Title:  "Tarefa",
			Status: domain.TaskStatus("arquivada"),
		})
		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.Nil(t, result)
	})
}

func TestService_UpdateTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTaskRepository(ctrl)
	service := NewService(mockRepo, authorizing.NewEvaluator(nil))

	t.Run("Dono original é preservado na atualização", func(t *testing.T) {
		mockRepo.EXPECT().GetTaskByID("task-1").Return(&domain.Task{
			ID:     "task-1",
			UserID: "owner-1",
			Title:  "Original",
			Status: domain.TaskStatusIdeas,
		}, nil)

		mockRepo.EXPECT().
			UpdateTask(gomock.Any()).
			DoAndReturn(func(task *domain.Task) error {
				assert.Equal(t, "owner-1", task.UserID)
				return nil
			})

		err := service.UpdateTask(&domain.Task{
			ID:     "task-1",
			UserID: "intruso",
			Title:  "Editada",
			Status: domain.TaskStatusReview,
		})
		assert.NoError(t, err)
	})

	t.Run("Tarefa inexistente retorna erro", func(t *testing.T) {
		mockRepo.EXPECT().GetTaskByID("task-x").Return(nil, nil)

		err := service.UpdateTask(&domain.Task{ID: "task-x", Title: "Qualquer", Status: domain.TaskStatusIdeas})
		assert.ErrorIs(t, err, ErrTaskNotFound)
	})
}

func TestService_MoveTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTaskRepository(ctrl)
	service := NewService(mockRepo, authorizing.NewEvaluator(nil))

	t.Run("Move a tarefa preservando os demais campos", func(t *testing.T) {
		mockRepo.EXPECT().GetTaskByID("task-1").Return(&domain.Task{
			ID:       "task-1",
			UserID:   "owner-1",
			Title:    "Escrever post",
			Status:   domain.TaskStatusIdeas,
			Priority: 2,
		}, nil)

		mockRepo.EXPECT().
			UpdateTask(gomock.Any()).
			DoAndReturn(func(task *domain.Task) error {
				assert.Equal(t, domain.TaskStatusInProgress, task.Status)
				assert.Equal(t, "Escrever post", task.Title)
				assert.Equal(t, 2, task.Priority)
				return nil
			})

		err := service.MoveTask("task-1", domain.TaskStatusInProgress)
		assert.NoError(t, err)
	})

	t.Run("Coluna desconhecida é rejeitada sem consultar o banco", func(t *testing.T) {
		err := service.MoveTask("task-1", domain.TaskStatus("limbo"))
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestService_GetBoard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTaskRepository(ctrl)
	service := NewService(mockRepo, authorizing.NewEvaluator(nil))

	t.Run("Quadro com colunas vazias na ordem canônica", func(t *testing.T) {
		mockRepo.EXPECT().ListTasks().Return([]*domain.Task{
			{ID: "t1", Status: domain.TaskStatusIdeas},
			{ID: "t2", Status: domain.TaskStatusIdeas},
			{ID: "t3", Status: domain.TaskStatusPublished},
		}, nil)

		board, err := service.GetBoard()
		assert.NoError(t, err)
		assert.Equal(t, 3, board.Total)
		assert.Len(t, board.Columns, len(domain.BoardColumns))

		assert.Equal(t, domain.TaskStatusIdeas, board.Columns[0].Status)
		assert.Equal(t, 2, board.Columns[0].Count)

		// Colunas sem tarefas aparecem vazias, nunca nulas
		assert.Equal(t, domain.TaskStatusInProgress, board.Columns[1].Status)
		assert.NotNil(t, board.Columns[1].Tasks)
		assert.Equal(t, 0, board.Columns[1].Count)

		assert.Equal(t, domain.TaskStatusPublished, board.Columns[4].Status)
		assert.Equal(t, 1, board.Columns[4].Count)
	})

	t.Run("Quadro vazio mantém todas as colunas", func(t *testing.T) {
		mockRepo.EXPECT().ListTasks().Return([]*domain.Task{}, nil)

		board, err := service.GetBoard()
		assert.NoError(t, err)
		assert.Equal(t, 0, board.Total)
		assert.Len(t, board.Columns, len(domain.BoardColumns))
	})
}

func TestService_DeleteTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTaskRepository(ctrl)
	service := NewService(mockRepo, authorizing.NewEvaluator(nil))

	task := &domain.Task{ID: "task-1", UserID: "owner-1", Title: "Tarefa"}

	t.Run("Dono exclui a própria tarefa", func(t *testing.T) {
		mockRepo.EXPECT().GetTaskByID("task-1").Return(task, nil)
		mockRepo.EXPECT().DeleteTask("task-1").Return(nil)

		err := service.DeleteTask(domain.RoleAnalyst, "owner-1", "task-1")
		assert.NoError(t, err)
	})

	t.Run("Não dono sem privilégio é negado", func(t *testing.T) {
		mockRepo.EXPECT().GetTaskByID("task-1").Return(task, nil)

		err := service.DeleteTask(domain.RoleAnalyst, "outro", "task-1")
		assert.ErrorIs(t, err, ErrDeleteNotAllowed)
	})

	t.Run("Gerente de marketing exclui tarefa alheia", func(t *testing.T) {
		mockRepo.EXPECT().GetTaskByID("task-1").Return(task, nil)
		mockRepo.EXPECT().DeleteTask("task-1").Return(nil)

		err := service.DeleteTask(domain.RoleGerenteMarketing, "gerente-1", "task-1")
		assert.NoError(t, err)
	})
}
