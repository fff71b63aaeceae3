package tasking

import (
	"errors"

	"github.com/vcampos/marketing-hub-api/infrastructure/repository"
	"github.com/vcampos/marketing-hub-api/internal/domain"
	"github.com/vcampos/marketing-hub-api/internal/usecases/authorizing"
)

var (
	ErrTaskNotFound     = errors.New("tarefa não encontrada")
	ErrInvalidStatus    = errors.New("status de tarefa inválido")
	ErrMissingTitle     = errors.New("título da tarefa é obrigatório")
	ErrDeleteNotAllowed = errors.New("usuário não pode excluir esta tarefa")
)

type TaskService interface {
	CreateTask(actorID string, task *domain.Task) (*domain.Task, error)
	UpdateTask(task *domain.Task) error
	MoveTask(taskID string, status domain.TaskStatus) error
	DeleteTask(actorRole domain.Role, actorID, taskID string) error
	GetTaskByID(taskID string) (*domain.Task, error)
	ListTasks() ([]*domain.Task, error)
	GetBoard() (*domain.TaskBoard, error)
}

type Service struct {
	taskRepo  repository.TaskRepository
	evaluator *authorizing.Evaluator
}

func NewService(taskRepo repository.TaskRepository, evaluator *authorizing.Evaluator) TaskService {
	return &Service{
		taskRepo:  taskRepo,
		evaluator: evaluator,
	}
}

func (s *Service) CreateTask(actorID string, task *domain.Task) (*domain.Task, error) {
	if task.Title == "" {
		return nil, ErrMissingTitle
	}

	// Toda tarefa nova entra na primeira coluna do quadro
	if task.Status == "" {
		task.Status = domain.TaskStatusIdeas
	}
	if !domain.IsValidTaskStatus(task.Status) {
		return nil, ErrInvalidStatus
	}

	task.UserID = actorID

	return s.taskRepo.CreateTask(task)
}

func (s *Service) UpdateTask(task *domain.Task) error {
	existing, err := s.taskRepo.GetTaskByID(task.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrTaskNotFound
	}

	if task.Title == "" {
		return ErrMissingTitle
	}
	if !domain.IsValidTaskStatus(task.Status) {
		return ErrInvalidStatus
	}

	// O dono nunca muda em uma atualização
	task.UserID = existing.UserID

	return s.taskRepo.UpdateTask(task)
}

// MoveTask move a tarefa para outra coluna do quadro kanban sem alterar os
// demais campos.
func (s *Service) MoveTask(taskID string, status domain.TaskStatus) error {
	if !domain.IsValidTaskStatus(status) {
		return ErrInvalidStatus
	}

	task, err := s.taskRepo.GetTaskByID(taskID)
	if err != nil {
		return err
	}
	if task == nil {
		return ErrTaskNotFound
	}

	task.Status = status

	return s.taskRepo.UpdateTask(task)
}

func (s *Service) DeleteTask(actorRole domain.Role, actorID, taskID string) error {
	task, err := s.taskRepo.GetTaskByID(taskID)
	if err != nil {
		return err
	}
	if task == nil {
		return ErrTaskNotFound
	}

	if !s.evaluator.CanDelete(actorRole, task.UserID, actorID) {
		return ErrDeleteNotAllowed
	}

	return s.taskRepo.DeleteTask(taskID)
}

func (s *Service) GetTaskByID(taskID string) (*domain.Task, error) {
	return s.taskRepo.GetTaskByID(taskID)
}

func (s *Service) ListTasks() ([]*domain.Task, error) {
	return s.taskRepo.ListTasks()
}

// GetBoard monta o quadro kanban com as colunas na ordem canônica. Colunas
// sem tarefas aparecem vazias, nunca são omitidas.
func (s *Service) GetBoard() (*domain.TaskBoard, error) {
	tasks, err := s.taskRepo.ListTasks()
	if err != nil {
		return nil, err
	}

	buckets := make(map[domain.TaskStatus][]*domain.Task, len(domain.BoardColumns))
	for _, task := range tasks {
		buckets[task.Status] = append(buckets[task.Status], task)
	}

	board := &domain.TaskBoard{
		Columns: make([]domain.TaskBoardColumn, 0, len(domain.BoardColumns)),
		Total:   len(tasks),
	}
	for _, status := range domain.BoardColumns {
		tasksInColumn := buckets[status]
		if tasksInColumn == nil {
			tasksInColumn = []*domain.Task{}
		}

		board.Columns = append(board.Columns, domain.TaskBoardColumn{
			Status: status,
			Tasks:  tasksInColumn,
			Count:  len(tasksInColumn),
		})
	}

	return board, nil
}
