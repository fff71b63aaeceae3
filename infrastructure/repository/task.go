package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vcampos/marketing-hub-api/infrastructure/database/postgres"
	"github.com/vcampos/marketing-hub-api/internal/domain"
)

const tasksTable = "tasks"

type TaskRepository interface {
	CreateTask(task *domain.Task) (*domain.Task, error)
	UpdateTask(task *domain.Task) error
	DeleteTask(taskID string) error
	GetTaskByID(taskID string) (*domain.Task, error)
	ListTasks() ([]*domain.Task, error)
	ListTasksDueBefore(deadline time.Time) ([]*domain.Task, error)
}

type taskRepository struct {
	conn *postgres.Connection
}

func NewTaskRepository(conn *postgres.Connection) TaskRepository {
	return &taskRepository{
		conn: conn,
	}
}

func (r *taskRepository) CreateTask(task *domain.Task) (*domain.Task, error) {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}

	queryBuilder := squirrel.
		Insert(tasksTable).
		Columns("id", "user_id", "campaign_id", "content_id", "title", "description", "status", "priority", "due_date", "assigned_to").
		Values(
			task.ID,
			task.UserID,
			task.CampaignID,
			task.ContentID,
			task.Title,
			task.Description,
			task.Status,
			task.Priority,
			task.DueDate,
			task.AssignedTo,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	taskSQL, taskArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de criação de tarefa")
	}

	err = r.conn.QueryRow(taskSQL, taskArgs...).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao inserir tarefa")
	}

	return task, nil
}

func (r *taskRepository) UpdateTask(task *domain.Task) error {
	queryBuilder := squirrel.
		Update(tasksTable).
		Set("campaign_id", task.CampaignID).
		Set("content_id", task.ContentID).
		Set("title", task.Title).
		Set("description", task.Description).
		Set("status", task.Status).
		Set("priority", task.Priority).
		Set("due_date", task.DueDate).
		Set("assigned_to", task.AssignedTo).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": task.ID}).
		PlaceholderFormat(squirrel.Dollar)

	taskSQL, taskArgs, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir consulta de atualização de tarefa")
	}

	_, err = r.conn.Exec(taskSQL, taskArgs...)
	if err != nil {
		return errors.Wrap(err, "erro ao atualizar tarefa")
	}

	return nil
}

func (r *taskRepository) DeleteTask(taskID string) error {
	queryBuilder := squirrel.
		Delete(tasksTable).
		Where(squirrel.Eq{"id": taskID}).
		PlaceholderFormat(squirrel.Dollar)

	taskSQL, taskArgs, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir consulta de exclusão de tarefa")
	}

	_, err = r.conn.Exec(taskSQL, taskArgs...)
	if err != nil {
		return errors.Wrap(err, "erro ao excluir tarefa")
	}

	return nil
}

func (r *taskRepository) GetTaskByID(taskID string) (*domain.Task, error) {
	queryBuilder := taskSelect().
		Where(squirrel.Eq{"id": taskID}).
		PlaceholderFormat(squirrel.Dollar)

	taskSQL, taskArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de tarefa")
	}

	task, err := scanTask(r.conn.QueryRow(taskSQL, taskArgs...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar tarefa")
	}

	return task, nil
}

func (r *taskRepository) ListTasks() ([]*domain.Task, error) {
	queryBuilder := taskSelect().
		OrderBy("due_date ASC NULLS LAST", "priority DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryTasks(queryBuilder)
}

// ListTasksDueBefore lista tarefas não publicadas com prazo até a data
// informada. Usada pela varredura de notificações de prazo.
func (r *taskRepository) ListTasksDueBefore(deadline time.Time) ([]*domain.Task, error) {
	queryBuilder := taskSelect().
		Where(squirrel.NotEq{"due_date": nil}).
		Where(squirrel.LtOrEq{"due_date": deadline}).
		Where(squirrel.NotEq{"status": domain.TaskStatusPublished}).
		OrderBy("due_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryTasks(queryBuilder)
}

func (r *taskRepository) queryTasks(queryBuilder squirrel.SelectBuilder) ([]*domain.Task, error) {
	taskSQL, taskArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de tarefas")
	}

	rows, err := r.conn.Query(taskSQL, taskArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar tarefas")
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao processar tarefa")
		}

		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração de tarefas")
	}

	return tasks, nil
}

func taskSelect() squirrel.SelectBuilder {
	return squirrel.
		Select("id", "user_id", "campaign_id", "content_id", "title", "description", "status", "priority", "due_date", "assigned_to", "created_at", "updated_at").
		From(tasksTable)
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var task domain.Task

	err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.CampaignID,
		&task.ContentID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.Priority,
		&task.DueDate,
		&task.AssignedTo,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &task, nil
}
