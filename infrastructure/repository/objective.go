package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vcampos/marketing-hub-api/infrastructure/database/postgres"
	"github.com/vcampos/marketing-hub-api/internal/domain"
)

const (
	objectivesTable = "objectives"
	keyResultsTable = "key_results"
)

type ObjectiveRepository interface {
	CreateObjective(objective *domain.Objective) (*domain.Objective, error)
	DeleteObjective(objectiveID string) error
	GetObjectiveByID(objectiveID string) (*domain.Objective, error)
	ListObjectives() ([]*domain.Objective, error)

	CreateKeyResult(keyResult *domain.KeyResult) (*domain.KeyResult, error)
	UpdateKeyResultProgress(keyResultID string, currentValue float64) error
	GetKeyResultByID(keyResultID string) (*domain.KeyResult, error)
	ListKeyResultsByObjective(objectiveID string) ([]*domain.KeyResult, error)
}

type objectiveRepository struct {
	conn *postgres.Connection
}

func NewObjectiveRepository(conn *postgres.Connection) ObjectiveRepository {
	return &objectiveRepository{
		conn: conn,
	}
}

func (r *objectiveRepository) CreateObjective(objective *domain.Objective) (*domain.Objective, error) {
	if objective.ID == "" {
		objective.ID = uuid.New().String()
	}

	queryBuilder := squirrel.
		Insert(objectivesTable).
		Columns("id", "user_id", "title", "description", "quarter", "year").
		Values(objective.ID, objective.UserID, objective.Title, objective.Description, objective.Quarter, objective.Year).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	objectiveSQL, objectiveArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de criação de objetivo")
	}

	err = r.conn.QueryRow(objectiveSQL, objectiveArgs...).Scan(&objective.ID, &objective.CreatedAt, &objective.UpdatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao inserir objetivo")
	}

	return objective, nil
}

func (r *objectiveRepository) DeleteObjective(objectiveID string) error {
	// Os resultados-chave vinculados caem junto via ON DELETE CASCADE
	queryBuilder := squirrel.
		Delete(objectivesTable).
		Where(squirrel.Eq{"id": objectiveID}).
		PlaceholderFormat(squirrel.Dollar)

	objectiveSQL, objectiveArgs, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir consulta de exclusão de objetivo")
	}

	_, err = r.conn.Exec(objectiveSQL, objectiveArgs...)
	if err != nil {
		return errors.Wrap(err, "erro ao excluir objetivo")
	}

	return nil
}

func (r *objectiveRepository) GetObjectiveByID(objectiveID string) (*domain.Objective, error) {
	var objective domain.Objective
	err := r.conn.QueryRow(
		"SELECT id, user_id, title, description, quarter, year, created_at, updated_at FROM objectives WHERE id = $1",
		objectiveID,
	).Scan(
		&objective.ID,
		&objective.UserID,
		&objective.Title,
		&objective.Description,
		&objective.Quarter,
		&objective.Year,
		&objective.CreatedAt,
		&objective.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar objetivo")
	}

	return &objective, nil
}

func (r *objectiveRepository) ListObjectives() ([]*domain.Objective, error) {
	queryBuilder := squirrel.
		Select("id", "user_id", "title", "description", "quarter", "year", "created_at", "updated_at").
		From(objectivesTable).
		OrderBy("year DESC NULLS LAST", "quarter ASC").
		PlaceholderFormat(squirrel.Dollar)

	objectiveSQL, objectiveArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de objetivos")
	}

	rows, err := r.conn.Query(objectiveSQL, objectiveArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar objetivos")
	}
	defer rows.Close()

	var objectives []*domain.Objective
	for rows.Next() {
		var objective domain.Objective
		if err := rows.Scan(
			&objective.ID,
			&objective.UserID,
			&objective.Title,
			&objective.Description,
			&objective.Quarter,
			&objective.Year,
			&objective.CreatedAt,
			&objective.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao processar objetivo")
		}

		objectives = append(objectives, &objective)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração de objetivos")
	}

	return objectives, nil
}

func (r *objectiveRepository) CreateKeyResult(keyResult *domain.KeyResult) (*domain.KeyResult, error) {
	if keyResult.ID == "" {
		keyResult.ID = uuid.New().String()
	}

	queryBuilder := squirrel.
		Insert(keyResultsTable).
		Columns("id", "user_id", "objective_id", "title", "target_value", "current_value", "unit").
		Values(keyResult.ID, keyResult.UserID, keyResult.ObjectiveID, keyResult.Title, keyResult.TargetValue, keyResult.CurrentValue, keyResult.Unit).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	keyResultSQL, keyResultArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de criação de resultado-chave")
	}

	err = r.conn.QueryRow(keyResultSQL, keyResultArgs...).Scan(&keyResult.ID, &keyResult.CreatedAt, &keyResult.UpdatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao inserir resultado-chave")
	}

	return keyResult, nil
}

func (r *objectiveRepository) UpdateKeyResultProgress(keyResultID string, currentValue float64) error {
	queryBuilder := squirrel.
		Update(keyResultsTable).
		Set("current_value", currentValue).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": keyResultID}).
		PlaceholderFormat(squirrel.Dollar)

	keyResultSQL, keyResultArgs, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir consulta de progresso de resultado-chave")
	}

	_, err = r.conn.Exec(keyResultSQL, keyResultArgs...)
	if err != nil {
		return errors.Wrap(err, "erro ao atualizar progresso de resultado-chave")
	}

	return nil
}

func (r *objectiveRepository) GetKeyResultByID(keyResultID string) (*domain.KeyResult, error) {
	var keyResult domain.KeyResult
	err := r.conn.QueryRow(
		"SELECT id, user_id, objective_id, title, target_value, current_value, unit, created_at, updated_at FROM key_results WHERE id = $1",
		keyResultID,
	).Scan(
		&keyResult.ID,
		&keyResult.UserID,
		&keyResult.ObjectiveID,
		&keyResult.Title,
		&keyResult.TargetValue,
		&keyResult.CurrentValue,
		&keyResult.Unit,
		&keyResult.CreatedAt,
		&keyResult.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar resultado-chave")
	}

	return &keyResult, nil
}

func (r *objectiveRepository) ListKeyResultsByObjective(objectiveID string) ([]*domain.KeyResult, error) {
	queryBuilder := squirrel.
		Select("id", "user_id", "objective_id", "title", "target_value", "current_value", "unit", "created_at", "updated_at").
		From(keyResultsTable).
		Where(squirrel.Eq{"objective_id": objectiveID}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	keyResultSQL, keyResultArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de resultados-chave")
	}

	rows, err := r.conn.Query(keyResultSQL, keyResultArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar resultados-chave")
	}
	defer rows.Close()

	var keyResults []*domain.KeyResult
	for rows.Next() {
		var keyResult domain.KeyResult
		if err := rows.Scan(
			&keyResult.ID,
			&keyResult.UserID,
			&keyResult.ObjectiveID,
			&keyResult.Title,
			&keyResult.TargetValue,
			&keyResult.CurrentValue,
			&keyResult.Unit,
			&keyResult.CreatedAt,
			&keyResult.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao processar resultado-chave")
		}

		keyResults = append(keyResults, &keyResult)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração de resultados-chave")
	}

	return keyResults, nil
}
