package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vcampos/marketing-hub-api/infrastructure/database/postgres"
	"github.com/vcampos/marketing-hub-api/internal/domain"
)

const personasTable = "personas"

type PersonaRepository interface {
	CreatePersona(persona *domain.Persona) (*domain.Persona, error)
	UpdatePersona(persona *domain.Persona) error
	DeletePersona(personaID string) error
	GetPersonaByID(personaID string) (*domain.Persona, error)
	ListPersonas() ([]*domain.Persona, error)
}

type personaRepository struct {
	conn *postgres.Connection
}

func NewPersonaRepository(conn *postgres.Connection) PersonaRepository {
	return &personaRepository{
		conn: conn,
	}
}

func (r *personaRepository) CreatePersona(persona *domain.Persona) (*domain.Persona, error) {
	if persona.ID == "" {
		persona.ID = uuid.New().String()
	}

	queryBuilder := squirrel.
		Insert(personasTable).
		Columns("id", "user_id", "persona_name", "role", "demographics", "goals", "pain_points", "watering_holes", "avatar_url").
		Values(
			persona.ID,
			persona.UserID,
			persona.PersonaName,
			persona.Role,
			nullableJSON(persona.Demographics),
			persona.Goals,
			persona.PainPoints,
			persona.WateringHoles,
			persona.AvatarURL,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	personaSQL, personaArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de criação de persona")
	}

	err = r.conn.QueryRow(personaSQL, personaArgs...).Scan(&persona.ID, &persona.CreatedAt, &persona.UpdatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao inserir persona")
	}

	return persona, nil
}

func (r *personaRepository) UpdatePersona(persona *domain.Persona) error {
	queryBuilder := squirrel.
		Update(personasTable).
		Set("persona_name", persona.PersonaName).
		Set("role", persona.Role).
		Set("demographics", nullableJSON(persona.Demographics)).
		Set("goals", persona.Goals).
		Set("pain_points", persona.PainPoints).
		Set("watering_holes", persona.WateringHoles).
		Set("avatar_url", persona.AvatarURL).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": persona.ID}).
		PlaceholderFormat(squirrel.Dollar)

	personaSQL, personaArgs, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir consulta de atualização de persona")
	}

	_, err = r.conn.Exec(personaSQL, personaArgs...)
	if err != nil {
		return errors.Wrap(err, "erro ao atualizar persona")
	}

	return nil
}

func (r *personaRepository) DeletePersona(personaID string) error {
	queryBuilder := squirrel.
		Delete(personasTable).
		Where(squirrel.Eq{"id": personaID}).
		PlaceholderFormat(squirrel.Dollar)

	personaSQL, personaArgs, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir consulta de exclusão de persona")
	}

	_, err = r.conn.Exec(personaSQL, personaArgs...)
	if err != nil {
		return errors.Wrap(err, "erro ao excluir persona")
	}

	return nil
}

func (r *personaRepository) GetPersonaByID(personaID string) (*domain.Persona, error) {
	queryBuilder := personaSelect().
		Where(squirrel.Eq{"id": personaID}).
		PlaceholderFormat(squirrel.Dollar)

	personaSQL, personaArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de persona")
	}

	persona, err := scanPersona(r.conn.QueryRow(personaSQL, personaArgs...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar persona")
	}

	return persona, nil
}

func (r *personaRepository) ListPersonas() ([]*domain.Persona, error) {
	queryBuilder := personaSelect().
		OrderBy("persona_name ASC").
		PlaceholderFormat(squirrel.Dollar)

	personaSQL, personaArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de personas")
	}

	rows, err := r.conn.Query(personaSQL, personaArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar personas")
	}
	defer rows.Close()

	var personas []*domain.Persona
	for rows.Next() {
		persona, err := scanPersona(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao processar persona")
		}

		personas = append(personas, persona)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração de personas")
	}

	return personas, nil
}

func personaSelect() squirrel.SelectBuilder {
	return squirrel.
		Select("id", "user_id", "persona_name", "role", "demographics", "goals", "pain_points", "watering_holes", "avatar_url", "created_at", "updated_at").
		From(personasTable)
}

func scanPersona(row rowScanner) (*domain.Persona, error) {
	var persona domain.Persona
	var demographics sql.NullString

	err := row.Scan(
		&persona.ID,
		&persona.UserID,
		&persona.PersonaName,
		&persona.Role,
		&demographics,
		&persona.Goals,
		&persona.PainPoints,
		&persona.WateringHoles,
		&persona.AvatarURL,
		&persona.CreatedAt,
		&persona.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if demographics.Valid {
		persona.Demographics = []byte(demographics.String)
	}

	return &persona, nil
}

func nullableJSON(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	return []byte(raw)
}
