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

const contentTable = "content"

type ContentRepository interface {
	CreateContent(content *domain.Content) (*domain.Content, error)
	UpdateContent(content *domain.Content) error
	DeleteContent(contentID string) error
	GetContentByID(contentID string) (*domain.Content, error)
	ListContent() ([]*domain.Content, error)
	ListContentByPeriod(start, end time.Time) ([]*domain.Content, error)
}

type contentRepository struct {
	conn *postgres.Connection
}

func NewContentRepository(conn *postgres.Connection) ContentRepository {
	return &contentRepository{
		conn: conn,
	}
}

func (r *contentRepository) CreateContent(content *domain.Content) (*domain.Content, error) {
	if content.ID == "" {
		content.ID = uuid.New().String()
	}

	queryBuilder := squirrel.
		Insert(contentTable).
		Columns("id", "user_id", "title", "format", "status", "persona_id", "campaign_id", "publish_date", "delivery_date", "journey_stage", "author", "content_body").
		Values(
			content.ID,
			content.UserID,
			content.Title,
			content.Format,
			content.Status,
			content.PersonaID,
			content.CampaignID,
			content.PublishDate,
			content.DeliveryDate,
			content.JourneyStage,
			content.Author,
			content.ContentBody,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	contentSQL, contentArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de criação de conteúdo")
	}

	err = r.conn.QueryRow(contentSQL, contentArgs...).Scan(&content.ID, &content.CreatedAt, &content.UpdatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao inserir conteúdo")
	}

	return content, nil
}

func (r *contentRepository) UpdateContent(content *domain.Content) error {
	queryBuilder := squirrel.
		Update(contentTable).
		Set("title", content.Title).
		Set("format", content.Format).
		Set("status", content.Status).
		Set("persona_id", content.PersonaID).
		Set("campaign_id", content.CampaignID).
		Set("publish_date", content.PublishDate).
		Set("delivery_date", content.DeliveryDate).
		Set("journey_stage", content.JourneyStage).
		Set("author", content.Author).
		Set("content_body", content.ContentBody).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": content.ID}).
		PlaceholderFormat(squirrel.Dollar)

	contentSQL, contentArgs, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir consulta de atualização de conteúdo")
	}

	_, err = r.conn.Exec(contentSQL, contentArgs...)
	if err != nil {
		return errors.Wrap(err, "erro ao atualizar conteúdo")
	}

	return nil
}

func (r *contentRepository) DeleteContent(contentID string) error {
	queryBuilder := squirrel.
		Delete(contentTable).
		Where(squirrel.Eq{"id": contentID}).
		PlaceholderFormat(squirrel.Dollar)

	contentSQL, contentArgs, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir consulta de exclusão de conteúdo")
	}

	_, err = r.conn.Exec(contentSQL, contentArgs...)
	if err != nil {
		return errors.Wrap(err, "erro ao excluir conteúdo")
	}

	return nil
}

func (r *contentRepository) GetContentByID(contentID string) (*domain.Content, error) {
	queryBuilder := contentSelect().
		Where(squirrel.Eq{"id": contentID}).
		PlaceholderFormat(squirrel.Dollar)

	contentSQL, contentArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de conteúdo")
	}

	content, err := scanContent(r.conn.QueryRow(contentSQL, contentArgs...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar conteúdo")
	}

	return content, nil
}

func (r *contentRepository) ListContent() ([]*domain.Content, error) {
	queryBuilder := contentSelect().
		OrderBy("publish_date ASC NULLS LAST").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryContent(queryBuilder)
}

// ListContentByPeriod lista o conteúdo com data de publicação dentro do
// período. Alimenta o calendário editorial de um mês.
func (r *contentRepository) ListContentByPeriod(start, end time.Time) ([]*domain.Content, error) {
	queryBuilder := contentSelect().
		Where(squirrel.NotEq{"publish_date": nil}).
		Where(squirrel.GtOrEq{"publish_date": start}).
		Where(squirrel.LtOrEq{"publish_date": end}).
		OrderBy("publish_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryContent(queryBuilder)
}

func (r *contentRepository) queryContent(queryBuilder squirrel.SelectBuilder) ([]*domain.Content, error) {
	contentSQL, contentArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de conteúdos")
	}

	rows, err := r.conn.Query(contentSQL, contentArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar conteúdos")
	}
	defer rows.Close()

	var contents []*domain.Content
	for rows.Next() {
		content, err := scanContent(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao processar conteúdo")
		}

		contents = append(contents, content)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração de conteúdos")
	}

	return contents, nil
}

func contentSelect() squirrel.SelectBuilder {
	return squirrel.
		Select("id", "user_id", "title", "format", "status", "persona_id", "campaign_id", "publish_date", "delivery_date", "journey_stage", "author", "content_body", "created_at", "updated_at").
		From(contentTable)
}

func scanContent(row rowScanner) (*domain.Content, error) {
	var content domain.Content

	err := row.Scan(
		&content.ID,
		&content.UserID,
		&content.Title,
		&content.Format,
		&content.Status,
		&content.PersonaID,
		&content.CampaignID,
		&content.PublishDate,
		&content.DeliveryDate,
		&content.JourneyStage,
		&content.Author,
		&content.ContentBody,
		&content.CreatedAt,
		&content.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &content, nil
}
