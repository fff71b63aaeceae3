package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vcampos/marketing-hub-api/infrastructure/database/postgres"
	"github.com/vcampos/marketing-hub-api/internal/domain"
)

const swotTable = "swot_analysis"

type SwotRepository interface {
	GetByUserID(userID string) (*domain.SwotAnalysis, error)
	SaveOrUpdateSwot(swot *domain.SwotAnalysis) (*domain.SwotAnalysis, error)
}

type swotRepository struct {
	conn *postgres.Connection
}

func NewSwotRepository(conn *postgres.Connection) SwotRepository {
	return &swotRepository{
		conn: conn,
	}
}

func (r *swotRepository) GetByUserID(userID string) (*domain.SwotAnalysis, error) {
	var swot domain.SwotAnalysis
	err := r.conn.QueryRow(
		"SELECT id, user_id, strengths, weaknesses, opportunities, threats, created_at, updated_at FROM swot_analysis WHERE user_id = $1",
		userID,
	).Scan(
		&swot.ID,
		&swot.UserID,
		&swot.Strengths,
		&swot.Weaknesses,
		&swot.Opportunities,
		&swot.Threats,
		&swot.CreatedAt,
		&swot.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar análise SWOT")
	}

	return &swot, nil
}

// SaveOrUpdateSwot grava a análise SWOT do usuário. Cada usuário possui no
// máximo uma análise, então o insert resolve conflito por user_id.
func (r *swotRepository) SaveOrUpdateSwot(swot *domain.SwotAnalysis) (*domain.SwotAnalysis, error) {
	if swot.ID == "" {
		swot.ID = uuid.New().String()
	}

	queryBuilder := squirrel.
		Insert(swotTable).
		Columns("id", "user_id", "strengths", "weaknesses", "opportunities", "threats").
		Values(swot.ID, swot.UserID, swot.Strengths, swot.Weaknesses, swot.Opportunities, swot.Threats).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			strengths = EXCLUDED.strengths,
			weaknesses = EXCLUDED.weaknesses,
			opportunities = EXCLUDED.opportunities,
			threats = EXCLUDED.threats,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		PlaceholderFormat(squirrel.Dollar)

	swotSQL, swotArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de gravação de SWOT")
	}

	err = r.conn.QueryRow(swotSQL, swotArgs...).Scan(&swot.ID, &swot.CreatedAt, &swot.UpdatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gravar análise SWOT")
	}

	return swot, nil
}
