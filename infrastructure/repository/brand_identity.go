package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vcampos/marketing-hub-api/infrastructure/database/postgres"
	"github.com/vcampos/marketing-hub-api/internal/domain"
)

const brandIdentityTable = "brand_identity"

type BrandIdentityRepository interface {
	GetByUserID(userID string) (*domain.BrandIdentity, error)
	SaveOrUpdateBrandIdentity(brand *domain.BrandIdentity) (*domain.BrandIdentity, error)
}

type brandIdentityRepository struct {
	conn *postgres.Connection
}

func NewBrandIdentityRepository(conn *postgres.Connection) BrandIdentityRepository {
	return &brandIdentityRepository{
		conn: conn,
	}
}

func (r *brandIdentityRepository) GetByUserID(userID string) (*domain.BrandIdentity, error) {
	var brand domain.BrandIdentity
	err := r.conn.QueryRow(
		`SELECT id, user_id, mission, vision, positioning, "values", brand_persona, created_at, updated_at FROM brand_identity WHERE user_id = $1`,
		userID,
	).Scan(
		&brand.ID,
		&brand.UserID,
		&brand.Mission,
		&brand.Vision,
		&brand.Positioning,
		&brand.Values,
		&brand.BrandPersona,
		&brand.CreatedAt,
		&brand.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar identidade da marca")
	}

	return &brand, nil
}

// SaveOrUpdateBrandIdentity grava a identidade da marca do usuário. Cada
// usuário possui no máximo uma identidade, então o insert resolve conflito
// por user_id.
func (r *brandIdentityRepository) SaveOrUpdateBrandIdentity(brand *domain.BrandIdentity) (*domain.BrandIdentity, error) {
	if brand.ID == "" {
		brand.ID = uuid.New().String()
	}

	queryBuilder := squirrel.
		Insert(brandIdentityTable).
		Columns("id", "user_id", "mission", "vision", "positioning", `"values"`, "brand_persona").
		Values(brand.ID, brand.UserID, brand.Mission, brand.Vision, brand.Positioning, brand.Values, brand.BrandPersona).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			mission = EXCLUDED.mission,
			vision = EXCLUDED.vision,
			positioning = EXCLUDED.positioning,
			"values" = EXCLUDED."values",
			brand_persona = EXCLUDED.brand_persona,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		PlaceholderFormat(squirrel.Dollar)

	brandSQL, brandArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de gravação de identidade da marca")
	}

	err = r.conn.QueryRow(brandSQL, brandArgs...).Scan(&brand.ID, &brand.CreatedAt, &brand.UpdatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gravar identidade da marca")
	}

	return brand, nil
}
