package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vcampos/marketing-hub-api/infrastructure/database/postgres"
	"github.com/vcampos/marketing-hub-api/internal/domain"
)

const campaignsTable = "campaigns"

type CampaignRepository interface {
	CreateCampaign(campaign *domain.Campaign) (*domain.Campaign, error)
	UpdateCampaign(campaign *domain.Campaign) error
	DeleteCampaign(campaignID string) error
	GetCampaignByID(campaignID string) (*domain.Campaign, error)
	ListCampaigns() ([]*domain.Campaign, error)
	ListCampaignsByOwner(userID string) ([]*domain.Campaign, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) CreateCampaign(campaign *domain.Campaign) (*domain.Campaign, error) {
	if campaign.ID == "" {
		campaign.ID = uuid.New().String()
	}

	queryBuilder := squirrel.
		Insert(campaignsTable).
		Columns("id", "user_id", "name", "description", "status", "budget", "spent", "start_date", "end_date", "channels", "objective_id").
		Values(
			campaign.ID,
			campaign.UserID,
			campaign.Name,
			campaign.Description,
			campaign.Status,
			campaign.Budget,
			campaign.Spent,
			campaign.StartDate,
			campaign.EndDate,
			pq.Array(channelsToStrings(campaign.Channels)),
			campaign.ObjectiveID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	campaignSQL, campaignArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de criação de campanha")
	}

	err = r.conn.QueryRow(campaignSQL, campaignArgs...).Scan(&campaign.ID, &campaign.CreatedAt, &campaign.UpdatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao inserir campanha")
	}

	return campaign, nil
}

func (r *campaignRepository) UpdateCampaign(campaign *domain.Campaign) error {
	// O dono da campanha nunca muda: user_id fica fora do update
	queryBuilder := squirrel.
		Update(campaignsTable).
		Set("name", campaign.Name).
		Set("description", campaign.Description).
		Set("status", campaign.Status).
		Set("budget", campaign.Budget).
		Set("spent", campaign.Spent).
		Set("start_date", campaign.StartDate).
		Set("end_date", campaign.EndDate).
		Set("channels", pq.Array(channelsToStrings(campaign.Channels))).
		Set("objective_id", campaign.ObjectiveID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": campaign.ID}).
		PlaceholderFormat(squirrel.Dollar)

	campaignSQL, campaignArgs, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir consulta de atualização de campanha")
	}

	_, err = r.conn.Exec(campaignSQL, campaignArgs...)
	if err != nil {
		return errors.Wrap(err, "erro ao atualizar campanha")
	}

	return nil
}

func (r *campaignRepository) DeleteCampaign(campaignID string) error {
	queryBuilder := squirrel.
		Delete(campaignsTable).
		Where(squirrel.Eq{"id": campaignID}).
		PlaceholderFormat(squirrel.Dollar)

	campaignSQL, campaignArgs, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir consulta de exclusão de campanha")
	}

	_, err = r.conn.Exec(campaignSQL, campaignArgs...)
	if err != nil {
		return errors.Wrap(err, "erro ao excluir campanha")
	}

	return nil
}

func (r *campaignRepository) GetCampaignByID(campaignID string) (*domain.Campaign, error) {
	queryBuilder := squirrel.
		Select("id", "user_id", "name", "description", "status", "budget", "spent", "start_date", "end_date", "channels", "objective_id", "created_at", "updated_at").
		From(campaignsTable).
		Where(squirrel.Eq{"id": campaignID}).
		PlaceholderFormat(squirrel.Dollar)

	campaignSQL, campaignArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de campanha")
	}

	campaign, err := scanCampaign(r.conn.QueryRow(campaignSQL, campaignArgs...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar campanha")
	}

	return campaign, nil
}

func (r *campaignRepository) ListCampaigns() ([]*domain.Campaign, error) {
	return r.listCampaigns(squirrel.Eq{})
}

func (r *campaignRepository) ListCampaignsByOwner(userID string) ([]*domain.Campaign, error) {
	return r.listCampaigns(squirrel.Eq{"user_id": userID})
}

func (r *campaignRepository) listCampaigns(where squirrel.Eq) ([]*domain.Campaign, error) {
	queryBuilder := squirrel.
		Select("id", "user_id", "name", "description", "status", "budget", "spent", "start_date", "end_date", "channels", "objective_id", "created_at", "updated_at").
		From(campaignsTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if len(where) > 0 {
		queryBuilder = queryBuilder.Where(where)
	}

	campaignSQL, campaignArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de campanhas")
	}

	rows, err := r.conn.Query(campaignSQL, campaignArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar campanhas")
	}
	defer rows.Close()

	var campaigns []*domain.Campaign
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao processar campanha")
		}

		campaigns = append(campaigns, campaign)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração de campanhas")
	}

	return campaigns, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCampaign(row rowScanner) (*domain.Campaign, error) {
	var campaign domain.Campaign
	var channels pq.StringArray

	err := row.Scan(
		&campaign.ID,
		&campaign.UserID,
		&campaign.Name,
		&campaign.Description,
		&campaign.Status,
		&campaign.Budget,
		&campaign.Spent,
		&campaign.StartDate,
		&campaign.EndDate,
		&channels,
		&campaign.ObjectiveID,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	campaign.Channels = stringsToChannels(channels)

	return &campaign, nil
}

func channelsToStrings(channels []domain.Channel) []string {
	out := make([]string, 0, len(channels))
	for _, c := range channels {
		out = append(out, string(c))
	}
	return out
}

func stringsToChannels(values []string) []domain.Channel {
	out := make([]domain.Channel, 0, len(values))
	for _, v := range values {
		out = append(out, domain.Channel(v))
	}
	return out
}
