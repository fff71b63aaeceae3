package repository

import (
	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vcampos/marketing-hub-api/infrastructure/database/postgres"
	"github.com/vcampos/marketing-hub-api/internal/domain"
)

const metricsTable = "metrics"

// MetricRepository persiste métricas. Métricas são append-only: não há
// operação de atualização ou exclusão de valor; correções entram como novas
// linhas.
type MetricRepository interface {
	CreateMetric(metric *domain.Metric) (*domain.Metric, error)
	ListMetrics(filters *domain.MetricFilters) ([]*domain.Metric, error)
	ListMetricsByOwner(userID string, filters *domain.MetricFilters) ([]*domain.Metric, error)
}

type metricRepository struct {
	conn *postgres.Connection
}

func NewMetricRepository(conn *postgres.Connection) MetricRepository {
	return &metricRepository{
		conn: conn,
	}
}

func (r *metricRepository) CreateMetric(metric *domain.Metric) (*domain.Metric, error) {
	if metric.ID == "" {
		metric.ID = uuid.New().String()
	}

	queryBuilder := squirrel.
		Insert(metricsTable).
		Columns("id", "user_id", "campaign_id", "channel", "metric_name", "metric_value", "date_recorded").
		Values(
			metric.ID,
			metric.UserID,
			metric.CampaignID,
			metric.Channel,
			metric.MetricName,
			metric.MetricValue,
			metric.DateRecorded,
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	metricSQL, metricArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de criação de métrica")
	}

	err = r.conn.QueryRow(metricSQL, metricArgs...).Scan(&metric.ID, &metric.CreatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao inserir métrica")
	}

	return metric, nil
}

func (r *metricRepository) ListMetrics(filters *domain.MetricFilters) ([]*domain.Metric, error) {
	return r.listMetrics(squirrel.Eq{}, filters)
}

func (r *metricRepository) ListMetricsByOwner(userID string, filters *domain.MetricFilters) ([]*domain.Metric, error) {
	return r.listMetrics(squirrel.Eq{"user_id": userID}, filters)
}

func (r *metricRepository) listMetrics(where squirrel.Eq, filters *domain.MetricFilters) ([]*domain.Metric, error) {
	queryBuilder := squirrel.
		Select("id", "user_id", "campaign_id", "channel", "metric_name", "metric_value", "date_recorded", "created_at").
		From(metricsTable).
		OrderBy("date_recorded DESC").
		PlaceholderFormat(squirrel.Dollar)

	if len(where) > 0 {
		queryBuilder = queryBuilder.Where(where)
	}

	// Filtros replicados no banco para reduzir o volume trafegado; o
	// agregador reaplica os mesmos critérios em memória
	if filters != nil {
		if filters.StartDate != nil {
			queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"date_recorded": *filters.StartDate})
		}

		if filters.EndDate != nil {
			queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"date_recorded": *filters.EndDate})
		}

		if filters.CampaignID != "" && filters.CampaignID != domain.AllCampaigns {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"campaign_id": filters.CampaignID})
		}
	}

	metricSQL, metricArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de métricas")
	}

	rows, err := r.conn.Query(metricSQL, metricArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar métricas")
	}
	defer rows.Close()

	var metrics []*domain.Metric
	for rows.Next() {
		var metric domain.Metric
		if err := rows.Scan(
			&metric.ID,
			&metric.UserID,
			&metric.CampaignID,
			&metric.Channel,
			&metric.MetricName,
			&metric.MetricValue,
			&metric.DateRecorded,
			&metric.CreatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao processar métrica")
		}

		metrics = append(metrics, &metric)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração de métricas")
	}

	return metrics, nil
}
