package repository

import (
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vcampos/marketing-hub-api/infrastructure/database/postgres"
)

const monthlyRollupsTable = "monthly_metric_rollups"

// MonthlyRollup representa o fechamento pré-calculado de um mês: os totais
// de visitantes, conversões e receita de um usuário, materializados pelo
// agendador para que relatórios mensais não reprocessem a tabela de
// métricas inteira.
type MonthlyRollup struct {
	UserID      string    `json:"user_id"`
	Month       string    `json:"month"` // formato 2006-01
	Visitors    float64   `json:"visitors"`
	Conversions float64   `json:"conversions"`
	Revenue     float64   `json:"revenue"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type MonthlyRollupRepository interface {
	SaveOrUpdateRollup(rollup *MonthlyRollup) error
	ListByUserID(userID string) ([]*MonthlyRollup, error)
}

type monthlyRollupRepository struct {
	conn *postgres.Connection
}

func NewMonthlyRollupRepository(conn *postgres.Connection) MonthlyRollupRepository {
	return &monthlyRollupRepository{
		conn: conn,
	}
}

func (r *monthlyRollupRepository) SaveOrUpdateRollup(rollup *MonthlyRollup) error {
	queryBuilder := squirrel.
		Insert(monthlyRollupsTable).
		Columns("user_id", "month", "visitors", "conversions", "revenue", "updated_at").
		Values(rollup.UserID, rollup.Month, rollup.Visitors, rollup.Conversions, rollup.Revenue, squirrel.Expr("NOW()")).
		Suffix(`ON CONFLICT (user_id, month) DO UPDATE SET
			visitors = EXCLUDED.visitors,
			conversions = EXCLUDED.conversions,
			revenue = EXCLUDED.revenue,
			updated_at = NOW()`).
		PlaceholderFormat(squirrel.Dollar)

	rollupSQL, rollupArgs, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir consulta de fechamento mensal")
	}

	_, err = r.conn.Exec(rollupSQL, rollupArgs...)
	if err != nil {
		return errors.Wrap(err, "erro ao gravar fechamento mensal")
	}

	return nil
}

func (r *monthlyRollupRepository) ListByUserID(userID string) ([]*MonthlyRollup, error) {
	queryBuilder := squirrel.
		Select("user_id", "month", "visitors", "conversions", "revenue", "updated_at").
		From(monthlyRollupsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("month ASC").
		PlaceholderFormat(squirrel.Dollar)

	rollupSQL, rollupArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de fechamentos mensais")
	}

	rows, err := r.conn.Query(rollupSQL, rollupArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar fechamentos mensais")
	}
	defer rows.Close()

	var rollups []*MonthlyRollup
	for rows.Next() {
		var rollup MonthlyRollup
		if err := rows.Scan(
			&rollup.UserID,
			&rollup.Month,
			&rollup.Visitors,
			&rollup.Conversions,
			&rollup.Revenue,
			&rollup.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao processar fechamento mensal")
		}

		rollups = append(rollups, &rollup)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração de fechamentos mensais")
	}

	return rollups, nil
}
