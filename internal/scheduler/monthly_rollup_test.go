package scheduler

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vcampos/marketing-hub-api/infrastructure/repository"
	"github.com/vcampos/marketing-hub-api/infrastructure/repository/mocks"
	"github.com/vcampos/marketing-hub-api/internal/domain"
	"github.com/vcampos/marketing-hub-api/internal/usecases/aggregating"
	"go.uber.org/mock/gomock"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestMonthlyRollupService_RollupMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Mocks
	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockMetricRepo := mocks.NewMockMetricRepository(ctrl)
	mockRollupRepo := mocks.NewMockMonthlyRollupRepository(ctrl)

	// Service
	service := &MonthlyRollupService{
		userRepo:   mockUserRepo,
		metricRepo: mockMetricRepo,
		rollupRepo: mockRollupRepo,
		aggregator: aggregating.NewAggregator(nil),
		config: MonthlyRollupConfig{
			MonthLookback: 1,
		},
	}

	now := time.Now()
	previousMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	expectedMonth := previousMonth.Format("2006-01")

	users := []*domain.User{
		{ID: "user-1", Name: "Ana"},
		{ID: "user-2", Name: "Bruno"},
	}

	tests := []struct {
		name        string
		setup       func()
		expectedErr bool
	}{
		{
			name: "Métricas do mês anterior são somadas por grandeza lógica",
			setup: func() {
				mockUserRepo.EXPECT().ListUsers().Return(users, nil)

				mockMetricRepo.EXPECT().
					ListMetricsByOwner("user-1", gomock.Any()).
					DoAndReturn(func(_ string, filters *domain.MetricFilters) ([]*domain.Metric, error) {
						// O mês corrente nunca entra na janela consolidada
						assert.Equal(t, previousMonth, *filters.StartDate)
						assert.True(t, filters.EndDate.Before(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)))

						return []*domain.Metric{
							{MetricName: "traffic", MetricValue: floatPtr(500), DateRecorded: previousMonth},
							{MetricName: "unique_visitors", MetricValue: floatPtr(100), DateRecorded: previousMonth},
							{MetricName: "conversions", MetricValue: floatPtr(30), DateRecorded: previousMonth},
							{MetricName: "revenue", MetricValue: floatPtr(9000), DateRecorded: previousMonth},
						}, nil
					})

				mockRollupRepo.EXPECT().
					SaveOrUpdateRollup(gomock.Any()).
					DoAndReturn(func(rollup *repository.MonthlyRollup) error {
						assert.Equal(t, "user-1", rollup.UserID)
						assert.Equal(t, expectedMonth, rollup.Month)
						assert.Equal(t, float64(600), rollup.Visitors)
						assert.Equal(t, float64(30), rollup.Conversions)
						assert.Equal(t, float64(9000), rollup.Revenue)
						return nil
					})

				// Usuário sem métricas no mês não gera rollup
				mockMetricRepo.EXPECT().
					ListMetricsByOwner("user-2", gomock.Any()).
					Return([]*domain.Metric{}, nil)
			},
		},
		{
			name: "Falha na consolidação de um usuário não interrompe os demais",
			setup: func() {
				mockUserRepo.EXPECT().ListUsers().Return(users, nil)

				mockMetricRepo.EXPECT().
					ListMetricsByOwner("user-1", gomock.Any()).
					Return(nil, errors.New("erro de banco"))

				mockMetricRepo.EXPECT().
					ListMetricsByOwner("user-2", gomock.Any()).
					Return([]*domain.Metric{
						{MetricName: "revenue", MetricValue: floatPtr(1200), DateRecorded: previousMonth},
					}, nil)

				mockRollupRepo.EXPECT().
					SaveOrUpdateRollup(gomock.Any()).
					DoAndReturn(func(rollup *repository.MonthlyRollup) error {
						assert.Equal(t, "user-2", rollup.UserID)
						assert.Equal(t, float64(1200), rollup.Revenue)
						return nil
					})
			},
		},
		{
			name: "Sem usuários nada é consolidado",
			setup: func() {
				mockUserRepo.EXPECT().ListUsers().Return([]*domain.User{}, nil)
			},
		},
		{
			name: "Erro na busca de usuários é propagado",
			setup: func() {
				mockUserRepo.EXPECT().ListUsers().Return(nil, errors.New("erro de banco"))
			},
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			err := service.RollupMetrics()

			if tt.expectedErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
