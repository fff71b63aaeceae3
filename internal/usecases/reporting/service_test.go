package reporting

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vcampos/marketing-hub-api/infrastructure/repository/mocks"
	"github.com/vcampos/marketing-hub-api/internal/domain"
	"github.com/vcampos/marketing-hub-api/internal/usecases/aggregating"
	"go.uber.org/mock/gomock"
)

func floatPtr(v float64) *float64 {
	return &v
}

func metricOf(name string, value float64, recorded time.Time, campaignID string, channel domain.Channel) *domain.Metric {
	m := &domain.Metric{
		MetricName:   name,
		MetricValue:  floatPtr(value),
		DateRecorded: recorded,
	}

	if campaignID != "" {
		m.CampaignID = &campaignID
	}

	if channel != "" {
		m.Channel = &channel
	}

	return m
}

func newService(t *testing.T) (Reporter, *mocks.MockCampaignRepository, *mocks.MockMetricRepository, *mocks.MockTaskRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	mockMetricRepo := mocks.NewMockMetricRepository(ctrl)
	mockTaskRepo := mocks.NewMockTaskRepository(ctrl)

	service := NewService(mockCampaignRepo, mockMetricRepo, mockTaskRepo, aggregating.NewAggregator(nil))

	return service, mockCampaignRepo, mockMetricRepo, mockTaskRepo
}

func TestService_GetAnalyticsSummary(t *testing.T) {
	january := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	february := time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC)

	campaigns := []*domain.Campaign{
		{ID: "camp-1", Name: "Primavera", Budget: 10000, Spent: 4000},
		{ID: "camp-2", Name: "Inverno", Budget: 5000, Spent: 1000},
	}

	metrics := []*domain.Metric{
		metricOf("traffic", 800, january, "camp-1", domain.ChannelSEO),
		metricOf("unique_visitors", 200, february, "camp-2", domain.ChannelEmail),
		metricOf("conversions", 50, january, "camp-1", domain.ChannelSEO),
		metricOf("revenue", 15000, february, "camp-2", domain.ChannelEmail),
	}

	t.Run("Totais, taxas e séries batem entre si sem filtro", func(t *testing.T) {
		service, mockCampaignRepo, mockMetricRepo, _ := newService(t)

		mockMetricRepo.EXPECT().ListMetrics(gomock.Any()).Return(metrics, nil)
		mockCampaignRepo.EXPECT().ListCampaigns().Return(campaigns, nil)

		summary, err := service.GetAnalyticsSummary(nil)

		assert.NoError(t, err)
		assert.Equal(t, float64(1000), summary.TotalVisitors)
		assert.Equal(t, float64(50), summary.TotalConversions)
		assert.Equal(t, float64(15000), summary.TotalRevenue)
		assert.Equal(t, float64(5), summary.ConversionRate)
		assert.Equal(t, float64(3), summary.ROAS)
		assert.Equal(t, 33, summary.BudgetUtilization)
		assert.Equal(t, float64(15000), summary.TotalBudget)
		assert.Equal(t, float64(5000), summary.TotalSpent)

		if assert.Len(t, summary.MonthlySeries, 2) {
			assert.Equal(t, "Jan 2026", summary.MonthlySeries[0].Label)
			assert.Equal(t, float64(800), summary.MonthlySeries[0].Visitors)
			assert.Equal(t, float64(50), summary.MonthlySeries[0].Conversions)
			assert.Equal(t, "Feb 2026", summary.MonthlySeries[1].Label)
			assert.Equal(t, float64(15000), summary.MonthlySeries[1].Revenue)
		}

		if assert.Len(t, summary.ChannelBreakdown, 2) {
			assert.Equal(t, domain.ChannelEmail, summary.ChannelBreakdown[0].Channel)
			assert.Equal(t, float64(15200), summary.ChannelBreakdown[0].Value)
			assert.Equal(t, domain.ChannelSEO, summary.ChannelBreakdown[1].Channel)
		}
	})

	t.Run("Filtro de campanha restringe todos os números", func(t *testing.T) {
		service, mockCampaignRepo, mockMetricRepo, _ := newService(t)

		mockMetricRepo.EXPECT().ListMetrics(gomock.Any()).Return(metrics, nil)
		mockCampaignRepo.EXPECT().ListCampaigns().Return(campaigns, nil)

		summary, err := service.GetAnalyticsSummary(&domain.MetricFilters{CampaignID: "camp-1"})

		assert.NoError(t, err)
		assert.Equal(t, float64(800), summary.TotalVisitors)
		assert.Equal(t, float64(50), summary.TotalConversions)
		assert.Equal(t, float64(0), summary.TotalRevenue)
		assert.Equal(t, 6.25, summary.ConversionRate)
		assert.Len(t, summary.MonthlySeries, 1)
	})

	t.Run("Filtro de intervalo descarta métricas fora do período", func(t *testing.T) {
		service, mockCampaignRepo, mockMetricRepo, _ := newService(t)

		mockMetricRepo.EXPECT().ListMetrics(gomock.Any()).Return(metrics, nil)
		mockCampaignRepo.EXPECT().ListCampaigns().Return(campaigns, nil)

		start := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
		summary, err := service.GetAnalyticsSummary(&domain.MetricFilters{StartDate: &start})

		assert.NoError(t, err)
		assert.Equal(t, float64(200), summary.TotalVisitors)
		assert.Equal(t, float64(0), summary.TotalConversions)
		assert.Equal(t, float64(15000), summary.TotalRevenue)
	})

	t.Run("Sem métricas os totais são o valor identidade", func(t *testing.T) {
		service, mockCampaignRepo, mockMetricRepo, _ := newService(t)

		mockMetricRepo.EXPECT().ListMetrics(gomock.Any()).Return([]*domain.Metric{}, nil)
		mockCampaignRepo.EXPECT().ListCampaigns().Return([]*domain.Campaign{}, nil)

		summary, err := service.GetAnalyticsSummary(nil)

		assert.NoError(t, err)
		assert.Equal(t, float64(0), summary.TotalVisitors)
		assert.Equal(t, float64(0), summary.ConversionRate)
		assert.Equal(t, float64(0), summary.ROAS)
		assert.Equal(t, 0, summary.BudgetUtilization)
		assert.Empty(t, summary.MonthlySeries)
		assert.Empty(t, summary.ChannelBreakdown)
	})
}

func TestService_GetDashboardSummary(t *testing.T) {
	service, mockCampaignRepo, mockMetricRepo, mockTaskRepo := newService(t)

	campaigns := []*domain.Campaign{
		{ID: "camp-1", Status: domain.CampaignStatusActive, Budget: 8000, Spent: 2000},
		{ID: "camp-2", Status: domain.CampaignStatusPaused, Budget: 2000, Spent: 500},
		{ID: "camp-3", Status: domain.CampaignStatusActive, Budget: 0, Spent: 0},
	}

	now := time.Now()
	metrics := []*domain.Metric{
		metricOf("revenue", 10000, now, "camp-1", ""),
		metricOf("conversions", 40, now, "camp-1", ""),
	}

	upcoming := []*domain.Task{
		{ID: "task-1", Title: "Publicar post do lançamento"},
	}

	mockCampaignRepo.EXPECT().ListCampaigns().Return(campaigns, nil)
	mockMetricRepo.EXPECT().ListMetrics(gomock.Any()).Return(metrics, nil)
	mockTaskRepo.EXPECT().
		ListTasksDueBefore(gomock.Any()).
		DoAndReturn(func(deadline time.Time) ([]*domain.Task, error) {
			assert.WithinDuration(t, now.AddDate(0, 0, 7), deadline, time.Minute)
			return upcoming, nil
		})

	summary, err := service.GetDashboardSummary()

	assert.NoError(t, err)
	assert.Equal(t, 2, summary.ActiveCampaigns)
	assert.Equal(t, 3, summary.TotalCampaigns)
	assert.Equal(t, float64(10000), summary.TotalBudget)
	assert.Equal(t, float64(2500), summary.TotalSpent)
	assert.Equal(t, float64(4), summary.ROI)
	assert.Equal(t, float64(40), summary.TotalConversions)
	assert.Equal(t, upcoming, summary.UpcomingTasks)
}

func TestService_GenerateExecutiveReport(t *testing.T) {
	service, mockCampaignRepo, mockMetricRepo, mockTaskRepo := newService(t)

	campaigns := []*domain.Campaign{
		{ID: "camp-1", Status: domain.CampaignStatusActive, Budget: 10000, Spent: 5000},
	}

	metrics := []*domain.Metric{
		metricOf("revenue", 20000, time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC), "camp-1", domain.ChannelPPC),
		metricOf("traffic", 900, time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC), "camp-1", domain.ChannelPPC),
	}

	mockCampaignRepo.EXPECT().ListCampaigns().Return(campaigns, nil).Times(2)
	mockMetricRepo.EXPECT().ListMetrics(gomock.Any()).Return(metrics, nil).Times(2)
	mockTaskRepo.EXPECT().ListTasksDueBefore(gomock.Any()).Return([]*domain.Task{}, nil)

	report, err := service.GenerateExecutiveReport()

	assert.NoError(t, err)
	assert.NotEmpty(t, report.ID)
	assert.False(t, report.GeneratedAt.IsZero())
	assert.True(t, strings.Contains(report.HTML, "Relatório Executivo de Marketing"))
	assert.True(t, strings.Contains(report.HTML, "Campanhas ativas: 1 de 1"))
	assert.True(t, strings.Contains(report.HTML, "ROAS: 4.00"))
	assert.True(t, strings.Contains(report.HTML, "Mar 2026"))
	assert.True(t, strings.Contains(report.HTML, "ppc"))
}
