package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vcampos/marketing-hub-api/internal/domain"
)

func metric(name string, value float64, date string) *domain.Metric {
	recorded, _ := time.Parse("2006-01-02", date)
	return &domain.Metric{
		MetricName:   name,
		MetricValue:  &value,
		DateRecorded: recorded,
	}
}

func campaignMetric(name string, value float64, date, campaignID string) *domain.Metric {
	m := metric(name, value, date)
	m.CampaignID = &campaignID
	return m
}

func datePtr(value string) *time.Time {
	parsed, _ := time.Parse("2006-01-02", value)
	return &parsed
}

func TestAggregator_SumByNames(t *testing.T) {
	aggregator := NewAggregator(nil)

	tests := []struct {
		name     string
		metrics  []*domain.Metric
		names    []string
		expected float64
	}{
		{
			name:     "Coleção vazia soma zero",
			metrics:  []*domain.Metric{},
			names:    []string{"visitors"},
			expected: 0,
		},
		{
			name: "Soma apenas os nomes do conjunto",
			metrics: []*domain.Metric{
				metric("visitors", 100, "2024-03-01"),
				metric("revenue", 999, "2024-03-01"),
			},
			names:    []string{"visitors", "traffic"},
			expected: 100,
		},
		{
			name: "União de sinônimos soma todos os nomes",
			metrics: []*domain.Metric{
				metric("traffic", 40, "2024-03-01"),
				metric("visitors", 50, "2024-03-02"),
				metric("unique_visitors", 10, "2024-03-03"),
			},
			names:    []string{"traffic", "visitors", "unique_visitors"},
			expected: 100,
		},
		{
			name: "Valor ausente conta como zero",
			metrics: []*domain.Metric{
				{MetricName: "visitors", MetricValue: nil},
				metric("visitors", 30, "2024-03-01"),
			},
			names:    []string{"visitors"},
			expected: 30,
		},
		{
			name: "Valor negativo é coagido para zero",
			metrics: []*domain.Metric{
				metric("visitors", -50, "2024-03-01"),
				metric("visitors", 80, "2024-03-02"),
			},
			names:    []string{"visitors"},
			expected: 80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, aggregator.SumByNames(tt.metrics, tt.names))
		})
	}
}

func TestAggregator_ConversionRate(t *testing.T) {
	aggregator := NewAggregator(nil)

	t.Run("Denominador zero resulta em zero", func(t *testing.T) {
		metrics := []*domain.Metric{
			metric("conversions", 10, "2024-03-01"),
			metric("traffic", 0, "2024-03-01"),
		}
		assert.Equal(t, 0.0, aggregator.ConversionRate(metrics))
	})

	t.Run("Taxa calculada sobre a união de sinônimos de tráfego", func(t *testing.T) {
		metrics := []*domain.Metric{
			metric("conversions", 25, "2024-03-01"),
			metric("visitors", 500, "2024-03-01"),
		}
		assert.Equal(t, 5.0, aggregator.ConversionRate(metrics))
	})

	t.Run("Coleção vazia resulta em zero", func(t *testing.T) {
		assert.Equal(t, 0.0, aggregator.ConversionRate(nil))
	})
}

func TestAggregator_ROAS(t *testing.T) {
	aggregator := NewAggregator(nil)

	assert.Equal(t, 0.0, aggregator.ROAS(0, 0))
	assert.Equal(t, 3.0, aggregator.ROAS(450, 150))
	assert.Equal(t, 0.0, aggregator.ROAS(450, -10))
	assert.Equal(t, 0.0, aggregator.ROAS(-100, 150))
}

func TestAggregator_BudgetUtilization(t *testing.T) {
	aggregator := NewAggregator(nil)

	tests := []struct {
		name      string
		campaigns []*domain.Campaign
		expected  int
	}{
		{
			name:      "Sem campanhas resulta em zero",
			campaigns: nil,
			expected:  0,
		},
		{
			name: "Orçamento zerado resulta em zero",
			campaigns: []*domain.Campaign{
				{Budget: 0, Spent: 500},
			},
			expected: 0,
		},
		{
			name: "Utilização arredondada sobre os totais",
			campaigns: []*domain.Campaign{
				{Budget: 1000, Spent: 500},
				{Budget: 0, Spent: 0},
			},
			expected: 50,
		},
		{
			name: "Estouro de orçamento é representável",
			campaigns: []*domain.Campaign{
				{Budget: 100, Spent: 250},
			},
			expected: 250,
		},
		{
			name: "Valores negativos são coagidos para zero",
			campaigns: []*domain.Campaign{
				{Budget: -100, Spent: -50},
				{Budget: 200, Spent: 66},
			},
			expected: 33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, aggregator.BudgetUtilization(tt.campaigns))
		})
	}
}

func TestAggregator_FilterByRange(t *testing.T) {
	aggregator := NewAggregator(nil)

	metrics := []*domain.Metric{
		metric("clicks", 120, "2024-03-05"),
		metric("impressions", 3000, "2024-03-05"),
	}

	t.Run("Intervalo que contém as métricas mantém todas", func(t *testing.T) {
		filtered := aggregator.FilterByRange(metrics, datePtr("2024-03-01"), datePtr("2024-03-31"))
		assert.Len(t, filtered, 2)
	})

	t.Run("Intervalo posterior exclui todas", func(t *testing.T) {
		filtered := aggregator.FilterByRange(metrics, datePtr("2024-04-01"), datePtr("2024-04-30"))
		assert.Empty(t, filtered)
	})

	t.Run("Limites ausentes não restringem", func(t *testing.T) {
		assert.Len(t, aggregator.FilterByRange(metrics, nil, nil), 2)
		assert.Len(t, aggregator.FilterByRange(metrics, datePtr("2024-03-01"), nil), 2)
		assert.Len(t, aggregator.FilterByRange(metrics, nil, datePtr("2024-03-31")), 2)
	})

	t.Run("Limites inclusivos nos extremos", func(t *testing.T) {
		filtered := aggregator.FilterByRange(metrics, datePtr("2024-03-05"), datePtr("2024-03-05"))
		assert.Len(t, filtered, 2)
	})

	t.Run("Filtrar duas vezes com os mesmos limites é idempotente", func(t *testing.T) {
		once := aggregator.FilterByRange(metrics, datePtr("2024-03-01"), datePtr("2024-03-31"))
		twice := aggregator.FilterByRange(once, datePtr("2024-03-01"), datePtr("2024-03-31"))
		assert.Equal(t, once, twice)
	})

	t.Run("Coleção de entrada não é modificada", func(t *testing.T) {
		aggregator.FilterByRange(metrics, datePtr("2024-04-01"), datePtr("2024-04-30"))
		assert.Len(t, metrics, 2)
	})
}

func TestAggregator_FilterByCampaign(t *testing.T) {
	aggregator := NewAggregator(nil)

	metrics := []*domain.Metric{
		campaignMetric("visitors", 100, "2024-03-01", "camp-1"),
		campaignMetric("visitors", 200, "2024-03-01", "camp-2"),
		metric("visitors", 300, "2024-03-01"),
	}

	t.Run("Sentinela all não filtra", func(t *testing.T) {
		assert.Len(t, aggregator.FilterByCampaign(metrics, domain.AllCampaigns), 3)
	})

	t.Run("Filtro por campanha mantém apenas as métricas da campanha", func(t *testing.T) {
		filtered := aggregator.FilterByCampaign(metrics, "camp-1")
		assert.Len(t, filtered, 1)
		assert.Equal(t, 100.0, filtered[0].Value())
	})

	t.Run("Métricas sem campanha são excluídas quando o filtro está ativo", func(t *testing.T) {
		filtered := aggregator.FilterByCampaign(metrics, "camp-3")
		assert.Empty(t, filtered)
	})
}

func TestAggregator_GroupByMonth(t *testing.T) {
	aggregator := NewAggregator(nil)

	t.Run("Coleção vazia produz série vazia", func(t *testing.T) {
		assert.Empty(t, aggregator.GroupByMonth(nil))
	})

	t.Run("Acumula sinônimos por mês e ordena cronologicamente", func(t *testing.T) {
		// Métricas fora de ordem cronológica de propósito
		metrics := []*domain.Metric{
			metric("revenue", 900, "2024-05-10"),
			metric("traffic", 100, "2024-03-02"),
			metric("conversions", 5, "2024-05-15"),
			metric("unique_visitors", 50, "2024-03-20"),
			metric("visitors", 25, "2024-03-07"),
			metric("revenue", 100, "2024-05-28"),
		}

		points := aggregator.GroupByMonth(metrics)

		assert.Len(t, points, 2)

		assert.Equal(t, "Mar 2024", points[0].Label)
		assert.Equal(t, 175.0, points[0].Visitors)
		assert.Equal(t, 0.0, points[0].Conversions)

		assert.Equal(t, "May 2024", points[1].Label)
		assert.Equal(t, 5.0, points[1].Conversions)
		assert.Equal(t, 1000.0, points[1].Revenue)
	})

	t.Run("Meses de anos diferentes não se misturam", func(t *testing.T) {
		metrics := []*domain.Metric{
			metric("visitors", 10, "2023-03-01"),
			metric("visitors", 20, "2024-03-01"),
		}

		points := aggregator.GroupByMonth(metrics)

		assert.Len(t, points, 2)
		assert.Equal(t, "Mar 2023", points[0].Label)
		assert.Equal(t, "Mar 2024", points[1].Label)
	})
}

func TestAggregator_GroupByChannel(t *testing.T) {
	aggregator := NewAggregator(nil)

	seo := domain.ChannelSEO
	ppc := domain.ChannelPPC

	metrics := []*domain.Metric{
		{MetricName: "visitors", MetricValue: floatPtr(100), Channel: &seo},
		{MetricName: "visitors", MetricValue: floatPtr(300), Channel: &ppc},
		{MetricName: "visitors", MetricValue: floatPtr(50), Channel: &seo},
		{MetricName: "visitors", MetricValue: floatPtr(10)},
	}

	slices := aggregator.GroupByChannel(metrics)

	assert.Len(t, slices, 2)
	assert.Equal(t, domain.ChannelPPC, slices[0].Channel)
	assert.Equal(t, 300.0, slices[0].Value)
	assert.Equal(t, domain.ChannelSEO, slices[1].Channel)
	assert.Equal(t, 150.0, slices[1].Value)
}

func floatPtr(f float64) *float64 {
	return &f
}
