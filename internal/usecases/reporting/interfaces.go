package reporting

import (
	"time"

	"github.com/vcampos/marketing-hub-api/internal/domain"
	"github.com/vcampos/marketing-hub-api/internal/usecases/aggregating"
)

// AnalyticsSummary agrega os números da página de analytics: totais do
// período, taxas derivadas, série mensal e distribuição por canal.
type AnalyticsSummary struct {
	Filters           *domain.MetricFilters       `json:"filters,omitempty"`
	TotalVisitors     float64                     `json:"total_visitors"`
	TotalConversions  float64                     `json:"total_conversions"`
	TotalRevenue      float64                     `json:"total_revenue"`
	ConversionRate    float64                     `json:"conversion_rate"`
	ROAS              float64                     `json:"roas"`
	BudgetUtilization int                         `json:"budget_utilization"`
	TotalBudget       float64                     `json:"total_budget"`
	TotalSpent        float64                     `json:"total_spent"`
	MonthlySeries     []*aggregating.MonthlyPoint `json:"monthly_series"`
	ChannelBreakdown  []*aggregating.ChannelSlice `json:"channel_breakdown"`
}

// DashboardSummary agrega os números exibidos nos cartões do dashboard
type DashboardSummary struct {
	ActiveCampaigns  int            `json:"active_campaigns"`
	TotalCampaigns   int            `json:"total_campaigns"`
	TotalBudget      float64        `json:"total_budget"`
	TotalSpent       float64        `json:"total_spent"`
	ROI              float64        `json:"roi"`
	TotalConversions float64        `json:"total_conversions"`
	UpcomingTasks    []*domain.Task `json:"upcoming_tasks"`
}

// ExecutiveReport é o relatório executivo renderizado em HTML
type ExecutiveReport struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	HTML        string    `json:"html"`
}

// Reporter calcula os resumos do dashboard e de analytics e gera o
// relatório executivo
type Reporter interface {
	GetAnalyticsSummary(filters *domain.MetricFilters) (*AnalyticsSummary, error)
	GetDashboardSummary() (*DashboardSummary, error)
	GenerateExecutiveReport() (*ExecutiveReport, error)
}
