package reporting

import (
	"bytes"
	"html/template"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vcampos/marketing-hub-api/infrastructure/repository"
	"github.com/vcampos/marketing-hub-api/internal/domain"
	"github.com/vcampos/marketing-hub-api/internal/usecases/aggregating"
	"github.com/vcampos/marketing-hub-api/pkg/utils"
)

type Service struct {
	campaignRepo repository.CampaignRepository
	metricRepo   repository.MetricRepository
	taskRepo     repository.TaskRepository
	aggregator   *aggregating.Aggregator
}

func NewService(
	campaignRepo repository.CampaignRepository,
	metricRepo repository.MetricRepository,
	taskRepo repository.TaskRepository,
	aggregator *aggregating.Aggregator,
) Reporter {
	return &Service{
		campaignRepo: campaignRepo,
		metricRepo:   metricRepo,
		taskRepo:     taskRepo,
		aggregator:   aggregator,
	}
}

// GetAnalyticsSummary calcula os totais do período, as taxas derivadas, a
// série mensal e a distribuição por canal. O filtro de intervalo e de
// campanha é aplicado sobre a mesma coleção usada em todos os números, para
// que os cartões e os gráficos sempre concordem entre si.
func (s *Service) GetAnalyticsSummary(filters *domain.MetricFilters) (*AnalyticsSummary, error) {
	if filters == nil {
		filters = &domain.MetricFilters{}
	}

	metrics, err := s.metricRepo.ListMetrics(filters)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar métricas para o resumo de analytics")
		return nil, err
	}

	metrics = s.aggregator.FilterByRange(metrics, filters.StartDate, filters.EndDate)
	metrics = s.aggregator.FilterByCampaign(metrics, filters.CampaignID)

	campaigns, err := s.campaignRepo.ListCampaigns()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar campanhas para o resumo de analytics")
		return nil, err
	}

	totalRevenue := s.aggregator.SumLogical(metrics, aggregating.MetricRevenue)
	totalSpent := s.aggregator.TotalSpent(campaigns)

	summary := &AnalyticsSummary{
		Filters:           filters,
		TotalVisitors:     s.aggregator.SumLogical(metrics, aggregating.MetricVisitors),
		TotalConversions:  s.aggregator.SumLogical(metrics, aggregating.MetricConversions),
		TotalRevenue:      totalRevenue,
		ConversionRate:    utils.RoundWithTwoDecimalPlace(s.aggregator.ConversionRate(metrics)),
		ROAS:              utils.RoundWithTwoDecimalPlace(s.aggregator.ROAS(totalRevenue, totalSpent)),
		BudgetUtilization: s.aggregator.BudgetUtilization(campaigns),
		TotalBudget:       s.aggregator.TotalBudget(campaigns),
		TotalSpent:        totalSpent,
		MonthlySeries:     s.aggregator.GroupByMonth(metrics),
		ChannelBreakdown:  s.aggregator.GroupByChannel(metrics),
	}

	return summary, nil
}

// GetDashboardSummary calcula os cartões do dashboard: campanhas ativas,
// orçamento consumido, ROI e as próximas tarefas com prazo nos próximos
// sete dias.
func (s *Service) GetDashboardSummary() (*DashboardSummary, error) {
	campaigns, err := s.campaignRepo.ListCampaigns()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar campanhas para o dashboard")
		return nil, err
	}

	metrics, err := s.metricRepo.ListMetrics(&domain.MetricFilters{})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar métricas para o dashboard")
		return nil, err
	}

	upcomingTasks, err := s.taskRepo.ListTasksDueBefore(time.Now().AddDate(0, 0, 7))
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar tarefas próximas do prazo para o dashboard")
		return nil, err
	}

	activeCampaigns := 0
	for _, c := range campaigns {
		if c.Status == domain.CampaignStatusActive {
			activeCampaigns++
		}
	}

	totalRevenue := s.aggregator.SumLogical(metrics, aggregating.MetricRevenue)
	totalSpent := s.aggregator.TotalSpent(campaigns)

	summary := &DashboardSummary{
		ActiveCampaigns:  activeCampaigns,
		TotalCampaigns:   len(campaigns),
		TotalBudget:      s.aggregator.TotalBudget(campaigns),
		TotalSpent:       totalSpent,
		ROI:              utils.RoundWithTwoDecimalPlace(s.aggregator.ROAS(totalRevenue, totalSpent)),
		TotalConversions: s.aggregator.SumLogical(metrics, aggregating.MetricConversions),
		UpcomingTasks:    upcomingTasks,
	}

	return summary, nil
}

var executiveReportTemplate = template.Must(template.New("executive-report").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>Relatório Executivo de Marketing</title>
</head>
<body>
<h1>Relatório Executivo de Marketing</h1>
<p>Gerado em {{.GeneratedAt.Format "02/01/2006 15:04"}} — identificador {{.ID}}</p>

<h2>Visão geral</h2>
<ul>
<li>Campanhas ativas: {{.Summary.ActiveCampaigns}} de {{.Summary.TotalCampaigns}}</li>
<li>Orçamento total: R$ {{printf "%.2f" .Summary.TotalBudget}}</li>
<li>Investimento realizado: R$ {{printf "%.2f" .Summary.TotalSpent}} ({{.Analytics.BudgetUtilization}}% do orçamento)</li>
<li>Receita atribuída: R$ {{printf "%.2f" .Analytics.TotalRevenue}}</li>
<li>ROAS: {{printf "%.2f" .Analytics.ROAS}}</li>
<li>Taxa de conversão: {{printf "%.2f" .Analytics.ConversionRate}}%</li>
</ul>

<h2>Desempenho mensal</h2>
<table border="1" cellpadding="4">
<tr><th>Mês</th><th>Visitantes</th><th>Conversões</th><th>Receita</th></tr>
{{range .Analytics.MonthlySeries}}<tr><td>{{.Label}}</td><td>{{printf "%.0f" .Visitors}}</td><td>{{printf "%.0f" .Conversions}}</td><td>R$ {{printf "%.2f" .Revenue}}</td></tr>
{{end}}</table>

<h2>Distribuição por canal</h2>
<table border="1" cellpadding="4">
<tr><th>Canal</th><th>Volume</th></tr>
{{range .Analytics.ChannelBreakdown}}<tr><td>{{.Channel}}</td><td>{{printf "%.0f" .Value}}</td></tr>
{{end}}</table>
</body>
</html>
`))

type executiveReportData struct {
	ID          string
	GeneratedAt time.Time
	Summary     *DashboardSummary
	Analytics   *AnalyticsSummary
}

// GenerateExecutiveReport monta o relatório executivo em HTML com os números
// consolidados de todo o histórico. Cada relatório gerado recebe um
// identificador curto próprio.
func (s *Service) GenerateExecutiveReport() (*ExecutiveReport, error) {
	reportID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	summary, err := s.GetDashboardSummary()
	if err != nil {
		return nil, err
	}

	analytics, err := s.GetAnalyticsSummary(nil)
	if err != nil {
		return nil, err
	}

	data := &executiveReportData{
		ID:          reportID,
		GeneratedAt: time.Now(),
		Summary:     summary,
		Analytics:   analytics,
	}

	var buf bytes.Buffer
	if err := executiveReportTemplate.Execute(&buf, data); err != nil {
		logrus.WithError(err).Error("Erro ao renderizar o relatório executivo")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"report_id": reportID,
	}).Info("Relatório executivo gerado")

	return &ExecutiveReport{
		ID:          reportID,
		GeneratedAt: data.GeneratedAt,
		HTML:        buf.String(),
	}, nil
}
