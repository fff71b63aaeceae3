package aggregating

import (
	"math"
	"sort"
	"time"

	"github.com/vcampos/marketing-hub-api/internal/domain"
)

// Aggregator reduz coleções de métricas já carregadas em números prontos
// para exibição. Todas as operações são puras: a coleção de entrada nunca é
// modificada, coleção vazia produz o valor identidade e nenhuma operação
// propaga NaN ou infinito para o chamador.
type Aggregator struct {
	nameSets NameSets
}

// NewAggregator cria um agregador com o mapeamento de sinônimos informado.
// Mapeamento nulo usa o mapeamento canônico.
func NewAggregator(nameSets NameSets) *Aggregator {
	if nameSets == nil {
		nameSets = DefaultNameSets()
	}

	return &Aggregator{nameSets: nameSets}
}

// FilterByRange mantém apenas as métricas registradas dentro do intervalo
// informado. Limites ausentes não restringem. A comparação considera apenas
// a data, nunca o horário.
func (a *Aggregator) FilterByRange(metrics []*domain.Metric, start, end *time.Time) []*domain.Metric {
	filtered := make([]*domain.Metric, 0, len(metrics))

	for _, m := range metrics {
		recorded := truncateToDay(m.DateRecorded)

		if start != nil && recorded.Before(truncateToDay(*start)) {
			continue
		}

		if end != nil && recorded.After(truncateToDay(*end)) {
			continue
		}

		filtered = append(filtered, m)
	}

	return filtered
}

// FilterByCampaign mantém apenas as métricas da campanha informada. O
// sentinela "all" (ou vazio) desativa o filtro. Métricas sem campanha só
// aparecem quando o filtro está desativado.
func (a *Aggregator) FilterByCampaign(metrics []*domain.Metric, campaignID string) []*domain.Metric {
	if campaignID == "" || campaignID == domain.AllCampaigns {
		return metrics
	}

	filtered := make([]*domain.Metric, 0, len(metrics))
	for _, m := range metrics {
		if m.CampaignID != nil && *m.CampaignID == campaignID {
			filtered = append(filtered, m)
		}
	}

	return filtered
}

// SumByNames soma os valores das métricas cujo nome pertence ao conjunto
// informado. Valores ausentes ou negativos contam como 0.
func (a *Aggregator) SumByNames(metrics []*domain.Metric, names []string) float64 {
	nameSet := make(map[string]bool, len(names))
	for _, name := range names {
		nameSet[name] = true
	}

	var total float64
	for _, m := range metrics {
		if nameSet[m.MetricName] {
			total += m.Value()
		}
	}

	return total
}

// SumLogical soma a grandeza lógica informada usando o mapeamento de
// sinônimos do agregador.
func (a *Aggregator) SumLogical(metrics []*domain.Metric, metric LogicalMetric) float64 {
	return a.SumByNames(metrics, a.nameSets.Names(metric))
}

// ConversionRate calcula o percentual de conversões sobre o total de
// visitantes (união dos sinônimos de tráfego). Denominador zero resulta em 0.
func (a *Aggregator) ConversionRate(metrics []*domain.Metric) float64 {
	visitors := a.SumLogical(metrics, MetricVisitors)
	if visitors == 0 {
		return 0
	}

	conversions := a.SumLogical(metrics, MetricConversions)

	return (conversions / visitors) * 100
}

// ROAS calcula o retorno sobre investimento em anúncios: receita dividida
// pelo gasto. Gasto zero resulta em 0.
func (a *Aggregator) ROAS(totalRevenue, totalSpent float64) float64 {
	if totalSpent <= 0 {
		return 0
	}

	if totalRevenue < 0 {
		totalRevenue = 0
	}

	return totalRevenue / totalSpent
}

// TotalBudget soma o orçamento das campanhas, coagindo negativos para 0
func (a *Aggregator) TotalBudget(campaigns []*domain.Campaign) float64 {
	var total float64
	for _, c := range campaigns {
		if c.Budget > 0 {
			total += c.Budget
		}
	}

	return total
}

// TotalSpent soma o gasto das campanhas, coagindo negativos para 0
func (a *Aggregator) TotalSpent(campaigns []*domain.Campaign) float64 {
	var total float64
	for _, c := range campaigns {
		if c.Spent > 0 {
			total += c.Spent
		}
	}

	return total
}

// BudgetUtilization calcula o percentual do orçamento consumido pelas
// campanhas, arredondado para o inteiro mais próximo. Orçamento total zero
// resulta em 0. O arredondamento acontece apenas na saída, nunca durante a
// acumulação.
func (a *Aggregator) BudgetUtilization(campaigns []*domain.Campaign) int {
	budget := a.TotalBudget(campaigns)
	if budget == 0 {
		return 0
	}

	spent := a.TotalSpent(campaigns)

	return int(math.Round((spent / budget) * 100))
}

// MonthlyPoint representa um mês agregado do gráfico de desempenho
type MonthlyPoint struct {
	Month       time.Time `json:"-"`
	Label       string    `json:"month"`
	Visitors    float64   `json:"visitors"`
	Conversions float64   `json:"conversions"`
	Revenue     float64   `json:"revenue"`
}

// GroupByMonth agrupa visitantes, conversões e receita por mês calendário.
// A saída é ordenada cronologicamente, independente da ordem de chegada das
// métricas, para que o eixo X dos gráficos seja estável.
func (a *Aggregator) GroupByMonth(metrics []*domain.Metric) []*MonthlyPoint {
	visitorNames := toSet(a.nameSets.Names(MetricVisitors))
	conversionNames := toSet(a.nameSets.Names(MetricConversions))
	revenueNames := toSet(a.nameSets.Names(MetricRevenue))

	buckets := make(map[time.Time]*MonthlyPoint)

	for _, m := range metrics {
		month := time.Date(m.DateRecorded.Year(), m.DateRecorded.Month(), 1, 0, 0, 0, 0, time.UTC)

		point, ok := buckets[month]
		if !ok {
			point = &MonthlyPoint{
				Month: month,
				Label: month.Format("Jan 2006"),
			}
			buckets[month] = point
		}

		switch {
		case visitorNames[m.MetricName]:
			point.Visitors += m.Value()
		case conversionNames[m.MetricName]:
			point.Conversions += m.Value()
		case revenueNames[m.MetricName]:
			point.Revenue += m.Value()
		}
	}

	points := make([]*MonthlyPoint, 0, len(buckets))
	for _, point := range buckets {
		points = append(points, point)
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Month.Before(points[j].Month)
	})

	return points
}

// ChannelSlice representa a participação de um canal na distribuição de tráfego
type ChannelSlice struct {
	Channel domain.Channel `json:"channel"`
	Value   float64        `json:"value"`
}

// GroupByChannel soma os valores das métricas por canal, ignorando métricas
// sem canal. A saída é ordenada do maior para o menor valor.
func (a *Aggregator) GroupByChannel(metrics []*domain.Metric) []*ChannelSlice {
	buckets := make(map[domain.Channel]float64)

	for _, m := range metrics {
		if m.Channel == nil {
			continue
		}
		buckets[*m.Channel] += m.Value()
	}

	slices := make([]*ChannelSlice, 0, len(buckets))
	for channel, value := range buckets {
		slices = append(slices, &ChannelSlice{Channel: channel, Value: value})
	}

	sort.Slice(slices, func(i, j int) bool {
		if slices[i].Value == slices[j].Value {
			return slices[i].Channel < slices[j].Channel
		}
		return slices[i].Value > slices[j].Value
	})

	return slices
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}
