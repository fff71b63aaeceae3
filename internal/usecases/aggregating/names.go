package aggregating

// LogicalMetric é uma grandeza lógica exibida nos painéis. Cada grandeza
// lógica é alimentada por um conjunto de nomes brutos de métrica, porque a
// nomenclatura registrada na base é inconsistente entre integrações.
type LogicalMetric string

const (
	MetricVisitors    LogicalMetric = "visitors"
	MetricConversions LogicalMetric = "conversions"
	MetricRevenue     LogicalMetric = "revenue"
	MetricClicks      LogicalMetric = "clicks"
	MetricImpressions LogicalMetric = "impressions"
)

// NameSets mapeia cada grandeza lógica para os nomes brutos que a
// satisfazem. Um sinônimo novo de nome bruto é uma mudança de configuração,
// não de código.
type NameSets map[LogicalMetric][]string

// DefaultNameSets retorna o mapeamento canônico de sinônimos observado na
// base de métricas.
func DefaultNameSets() NameSets {
	return NameSets{
		MetricVisitors:    {"traffic", "visitors", "unique_visitors"},
		MetricConversions: {"conversions"},
		MetricRevenue:     {"revenue"},
		MetricClicks:      {"clicks"},
		MetricImpressions: {"impressions"},
	}
}

// Names retorna o conjunto de nomes brutos da grandeza lógica. Grandeza
// desconhecida retorna o próprio nome, permitindo consultas por nome exato.
func (ns NameSets) Names(metric LogicalMetric) []string {
	if names, ok := ns[metric]; ok {
		return names
	}

	return []string{string(metric)}
}
