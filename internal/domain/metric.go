package domain

import (
	"time"
)

// Metric representa uma observação numérica nomeada, registrada em uma data
// e opcionalmente vinculada a uma campanha. Métricas são fatos append-only:
// correções são registradas como novas métricas, nunca como atualizações.
type Metric struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	CampaignID   *string   `json:"campaign_id"`
	Channel      *Channel  `json:"channel"`
	MetricName   string    `json:"metric_name"`
	MetricValue  *float64  `json:"metric_value"`
	DateRecorded time.Time `json:"date_recorded"`
	CreatedAt    time.Time `json:"created_at"`
}

// Value retorna o valor da métrica coagido para um número seguro de agregação:
// valores ausentes ou negativos são tratados como 0.
func (m *Metric) Value() float64 {
	if m.MetricValue == nil || *m.MetricValue < 0 {
		return 0
	}
	return *m.MetricValue
}

// MetricFilters representa os filtros opcionais aplicáveis a uma consulta
// de métricas. CampaignID com o sentinela "all" (ou vazio) não restringe.
type MetricFilters struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CampaignID string
}

// AllCampaigns é o valor sentinela de CampaignID que desativa o filtro por campanha
const AllCampaigns = "all"
