package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vcampos/marketing-hub-api/infrastructure/repository"
	"github.com/vcampos/marketing-hub-api/internal/domain"
	"github.com/vcampos/marketing-hub-api/pkg/apiErrors"
	"github.com/vcampos/marketing-hub-api/pkg/middleware"
	"github.com/vcampos/marketing-hub-api/pkg/utils"
)

// CreateMetric registra uma nova métrica. Métricas são append-only: não há
// rota de atualização ou exclusão.
func CreateMetric(metricRepo repository.MetricRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateMetric")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var metric *domain.Metric
		if err := json.NewDecoder(r.Body).Decode(&metric); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if metric.MetricName == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome da métrica é obrigatório", nil)
			return
		}

		if metric.Channel != nil && !domain.IsValidChannel(*metric.Channel) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Canal de marketing inválido", nil)
			return
		}

		metric.UserID = userClaims.UserID
		if metric.DateRecorded.IsZero() {
			metric.DateRecorded = time.Now().UTC()
		}

		metric, err := metricRepo.CreateMetric(metric)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar métrica", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(metric); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListMetrics lista métricas com filtros opcionais de intervalo e campanha
func ListMetrics(metricRepo repository.MetricRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseMetricFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato YYYY-MM-DD", nil)
			return
		}

		metrics, err := metricRepo.ListMetrics(filters)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar métricas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(metrics); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// parseMetricFilters extrai os filtros de métricas da query string
func parseMetricFilters(r *http.Request) (*domain.MetricFilters, error) {
	filters := &domain.MetricFilters{
		CampaignID: r.URL.Query().Get("campaign_id"),
	}

	if startStr := r.URL.Query().Get("start_date"); startStr != "" {
		start, err := utils.ParseDate(startStr)
		if err != nil {
			return nil, err
		}
		filters.StartDate = start
	}

	if endStr := r.URL.Query().Get("end_date"); endStr != "" {
		end, err := utils.ParseDate(endStr)
		if err != nil {
			return nil, err
		}
		filters.EndDate = end
	}

	return filters, nil
}
