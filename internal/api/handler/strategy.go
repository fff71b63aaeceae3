package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vcampos/marketing-hub-api/internal/domain"
	"github.com/vcampos/marketing-hub-api/internal/usecases/strategizing"
	"github.com/vcampos/marketing-hub-api/pkg/apiErrors"
	"github.com/vcampos/marketing-hub-api/pkg/middleware"
)

// ListObjectives lista os objetivos com seus resultados-chave
func ListObjectives(service strategizing.StrategyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		objectives, err := service.ListObjectives()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar objetivos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(objectives); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetObjective retorna um objetivo pelo ID com seus resultados-chave
func GetObjective(service strategizing.StrategyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do objetivo não fornecido", nil)
			return
		}

		objective, err := service.GetObjectiveByID(id)
		if err != nil {
			logrus.Error(err)
			writeStrategyError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(objective); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreateObjective cria um objetivo pertencente ao usuário autenticado
func CreateObjective(service strategizing.StrategyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateObjective")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var objective *domain.Objective
		if err := json.NewDecoder(r.Body).Decode(&objective); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		objective, err := service.CreateObjective(userClaims.UserID, objective)
		if err != nil {
			logrus.Error(err)
			writeStrategyError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(objective); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// DeleteObjective exclui um objetivo e seus resultados-chave em cascata
func DeleteObjective(service strategizing.StrategyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteObjective")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do objetivo não fornecido", nil)
			return
		}

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if err := service.DeleteObjective(userClaims.UserRole, userClaims.UserID, id); err != nil {
			logrus.Error(err)
			writeStrategyError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// CreateKeyResult adiciona um resultado-chave a um objetivo existente
func CreateKeyResult(service strategizing.StrategyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateKeyResult")

		objectiveID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if objectiveID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do objetivo não fornecido", nil)
			return
		}

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var keyResult *domain.KeyResult
		if err := json.NewDecoder(r.Body).Decode(&keyResult); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		keyResult.ObjectiveID = objectiveID

		keyResult, err := service.CreateKeyResult(userClaims.UserID, keyResult)
		if err != nil {
			logrus.Error(err)
			writeStrategyError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(keyResult); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpdateKeyResultProgressRequest representa o corpo da atualização de progresso
type UpdateKeyResultProgressRequest struct {
	CurrentValue float64 `json:"current_value"`
}

// UpdateKeyResultProgress atualiza o valor atual de um resultado-chave
func UpdateKeyResultProgress(service strategizing.StrategyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateKeyResultProgress")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do resultado-chave não fornecido", nil)
			return
		}

		var request UpdateKeyResultProgressRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		keyResult, err := service.UpdateKeyResultProgress(id, request.CurrentValue)
		if err != nil {
			logrus.Error(err)
			writeStrategyError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(keyResult); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetSwot retorna a análise SWOT do usuário autenticado
func GetSwot(service strategizing.StrategyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		swot, err := service.GetSwot(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar análise SWOT", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(swot); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// SaveSwot grava a análise SWOT do usuário autenticado
func SaveSwot(service strategizing.StrategyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SaveSwot")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var swot *domain.SwotAnalysis
		if err := json.NewDecoder(r.Body).Decode(&swot); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		swot, err := service.SaveSwot(userClaims.UserID, swot)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar análise SWOT", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(swot); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetBrandIdentity retorna a identidade da marca do usuário autenticado
func GetBrandIdentity(service strategizing.StrategyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		brand, err := service.GetBrandIdentity(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar identidade da marca", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(brand); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// SaveBrandIdentity grava a identidade da marca do usuário autenticado
func SaveBrandIdentity(service strategizing.StrategyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SaveBrandIdentity")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var brand *domain.BrandIdentity
		if err := json.NewDecoder(r.Body).Decode(&brand); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		brand, err := service.SaveBrandIdentity(userClaims.UserID, brand)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar identidade da marca", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(brand); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

func writeStrategyError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, strategizing.ErrObjectiveNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Objetivo não encontrado", nil)

	case errors.Is(err, strategizing.ErrKeyResultNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Resultado-chave não encontrado", nil)

	case errors.Is(err, strategizing.ErrMissingTitle):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Título é obrigatório", nil)

	case errors.Is(err, strategizing.ErrInvalidTargetValue):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Meta do resultado-chave deve ser maior que zero", nil)

	case errors.Is(err, strategizing.ErrDeleteNotAllowed):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para excluir este objetivo", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar estratégia", nil)
	}
}
