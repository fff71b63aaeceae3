package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vcampos/marketing-hub-api/internal/domain"
	"github.com/vcampos/marketing-hub-api/internal/usecases/campaigning"
	"github.com/vcampos/marketing-hub-api/pkg/apiErrors"
	"github.com/vcampos/marketing-hub-api/pkg/middleware"
)

// ListCampaigns lista todas as campanhas
func ListCampaigns(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaigns, err := service.ListCampaigns()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar campanhas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(campaigns); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetCampaign retorna uma campanha pelo ID
func GetCampaign(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha não fornecido", nil)
			return
		}

		campaign, err := service.GetCampaignByID(id)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar campanha", nil)
			return
		}

		if campaign == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Campanha não encontrada", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(campaign); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreateCampaign cria uma campanha pertencente ao usuário autenticado
func CreateCampaign(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCampaign")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var campaign *domain.Campaign
		if err := json.NewDecoder(r.Body).Decode(&campaign); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		campaign, err := service.CreateCampaign(userClaims.UserID, campaign)
		if err != nil {
			logrus.Error(err)
			writeCampaignError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(campaign); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpdateCampaign atualiza uma campanha existente
func UpdateCampaign(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateCampaign")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha não fornecido", nil)
			return
		}

		var campaign domain.Campaign
		if err := json.NewDecoder(r.Body).Decode(&campaign); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		campaign.ID = id

		if err := service.UpdateCampaign(&campaign); err != nil {
			logrus.Error(err)
			writeCampaignError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// DeleteCampaign exclui uma campanha. Administradores e gerentes de marketing
// excluem qualquer campanha; os demais papéis apenas as próprias.
func DeleteCampaign(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteCampaign")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha não fornecido", nil)
			return
		}

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		err := service.DeleteCampaign(userClaims.UserRole, userClaims.UserID, id)
		if err != nil {
			logrus.Error(err)
			writeCampaignError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// writeCampaignError converte erros do serviço de campanhas em respostas padronizadas
func writeCampaignError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, campaigning.ErrCampaignNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Campanha não encontrada", nil)

	case errors.Is(err, campaigning.ErrMissingName):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome da campanha é obrigatório", nil)

	case errors.Is(err, campaigning.ErrInvalidStatus), errors.Is(err, campaigning.ErrInvalidChannel):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, campaigning.ErrOwnershipImutable):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "O dono de uma campanha não pode ser alterado", nil)

	case errors.Is(err, campaigning.ErrDeleteNotAllowed):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para excluir esta campanha", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar campanha", nil)
	}
}
