package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vcampos/marketing-hub-api/internal/domain"
	"github.com/vcampos/marketing-hub-api/internal/usecases/profiling"
	"github.com/vcampos/marketing-hub-api/pkg/apiErrors"
	"github.com/vcampos/marketing-hub-api/pkg/middleware"
)

// ListPersonas lista todas as personas
func ListPersonas(service profiling.PersonaService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		personas, err := service.ListPersonas()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar personas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(personas); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetPersona retorna uma persona pelo ID
func GetPersona(service profiling.PersonaService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da persona não fornecido", nil)
			return
		}

		persona, err := service.GetPersonaByID(id)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar persona", nil)
			return
		}

		if persona == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Persona não encontrada", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(persona); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreatePersona cria uma persona pertencente ao usuário autenticado
func CreatePersona(service profiling.PersonaService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreatePersona")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var persona *domain.Persona
		if err := json.NewDecoder(r.Body).Decode(&persona); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		persona, err := service.CreatePersona(userClaims.UserID, persona)
		if err != nil {
			logrus.Error(err)
			writePersonaError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(persona); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpdatePersona atualiza uma persona existente
func UpdatePersona(service profiling.PersonaService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdatePersona")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da persona não fornecido", nil)
			return
		}

		var persona domain.Persona
		if err := json.NewDecoder(r.Body).Decode(&persona); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		persona.ID = id

		if err := service.UpdatePersona(&persona); err != nil {
			logrus.Error(err)
			writePersonaError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// DeletePersona exclui uma persona respeitando a regra de propriedade
func DeletePersona(service profiling.PersonaService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeletePersona")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da persona não fornecido", nil)
			return
		}

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if err := service.DeletePersona(userClaims.UserRole, userClaims.UserID, id); err != nil {
			logrus.Error(err)
			writePersonaError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func writePersonaError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, profiling.ErrPersonaNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Persona não encontrada", nil)

	case errors.Is(err, profiling.ErrMissingName):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome da persona é obrigatório", nil)

	case errors.Is(err, profiling.ErrDeleteNotAllowed):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para excluir esta persona", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar persona", nil)
	}
}
