package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vcampos/marketing-hub-api/internal/domain"
	"github.com/vcampos/marketing-hub-api/internal/usecases/planning"
	"github.com/vcampos/marketing-hub-api/pkg/apiErrors"
	"github.com/vcampos/marketing-hub-api/pkg/middleware"
)

// ListContent lista todas as peças de conteúdo do calendário editorial
func ListContent(service planning.ContentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contents, err := service.ListContent()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar conteúdos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(contents); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetContentCalendar retorna o calendário editorial de um mês, agrupado por dia
func GetContentCalendar(service planning.ContentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		year := now.Year()
		month := int(now.Month())

		if yearStr := r.URL.Query().Get("year"); yearStr != "" {
			parsed, err := strconv.Atoi(yearStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", nil)
				return
			}
			year = parsed
		}

		if monthStr := r.URL.Query().Get("month"); monthStr != "" {
			parsed, err := strconv.Atoi(monthStr)
			if err != nil || parsed < 1 || parsed > 12 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido, use valores de 1 a 12", nil)
				return
			}
			month = parsed
		}

		calendar, err := service.GetCalendar(year, time.Month(month))
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o calendário editorial", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(calendar); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreateContent cria uma peça de conteúdo pertencente ao usuário autenticado
func CreateContent(service planning.ContentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateContent")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var content *domain.Content
		if err := json.NewDecoder(r.Body).Decode(&content); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		content, err := service.CreateContent(userClaims.UserID, content)
		if err != nil {
			logrus.Error(err)
			writeContentError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(content); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpdateContent atualiza uma peça de conteúdo existente
func UpdateContent(service planning.ContentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateContent")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do conteúdo não fornecido", nil)
			return
		}

		var content domain.Content
		if err := json.NewDecoder(r.Body).Decode(&content); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		content.ID = id

		if err := service.UpdateContent(&content); err != nil {
			logrus.Error(err)
			writeContentError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// DeleteContent exclui uma peça de conteúdo respeitando a regra de propriedade
func DeleteContent(service planning.ContentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteContent")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do conteúdo não fornecido", nil)
			return
		}

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if err := service.DeleteContent(userClaims.UserRole, userClaims.UserID, id); err != nil {
			logrus.Error(err)
			writeContentError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func writeContentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, planning.ErrContentNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Conteúdo não encontrado", nil)

	case errors.Is(err, planning.ErrMissingTitle):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Título do conteúdo é obrigatório", nil)

	case errors.Is(err, planning.ErrInvalidFormat), errors.Is(err, planning.ErrInvalidStatus):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, planning.ErrDeleteNotAllowed):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para excluir este conteúdo", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar conteúdo", nil)
	}
}
