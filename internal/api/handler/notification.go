package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vcampos/marketing-hub-api/internal/domain"
	"github.com/vcampos/marketing-hub-api/internal/usecases/notifying"
	"github.com/vcampos/marketing-hub-api/pkg/apiErrors"
	"github.com/vcampos/marketing-hub-api/pkg/middleware"
)

// ListNotifications lista as notificações do usuário autenticado
func ListNotifications(service notifying.NotificationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		notifications, err := service.ListNotifications(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar notificações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(notifications); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// MarkNotificationAsRead marca uma notificação do usuário como lida
func MarkNotificationAsRead(service notifying.NotificationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da notificação não fornecido", nil)
			return
		}

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if err := service.MarkAsRead(id, userClaims.UserID); err != nil {
			logrus.Error(err)
			writeNotificationError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// MarkAllNotificationsAsRead marca todas as notificações do usuário como lidas
func MarkAllNotificationsAsRead(service notifying.NotificationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if err := service.MarkAllAsRead(userClaims.UserID); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao marcar notificações como lidas", nil)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

func writeNotificationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, notifying.ErrMissingTitle):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Título da notificação é obrigatório", nil)

	case errors.Is(err, notifying.ErrInvalidType):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de notificação inválido", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar notificação", nil)
	}
}
