package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vcampos/marketing-hub-api/internal/domain"
	"github.com/vcampos/marketing-hub-api/internal/usecases/tasking"
	"github.com/vcampos/marketing-hub-api/pkg/apiErrors"
	"github.com/vcampos/marketing-hub-api/pkg/middleware"
)

type MoveTaskRequest struct {
	Status domain.TaskStatus `json:"status"`
}

// ListTasks lista todas as tarefas do quadro
func ListTasks(service tasking.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tasks, err := service.ListTasks()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar tarefas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(tasks); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetTaskBoard retorna o quadro kanban agrupado por coluna
func GetTaskBoard(service tasking.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		board, err := service.GetBoard()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o quadro de tarefas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(board); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreateTask cria uma tarefa pertencente ao usuário autenticado
func CreateTask(service tasking.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateTask")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var task *domain.Task
		if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		task, err := service.CreateTask(userClaims.UserID, task)
		if err != nil {
			logrus.Error(err)
			writeTaskError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(task); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpdateTask atualiza uma tarefa existente
func UpdateTask(service tasking.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateTask")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da tarefa não fornecido", nil)
			return
		}

		var task domain.Task
		if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		task.ID = id

		if err := service.UpdateTask(&task); err != nil {
			logrus.Error(err)
			writeTaskError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// MoveTask move uma tarefa para outra coluna do quadro
func MoveTask(service tasking.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - MoveTask")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da tarefa não fornecido", nil)
			return
		}

		var req MoveTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := service.MoveTask(id, req.Status); err != nil {
			logrus.Error(err)
			writeTaskError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// DeleteTask exclui uma tarefa respeitando a regra de propriedade
func DeleteTask(service tasking.TaskService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteTask")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da tarefa não fornecido", nil)
			return
		}

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if err := service.DeleteTask(userClaims.UserRole, userClaims.UserID, id); err != nil {
			logrus.Error(err)
			writeTaskError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func writeTaskError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tasking.ErrTaskNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Tarefa não encontrada", nil)

	case errors.Is(err, tasking.ErrMissingTitle):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Título da tarefa é obrigatório", nil)

	case errors.Is(err, tasking.ErrInvalidStatus):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Status de tarefa inválido", nil)

	case errors.Is(err, tasking.ErrDeleteNotAllowed):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para excluir esta tarefa", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar tarefa", nil)
	}
}
