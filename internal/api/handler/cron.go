package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vcampos/marketing-hub-api/internal/domain"
	"github.com/vcampos/marketing-hub-api/internal/scheduler"
	"github.com/vcampos/marketing-hub-api/internal/usecases/authorizing"
	"github.com/vcampos/marketing-hub-api/pkg/apiErrors"
	"github.com/vcampos/marketing-hub-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeTaskDueSweep  = "task-due-sweep"
	CronJobTypeMonthlyRollup = "monthly-rollup"
	CronJobTypeAll           = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	TaskDueSweepService  *scheduler.TaskDueSweepService
	MonthlyRollupService *scheduler.MonthlyRollupService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices, evaluator *authorizing.Evaluator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || !evaluator.HasPermission(userClaims.UserRole, domain.RoleAdmin) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeTaskDueSweep:
			if services.TaskDueSweepService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de varredura de tarefas não disponível", nil)
				return
			}
			services.TaskDueSweepService.TriggerManualSweep()

		case CronJobTypeMonthlyRollup:
			if services.MonthlyRollupService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de consolidação mensal não disponível", nil)
				return
			}
			services.MonthlyRollupService.TriggerManualSync()

		case CronJobTypeAll:
			if services.TaskDueSweepService != nil {
				services.TaskDueSweepService.TriggerManualSweep()
			}
			if services.MonthlyRollupService != nil {
				services.MonthlyRollupService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: task-due-sweep, monthly-rollup, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices, evaluator *authorizing.Evaluator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		// Apenas administradores podem verificar status das crons
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || !evaluator.HasPermission(userClaims.UserRole, domain.RoleAdmin) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"task-due-sweep": services.TaskDueSweepService.GetStatus(),
			"monthly-rollup": services.MonthlyRollupService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
