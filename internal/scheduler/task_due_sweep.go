// Package scheduler contém os serviços de agendamento de rotinas recorrentes
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vcampos/marketing-hub-api/infrastructure/repository"
	"github.com/vcampos/marketing-hub-api/internal/config"
	"github.com/vcampos/marketing-hub-api/internal/domain"
	"github.com/vcampos/marketing-hub-api/internal/usecases/notifying"
)

type TaskDueSweepConfig struct {
	CronSchedule  string
	LookaheadDays int
	Enabled       bool
}

// TaskDueSweepService varre diariamente as tarefas com prazo próximo e gera
// uma notificação para o dono de cada uma
type TaskDueSweepService struct {
	scheduler            *gocron.Scheduler
	taskRepo             repository.TaskRepository
	notificationService  notifying.NotificationService
	config               TaskDueSweepConfig
	sweepRunning         bool
	sweepMutex           sync.Mutex
	lastSweepStartedAt   time.Time
	lastSweepCompletedAt time.Time
}

func NewTaskDueSweepService(
	taskRepo repository.TaskRepository,
	notificationService notifying.NotificationService,
	cfg *config.Config,
) *TaskDueSweepService {
	sweepConfig := TaskDueSweepConfig{
		CronSchedule:  cfg.TaskDueSweep.CronSchedule,  // Default: 7h da manhã todos os dias
		LookaheadDays: cfg.TaskDueSweep.LookaheadDays, // Default: 3 dias de antecedência
		Enabled:       cfg.TaskDueSweep.Enabled,       // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  sweepConfig.CronSchedule,
		"lookahead_days": sweepConfig.LookaheadDays,
	}).Info("Configuração da varredura de tarefas com prazo próximo carregada")

	return &TaskDueSweepService{
		scheduler:           scheduler,
		taskRepo:            taskRepo,
		notificationService: notificationService,
		config:              sweepConfig,
	}
}

func (s *TaskDueSweepService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de varredura de tarefas com prazo próximo desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de varredura de tarefas com prazo próximo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SweepDueTasks(); err != nil {
			logrus.WithError(err).Error("Erro na varredura de tarefas com prazo próximo")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de tarefas com prazo próximo: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de varredura de tarefas")
		s.scheduler.Stop()
	}()

	return nil
}

// SweepDueTasks busca as tarefas não publicadas com prazo dentro da janela de
// antecedência e notifica o dono de cada uma.
func (s *TaskDueSweepService) SweepDueTasks() error {
	s.sweepMutex.Lock()
	defer s.sweepMutex.Unlock()

	if s.sweepRunning {
		logrus.Warn("Varredura de tarefas com prazo próximo já está em execução")
		return nil
	}

	s.sweepRunning = true
	s.lastSweepStartedAt = time.Now()
	defer func() {
		s.sweepRunning = false
		s.lastSweepCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando varredura de tarefas com prazo próximo")

	deadline := time.Now().AddDate(0, 0, s.config.LookaheadDays)

	tasks, err := s.taskRepo.ListTasksDueBefore(deadline)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar tarefas com prazo próximo")
		return err
	}

	if len(tasks) == 0 {
		logrus.Info("Nenhuma tarefa com prazo próximo encontrada")
		return nil
	}

	notified := 0
	for _, task := range tasks {
		message := fmt.Sprintf(
			"A tarefa %q vence em %s.",
			task.Title,
			task.DueDate.Format("02/01/2006"),
		)

		_, err := s.notificationService.Notify(
			task.UserID,
			"Tarefa com prazo próximo",
			message,
			domain.NotificationTypeTask,
		)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"task_id": task.ID,
				"user_id": task.UserID,
			}).Error("Erro ao notificar dono de tarefa com prazo próximo")
			continue
		}

		notified++
	}

	logrus.WithFields(logrus.Fields{
		"tasks":    len(tasks),
		"notified": notified,
	}).Info("Varredura de tarefas com prazo próximo concluída")

	return nil
}

// TriggerManualSweep inicia manualmente uma varredura de tarefas
func (s *TaskDueSweepService) TriggerManualSweep() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Varredura de tarefas já em andamento, ignorando solicitação manual")
		return
	}
	s.sweepMutex.Unlock()

	logrus.Info("Iniciando varredura manual de tarefas com prazo próximo")
	go s.SweepDueTasks()
}

// GetStatus retorna o status atual do agendador
func (s *TaskDueSweepService) GetStatus() map[string]any {
	return map[string]any{
		"sweep_enabled":           s.config.Enabled,
		"sweep_cron":              s.config.CronSchedule,
		"lookahead_days":          s.config.LookaheadDays,
		"last_sweep_started_at":   s.lastSweepStartedAt,
		"last_sweep_completed_at": s.lastSweepCompletedAt,
	}
}
