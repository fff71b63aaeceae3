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
	"github.com/vcampos/marketing-hub-api/internal/usecases/aggregating"
)

type MonthlyRollupConfig struct {
	CronSchedule  string
	MonthLookback int
	Enabled       bool
}

// MonthlyRollupService consolida mensalmente as métricas de cada usuário em
// monthly_metric_rollups, para que os gráficos de histórico não precisem
// reagregar a tabela de métricas inteira a cada consulta
type MonthlyRollupService struct {
	scheduler           *gocron.Scheduler
	userRepo            repository.UserRepository
	metricRepo          repository.MetricRepository
	rollupRepo          repository.MonthlyRollupRepository
	aggregator          *aggregating.Aggregator
	config              MonthlyRollupConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewMonthlyRollupService(
	userRepo repository.UserRepository,
	metricRepo repository.MetricRepository,
	rollupRepo repository.MonthlyRollupRepository,
	aggregator *aggregating.Aggregator,
	cfg *config.Config,
) *MonthlyRollupService {
	rollupConfig := MonthlyRollupConfig{
		CronSchedule:  cfg.MonthlyRollup.CronSchedule,  // Default: 1º dia do mês às 5h da manhã
		MonthLookback: cfg.MonthlyRollup.MonthLookback, // Default: 1 mês
		Enabled:       cfg.MonthlyRollup.Enabled,       // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  rollupConfig.CronSchedule,
		"month_lookback": rollupConfig.MonthLookback,
	}).Info("Configuração da consolidação mensal de métricas carregada")

	return &MonthlyRollupService{
		scheduler:  scheduler,
		userRepo:   userRepo,
		metricRepo: metricRepo,
		rollupRepo: rollupRepo,
		aggregator: aggregator,
		config:     rollupConfig,
	}
}

func (s *MonthlyRollupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de consolidação mensal de métricas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de consolidação mensal de métricas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RollupMetrics(); err != nil {
			logrus.WithError(err).Error("Erro na consolidação mensal de métricas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar consolidação mensal de métricas: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de consolidação mensal de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// RollupMetrics consolida os meses passados configurados para cada usuário.
// O mês corrente nunca é consolidado, já que ainda recebe métricas novas.
func (s *MonthlyRollupService) RollupMetrics() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Consolidação mensal de métricas já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando consolidação mensal de métricas")

	users, err := s.userRepo.ListUsers()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar usuários para a consolidação mensal")
		return err
	}

	if len(users) == 0 {
		logrus.Info("Nenhum usuário encontrado para a consolidação mensal")
		return nil
	}

	now := time.Now()
	saved := 0

	for lookback := 1; lookback <= s.config.MonthLookback; lookback++ {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -lookback, 0)
		monthEnd := monthStart.AddDate(0, 1, -1)

		for _, user := range users {
			if err := s.rollupUserMonth(user, monthStart, monthEnd); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"user_id": user.ID,
					"month":   monthStart.Format("2006-01"),
				}).Error("Erro ao consolidar métricas do usuário")
				continue
			}
			saved++
		}
	}

	logrus.WithFields(logrus.Fields{
		"users":   len(users),
		"rollups": saved,
	}).Info("Consolidação mensal de métricas concluída")

	return nil
}

func (s *MonthlyRollupService) rollupUserMonth(user *domain.User, monthStart, monthEnd time.Time) error {
	metrics, err := s.metricRepo.ListMetricsByOwner(user.ID, &domain.MetricFilters{
		StartDate: &monthStart,
		EndDate:   &monthEnd,
	})
	if err != nil {
		return err
	}

	if len(metrics) == 0 {
		return nil
	}

	rollup := &repository.MonthlyRollup{
		UserID:      user.ID,
		Month:       monthStart.Format("2006-01"),
		Visitors:    s.aggregator.SumLogical(metrics, aggregating.MetricVisitors),
		Conversions: s.aggregator.SumLogical(metrics, aggregating.MetricConversions),
		Revenue:     s.aggregator.SumLogical(metrics, aggregating.MetricRevenue),
	}

	return s.rollupRepo.SaveOrUpdateRollup(rollup)
}

// TriggerManualSync inicia manualmente uma consolidação mensal
func (s *MonthlyRollupService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Consolidação mensal já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando consolidação mensal manual de métricas")
	go s.RollupMetrics()
}

// GetStatus retorna o status atual do agendador
func (s *MonthlyRollupService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"month_lookback":         s.config.MonthLookback,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
