package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vcampos/marketing-hub-api/infrastructure/database/postgres"
	"github.com/vcampos/marketing-hub-api/infrastructure/repository"
	"github.com/vcampos/marketing-hub-api/internal/api"
	"github.com/vcampos/marketing-hub-api/internal/config"
	"github.com/vcampos/marketing-hub-api/internal/scheduler"
	"github.com/vcampos/marketing-hub-api/internal/usecases/aggregating"
	"github.com/vcampos/marketing-hub-api/internal/usecases/authenticating"
	"github.com/vcampos/marketing-hub-api/internal/usecases/authorizing"
	"github.com/vcampos/marketing-hub-api/internal/usecases/campaigning"
	"github.com/vcampos/marketing-hub-api/internal/usecases/notifying"
	"github.com/vcampos/marketing-hub-api/internal/usecases/planning"
	"github.com/vcampos/marketing-hub-api/internal/usecases/profiling"
	"github.com/vcampos/marketing-hub-api/internal/usecases/reporting"
	"github.com/vcampos/marketing-hub-api/internal/usecases/strategizing"
	"github.com/vcampos/marketing-hub-api/internal/usecases/tasking"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	metricRepo := repository.NewMetricRepository(pgConn)
	taskRepo := repository.NewTaskRepository(pgConn)
	contentRepo := repository.NewContentRepository(pgConn)
	personaRepo := repository.NewPersonaRepository(pgConn)
	objectiveRepo := repository.NewObjectiveRepository(pgConn)
	swotRepo := repository.NewSwotRepository(pgConn)
	brandRepo := repository.NewBrandIdentityRepository(pgConn)
	notificationRepo := repository.NewNotificationRepository(pgConn)
	rollupRepo := repository.NewMonthlyRollupRepository(pgConn)

	evaluator := authorizing.NewEvaluator(nil)
	aggregator := aggregating.NewAggregator(nil)

	authenticator := authenticating.NewService(userRepo, evaluator, cfg)
	campaignService := campaigning.NewService(campaignRepo, evaluator)
	taskService := tasking.NewService(taskRepo, evaluator)
	contentService := planning.NewService(contentRepo, evaluator)
	personaService := profiling.NewService(personaRepo, evaluator)
	strategyService := strategizing.NewService(objectiveRepo, swotRepo, brandRepo, evaluator)
	notificationService := notifying.NewService(notificationRepo)
	reportService := reporting.NewService(campaignRepo, metricRepo, taskRepo, aggregator)

	// Inicializa os agendadores de tarefas em background
	taskDueSweepService := scheduler.NewTaskDueSweepService(taskRepo, notificationService, cfg)
	monthlyRollupService := scheduler.NewMonthlyRollupService(userRepo, metricRepo, rollupRepo, aggregator, cfg)

	if err := taskDueSweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de varredura de tarefas com prazo próximo")
	} else {
		logrus.Info("Agendador de varredura de tarefas iniciado com sucesso")
	}

	if err := monthlyRollupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de consolidação mensal de métricas")
	} else {
		logrus.Info("Agendador de consolidação mensal iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		api.Services{
			Authenticator: authenticator,
			Evaluator:     evaluator,
			Campaigns:     campaignService,
			Tasks:         taskService,
			Content:       contentService,
			Personas:      personaService,
			Strategy:      strategyService,
			Notifications: notificationService,
			Reports:       reportService,
			MetricRepo:    metricRepo,
		},
		taskDueSweepService,
		monthlyRollupService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
