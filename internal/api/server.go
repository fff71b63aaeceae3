package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vcampos/marketing-hub-api/infrastructure/repository"
	"github.com/vcampos/marketing-hub-api/internal/api/handler"
	"github.com/vcampos/marketing-hub-api/internal/api/handler/router"
	"github.com/vcampos/marketing-hub-api/internal/config"
	"github.com/vcampos/marketing-hub-api/internal/scheduler"
	"github.com/vcampos/marketing-hub-api/internal/usecases/authenticating"
	"github.com/vcampos/marketing-hub-api/internal/usecases/authorizing"
	"github.com/vcampos/marketing-hub-api/internal/usecases/campaigning"
	"github.com/vcampos/marketing-hub-api/internal/usecases/notifying"
	"github.com/vcampos/marketing-hub-api/internal/usecases/planning"
	"github.com/vcampos/marketing-hub-api/internal/usecases/profiling"
	"github.com/vcampos/marketing-hub-api/internal/usecases/reporting"
	"github.com/vcampos/marketing-hub-api/internal/usecases/strategizing"
	"github.com/vcampos/marketing-hub-api/internal/usecases/tasking"
	"github.com/vcampos/marketing-hub-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

type Services struct {
	Authenticator authenticating.Authenticator
	Evaluator     *authorizing.Evaluator
	Campaigns     campaigning.CampaignService
	Tasks         tasking.TaskService
	Content       planning.ContentService
	Personas      profiling.PersonaService
	Strategy      strategizing.StrategyService
	Notifications notifying.NotificationService
	Reports       reporting.Reporter
	MetricRepo    repository.MetricRepository
}

func New(
	config *config.Config,
	services Services,
	taskDueSweepService *scheduler.TaskDueSweepService,
	monthlyRollupService *scheduler.MonthlyRollupService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		TaskDueSweepService:  taskDueSweepService,
		MonthlyRollupService: monthlyRollupService,
	}

	evaluator := services.Evaluator

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator, evaluator)...),
		router.WithRoutes(handler.User(services.Authenticator, evaluator)...),
		router.WithRoutes(handler.Campaigns(services.Campaigns, evaluator)...),
		router.WithRoutes(handler.Metrics(services.MetricRepo, evaluator)...),
		router.WithRoutes(handler.Reports(services.Reports, evaluator)...),
		router.WithRoutes(handler.Tasks(services.Tasks, evaluator)...),
		router.WithRoutes(handler.Content(services.Content, evaluator)...),
		router.WithRoutes(handler.Personas(services.Personas, evaluator)...),
		router.WithRoutes(handler.Strategy(services.Strategy, evaluator)...),
		router.WithRoutes(handler.Notifications(services.Notifications, evaluator)...),
		router.WithRoutes(handler.CronJobs(cronServices, evaluator)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(services.Authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
