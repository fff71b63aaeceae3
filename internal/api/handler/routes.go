package handler

import (
	"net/http"

	"github.com/vcampos/marketing-hub-api/infrastructure/repository"
	"github.com/vcampos/marketing-hub-api/internal/api/handler/router"
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

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator, evaluator *authorizing.Evaluator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(evaluator)},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(evaluator)},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(evaluator)},
		},
	}
}

func User(service authenticating.Authenticator, evaluator *authorizing.Evaluator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(evaluator)},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(evaluator)},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service, evaluator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(evaluator)},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service, evaluator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(evaluator)},
		},
	}
}

func Campaigns(service campaigning.CampaignService, evaluator *authorizing.Evaluator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodGet,
			Handler:     ListCampaigns(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(evaluator)},
		},
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodPost,
			Handler:     CreateCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors(evaluator)},
		},
		{
			Path:        "/v1/campaigns/:id",
			Method:      http.MethodGet,
			Handler:     GetCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(evaluator)},
		},
		{
			Path:        "/v1/campaigns/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors(evaluator)},
		},
		{
			Path:        "/v1/campaigns/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors(evaluator)},
		},
	}
}

func Metrics(metricRepo repository.MetricRepository, evaluator *authorizing.Evaluator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/metrics",
			Method:      http.MethodGet,
			Handler:     ListMetrics(metricRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(evaluator)},
		},
		{
			Path:        "/v1/metrics",
			Method:      http.MethodPost,
			Handler:     CreateMetric(metricRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.Analysts(evaluator)},
		},
	}
}

func Reports(service reporting.Reporter, evaluator *authorizing.Evaluator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analytics/summary",
			Method:      http.MethodGet,
			Handler:     GetAnalyticsSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Analysts(evaluator)},
		},
		{
			Path:        "/v1/dashboard/summary",
			Method:      http.MethodGet,
			Handler:     GetDashboardSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(evaluator)},
		},
		{
			Path:        "/v1/reports/executive",
			Method:      http.MethodGet,
			Handler:     GenerateExecutiveReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Analysts(evaluator)},
		},
	}
}

func Tasks(service tasking.TaskService, evaluator *authorizing.Evaluator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/tasks",
			Method:      http.MethodGet,
			Handler:     ListTasks(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(evaluator)},
		},
		{
			Path:        "/v1/tasks",
			Method:      http.MethodPost,
			Handler:     CreateTask(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors(evaluator)},
		},
		{
			Path:        "/v1/tasks/board",
			Method:      http.MethodGet,
			Handler:     GetTaskBoard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(evaluator)},
		},
		{
			Path:        "/v1/tasks/:id",
			Method:      http.MethodPut,
			Handler:     UpdateTask(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors(evaluator)},
		},
		{
			Path:        "/v1/tasks/:id/move",
			Method:      http.MethodPost,
			Handler:     MoveTask(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors(evaluator)},
		},
		{
			Path:        "/v1/tasks/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteTask(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors(evaluator)},
		},
	}
}

func Content(service planning.ContentService, evaluator *authorizing.Evaluator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/content",
			Method:      http.MethodGet,
			Handler:     ListContent(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(evaluator)},
		},
		{
			Path:        "/v1/content",
			Method:      http.MethodPost,
			Handler:     CreateContent(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors(evaluator)},
		},
		{
			Path:        "/v1/content/calendar",
			Method:      http.MethodGet,
			Handler:     GetContentCalendar(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(evaluator)},
		},
		{
			Path:        "/v1/content/:id",
			Method:      http.MethodPut,
			Handler:     UpdateContent(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors(evaluator)},
		},
		{
			Path:        "/v1/content/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteContent(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors(evaluator)},
		},
	}
}

func Personas(service profiling.PersonaService, evaluator *authorizing.Evaluator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/personas",
			Method:      http.MethodGet,
			Handler:     ListPersonas(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(evaluator)},
		},
		{
			Path:        "/v1/personas",
			Method:      http.MethodPost,
			Handler:     CreatePersona(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors(evaluator)},
		},
		{
			Path:        "/v1/personas/:id",
			Method:      http.MethodGet,
			Handler:     GetPersona(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(evaluator)},
		},
		{
			Path:        "/v1/personas/:id",
			Method:      http.MethodPut,
			Handler:     UpdatePersona(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors(evaluator)},
		},
		{
			Path:        "/v1/personas/:id",
			Method:      http.MethodDelete,
			Handler:     DeletePersona(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors(evaluator)},
		},
	}
}

func Strategy(service strategizing.StrategyService, evaluator *authorizing.Evaluator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/objectives",
			Method:      http.MethodGet,
			Handler:     ListObjectives(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(evaluator)},
		},
		{
			Path:        "/v1/objectives",
			Method:      http.MethodPost,
			Handler:     CreateObjective(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors(evaluator)},
		},
		{
			Path:        "/v1/objectives/:id",
			Method:      http.MethodGet,
			Handler:     GetObjective(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(evaluator)},
		},
		{
			Path:        "/v1/objectives/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteObjective(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors(evaluator)},
		},
		{
			Path:        "/v1/objectives/:id/key-results",
			Method:      http.MethodPost,
			Handler:     CreateKeyResult(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors(evaluator)},
		},
		{
			Path:        "/v1/key-results/:id/progress",
			Method:      http.MethodPut,
			Handler:     UpdateKeyResultProgress(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Analysts(evaluator)},
		},
		{
			Path:        "/v1/swot",
			Method:      http.MethodGet,
			Handler:     GetSwot(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(evaluator)},
		},
		{
			Path:        "/v1/swot",
			Method:      http.MethodPut,
			Handler:     SaveSwot(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors(evaluator)},
		},
		{
			Path:        "/v1/brand-identity",
			Method:      http.MethodGet,
			Handler:     GetBrandIdentity(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(evaluator)},
		},
		{
			Path:        "/v1/brand-identity",
			Method:      http.MethodPut,
			Handler:     SaveBrandIdentity(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors(evaluator)},
		},
	}
}

func Notifications(service notifying.NotificationService, evaluator *authorizing.Evaluator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/notifications",
			Method:      http.MethodGet,
			Handler:     ListNotifications(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(evaluator)},
		},
		{
			Path:        "/v1/notifications/read-all",
			Method:      http.MethodPost,
			Handler:     MarkAllNotificationsAsRead(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(evaluator)},
		},
		{
			Path:        "/v1/notifications/:id/read",
			Method:      http.MethodPut,
			Handler:     MarkNotificationAsRead(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(evaluator)},
		},
	}
}

func CronJobs(services CronJobServices, evaluator *authorizing.Evaluator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services, evaluator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(evaluator)},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services, evaluator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(evaluator)},
		},
	}
}
