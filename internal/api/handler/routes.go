package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/internal/api/handler/router"
	"github.com/vfg2006/ads-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-manager-api/internal/usecases/budgeting"
	"github.com/vfg2006/ads-manager-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

// EntityRepositories agrupa os repositórios do espelho local consumidos pelas
// rotas de leitura.
type EntityRepositories struct {
	Campaigns  repository.CampaignRepository
	AdSets     repository.AdSetRepository
	Ads        repository.AdRepository
	Leads      repository.LeadRepository
	Activities repository.AccountActivityRepository
	Insights   repository.AdSetInsightRepository
}

func Entities(repos EntityRepositories) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodGet,
			Handler:     ListCampaigns(repos.Campaigns),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/adsets",
			Method:      http.MethodGet,
			Handler:     ListAdSets(repos.AdSets),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/adsets/:id",
			Method:      http.MethodGet,
			Handler:     GetAdSet(repos.AdSets),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/adsets/:id/insights",
			Method:      http.MethodGet,
			Handler:     GetAdSetInsights(repos.Insights),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ads",
			Method:      http.MethodGet,
			Handler:     ListAds(repos.Ads),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/leads",
			Method:      http.MethodGet,
			Handler:     ListLeads(repos.Leads),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/activities",
			Method:      http.MethodGet,
			Handler:     ListActivities(repos.Activities),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Insights(reader meta.AdsReader) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns/:id/insights",
			Method:      http.MethodGet,
			Handler:     GetCampaignInsights(reader),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Budget(service budgeting.Budgeter, client meta.BudgetClient) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/adsets/:id/budget",
			Method:      http.MethodPost,
			Handler:     AdjustBudget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/adsets/:id/budget-logs",
			Method:      http.MethodGet,
			Handler:     ListBudgetLogs(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/budget-logs/:id/rollback",
			Method:      http.MethodPost,
			Handler:     RollbackBudgetLog(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/budget/reconcile",
			Method:      http.MethodPost,
			Handler:     ReconcileBudgets(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/meta/rate-limit",
			Method:      http.MethodGet,
			Handler:     GetRateLimit(client),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Sync(services SyncServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sync/:family/run",
			Method:      http.MethodPost,
			Handler:     RunSync(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/sync/status",
			Method:      http.MethodGet,
			Handler:     GetSyncStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}
