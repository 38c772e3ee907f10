package handler

import (
	"net/http"

	"github.com/corretorahub/sales-dashboard-api/internal/api/handler/router"
	"github.com/corretorahub/sales-dashboard-api/internal/usecases/importing"
	"github.com/corretorahub/sales-dashboard-api/internal/usecases/reporting"
	"github.com/corretorahub/sales-dashboard-api/internal/usecases/settings"
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

func Dashboard(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
	}
}

func Entries(reporter reporting.Reporter, importer importing.Importer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/entries",
			Method:  http.MethodGet,
			Handler: ListEntries(reporter),
		},
		{
			Path:    "/v1/entries",
			Method:  http.MethodPost,
			Handler: SubmitEntry(importer),
		},
	}
}

func Charts(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/charts/agent-premium",
			Method:  http.MethodGet,
			Handler: GetAgentPremiumChart(service),
		},
		{
			Path:    "/v1/charts/category-premium",
			Method:  http.MethodGet,
			Handler: GetCategoryPremiumChart(service),
		},
	}
}

func Settings(service settings.GoalManager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/settings/goal",
			Method:  http.MethodGet,
			Handler: GetGoal(service),
		},
		{
			Path:    "/v1/settings/goal",
			Method:  http.MethodPut,
			Handler: UpdateGoal(service),
		},
	}
}
