package handler

import (
	"net/http"

	"github.com/automateboss/ops-portal-api/internal/api/handler/router"
	"github.com/automateboss/ops-portal-api/internal/config"
	"github.com/automateboss/ops-portal-api/internal/usecases/ingesting"
	"github.com/automateboss/ops-portal-api/internal/usecases/reporting"
	"github.com/automateboss/ops-portal-api/pkg/middleware"
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

func Dashboard(service reporting.ReportBuilder) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboardReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrTeam()},
		},
	}
}

func Webhooks(service ingesting.Ingestor, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/webhooks/highlevel",
			Method:  http.MethodPost,
			Handler: ReceiveHighLevelWebhook(service, cfg),
		},
	}
}
