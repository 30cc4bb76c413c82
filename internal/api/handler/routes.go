package handler

import (
	"net/http"

	"github.com/institutoins/kpi-manager-api/internal/api/handler/router"
	"github.com/institutoins/kpi-manager-api/internal/usecases/importing"
	"github.com/institutoins/kpi-manager-api/internal/usecases/reporting"
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

func Kpis(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/kpis",
			Method:  http.MethodGet,
			Handler: ListKpis(service),
		},
		{
			Path:    "/v1/kpis/:id/evolution",
			Method:  http.MethodGet,
			Handler: GetKpiEvolution(service),
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
		{
			Path:    "/v1/dashboard/semaforo",
			Method:  http.MethodGet,
			Handler: GetSemaforoPanel(service),
		},
		{
			Path:    "/v1/operacionais",
			Method:  http.MethodGet,
			Handler: GetOperacionais(service),
		},
	}
}

// ImportExport retorna as rotas de carga e exportação de dados de KPI
func ImportExport(reportService reporting.Reporter, importService importing.Importer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/export",
			Method:  http.MethodGet,
			Handler: ExportKpis(reportService),
		},
		{
			Path:    "/v1/import",
			Method:  http.MethodPost,
			Handler: ImportKpis(importService),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
