package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/institutoins/kpi-manager-api/internal/domain"
	"github.com/institutoins/kpi-manager-api/internal/usecases/reporting"
	"github.com/institutoins/kpi-manager-api/pkg/apiErrors"
	"github.com/institutoins/kpi-manager-api/pkg/log"
	"github.com/julienschmidt/httprouter"
)

// ListKpis retorna as definições de KPI de um tipo (estrategico por padrão)
func ListKpis(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		tipo := r.URL.Query().Get("tipo")
		if tipo == "" {
			tipo = domain.KpiTipoEstrategico
		}
		if tipo != domain.KpiTipoEstrategico && tipo != domain.KpiTipoOperacional {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Tipo de KPI inválido", nil)
			return
		}

		kpis, err := service.ListDefinitions(tipo)
		if err != nil {
			logger.WithError(err).Error("kpis: erro ao listar definições")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(kpis); err != nil {
			logger.WithError(err).Error("kpis: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetKpiEvolution retorna a série histórica de valores de um KPI
func GetKpiEvolution(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		kpiID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if kpiID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar o KPI", nil)
			return
		}

		serie, err := service.GetEvolution(kpiID)
		if err != nil {
			if errors.Is(err, reporting.ErrKpiNaoEncontrado) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
				return
			}
			logger.WithError(err).WithField("kpi_id", kpiID).Error("evolution: erro ao buscar série histórica")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(serie); err != nil {
			logger.WithError(err).Error("evolution: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
