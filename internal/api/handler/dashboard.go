package handler

import (
	"encoding/json"
	"net/http"

	"github.com/institutoins/kpi-manager-api/internal/domain"
	"github.com/institutoins/kpi-manager-api/internal/usecases/reporting"
	"github.com/institutoins/kpi-manager-api/pkg/apiErrors"
	"github.com/institutoins/kpi-manager-api/pkg/log"
)

// filtrosFromQuery monta os filtros do painel a partir da query string.
// Área e projeto ausentes valem os curingas (sem filtro).
func filtrosFromQuery(r *http.Request) domain.Filtros {
	q := r.URL.Query()

	filtros := domain.Filtros{
		Periodo:  q.Get("periodo"),
		Projeto:  q.Get("projeto"),
		Area:     q.Get("area"),
		Comparar: q.Get("comparar") == "true",
	}

	if filtros.Area == "" {
		filtros.Area = domain.FiltroTodasAreas
	}
	if filtros.Projeto == "" {
		filtros.Projeto = domain.FiltroTodosProjetos
	}

	return filtros
}

// GetDashboard retorna as linhas derivadas dos KPIs estratégicos de um período
func GetDashboard(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filtros := filtrosFromQuery(r)
		if filtros.Periodo == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar o período", nil)
			return
		}

		logger.WithFields(log.Fields{
			"periodo":  filtros.Periodo,
			"comparar": filtros.Comparar,
		}).Info("dashboard: montando painel de KPIs")

		rows, err := service.GetDashboard(filtros)
		if err != nil {
			logger.WithError(err).WithField("periodo", filtros.Periodo).Error("dashboard: erro ao montar painel")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rows); err != nil {
			logger.WithError(err).Error("dashboard: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetSemaforoPanel retorna o painel agrupado por perspectiva com as contagens
// de status por grupo
func GetSemaforoPanel(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filtros := filtrosFromQuery(r)
		if filtros.Periodo == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar o período", nil)
			return
		}

		rows, err := service.GetDashboard(filtros)
		if err != nil {
			logger.WithError(err).WithField("periodo", filtros.Periodo).Error("semaforo: erro ao montar painel")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		grupos := service.GroupByPerspectiva(rows)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(grupos); err != nil {
			logger.WithError(err).Error("semaforo: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetOperacionais retorna as linhas dos KPIs operacionais de um período
func GetOperacionais(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filtros := filtrosFromQuery(r)
		if filtros.Periodo == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar o período", nil)
			return
		}

		rows, err := service.GetOperacionais(filtros)
		if err != nil {
			logger.WithError(err).WithField("periodo", filtros.Periodo).Error("operacionais: erro ao montar painel")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rows); err != nil {
			logger.WithError(err).Error("operacionais: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
