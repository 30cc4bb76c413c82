package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/institutoins/kpi-manager-api/internal/usecases/reporting"
	"github.com/institutoins/kpi-manager-api/pkg/apiErrors"
	"github.com/institutoins/kpi-manager-api/pkg/log"
)

// ExportKpis exporta o painel do período em CSV separado por ponto e vírgula,
// com BOM UTF-8 para compatibilidade com planilhas
func ExportKpis(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filtros := filtrosFromQuery(r)
		if filtros.Periodo == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar o período", nil)
			return
		}

		// A exportação não carrega a comparação com o período anterior
		filtros.Comparar = false

		rows, err := service.GetDashboard(filtros)
		if err != nil {
			logger.WithError(err).WithField("periodo", filtros.Periodo).Error("export: erro ao montar painel")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		filename := fmt.Sprintf("INS_KPIs_%s_%s.csv", filtros.Periodo, time.Now().Format("2006-01-02"))

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		if _, err := w.Write([]byte("\xef\xbb\xbf")); err != nil {
			logger.WithError(err).Error("export: erro ao escrever BOM")
			return
		}

		writer := csv.NewWriter(w)
		writer.Comma = ';'
		writer.UseCRLF = true

		if err := writer.Write(reporting.ExportHeader); err != nil {
			logger.WithError(err).Error("export: erro ao escrever cabeçalho")
			return
		}
		if err := writer.WriteAll(service.ExportRows(rows)); err != nil {
			logger.WithError(err).Error("export: erro ao escrever linhas")
			return
		}

		logger.WithFields(log.Fields{
			"periodo": filtros.Periodo,
			"total":   len(rows),
		}).Info("export: arquivo gerado com sucesso")
	})
}
