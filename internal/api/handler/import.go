package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/institutoins/kpi-manager-api/internal/usecases/importing"
	"github.com/institutoins/kpi-manager-api/pkg/apiErrors"
	"github.com/institutoins/kpi-manager-api/pkg/log"
)

// limite de 10MB para o arquivo de importação
const maxImportBytes = 10 << 20

// ImportKpis recebe um CSV de dados de KPI e concilia cada linha com a base.
// Aceita tanto multipart (campo "file") quanto o corpo cru da requisição.
func ImportKpis(service importing.Importer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		data, err := readImportBody(r)
		if err != nil {
			logger.WithError(err).Error("import: erro ao ler o arquivo enviado")
			apiErrors.WriteError(w, apiErrors.ErrInvalidImportFile, "Não foi possível ler o arquivo enviado", nil)
			return
		}
		if len(data) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário enviar um arquivo com dados", nil)
			return
		}

		rows, err := importing.ParseRows(data)
		if err != nil {
			logger.WithError(err).Error("import: arquivo inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidImportFile, err.Error(), nil)
			return
		}

		result, err := service.Reconcile(r.Context(), rows)
		if err != nil {
			logger.WithError(err).Error("import: erro ao conciliar as linhas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("import: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func readImportBody(r *http.Request) ([]byte, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxImportBytes); err != nil {
			return nil, err
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, err
		}
		defer file.Close()

		return io.ReadAll(io.LimitReader(file, maxImportBytes))
	}

	defer r.Body.Close()
	return io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
}
