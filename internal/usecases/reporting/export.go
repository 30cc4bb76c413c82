package reporting

import (
	"fmt"
	"strconv"

	"github.com/institutoins/kpi-manager-api/internal/domain"
)

// Colunas fixas da exportação, na ordem do layout acordado com a planilha
var ExportHeader = []string{"Código", "Nome", "Valor", "Meta", "% Atingido", "Status", "Área"}

// Marcador para campos sem valor na exportação
const exportNulo = "—"

// ExportRows projeta as linhas do painel no layout fixo de exportação.
// Campos ausentes saem como o marcador nulo e percentuais ganham o sufixo %.
// O valor exibido é o mesmo derivado pelo painel, inclusive o consolidado
// anual: os dois caminhos passam pela mesma regra de agregação.
func (s *Service) ExportRows(rows []*domain.KpiRow) [][]string {
	out := make([][]string, 0, len(rows))

	for _, row := range rows {
		out = append(out, []string{
			row.Codigo,
			row.Nome,
			formatFloat(row.Valor),
			formatFloat(row.MetaValor),
			formatPercentual(row.Percentual),
			string(row.Semaforo),
			formatString(row.Area),
		})
	}

	return out
}

func formatFloat(v *float64) string {
	if v == nil {
		return exportNulo
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatPercentual(p *int) string {
	if p == nil {
		return exportNulo
	}
	return fmt.Sprintf("%d%%", *p)
}

func formatString(s *string) string {
	if s == nil {
		return exportNulo
	}
	return *s
}
