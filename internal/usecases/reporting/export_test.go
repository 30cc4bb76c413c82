package reporting

import (
	"testing"

	"github.com/institutoins/kpi-manager-api/infrastructure/repository/mocks"
	"github.com/institutoins/kpi-manager-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int { return &v }

func TestExportRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(
		mocks.NewMockKpiRepository(ctrl),
		mocks.NewMockDataPointRepository(ctrl),
	)

	rows := []*domain.KpiRow{
		{
			Codigo:     "A1",
			Nome:       "Receita recorrente captada",
			Valor:      floatPtr(160),
			MetaValor:  floatPtr(200),
			Percentual: intPtr(80),
			Semaforo:   domain.SemaforoVerde,
			Area:       strPtr("Captação"),
		},
		{
			Codigo:   "B1",
			Nome:     "Pessoas atendidas no trimestre",
			Semaforo: domain.SemaforoSemMeta,
		},
		{
			Codigo:     "A2",
			Nome:       "Custo por pessoa atendida",
			Valor:      floatPtr(87.5),
			MetaValor:  floatPtr(85),
			Percentual: intPtr(103),
			Semaforo:   domain.SemaforoVerde,
			Area:       strPtr("Financeiro"),
		},
	}

	out := service.ExportRows(rows)

	assert.Len(t, out, 3)

	assert.Equal(t, []string{"A1", "Receita recorrente captada", "160", "200", "80%", "verde", "Captação"}, out[0])

	// Campos ausentes saem com o marcador nulo
	assert.Equal(t, []string{"B1", "Pessoas atendidas no trimestre", "—", "—", "—", "sem_meta", "—"}, out[1])

	// Valores fracionários não ganham zeros à direita
	assert.Equal(t, []string{"A2", "Custo por pessoa atendida", "87.5", "85", "103%", "verde", "Financeiro"}, out[2])
}

func TestExportHeaderLayout(t *testing.T) {
	assert.Equal(t, []string{"Código", "Nome", "Valor", "Meta", "% Atingido", "Status", "Área"}, ExportHeader)
}
