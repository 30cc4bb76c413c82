package reporting

import (
	"errors"
	"testing"

	"github.com/institutoins/kpi-manager-api/infrastructure/repository/mocks"
	"github.com/institutoins/kpi-manager-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func floatPtr(v float64) *float64 { return &v }

func strPtr(s string) *string { return &s }

func kpiFixture(id, codigo, perspectiva string, meta *float64) *domain.KpiDefinition {
	return &domain.KpiDefinition{
		ID:          id,
		Codigo:      codigo,
		Nome:        "KPI " + codigo,
		Tipo:        domain.KpiTipoEstrategico,
		Perspectiva: perspectiva,
		MetaValor:   meta,
		Ativo:       true,
	}
}

func TestBuildRow(t *testing.T) {
	tests := []struct {
		name          string
		kpi           *domain.KpiDefinition
		valor         *float64
		valorAnterior *float64
		comparar      bool
		validate      func(t *testing.T, row *domain.KpiRow)
	}{
		{
			name:  "Valor em 80% da meta fica verde com faixas padrão",
			kpi:   kpiFixture("k1", "A1", "A", floatPtr(200)),
			valor: floatPtr(160),
			validate: func(t *testing.T, row *domain.KpiRow) {
				assert.Equal(t, domain.SemaforoVerde, row.Semaforo)
				assert.Equal(t, 80, *row.Percentual)
				assert.Nil(t, row.Tendencia)
				assert.Nil(t, row.ValorAnterior)
			},
		},
		{
			name:  "Valor logo abaixo da faixa verde fica amarelo",
			kpi:   kpiFixture("k1", "A1", "A", floatPtr(200)),
			valor: floatPtr(159),
			validate: func(t *testing.T, row *domain.KpiRow) {
				assert.Equal(t, domain.SemaforoAmarelo, row.Semaforo)
				// 159/200 = 79.5%, arredondado para 80 na exibição
				assert.Equal(t, 80, *row.Percentual)
			},
		},
		{
			name:  "KPI sem meta fica sem_meta e sem percentual",
			kpi:   kpiFixture("k1", "A1", "A", nil),
			valor: floatPtr(160),
			validate: func(t *testing.T, row *domain.KpiRow) {
				assert.Equal(t, domain.SemaforoSemMeta, row.Semaforo)
				assert.Nil(t, row.Percentual)
			},
		},
		{
			name: "Período sem valor registrado fica sem_meta e sem percentual",
			kpi:  kpiFixture("k1", "A1", "A", floatPtr(200)),
			validate: func(t *testing.T, row *domain.KpiRow) {
				assert.Equal(t, domain.SemaforoSemMeta, row.Semaforo)
				assert.Nil(t, row.Percentual)
				assert.Nil(t, row.Valor)
			},
		},
		{
			name:          "Comparação habilitada deriva a tendência",
			kpi:           kpiFixture("k1", "A1", "A", floatPtr(200)),
			valor:         floatPtr(160),
			valorAnterior: floatPtr(120),
			comparar:      true,
			validate: func(t *testing.T, row *domain.KpiRow) {
				assert.Equal(t, floatPtr(120), row.ValorAnterior)
				assert.Equal(t, domain.TendenciaUp, *row.Tendencia)
			},
		},
		{
			name:          "Comparação desabilitada ignora o valor anterior",
			kpi:           kpiFixture("k1", "A1", "A", floatPtr(200)),
			valor:         floatPtr(160),
			valorAnterior: floatPtr(120),
			comparar:      false,
			validate: func(t *testing.T, row *domain.KpiRow) {
				assert.Nil(t, row.ValorAnterior)
				assert.Nil(t, row.Tendencia)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := BuildRow(tt.kpi, tt.valor, tt.valorAnterior, tt.comparar)
			assert.Equal(t, tt.kpi.ID, row.ID)
			assert.Equal(t, tt.kpi.Codigo, row.Codigo)
			tt.validate(t, row)
		})
	}
}

func TestGetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKpiRepo := mocks.NewMockKpiRepository(ctrl)
	mockDataPointRepo := mocks.NewMockDataPointRepository(ctrl)

	service := NewService(mockKpiRepo, mockDataPointRepo)

	kpis := []*domain.KpiDefinition{
		kpiFixture("k1", "A1", "A", floatPtr(200)),
		kpiFixture("k2", "B1", "B", floatPtr(100)),
	}

	mockKpiRepo.EXPECT().
		ListByTipo(domain.KpiTipoEstrategico).
		Return(kpis, nil)

	mockDataPointRepo.EXPECT().
		ListByPeriodo("2026-T1").
		Return([]*domain.DataPoint{
			{ID: "d1", KpiID: "k1", Periodo: "2026-T1", ValorNumerico: floatPtr(160)},
		}, nil)

	rows, err := service.GetDashboard(domain.Filtros{
		Periodo: "2026-T1",
		Area:    domain.FiltroTodasAreas,
		Projeto: domain.FiltroTodosProjetos,
	})

	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	assert.Equal(t, "A1", rows[0].Codigo)
	assert.Equal(t, domain.SemaforoVerde, rows[0].Semaforo)
	assert.Equal(t, 80, *rows[0].Percentual)

	// KPI sem registro no período entra na resposta como sem_meta
	assert.Equal(t, "B1", rows[1].Codigo)
	assert.Nil(t, rows[1].Valor)
	assert.Equal(t, domain.SemaforoSemMeta, rows[1].Semaforo)
}

func TestGetDashboardComComparacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKpiRepo := mocks.NewMockKpiRepository(ctrl)
	mockDataPointRepo := mocks.NewMockDataPointRepository(ctrl)

	service := NewService(mockKpiRepo, mockDataPointRepo)

	mockKpiRepo.EXPECT().
		ListByTipo(domain.KpiTipoEstrategico).
		Return([]*domain.KpiDefinition{kpiFixture("k1", "A1", "A", floatPtr(200))}, nil)

	mockDataPointRepo.EXPECT().
		ListByPeriodo("2026-T1").
		Return([]*domain.DataPoint{
			{ID: "d1", KpiID: "k1", Periodo: "2026-T1", ValorNumerico: floatPtr(160)},
		}, nil)

	// T1 compara com o T4 do ano anterior
	mockDataPointRepo.EXPECT().
		ListByPeriodo("2025-T4").
		Return([]*domain.DataPoint{
			{ID: "d0", KpiID: "k1", Periodo: "2025-T4", ValorNumerico: floatPtr(180)},
		}, nil)

	rows, err := service.GetDashboard(domain.Filtros{
		Periodo:  "2026-T1",
		Area:     domain.FiltroTodasAreas,
		Projeto:  domain.FiltroTodosProjetos,
		Comparar: true,
	})

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, floatPtr(180), rows[0].ValorAnterior)
	assert.Equal(t, domain.TendenciaDown, *rows[0].Tendencia)
}

func TestGetDashboardPeriodoAnual(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKpiRepo := mocks.NewMockKpiRepository(ctrl)
	mockDataPointRepo := mocks.NewMockDataPointRepository(ctrl)

	service := NewService(mockKpiRepo, mockDataPointRepo)

	monetario := kpiFixture("k1", "A1", "A", floatPtr(100))
	monetario.Unidade = strPtr("R$")

	percentual := kpiFixture("k2", "C1", "C", floatPtr(90))
	percentual.Unidade = strPtr("%")

	kpis := []*domain.KpiDefinition{monetario, percentual}

	mockKpiRepo.EXPECT().
		ListByTipo(domain.KpiTipoEstrategico).
		Return(kpis, nil)

	// O consolidado anual lê todos os trimestres do ano de uma vez
	mockDataPointRepo.EXPECT().
		ListByPeriodoPattern("2026-T%").
		Return([]*domain.DataPoint{
			{ID: "d1", KpiID: "k1", Periodo: "2026-T1", ValorNumerico: floatPtr(40)},
			{ID: "d2", KpiID: "k2", Periodo: "2026-T1", ValorNumerico: floatPtr(80)},
			{ID: "d3", KpiID: "k1", Periodo: "2026-T2", ValorNumerico: floatPtr(70)},
			{ID: "d4", KpiID: "k2", Periodo: "2026-T2", ValorNumerico: floatPtr(90)},
		}, nil)

	mockKpiRepo.EXPECT().
		ListAtivos().
		Return(kpis, nil)

	rows, err := service.GetDashboard(domain.Filtros{
		Periodo: "2026-Anual",
		Area:    domain.FiltroTodasAreas,
		Projeto: domain.FiltroTodosProjetos,
	})

	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	// Unidade monetária soma os trimestres
	assert.Equal(t, 110.0, *rows[0].Valor)
	// Unidade percentual tira a média
	assert.Equal(t, 85.0, *rows[1].Valor)
}

func TestGetDashboardFiltroPorArea(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKpiRepo := mocks.NewMockKpiRepository(ctrl)
	mockDataPointRepo := mocks.NewMockDataPointRepository(ctrl)

	service := NewService(mockKpiRepo, mockDataPointRepo)

	comArea := kpiFixture("k1", "A1", "A", floatPtr(200))
	comArea.Area = strPtr("Captação")

	semArea := kpiFixture("k2", "B1", "B", floatPtr(100))

	mockKpiRepo.EXPECT().
		ListByTipo(domain.KpiTipoEstrategico).
		Return([]*domain.KpiDefinition{comArea, semArea}, nil)

	mockDataPointRepo.EXPECT().
		ListByPeriodo("2026-T1").
		Return([]*domain.DataPoint{}, nil)

	rows, err := service.GetDashboard(domain.Filtros{
		Periodo: "2026-T1",
		Area:    "Captação",
		Projeto: domain.FiltroTodosProjetos,
	})

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "A1", rows[0].Codigo)
}

func TestGetOperacionaisNaoComparam(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKpiRepo := mocks.NewMockKpiRepository(ctrl)
	mockDataPointRepo := mocks.NewMockDataPointRepository(ctrl)

	service := NewService(mockKpiRepo, mockDataPointRepo)

	op := kpiFixture("k1", "OP1", "", floatPtr(100))
	op.Tipo = domain.KpiTipoOperacional

	mockKpiRepo.EXPECT().
		ListByTipo(domain.KpiTipoOperacional).
		Return([]*domain.KpiDefinition{op}, nil)

	// Nenhuma chamada ao período anterior deve acontecer, mesmo com
	// comparar=true nos filtros
	mockDataPointRepo.EXPECT().
		ListByPeriodo("2026-T1").
		Return([]*domain.DataPoint{
			{ID: "d1", KpiID: "k1", Periodo: "2026-T1", ValorNumerico: floatPtr(95)},
		}, nil)

	rows, err := service.GetOperacionais(domain.Filtros{
		Periodo:  "2026-T1",
		Area:     domain.FiltroTodasAreas,
		Projeto:  domain.FiltroTodosProjetos,
		Comparar: true,
	})

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Nil(t, rows[0].Tendencia)
	assert.Nil(t, rows[0].ValorAnterior)
}

func TestGetDashboardErroDoRepositorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKpiRepo := mocks.NewMockKpiRepository(ctrl)
	mockDataPointRepo := mocks.NewMockDataPointRepository(ctrl)

	service := NewService(mockKpiRepo, mockDataPointRepo)

	mockKpiRepo.EXPECT().
		ListByTipo(domain.KpiTipoEstrategico).
		Return(nil, errors.New("conexão recusada"))

	rows, err := service.GetDashboard(domain.Filtros{Periodo: "2026-T1"})

	assert.Error(t, err)
	assert.Nil(t, rows)
}

func TestGroupByPerspectiva(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(
		mocks.NewMockKpiRepository(ctrl),
		mocks.NewMockDataPointRepository(ctrl),
	)

	rows := []*domain.KpiRow{
		{ID: "k1", Codigo: "A1", Perspectiva: "A", Semaforo: domain.SemaforoVerde},
		{ID: "k2", Codigo: "A2", Perspectiva: "A", Semaforo: domain.SemaforoVermelho},
		{ID: "k3", Codigo: "B1", Perspectiva: "B", Semaforo: domain.SemaforoAmarelo},
		{ID: "k4", Codigo: "X1", Perspectiva: "X", Semaforo: domain.SemaforoVerde},
		{ID: "k5", Codigo: "OP1", Perspectiva: "", Semaforo: domain.SemaforoSemMeta},
	}

	grupos := service.GroupByPerspectiva(rows)

	// Sempre os seis grupos, na ordem fixa, mesmo vazios
	assert.Len(t, grupos, 6)
	assert.Equal(t, "A", grupos[0].Perspectiva.Key)
	assert.Equal(t, "B", grupos[1].Perspectiva.Key)
	assert.Equal(t, "C", grupos[2].Perspectiva.Key)
	assert.Equal(t, "D", grupos[3].Perspectiva.Key)
	assert.Equal(t, "E", grupos[4].Perspectiva.Key)
	assert.Equal(t, domain.PerspectivaOutros, grupos[5].Perspectiva.Key)

	assert.Len(t, grupos[0].Kpis, 2)
	assert.Equal(t, 1, grupos[0].Contagem[domain.SemaforoVerde])
	assert.Equal(t, 1, grupos[0].Contagem[domain.SemaforoVermelho])

	assert.Len(t, grupos[1].Kpis, 1)
	assert.Empty(t, grupos[2].Kpis)

	// Perspectiva desconhecida e ausente caem no balde residual
	assert.Len(t, grupos[5].Kpis, 2)
	assert.Equal(t, 1, grupos[5].Contagem[domain.SemaforoVerde])
	assert.Equal(t, 1, grupos[5].Contagem[domain.SemaforoSemMeta])
}

func TestGetEvolution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKpiRepo := mocks.NewMockKpiRepository(ctrl)
	mockDataPointRepo := mocks.NewMockDataPointRepository(ctrl)

	service := NewService(mockKpiRepo, mockDataPointRepo)

	mockKpiRepo.EXPECT().
		GetByID("k1").
		Return(kpiFixture("k1", "A1", "A", floatPtr(200)), nil)

	mockDataPointRepo.EXPECT().
		ListByKpi("k1").
		Return([]*domain.DataPoint{
			{ID: "d1", KpiID: "k1", Periodo: "2025-T4", ValorNumerico: floatPtr(120)},
			{ID: "d2", KpiID: "k1", Periodo: "2026-T1", ValorNumerico: floatPtr(160)},
			{ID: "d3", KpiID: "k1", Periodo: "2026-Anual", ValorNumerico: floatPtr(280)},
		}, nil)

	serie, err := service.GetEvolution("k1")

	assert.NoError(t, err)
	assert.Len(t, serie, 3)

	// O rótulo perde o prefixo do ano
	assert.Equal(t, "T4", serie[0].Periodo)
	assert.Equal(t, "T1", serie[1].Periodo)
	assert.Equal(t, "Anual", serie[2].Periodo)
	assert.Equal(t, 160.0, *serie[1].Valor)
}

func TestGetEvolutionKpiInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKpiRepo := mocks.NewMockKpiRepository(ctrl)
	mockDataPointRepo := mocks.NewMockDataPointRepository(ctrl)

	service := NewService(mockKpiRepo, mockDataPointRepo)

	mockKpiRepo.EXPECT().
		GetByID("zz").
		Return(nil, nil)

	serie, err := service.GetEvolution("zz")

	assert.ErrorIs(t, err, ErrKpiNaoEncontrado)
	assert.Nil(t, serie)
}
