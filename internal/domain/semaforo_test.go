package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestCalcularSemaforo(t *testing.T) {
	tests := []struct {
		name     string
		valor    *float64
		meta     *float64
		esperado Semaforo
	}{
		{
			name:     "sem valor registrado retorna sem_meta mesmo com meta definida",
			valor:    nil,
			meta:     floatPtr(100),
			esperado: SemaforoSemMeta,
		},
		{
			name:     "sem meta definida retorna sem_meta",
			valor:    floatPtr(100),
			meta:     nil,
			esperado: SemaforoSemMeta,
		},
		{
			name:     "meta zero não divide: retorna sem_meta",
			valor:    floatPtr(100),
			meta:     floatPtr(0),
			esperado: SemaforoSemMeta,
		},
		{
			name:     "exatamente na faixa verde é verde (limite inclusivo)",
			valor:    floatPtr(80),
			meta:     floatPtr(100),
			esperado: SemaforoVerde,
		},
		{
			name:     "logo abaixo da faixa verde é amarelo",
			valor:    floatPtr(79.9),
			meta:     floatPtr(100),
			esperado: SemaforoAmarelo,
		},
		{
			name:     "exatamente na faixa amarela é amarelo (limite inclusivo)",
			valor:    floatPtr(50),
			meta:     floatPtr(100),
			esperado: SemaforoAmarelo,
		},
		{
			name:     "abaixo da faixa amarela é vermelho",
			valor:    floatPtr(49),
			meta:     floatPtr(100),
			esperado: SemaforoVermelho,
		},
		{
			name:     "acima da meta é verde",
			valor:    floatPtr(150),
			meta:     floatPtr(100),
			esperado: SemaforoVerde,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resultado := CalcularSemaforo(tt.valor, tt.meta, FaixaVerdePadrao, FaixaAmarelaPadrao)
			assert.Equal(t, tt.esperado, resultado)
		})
	}
}

func TestCalcularSemaforoFaixasCustomizadas(t *testing.T) {
	// Faixas mais exigentes (90/70) mudam a classificação do mesmo valor
	assert.Equal(t, SemaforoAmarelo, CalcularSemaforo(floatPtr(80), floatPtr(100), 90, 70))
	assert.Equal(t, SemaforoVermelho, CalcularSemaforo(floatPtr(60), floatPtr(100), 90, 70))
	assert.Equal(t, SemaforoVerde, CalcularSemaforo(floatPtr(90), floatPtr(100), 90, 70))
}

func TestCalcularSemaforoEPura(t *testing.T) {
	// Mesmas entradas produzem sempre o mesmo status
	for i := 0; i < 10; i++ {
		assert.Equal(t, SemaforoVerde, CalcularSemaforo(floatPtr(80), floatPtr(100), 80, 50))
	}
}

func TestKpiDefinitionCalcularStatus(t *testing.T) {
	kpi := &KpiDefinition{
		Codigo:    "A1",
		MetaValor: floatPtr(200),
	}

	// Sem faixas definidas valem os padrões 80/50
	assert.Equal(t, SemaforoVerde, kpi.CalcularStatus(floatPtr(160)))
	assert.Equal(t, SemaforoAmarelo, kpi.CalcularStatus(floatPtr(100)))
	assert.Equal(t, SemaforoVermelho, kpi.CalcularStatus(floatPtr(90)))

	kpi.FaixaVerde = floatPtr(95)
	kpi.FaixaAmarela = floatPtr(60)
	assert.Equal(t, SemaforoAmarelo, kpi.CalcularStatus(floatPtr(160)))
}
