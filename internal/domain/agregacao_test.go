package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgregarAnual(t *testing.T) {
	tests := []struct {
		name     string
		valores  []float64
		unidade  string
		esperado *float64
	}{
		{
			name:     "lista vazia retorna nil",
			valores:  []float64{},
			unidade:  UnidadeMonetaria,
			esperado: nil,
		},
		{
			name:     "unidade monetária acumula",
			valores:  []float64{10, 20, 30},
			unidade:  UnidadeMonetaria,
			esperado: floatPtr(60),
		},
		{
			name:     "contagem acumula",
			valores:  []float64{5, 7, 3, 1},
			unidade:  UnidadeContagem,
			esperado: floatPtr(16),
		},
		{
			name:     "percentual tira a média",
			valores:  []float64{10, 20},
			unidade:  UnidadePercentual,
			esperado: floatPtr(15.00),
		},
		{
			name:     "média arredondada em duas casas",
			valores:  []float64{10, 10, 11},
			unidade:  UnidadePercentual,
			esperado: floatPtr(10.33),
		},
		{
			name:     "escala 1-5 tira a média",
			valores:  []float64{3, 4, 5},
			unidade:  UnidadeEscala,
			esperado: floatPtr(4),
		},
		{
			name:     "sim/não vale o último estado conhecido",
			valores:  []float64{1, 0, 1},
			unidade:  UnidadeSimNao,
			esperado: floatPtr(1),
		},
		{
			name:     "sim/não terminando em zero",
			valores:  []float64{1, 1, 0},
			unidade:  UnidadeSimNao,
			esperado: floatPtr(0),
		},
		{
			name:     "unidade desconhecida cai na soma",
			valores:  []float64{2, 3},
			unidade:  "horas",
			esperado: floatPtr(5),
		},
		{
			name:     "unidade vazia cai na soma",
			valores:  []float64{2, 3},
			unidade:  "",
			esperado: floatPtr(5),
		},
		{
			name:     "trimestre único",
			valores:  []float64{42},
			unidade:  UnidadePercentual,
			esperado: floatPtr(42),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resultado := AgregarAnual(tt.valores, tt.unidade)
			if tt.esperado == nil {
				assert.Nil(t, resultado)
				return
			}
			if assert.NotNil(t, resultado) {
				assert.InDelta(t, *tt.esperado, *resultado, 0.0001)
			}
		})
	}
}
