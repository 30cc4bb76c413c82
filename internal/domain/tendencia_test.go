package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcularTendencia(t *testing.T) {
	tests := []struct {
		name     string
		atual    *float64
		anterior *float64
		esperado *Tendencia
	}{
		{name: "sem valor atual não compara", atual: nil, anterior: floatPtr(5), esperado: nil},
		{name: "sem valor anterior não compara", atual: floatPtr(5), anterior: nil, esperado: nil},
		{name: "ambos ausentes", atual: nil, anterior: nil, esperado: nil},
		{name: "crescimento", atual: floatPtr(12), anterior: floatPtr(10), esperado: tendPtr(TendenciaUp)},
		{name: "queda", atual: floatPtr(8), anterior: floatPtr(10), esperado: tendPtr(TendenciaDown)},
		{name: "igualdade exata", atual: floatPtr(10), anterior: floatPtr(10), esperado: tendPtr(TendenciaEqual)},
		{name: "diferença mínima ainda é queda", atual: floatPtr(9.9999), anterior: floatPtr(10), esperado: tendPtr(TendenciaDown)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resultado := CalcularTendencia(tt.atual, tt.anterior)
			if tt.esperado == nil {
				assert.Nil(t, resultado)
				return
			}
			if assert.NotNil(t, resultado) {
				assert.Equal(t, *tt.esperado, *resultado)
			}
		})
	}
}

func tendPtr(t Tendencia) *Tendencia {
	return &t
}
