package domain

// Tendencia indica a direção do valor atual em relação ao período anterior
type Tendencia string

const (
	TendenciaUp    Tendencia = "up"
	TendenciaDown  Tendencia = "down"
	TendenciaEqual Tendencia = "equal"
)

// CalcularTendencia compara o valor atual com o do período anterior.
// Sem um dos dois valores não há comparação: retorna nil. A comparação é
// estrita, sem tolerância de arredondamento.
func CalcularTendencia(atual, anterior *float64) *Tendencia {
	if atual == nil || anterior == nil {
		return nil
	}

	var t Tendencia
	switch {
	case *atual > *anterior:
		t = TendenciaUp
	case *atual < *anterior:
		t = TendenciaDown
	default:
		t = TendenciaEqual
	}

	return &t
}
