package domain

import "github.com/institutoins/kpi-manager-api/pkg/utils"

// Unidades de medida reconhecidas pelos KPIs
const (
	UnidadeMonetaria  = "R$"
	UnidadeContagem   = "nº"
	UnidadePercentual = "%"
	UnidadeEscala     = "1-5"
	UnidadeSimNao     = "S/N"
)

// AgregarAnual reduz os valores trimestrais de um KPI em um único valor anual,
// segundo a semântica da unidade de medida:
//   - R$ e nº acumulam ao longo do ano (soma);
//   - % e escala 1-5 representam taxas (média com duas casas decimais);
//   - S/N é um estado: vale o último valor conhecido;
//   - unidades não reconhecidas caem na soma, o padrão cumulativo.
//
// Trimestres sem registro simplesmente não entram na lista (não valem zero).
// Lista vazia retorna nil: não há dado suficiente para consolidar.
// Esta é a única codificação da regra por unidade; os caminhos de exibição e
// de exportação devem passar por aqui.
func AgregarAnual(valores []float64, unidade string) *float64 {
	if len(valores) == 0 {
		return nil
	}

	var resultado float64

	switch unidade {
	case UnidadePercentual, UnidadeEscala:
		soma := 0.0
		for _, v := range valores {
			soma += v
		}
		resultado = utils.RoundWithTwoDecimalPlace(soma / float64(len(valores)))
	case UnidadeSimNao:
		resultado = valores[len(valores)-1]
	default:
		// R$, nº e qualquer unidade desconhecida acumulam
		for _, v := range valores {
			resultado += v
		}
	}

	return &resultado
}
