package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Identificadores de período seguem o formato "<ano>-<código>", onde o código
// é um trimestre (T1..T4), um semestre (S1/S2) ou o consolidado Anual.
const sufixoAnual = "-Anual"

var periodoTrimestralRegex = regexp.MustCompile(`^(\d{4})-(T[1-4])$`)

var trimestresOrdem = []string{"T1", "T2", "T3", "T4"}

// PeriodoAnterior retorna o período trimestral imediatamente anterior.
// T1 de um ano volta para o T4 do ano anterior. Períodos que não são
// trimestrais (Anual, semestres, formatos inválidos) não têm anterior
// definido e retornam nil. A função é total: nunca gera pânico.
func PeriodoAnterior(periodo string) *string {
	match := periodoTrimestralRegex.FindStringSubmatch(periodo)
	if match == nil {
		return nil
	}

	ano := match[1]
	trimestre := match[2]

	for i, t := range trimestresOrdem {
		if t != trimestre {
			continue
		}
		var anterior string
		if i > 0 {
			anterior = fmt.Sprintf("%s-%s", ano, trimestresOrdem[i-1])
		} else {
			anoNum, _ := strconv.Atoi(ano)
			anterior = fmt.Sprintf("%d-T4", anoNum-1)
		}
		return &anterior
	}

	return nil
}

// IsPeriodoAnual indica se o identificador é um consolidado anual
func IsPeriodoAnual(periodo string) bool {
	return strings.HasSuffix(periodo, sufixoAnual)
}

// AnoDoPeriodo extrai o ano de um identificador de período ("2026-T1" -> "2026")
func AnoDoPeriodo(periodo string) string {
	if idx := strings.Index(periodo, "-"); idx > 0 {
		return periodo[:idx]
	}
	return periodo
}

// PadraoTrimestresDoAno monta o padrão LIKE que cobre os trimestres de um ano,
// usado pelo caminho de consolidação anual ("2026-T%")
func PadraoTrimestresDoAno(ano string) string {
	return fmt.Sprintf("%s-T%%", ano)
}
