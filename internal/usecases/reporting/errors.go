package reporting

import "errors"

// Erros específicos do contexto de relatórios
var (
	ErrKpiNaoEncontrado = errors.New("KPI não encontrado")
)
