package domain

import (
	"time"
)

// Tipos de KPI usados para filtrar as consultas de configuração
const (
	KpiTipoEstrategico = "estrategico"
	KpiTipoOperacional = "operacional"
)

// KpiDefinition representa a configuração de um indicador (tabela config_kpis).
// É mantida externamente e tratada como entrada imutável pelo motor de cálculo.
type KpiDefinition struct {
	ID           string     `json:"id"`
	Codigo       string     `json:"codigo"`
	Nome         string     `json:"nome"`
	Tipo         string     `json:"tipo"`
	Perspectiva  string     `json:"perspectiva"`
	Area         *string    `json:"area"`
	Projeto      *string    `json:"projeto"`
	Unidade      *string    `json:"unidade"`
	MetaValor    *float64   `json:"meta_valor"`
	FaixaVerde   *float64   `json:"faixa_verde"`
	FaixaAmarela *float64   `json:"faixa_amarela"`
	AlimentaKpi  *string    `json:"alimenta_kpi"`
	Fonte        *string    `json:"fonte"`
	Frequencia   *string    `json:"frequencia"`
	Ativo        bool       `json:"ativo"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

// FaixaVerdeOuPadrao resolve a faixa verde do KPI, caindo no padrão de 80%
func (k *KpiDefinition) FaixaVerdeOuPadrao() float64 {
	if k.FaixaVerde != nil {
		return *k.FaixaVerde
	}
	return FaixaVerdePadrao
}

// FaixaAmarelaOuPadrao resolve a faixa amarela do KPI, caindo no padrão de 50%
func (k *KpiDefinition) FaixaAmarelaOuPadrao() float64 {
	if k.FaixaAmarela != nil {
		return *k.FaixaAmarela
	}
	return FaixaAmarelaPadrao
}

// UnidadeOuVazia retorna a unidade de medida ou string vazia quando ausente
func (k *KpiDefinition) UnidadeOuVazia() string {
	if k.Unidade != nil {
		return *k.Unidade
	}
	return ""
}

// CalcularStatus classifica um valor contra a meta deste KPI usando as
// faixas próprias (ou os padrões quando não definidas)
func (k *KpiDefinition) CalcularStatus(valor *float64) Semaforo {
	return CalcularSemaforo(valor, k.MetaValor, k.FaixaVerdeOuPadrao(), k.FaixaAmarelaOuPadrao())
}
