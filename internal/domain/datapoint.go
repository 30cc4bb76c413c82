package domain

import (
	"time"
)

// DataPoint representa um valor registrado para um KPI em um período
// (tabela dados_kpis). Deve existir no máximo um registro por par
// (kpi_id, periodo); a reconciliação de importação consulta antes de gravar
// para respeitar essa restrição.
type DataPoint struct {
	ID             string     `json:"id"`
	KpiID          string     `json:"kpi_id"`
	Periodo        string     `json:"periodo"`
	ValorNumerico  *float64   `json:"valor_numerico"`
	Observacoes    *string    `json:"observacoes"`
	StatusSemaforo *Semaforo  `json:"status_semaforo"`
	FonteOrigem    *string    `json:"fonte_origem"`
	RegistradoPor  *string    `json:"registrado_por"`
	DataRegistro   time.Time  `json:"data_registro"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

// KpiPeriodData é um ponto da série de evolução de um KPI, com o rótulo do
// período sem o prefixo do ano (ex.: "T1" em vez de "2026-T1")
type KpiPeriodData struct {
	Periodo string   `json:"periodo"`
	Valor   *float64 `json:"valor"`
}
