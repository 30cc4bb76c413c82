package reporting

import (
	"github.com/institutoins/kpi-manager-api/internal/domain"
)

// Reporter define as consultas derivadas do painel de KPIs
type Reporter interface {
	// ListDefinitions retorna as definições de KPI de um tipo, ordenadas por código
	ListDefinitions(tipo string) ([]*domain.KpiDefinition, error)

	// GetDashboard monta as linhas derivadas dos KPIs estratégicos para um
	// período, com comparação opcional contra o período anterior
	GetDashboard(filtros domain.Filtros) ([]*domain.KpiRow, error)

	// GetOperacionais monta as linhas dos KPIs operacionais (sem comparação)
	GetOperacionais(filtros domain.Filtros) ([]*domain.KpiRow, error)

	// GroupByPerspectiva agrupa linhas nos baldes fixos de perspectiva,
	// com contagem por status de semáforo
	GroupByPerspectiva(rows []*domain.KpiRow) []*domain.GrupoPerspectiva

	// GetEvolution retorna a série histórica de valores de um KPI
	GetEvolution(kpiID string) ([]domain.KpiPeriodData, error)

	// ExportRows projeta as linhas no layout fixo de exportação
	ExportRows(rows []*domain.KpiRow) [][]string
}
