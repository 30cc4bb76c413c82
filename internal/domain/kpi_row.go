package domain

// Valores curinga dos filtros: "Todas" (área) e "Todos" (projeto) não filtram
const (
	FiltroTodasAreas    = "Todas"
	FiltroTodosProjetos = "Todos"
)

// Filtros descreve a consulta do painel. Campos explícitos em vez de um mapa
// aberto: filtro ausente é o curinga correspondente.
type Filtros struct {
	Periodo  string `json:"periodo"`
	Projeto  string `json:"projeto"`
	Area     string `json:"area"`
	Comparar bool   `json:"comparar"`
}

// MatchKpi aplica os filtros de área e projeto sobre uma definição de KPI.
// A comparação é por igualdade exata; não há correspondência parcial.
func (f Filtros) MatchKpi(k *KpiDefinition) bool {
	if f.Area != "" && f.Area != FiltroTodasAreas {
		if k.Area == nil || *k.Area != f.Area {
			return false
		}
	}
	if f.Projeto != "" && f.Projeto != FiltroTodosProjetos {
		if k.Projeto == nil || *k.Projeto != f.Projeto {
			return false
		}
	}
	return true
}

// KpiRow é a linha derivada do painel: definição do KPI combinada com o valor
// do período e os campos calculados. É efêmera, recalculada a cada consulta;
// o semáforo nunca é lido de cache, sempre deriva de (valor, meta, faixas).
type KpiRow struct {
	ID            string     `json:"id"`
	Codigo        string     `json:"codigo"`
	Nome          string     `json:"nome"`
	Perspectiva   string     `json:"perspectiva"`
	Area          *string    `json:"area"`
	Unidade       *string    `json:"unidade"`
	MetaValor     *float64   `json:"meta_valor"`
	FaixaVerde    *float64   `json:"faixa_verde"`
	FaixaAmarela  *float64   `json:"faixa_amarela"`
	Valor         *float64   `json:"valor"`
	Percentual    *int       `json:"percentual"`
	Semaforo      Semaforo   `json:"semaforo"`
	ValorAnterior *float64   `json:"valorAnterior"`
	Tendencia     *Tendencia `json:"tendencia"`
}
