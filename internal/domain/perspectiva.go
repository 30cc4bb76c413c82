package domain

// PerspectivaOutros é o balde residual: KPIs sem perspectiva reconhecida
// caem aqui e o grupo é sempre apresentado por último
const PerspectivaOutros = "OP"

// Perspectiva é uma categoria fixa de agrupamento dos KPIs no painel
type Perspectiva struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// PerspectivasOrdenadas é a ordem fixa de apresentação dos grupos
var PerspectivasOrdenadas = []Perspectiva{
	{Key: "A", Label: "Sustentabilidade Financeira"},
	{Key: "B", Label: "Impacto Social"},
	{Key: "C", Label: "Excelência Operacional"},
	{Key: "D", Label: "Parcerias e Rede"},
	{Key: "E", Label: "Comunicação e Visibilidade"},
	{Key: PerspectivaOutros, Label: "Operacionais"},
}

// PerspectivaConhecida indica se a chave pertence ao conjunto fixo A..E
func PerspectivaConhecida(key string) bool {
	for _, p := range PerspectivasOrdenadas {
		if p.Key == PerspectivaOutros {
			continue
		}
		if p.Key == key {
			return true
		}
	}
	return false
}

// GrupoPerspectiva agrega as linhas de uma perspectiva com a contagem por status
type GrupoPerspectiva struct {
	Perspectiva Perspectiva      `json:"perspectiva"`
	Kpis        []*KpiRow        `json:"kpis"`
	Contagem    map[Semaforo]int `json:"contagem"`
}
