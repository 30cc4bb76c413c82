package domain

// Semaforo representa a classificação de desempenho de um KPI em relação à meta
type Semaforo string

const (
	SemaforoVerde    Semaforo = "verde"
	SemaforoAmarelo  Semaforo = "amarelo"
	SemaforoVermelho Semaforo = "vermelho"
	SemaforoSemMeta  Semaforo = "sem_meta"
)

// Faixas padrão em percentual da meta, usadas quando o KPI não define as suas
const (
	FaixaVerdePadrao   = 80.0
	FaixaAmarelaPadrao = 50.0
)

// CalcularSemaforo classifica um valor contra a meta usando as faixas informadas.
// Sem meta (nula ou zero) ou sem valor não há o que avaliar: retorna sem_meta.
// Os limites são inclusivos: valor exatamente na faixa verde é verde.
func CalcularSemaforo(valor, meta *float64, faixaVerde, faixaAmarela float64) Semaforo {
	if meta == nil || *meta == 0 || valor == nil {
		return SemaforoSemMeta
	}

	percentual := (*valor / *meta) * 100

	if percentual >= faixaVerde {
		return SemaforoVerde
	}
	if percentual >= faixaAmarela {
		return SemaforoAmarelo
	}
	return SemaforoVermelho
}
