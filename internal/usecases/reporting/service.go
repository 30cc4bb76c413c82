package reporting

import (
	"math"
	"regexp"

	"github.com/institutoins/kpi-manager-api/infrastructure/repository"
	"github.com/institutoins/kpi-manager-api/internal/domain"
	"github.com/pkg/errors"
)

// Service implementa a interface Reporter sobre os repositórios de
// configuração e de dados de KPIs
type Service struct {
	kpiRepository       repository.KpiRepository
	dataPointRepository repository.DataPointRepository
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(
	kpiRepo repository.KpiRepository,
	dataPointRepo repository.DataPointRepository,
) Reporter {
	return &Service{
		kpiRepository:       kpiRepo,
		dataPointRepository: dataPointRepo,
	}
}

func (s *Service) ListDefinitions(tipo string) ([]*domain.KpiDefinition, error) {
	kpis, err := s.kpiRepository.ListByTipo(tipo)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar definições de KPI")
	}
	return kpis, nil
}

func (s *Service) GetDashboard(filtros domain.Filtros) ([]*domain.KpiRow, error) {
	return s.buildRows(domain.KpiTipoEstrategico, filtros)
}

func (s *Service) GetOperacionais(filtros domain.Filtros) ([]*domain.KpiRow, error) {
	// KPIs operacionais não têm modo de comparação no painel
	filtros.Comparar = false
	return s.buildRows(domain.KpiTipoOperacional, filtros)
}

func (s *Service) buildRows(tipo string, filtros domain.Filtros) ([]*domain.KpiRow, error) {
	kpis, err := s.kpiRepository.ListByTipo(tipo)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar definições de KPI")
	}

	valores, err := s.resolveValores(filtros.Periodo)
	if err != nil {
		return nil, err
	}

	// Valores do período anterior, apenas quando a comparação foi pedida
	// e o período tem um anterior definido
	var valoresAnteriores map[string]*float64
	if filtros.Comparar {
		if anterior := domain.PeriodoAnterior(filtros.Periodo); anterior != nil {
			dados, err := s.dataPointRepository.ListByPeriodo(*anterior)
			if err != nil {
				return nil, errors.Wrap(err, "erro ao buscar dados do período anterior")
			}
			valoresAnteriores = make(map[string]*float64, len(dados))
			for _, d := range dados {
				valoresAnteriores[d.KpiID] = d.ValorNumerico
			}
		}
	}

	rows := make([]*domain.KpiRow, 0, len(kpis))
	for _, kpi := range kpis {
		if !filtros.MatchKpi(kpi) {
			continue
		}

		valor := valores[kpi.ID]

		var valorAnterior *float64
		if valoresAnteriores != nil {
			valorAnterior = valoresAnteriores[kpi.ID]
		}

		rows = append(rows, BuildRow(kpi, valor, valorAnterior, filtros.Comparar && valoresAnteriores != nil))
	}

	return rows, nil
}

// resolveValores monta o mapa kpi_id -> valor do período pedido. Para um
// período trimestral é o valor registrado; para o consolidado anual os
// trimestres do ano são reduzidos pela regra de agregação da unidade.
func (s *Service) resolveValores(periodo string) (map[string]*float64, error) {
	if !domain.IsPeriodoAnual(periodo) {
		dados, err := s.dataPointRepository.ListByPeriodo(periodo)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao buscar dados do período")
		}

		valores := make(map[string]*float64, len(dados))
		for _, d := range dados {
			valores[d.KpiID] = d.ValorNumerico
		}
		return valores, nil
	}

	pattern := domain.PadraoTrimestresDoAno(domain.AnoDoPeriodo(periodo))
	dados, err := s.dataPointRepository.ListByPeriodoPattern(pattern)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar dados trimestrais do ano")
	}

	// A query retorna ordenado por período: a ordem cronológica é preservada,
	// o que importa para a regra "último valor" das unidades S/N.
	// Trimestres sem valor registrado não entram na agregação.
	porKpi := make(map[string][]float64)
	for _, d := range dados {
		if d.ValorNumerico == nil {
			continue
		}
		porKpi[d.KpiID] = append(porKpi[d.KpiID], *d.ValorNumerico)
	}

	unidades, err := s.unidadesPorKpi()
	if err != nil {
		return nil, err
	}

	valores := make(map[string]*float64, len(porKpi))
	for kpiID, vs := range porKpi {
		valores[kpiID] = domain.AgregarAnual(vs, unidades[kpiID])
	}
	return valores, nil
}

func (s *Service) unidadesPorKpi() (map[string]string, error) {
	kpis, err := s.kpiRepository.ListAtivos()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar definições de KPI")
	}

	unidades := make(map[string]string, len(kpis))
	for _, k := range kpis {
		unidades[k.ID] = k.UnidadeOuVazia()
	}
	return unidades, nil
}

// BuildRow junta uma definição de KPI com os valores resolvidos do período e
// deriva os campos calculados. Transformação pura: sem efeitos colaterais.
// A tendência só é calculada quando a comparação foi pedida; quando não foi,
// os campos de comparação ficam ausentes.
func BuildRow(kpi *domain.KpiDefinition, valor, valorAnterior *float64, comparar bool) *domain.KpiRow {
	row := &domain.KpiRow{
		ID:           kpi.ID,
		Codigo:       kpi.Codigo,
		Nome:         kpi.Nome,
		Perspectiva:  kpi.Perspectiva,
		Area:         kpi.Area,
		Unidade:      kpi.Unidade,
		MetaValor:    kpi.MetaValor,
		FaixaVerde:   kpi.FaixaVerde,
		FaixaAmarela: kpi.FaixaAmarela,
		Valor:        valor,
		Percentual:   calcularPercentual(valor, kpi.MetaValor),
		Semaforo:     kpi.CalcularStatus(valor),
	}

	if comparar {
		row.ValorAnterior = valorAnterior
		row.Tendencia = domain.CalcularTendencia(valor, valorAnterior)
	}

	return row
}

// calcularPercentual deriva o percentual inteiro de atingimento da meta,
// ou nil quando não há valor ou a meta é ausente/zero
func calcularPercentual(valor, meta *float64) *int {
	if valor == nil || meta == nil || *meta == 0 {
		return nil
	}

	pct := int(math.Round(*valor / *meta * 100))
	return &pct
}

func (s *Service) GroupByPerspectiva(rows []*domain.KpiRow) []*domain.GrupoPerspectiva {
	grupos := make([]*domain.GrupoPerspectiva, 0, len(domain.PerspectivasOrdenadas))

	for _, p := range domain.PerspectivasOrdenadas {
		grupo := &domain.GrupoPerspectiva{
			Perspectiva: p,
			Kpis:        make([]*domain.KpiRow, 0),
			Contagem:    make(map[domain.Semaforo]int),
		}

		for _, row := range rows {
			pertence := row.Perspectiva == p.Key
			if p.Key == domain.PerspectivaOutros {
				// O balde residual recolhe perspectivas ausentes ou desconhecidas
				pertence = row.Perspectiva == p.Key || !domain.PerspectivaConhecida(row.Perspectiva)
			}
			if !pertence {
				continue
			}
			grupo.Kpis = append(grupo.Kpis, row)
			grupo.Contagem[row.Semaforo]++
		}

		grupos = append(grupos, grupo)
	}

	return grupos
}

var prefixoAnoRegex = regexp.MustCompile(`^\d{4}-`)

func (s *Service) GetEvolution(kpiID string) ([]domain.KpiPeriodData, error) {
	kpi, err := s.kpiRepository.GetByID(kpiID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar a definição do KPI")
	}
	if kpi == nil {
		return nil, ErrKpiNaoEncontrado
	}

	dados, err := s.dataPointRepository.ListByKpi(kpiID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar a série histórica do KPI")
	}

	serie := make([]domain.KpiPeriodData, 0, len(dados))
	for _, d := range dados {
		serie = append(serie, domain.KpiPeriodData{
			Periodo: prefixoAnoRegex.ReplaceAllString(d.Periodo, ""),
			Valor:   d.ValorNumerico,
		})
	}

	return serie, nil
}
