package importing

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/institutoins/kpi-manager-api/infrastructure/repository"
	"github.com/institutoins/kpi-manager-api/internal/domain"
	"github.com/institutoins/kpi-manager-api/pkg/log"
	"github.com/institutoins/kpi-manager-api/pkg/utils"
	"github.com/pkg/errors"
)

// A primeira linha de dados da planilha é a linha 2: a linha 1 é o cabeçalho
const offsetCabecalho = 2

// Importer define a reconciliação de planilhas de dados de KPI
type Importer interface {
	// Reconcile processa as linhas importadas em ordem, decidindo por linha
	// entre inserir e atualizar o registro do par (kpi, período)
	Reconcile(ctx context.Context, rows []domain.ImportRow) (*domain.ImportResult, error)
}

// Service implementa a interface Importer
type Service struct {
	kpiRepository       repository.KpiRepository
	dataPointRepository repository.DataPointRepository
}

// NewService cria uma nova instância do serviço de importação
func NewService(
	kpiRepo repository.KpiRepository,
	dataPointRepo repository.DataPointRepository,
) Importer {
	return &Service{
		kpiRepository:       kpiRepo,
		dataPointRepository: dataPointRepo,
	}
}

// Reconcile valida e grava as linhas uma a uma, na ordem do arquivo, sem
// paralelismo: dentro de uma execução não há corrida entre linhas no par
// (kpi_id, periodo). Falhas de validação ou de gravação entram no resultado
// com o número da linha e não interrompem as demais.
func (s *Service) Reconcile(ctx context.Context, rows []domain.ImportRow) (*domain.ImportResult, error) {
	logger := log.ForContext(ctx)

	result := &domain.ImportResult{
		Total: len(rows),
		Erros: make([]domain.ImportError, 0),
	}

	kpisPorCodigo, err := s.kpisPorCodigo()
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		linha := i + offsetCabecalho
		s.processRow(row, linha, kpisPorCodigo, result)
	}

	logger.WithFields(log.Fields{
		"total":         result.Total,
		"inseridos":     result.Inseridos,
		"atualizados":   result.Atualizados,
		"import_errors": len(result.Erros),
	}).Info("import: reconciliação concluída")

	return result, nil
}

func (s *Service) processRow(row domain.ImportRow, linha int, kpis map[string]*domain.KpiDefinition, result *domain.ImportResult) {
	if row.CodigoKpi == "" || row.Periodo == "" {
		result.Erros = append(result.Erros, domain.ImportError{
			Linha:    linha,
			Mensagem: "codigo_kpi e periodo são obrigatórios",
		})
		return
	}

	kpi, ok := kpis[strings.TrimSpace(row.CodigoKpi)]
	if !ok {
		result.Erros = append(result.Erros, domain.ImportError{
			Linha:    linha,
			Mensagem: fmt.Sprintf("KPI %q não encontrado", row.CodigoKpi),
		})
		return
	}

	valor, err := parseValor(row.ValorNumerico)
	if err != nil {
		result.Erros = append(result.Erros, domain.ImportError{
			Linha:    linha,
			Mensagem: fmt.Sprintf("Valor %q não é numérico", row.ValorNumerico),
		})
		return
	}

	periodo := strings.TrimSpace(row.Periodo)

	existing, err := s.dataPointRepository.GetByKpiAndPeriodo(kpi.ID, periodo)
	if err != nil {
		result.Erros = append(result.Erros, domain.ImportError{
			Linha:    linha,
			Mensagem: err.Error(),
		})
		return
	}

	// O status gravado é um snapshot desnormalizado, calculado com as faixas
	// do KPI no momento da importação
	status := kpi.CalcularStatus(&valor)

	if existing != nil {
		existing.ValorNumerico = &valor
		existing.Observacoes = row.Observacao
		existing.StatusSemaforo = &status

		if err := s.dataPointRepository.Update(existing); err != nil {
			result.Erros = append(result.Erros, domain.ImportError{
				Linha:    linha,
				Mensagem: err.Error(),
			})
			return
		}
		result.Atualizados++
		return
	}

	id, err := utils.GenerateID()
	if err != nil {
		result.Erros = append(result.Erros, domain.ImportError{
			Linha:    linha,
			Mensagem: err.Error(),
		})
		return
	}

	dp := &domain.DataPoint{
		ID:             id,
		KpiID:          kpi.ID,
		Periodo:        periodo,
		ValorNumerico:  &valor,
		Observacoes:    row.Observacao,
		StatusSemaforo: &status,
	}

	if err := s.dataPointRepository.Insert(dp); err != nil {
		result.Erros = append(result.Erros, domain.ImportError{
			Linha:    linha,
			Mensagem: err.Error(),
		})
		return
	}
	result.Inseridos++
}

func (s *Service) kpisPorCodigo() (map[string]*domain.KpiDefinition, error) {
	kpis, err := s.kpiRepository.ListAtivos()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar o mapa de códigos de KPI")
	}

	porCodigo := make(map[string]*domain.KpiDefinition, len(kpis))
	for _, k := range kpis {
		porCodigo[k.Codigo] = k
	}
	return porCodigo, nil
}

// parseValor aceita número em formato local: vírgula decimal vira ponto
func parseValor(raw string) (float64, error) {
	normalizado := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")

	valor, err := strconv.ParseFloat(normalizado, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(valor) {
		return 0, fmt.Errorf("valor não numérico: %q", raw)
	}

	return valor, nil
}
