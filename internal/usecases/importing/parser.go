package importing

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/institutoins/kpi-manager-api/internal/domain"
)

// Cabeçalhos reconhecidos na planilha de importação
const (
	colunaCodigoKpi  = "codigo_kpi"
	colunaPeriodo    = "periodo"
	colunaValor      = "valor_numerico"
	colunaObservacao = "observacao"
)

// ParseRows decodifica o arquivo de importação (CSV, separado por vírgula ou
// ponto e vírgula, primeira linha de cabeçalho) em linhas brutas. As colunas
// são resolvidas pelo nome do cabeçalho; colunas desconhecidas são ignoradas.
// A validação de conteúdo fica a cargo da reconciliação: aqui só se exige um
// cabeçalho legível.
func ParseRows(data []byte) ([]domain.ImportRow, error) {
	// Arquivos exportados por planilhas costumam trazer BOM UTF-8
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = detectSeparator(data)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o cabeçalho do arquivo: %w", err)
	}

	indices := make(map[string]int, len(headers))
	for i, h := range headers {
		indices[strings.ToLower(strings.TrimSpace(h))] = i
	}

	if _, ok := indices[colunaCodigoKpi]; !ok {
		return nil, fmt.Errorf("cabeçalho inválido: coluna %q não encontrada", colunaCodigoKpi)
	}

	rows := make([]domain.ImportRow, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("erro ao ler linha do arquivo: %w", err)
		}

		row := domain.ImportRow{
			CodigoKpi:     fieldAt(record, indices, colunaCodigoKpi),
			Periodo:       fieldAt(record, indices, colunaPeriodo),
			ValorNumerico: fieldAt(record, indices, colunaValor),
		}

		if obs := fieldAt(record, indices, colunaObservacao); obs != "" {
			row.Observacao = &obs
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func fieldAt(record []string, indices map[string]int, coluna string) string {
	idx, ok := indices[coluna]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// detectSeparator escolhe entre vírgula e ponto e vírgula pela primeira linha
func detectSeparator(data []byte) rune {
	idx := bytes.IndexByte(data, '\n')
	if idx < 0 {
		idx = len(data)
	}
	primeiraLinha := data[:idx]

	if bytes.Count(primeiraLinha, []byte(";")) > bytes.Count(primeiraLinha, []byte(",")) {
		return ';'
	}
	return ','
}
