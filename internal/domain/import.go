package domain

// ImportRow é uma linha da planilha de importação, antes da validação.
// O valor pode chegar como número ou como texto em formato local ("10,5").
type ImportRow struct {
	CodigoKpi     string  `json:"codigo_kpi"`
	Periodo       string  `json:"periodo"`
	ValorNumerico string  `json:"valor_numerico"`
	Observacao    *string `json:"observacao,omitempty"`
}

// ImportError aponta a linha da planilha (1-indexada, contando o cabeçalho)
// e a mensagem de validação ou de gravação
type ImportError struct {
	Linha    int    `json:"linha"`
	Mensagem string `json:"mensagem"`
}

// ImportResult acumula o desfecho de uma importação: total de linhas lidas,
// quantas foram inseridas, quantas atualizadas e os erros por linha
type ImportResult struct {
	Total       int           `json:"total"`
	Inseridos   int           `json:"inseridos"`
	Atualizados int           `json:"atualizados"`
	Erros       []ImportError `json:"erros"`
}
